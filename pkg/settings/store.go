// Package settings はブラウザ側に永続化していた文字列キーバリュー
// （API キー・アクセントカラー・背景画像）をファイルベースのストアとして
// 明示的に注入できるようにしたものです。スキーマバージョニングは行わず、
// 値は存在チェックのみのプレーンな文字列として読み書きします。
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

const (
	keyAPIKey        = "credential.api_key"
	keyAccentColor   = "theme.accent_color"
	keyBackgroundURL = "theme.background_url"
)

// Store は永続化された設定値へのアクセサです。書き込みは即座にファイルへ
// 反映されます。複数のハンドラから同時に触られるため内部で排他します。
type Store struct {
	mu   sync.RWMutex
	v    *viper.Viper
	path string
}

// NewStore は指定パスの設定ファイルを読み込んで Store を初期化します。
// ファイルが存在しない場合は空の状態から開始します。
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("設定ディレクトリの作成に失敗しました: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// APIKey は保存されている資格情報を返します。未設定なら空文字です。
func (s *Store) APIKey() string {
	return s.get(keyAPIKey)
}

// SetAPIKey は資格情報を保存します。
func (s *Store) SetAPIKey(key string) error {
	return s.set(keyAPIKey, key)
}

// AccentColor は UI のアクセントカラータグを返します。
func (s *Store) AccentColor() string {
	return s.get(keyAccentColor)
}

func (s *Store) SetAccentColor(color string) error {
	return s.set(keyAccentColor, color)
}

// BackgroundURL は背景画像の URL（または data 文字列）を返します。
func (s *Store) BackgroundURL() string {
	return s.get(keyBackgroundURL)
}

func (s *Store) SetBackgroundURL(url string) error {
	return s.set(keyBackgroundURL, url)
}

func (s *Store) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.GetString(key)
}

func (s *Store) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("設定の保存に失敗しました: %w", err)
	}
	return nil
}
