package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// GeminiMediaCore は画像生成・編集、動画生成、チャット、資格情報検証の
// 呼び出し面をまとめた基盤クラスです。API キーは呼び出しのたびに受け取り、
// クライアントの束縛は ClientPool に委ねます。
type GeminiMediaCore struct {
	pool       ClientPool
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
	cfg        Config
}

// NewGeminiMediaCore は依存関係を注入して GeminiMediaCore を初期化します。
func NewGeminiMediaCore(pool ClientPool, reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration, cfg Config) (*GeminiMediaCore, error) {
	// どの依存関係が不足しているか具体的に示す
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &GeminiMediaCore{
		pool:       pool,
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
		cfg:        cfg.withDefaults(),
	}, nil
}

// ValidateCredential は最も安価な認証付き呼び出しで API キーの有効性を確認します。
// 失敗理由（ネットワーク・認証・クォータ）は区別せず、いかなる場合もエラーを
// 返しません。キー入力のたびに呼ばれる前提のため、結果は短時間キャッシュされます。
func (c *GeminiMediaCore) ValidateCredential(ctx context.Context, apiKey string) bool {
	if apiKey == "" {
		return false
	}

	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyValidation + apiKey); ok {
			if valid, ok := val.(bool); ok {
				return valid
			}
		}
	}

	valid := c.probeCredential(ctx, apiKey)

	if c.cache != nil {
		c.cache.Set(cacheKeyValidation+apiKey, valid, validationCacheTTL)
	}
	return valid
}

func (c *GeminiMediaCore) probeCredential(ctx context.Context, apiKey string) bool {
	api, err := c.pool.Get(ctx, apiKey)
	if err != nil {
		return false
	}

	config := &genai.GenerateContentConfig{MaxOutputTokens: 1}
	_, err = api.GenerateContent(ctx, c.cfg.TextModel, genai.Text("ping"), config)
	if err != nil {
		slog.DebugContext(ctx, "資格情報の検証に失敗しました", "error", err)
		return false
	}
	return true
}
