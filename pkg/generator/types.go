package generator

import "time"

const (
	// DefaultImageModel は画像の生成・編集に使う既定モデルです。
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultVideoModel は動画生成に使う既定モデルです。
	DefaultVideoModel = "veo-3.0-generate-001"
	// DefaultTextModel はチャットと資格情報検証に使う既定モデルです。
	DefaultTextModel = "gemini-2.5-flash"

	// DefaultPollInterval は Operation の状態を再取得する固定間隔です。
	DefaultPollInterval = 10 * time.Second

	UseImageCompression     = true
	ImageCompressionQuality = 75
	// compressionThreshold を超える素材画像のみ JPEG に再圧縮します。
	compressionThreshold = 1 << 20

	validationCacheTTL = 30 * time.Second
	cacheKeyValidation = "credential_ok:"
	cacheKeySeedImage  = "seed_image:"
)

// Config は GeminiMediaCore の動作設定です。ゼロ値のフィールドは既定値に解決されます。
type Config struct {
	ImageModel   string
	VideoModel   string
	TextModel    string
	PollInterval time.Duration
	// MaxWait はポーリング全体の上限時間です。0 は無制限（参照実装と同じ挙動）です。
	MaxWait time.Duration
}

func (c Config) withDefaults() Config {
	if c.ImageModel == "" {
		c.ImageModel = DefaultImageModel
	}
	if c.VideoModel == "" {
		c.VideoModel = DefaultVideoModel
	}
	if c.TextModel == "" {
		c.TextModel = DefaultTextModel
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	return c
}
