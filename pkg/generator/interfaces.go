package generator

import (
	"context"
	"time"

	"google.golang.org/genai"
)

// GenerativeAPI は Gemini API のうち本キットが利用する呼び出し面を抽象化します。
// 具象実装は genai.Client の薄いアダプターです。
type GenerativeAPI interface {
	// GenerateContent は、テキスト・マルチモーダルの同期生成を実行します。
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	// GenerateVideos は、動画生成ジョブを投入して Operation ハンドルを返します。
	GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	// GetVideosOperation は、Operation の現在状態をその同一性で再取得します。
	GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

// ClientPool は API キーごとに GenerativeAPI を解決します。
// 資格情報は呼び出しのたびに渡されるため、クライアントの束縛はここで行います。
type ClientPool interface {
	Get(ctx context.Context, apiKey string) (GenerativeAPI, error)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ImageCacher は、検証結果や取得済み画像をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
