package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
	"google.golang.org/genai"
)

// GenerateVideo は動画生成ジョブを投入し、完了まで固定間隔でポーリングした後、
// 成果物をダウンロードして返します。サスペンド地点ごとにコンテキストを確認する
// ため、呼び出し側はキャンセルと期限を制御できます。MaxWait が 0 の場合は
// 完了まで無期限に待ちます。
func (c *GeminiMediaCore) GenerateVideo(ctx context.Context, apiKey string, req domain.VideoGenerationRequest) (*domain.VideoResponse, error) {
	api, err := c.pool.Get(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.cfg.VideoModel
	}

	var image *genai.Image
	if req.SeedImage != nil {
		image = &genai.Image{
			ImageBytes: req.SeedImage.Data,
			MIMEType:   req.SeedImage.MimeType,
		}
	}

	var config *genai.GenerateVideosConfig
	if req.AspectRatio != "" {
		config = &genai.GenerateVideosConfig{AspectRatio: req.AspectRatio}
	}

	operation, err := api.GenerateVideos(ctx, model, req.Prompt, image, config)
	if err != nil {
		return nil, fmt.Errorf("動画生成ジョブの投入に失敗しました: %w", err)
	}
	slog.InfoContext(ctx, "動画生成ジョブを投入しました", "model", model)

	if c.cfg.MaxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.MaxWait)
		defer cancel()
	}

	// 完了フラグが立つまで固定間隔で再取得する。立った後は二度とポーリングしない。
	for !operation.Done {
		if err := sleepCtx(ctx, c.cfg.PollInterval); err != nil {
			return nil, fmt.Errorf("動画生成の待機が中断されました: %w", err)
		}
		operation, err = api.GetVideosOperation(ctx, operation)
		if err != nil {
			return nil, fmt.Errorf("ジョブ状態の取得に失敗しました: %w", err)
		}
	}

	return c.resolveVideo(ctx, apiKey, operation)
}

// resolveVideo は完了した Operation から成果物バイト列を取り出します。
// SDK がバイト列を同梱していればそれを使い、URI のみの場合は API キーを
// クエリパラメータに付与した1回の認証付きフェッチでダウンロードします。
func (c *GeminiMediaCore) resolveVideo(ctx context.Context, apiKey string, operation *genai.GenerateVideosOperation) (*domain.VideoResponse, error) {
	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 || operation.Response.GeneratedVideos[0].Video == nil {
		return nil, fmt.Errorf("%w: ジョブは完了しましたが動画が含まれていません", domain.ErrGenerationFailed)
	}

	video := operation.Response.GeneratedVideos[0].Video
	mimeType := video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	if len(video.VideoBytes) > 0 {
		return &domain.VideoResponse{Data: video.VideoBytes, MimeType: mimeType}, nil
	}

	if video.URI == "" {
		return nil, fmt.Errorf("%w: 成果物のURIがありません", domain.ErrGenerationFailed)
	}

	downloadURL, err := appendKeyParam(video.URI, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}

	data, err := c.httpClient.FetchBytes(ctx, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDownloadFailed, err)
	}
	slog.InfoContext(ctx, "動画をダウンロードしました", "bytes", len(data))

	return &domain.VideoResponse{Data: data, MimeType: mimeType}, nil
}
