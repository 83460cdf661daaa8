package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
	"google.golang.org/genai"
)

// GenerateImage はプロンプトとアスペクト比から画像を1枚生成します。
// 応答にインライン画像が1件も含まれない場合は domain.ErrGenerationFailed です。
func (c *GeminiMediaCore) GenerateImage(ctx context.Context, apiKey string, req domain.ImageGenerationRequest) (*domain.ImageResponse, error) {
	if !domain.IsValidAspectRatio(req.AspectRatio) {
		return nil, fmt.Errorf("%w: 未対応のアスペクト比です: %s", domain.ErrInvalidInput, req.AspectRatio)
	}
	config, err := imageConfig(req.AspectRatio, req.Seed)
	if err != nil {
		return nil, err
	}

	api, err := c.pool.Get(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(req.Prompt)},
	}}

	resp, err := api.GenerateContent(ctx, c.cfg.ImageModel, contents, config)
	if err != nil {
		return nil, fmt.Errorf("画像生成エラー: %w", err)
	}

	return parseToResponse(resp, dereferenceSeed(req.Seed))
}

// EditImage はインラインアーティファクトを復号し、編集プロンプトと合わせた
// 2パートのマルチモーダル要求として送信します。ソースの形式不正は
// ネットワーク呼び出しの前に domain.ErrInvalidInput として弾きます。
func (c *GeminiMediaCore) EditImage(ctx context.Context, apiKey string, req domain.ImageEditRequest) (*domain.ImageResponse, error) {
	mimeType, data, err := req.Source.Decode()
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: 編集対象が画像ではありません (%s)", domain.ErrInvalidInput, mimeType)
	}

	api, err := c.pool.Get(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			genai.NewPartFromText(req.Prompt),
			toPart(data, mimeType),
		},
	}}

	resp, err := api.GenerateContent(ctx, c.cfg.ImageModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("画像編集エラー: %w", err)
	}

	return parseToResponse(resp, 0)
}

func imageConfig(aspectRatio string, seed *int64) (*genai.GenerateContentConfig, error) {
	if aspectRatio == "" && seed == nil {
		return nil, nil
	}
	seed32, err := seedToPtrInt32(seed)
	if err != nil {
		return nil, err
	}
	config := &genai.GenerateContentConfig{Seed: seed32}
	if aspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: aspectRatio}
	}
	return config, nil
}
