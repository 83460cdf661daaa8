package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
	"github.com/shouni/gemini-studio-kit/pkg/imgutil"
	"google.golang.org/genai"
)

// FetchSeedImage は http(s):// または gs:// の参照から素材画像を取得します。
// 取得結果はキャッシュされ、閾値を超えるデータは JPEG に再圧縮されます。
func (c *GeminiMediaCore) FetchSeedImage(ctx context.Context, rawURL string) (*domain.SeedImage, error) {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeySeedImage + rawURL); ok {
			if seed, ok := val.(*domain.SeedImage); ok {
				return seed, nil
			}
		}
	}

	data, err := c.fetchImageData(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	finalData := data
	if UseImageCompression && len(data) > compressionThreshold {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			finalData = compressed
		}
	}

	mimeType := http.DetectContentType(finalData)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: 取得したデータが画像ではありません (%s)", domain.ErrInvalidInput, mimeType)
	}

	seed := &domain.SeedImage{Data: finalData, MimeType: mimeType}
	if c.cache != nil {
		c.cache.Set(cacheKeySeedImage+rawURL, seed, c.expiration)
	}
	return seed, nil
}

func (c *GeminiMediaCore) fetchImageData(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		rc, err := c.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := IsSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("%w: 安全ではないURLが指定されました: %v", domain.ErrInvalidInput, err)
	}
	return c.httpClient.FetchBytes(ctx, rawURL)
}

// toPart はバイト列を genai.Part (InlineData) に変換します。
func toPart(data []byte, mimeType string) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}
}

// parseToResponse は GenerateContent の応答から最初のインライン画像を取り出します。
// 画像が1件もなければ domain.ErrGenerationFailed を返します。
func parseToResponse(resp *genai.GenerateContentResponse, seed int64) (*domain.ImageResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: 有効な応答がありませんでした", domain.ErrGenerationFailed)
	}

	// 現在の仕様では最初の候補 (Candidate) のみを利用する。
	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.ImageResponse{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					UsedSeed: seed,
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w: 生成が異常終了しました (FinishReason: %s)", domain.ErrGenerationFailed, candidate.FinishReason)
	}

	return nil, fmt.Errorf("%w: 画像データが見つかりませんでした", domain.ErrGenerationFailed)
}
