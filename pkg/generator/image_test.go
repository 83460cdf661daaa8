package generator

import (
	"context"
	"encoding/base64"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

func TestGenerateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("具体シナリオ: 赤いキューブの生成結果がインライン表現になる", func(t *testing.T) {
		payload, err := base64.StdEncoding.DecodeString("Zm9v")
		require.NoError(t, err)

		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				require.Len(t, contents, 1)
				assert.Equal(t, "a red cube", contents[0].Parts[0].Text)
				require.NotNil(t, config)
				require.NotNil(t, config.ImageConfig)
				assert.Equal(t, "1:1", config.ImageConfig.AspectRatio)
				return inlineImageResponse("image/png", payload), nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		resp, err := core.GenerateImage(ctx, "test-key", domain.ImageGenerationRequest{
			Prompt:      "a red cube",
			AspectRatio: "1:1",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DataURI("data:image/png;base64,Zm9v"), resp.Artifact())
	})

	t.Run("応答に画像が1件もない場合は ErrGenerationFailed", func(t *testing.T) {
		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("画像は作れませんでした"), nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		_, err := core.GenerateImage(ctx, "test-key", domain.ImageGenerationRequest{Prompt: "x"})
		assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	})

	t.Run("未対応のアスペクト比は ErrInvalidInput", func(t *testing.T) {
		pool := &staticPool{api: &mockAPI{}}
		core := newTestCore(pool, nil, nil)

		_, err := core.GenerateImage(ctx, "test-key", domain.ImageGenerationRequest{
			Prompt:      "x",
			AspectRatio: "2:3",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, pool.getCalled)
	})

	t.Run("int32 の範囲外のシードは ErrInvalidInput でネットワークに出ない", func(t *testing.T) {
		pool := &staticPool{api: &mockAPI{}}
		core := newTestCore(pool, nil, nil)

		seed := int64(math.MaxInt32) + 1
		_, err := core.GenerateImage(ctx, "test-key", domain.ImageGenerationRequest{Prompt: "x", Seed: &seed})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, pool.getCalled)
	})

	t.Run("キー未設定は ErrMissingCredential", func(t *testing.T) {
		core := newTestCore(NewClientPool(), nil, nil)
		_, err := core.GenerateImage(ctx, "", domain.ImageGenerationRequest{Prompt: "x"})
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})

	t.Run("シードは int32 に変換されて渡される", func(t *testing.T) {
		var seed int64 = 777
		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				require.NotNil(t, config)
				require.NotNil(t, config.Seed)
				assert.Equal(t, int32(777), *config.Seed)
				return inlineImageResponse("image/png", []byte("fake")), nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		resp, err := core.GenerateImage(ctx, "test-key", domain.ImageGenerationRequest{Prompt: "x", Seed: &seed})
		require.NoError(t, err)
		assert.Equal(t, int64(777), resp.UsedSeed)
	})
}

func TestEditImage(t *testing.T) {
	ctx := context.Background()

	validSource := domain.NewDataURI("image/png", []byte("original"))

	t.Run("成功: プロンプトと画像の2パートで送信される", func(t *testing.T) {
		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				require.Len(t, contents, 1)
				require.Len(t, contents[0].Parts, 2)
				assert.Equal(t, "make it blue", contents[0].Parts[0].Text)
				require.NotNil(t, contents[0].Parts[1].InlineData)
				assert.Equal(t, "image/png", contents[0].Parts[1].InlineData.MIMEType)
				assert.Equal(t, []byte("original"), contents[0].Parts[1].InlineData.Data)
				return inlineImageResponse("image/png", []byte("edited")), nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		resp, err := core.EditImage(ctx, "test-key", domain.ImageEditRequest{
			Prompt: "make it blue",
			Source: validSource,
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("edited"), resp.Data)
	})

	t.Run("壊れたソースは ErrInvalidInput でネットワークに出ない", func(t *testing.T) {
		pool := &staticPool{api: &mockAPI{}}
		core := newTestCore(pool, nil, nil)

		_, err := core.EditImage(ctx, "test-key", domain.ImageEditRequest{
			Prompt: "x",
			Source: "image/png;base64,Zm9v", // data: プレフィックス欠落
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, pool.getCalled, "network must not be touched for malformed input")
	})

	t.Run("画像以外の MIME タイプは ErrInvalidInput", func(t *testing.T) {
		core := newTestCore(&staticPool{api: &mockAPI{}}, nil, nil)

		_, err := core.EditImage(ctx, "test-key", domain.ImageEditRequest{
			Prompt: "x",
			Source: domain.NewDataURI("text/plain", []byte("not an image")),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("リモートエラーはラップされて伝播する", func(t *testing.T) {
		remoteErr := errors.New("quota exceeded")
		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, remoteErr
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		_, err := core.EditImage(ctx, "test-key", domain.ImageEditRequest{Prompt: "x", Source: validSource})
		assert.ErrorIs(t, err, remoteErr)
	})
}
