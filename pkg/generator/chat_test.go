package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("履歴と新しい発話がロール付きで並ぶ", func(t *testing.T) {
		history := []domain.ChatMessage{
			{Role: "user", Text: "こんにちは"},
			{Role: "model", Text: "こんにちは！"},
		}

		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				require.Len(t, contents, 3)
				assert.Equal(t, genai.RoleUser, contents[0].Role)
				assert.Equal(t, genai.RoleModel, contents[1].Role)
				assert.Equal(t, genai.RoleUser, contents[2].Role)
				assert.Equal(t, "調子はどう？", contents[2].Parts[0].Text)
				return textResponse("元気です"), nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		reply, err := core.Chat(ctx, "test-key", history, "調子はどう？")
		require.NoError(t, err)
		assert.Equal(t, "元気です", reply)
	})

	t.Run("空の応答テキストは ErrGenerationFailed", func(t *testing.T) {
		api := &mockAPI{
			generateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return &genai.GenerateContentResponse{}, nil
			},
		}
		core := newTestCore(&staticPool{api: api}, nil, nil)

		_, err := core.Chat(ctx, "test-key", nil, "hello")
		assert.ErrorIs(t, err, domain.ErrGenerationFailed)
	})

	t.Run("キー未設定は ErrMissingCredential", func(t *testing.T) {
		core := newTestCore(NewClientPool(), nil, nil)
		_, err := core.Chat(ctx, "", nil, "hello")
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	})
}
