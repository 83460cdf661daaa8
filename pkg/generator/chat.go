package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
	"google.golang.org/genai"
)

// Chat は会話履歴と新しい発話から1ターン分の応答テキストを生成します。
// 履歴はクライアント側が保持するステートレス設計です。
func (c *GeminiMediaCore) Chat(ctx context.Context, apiKey string, history []domain.ChatMessage, message string) (string, error) {
	api, err := c.pool.Get(ctx, apiKey)
	if err != nil {
		return "", err
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Text)},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(message)},
	})

	resp, err := api.GenerateContent(ctx, c.cfg.TextModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("チャット応答の生成に失敗しました: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: 応答テキストが空です", domain.ErrGenerationFailed)
	}
	return text, nil
}
