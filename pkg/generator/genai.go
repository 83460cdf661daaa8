package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiAPI は genai.Client を GenerativeAPI に適合させる薄いアダプターです。
type genaiAPI struct {
	client *genai.Client
}

// newGenAIClient は呼び出し側から渡された API キーでクライアントを構築します。
// キーの有効性はここでは検証されず、最初のリモート呼び出しで判明します。
func newGenAIClient(ctx context.Context, apiKey string) (GenerativeAPI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &genaiAPI{client: client}, nil
}

func (a *genaiAPI) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return a.client.Models.GenerateContent(ctx, model, contents, config)
}

func (a *genaiAPI) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return a.client.Models.GenerateVideos(ctx, model, prompt, image, config)
}

func (a *genaiAPI) GetVideosOperation(ctx context.Context, operation *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return a.client.Operations.GetVideosOperation(ctx, operation, nil)
}
