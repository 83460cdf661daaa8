package generator

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// --- Mocks ---

type mockAPI struct {
	generateContentFunc    func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	generateVideosFunc     func(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	getVideosOperationFunc func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)

	generateContentCalls int
	statusFetchCalls     int
}

func (m *mockAPI) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.generateContentCalls++
	if m.generateContentFunc != nil {
		return m.generateContentFunc(ctx, model, contents, config)
	}
	return inlineImageResponse("image/png", []byte("fake")), nil
}

func (m *mockAPI) GenerateVideos(ctx context.Context, model, prompt string, image *genai.Image, config *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	if m.generateVideosFunc != nil {
		return m.generateVideosFunc(ctx, model, prompt, image, config)
	}
	return &genai.GenerateVideosOperation{}, nil
}

func (m *mockAPI) GetVideosOperation(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	m.statusFetchCalls++
	if m.getVideosOperationFunc != nil {
		return m.getVideosOperationFunc(ctx, op)
	}
	return op, nil
}

// inlineImageResponse はインライン画像1件を含む応答を組み立てるヘルパーです。
func inlineImageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
		}},
	}
}

// textResponse はテキストのみの応答を組み立てるヘルパーです。
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			},
		}},
	}
}

// staticPool はキーの解決を固定の API / エラーに差し替えます。
type staticPool struct {
	api       GenerativeAPI
	err       error
	getCalled int
}

func (p *staticPool) Get(ctx context.Context, apiKey string) (GenerativeAPI, error) {
	p.getCalled++
	if p.err != nil {
		return nil, p.err
	}
	return p.api, nil
}

type mockReader struct {
	openFunc func(ctx context.Context, uri string) (io.ReadCloser, error)
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, uri)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

type mockHTTPClient struct {
	data    []byte
	err     error
	lastURL string
	called  int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.called++
	m.lastURL = url
	return m.data, m.err
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) {
	panic("not implemented in mock")
}

func (m *mockHTTPClient) IsSecureServiceURL(serviceURL string) bool {
	panic("not implemented in mock")
}

type mockCache struct {
	data map[string]any
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]any)}
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
}

// newTestCore は既定のモック依存で GeminiMediaCore を組み立てます。
func newTestCore(pool ClientPool, httpClient *mockHTTPClient, cache ImageCacher) *GeminiMediaCore {
	if httpClient == nil {
		httpClient = &mockHTTPClient{}
	}
	core, err := NewGeminiMediaCore(pool, &mockReader{}, httpClient, cache, time.Hour, Config{
		PollInterval: time.Millisecond,
	})
	if err != nil {
		panic(err)
	}
	return core
}
