package generator

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

// clientIdleTTL を超えて使われなかったクライアントはプールから破棄されます。
const clientIdleTTL = 30 * time.Minute

// GenAIClientPool は API キーごとのクライアントを保持するプールです。
// genai.Client は構築時にキーを束縛するため、キーが変わるたびに作り直す代わりに
// キー単位でクライアントを再利用します。キーは呼び出し側が自由に指定できるため、
// アイドルTTL付きのキャッシュに保持して無制限に増え続けないようにします。
type GenAIClientPool struct {
	mu      sync.Mutex
	cache   *gocache.Cache
	factory func(ctx context.Context, apiKey string) (GenerativeAPI, error)
}

// NewClientPool は GenAIClientPool を初期化します。
func NewClientPool() *GenAIClientPool {
	return &GenAIClientPool{
		cache:   gocache.New(clientIdleTTL, 2*clientIdleTTL),
		factory: newGenAIClient,
	}
}

// Get は API キーに対応するクライアントを返します。未構築（または破棄済み）なら
// 構築して保持し、ヒット時はアイドルTTLを延長します。
// 空のキーは domain.ErrMissingCredential です。
func (p *GenAIClientPool) Get(ctx context.Context, apiKey string) (GenerativeAPI, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	if val, ok := p.cache.Get(apiKey); ok {
		p.cache.SetDefault(apiKey, val)
		return val.(GenerativeAPI), nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// ダブルチェック
	if val, ok := p.cache.Get(apiKey); ok {
		return val.(GenerativeAPI), nil
	}

	client, err := p.factory(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	p.cache.SetDefault(apiKey, client)
	return client, nil
}
