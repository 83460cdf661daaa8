// Package api は単一ページUIから呼ばれる JSON エンドポイント群です。
// リクエストを pkg/generator の呼び出しに変換し、エラー種別を
// ステータスコードへ写像する薄い層で、ドメインロジックは持ちません。
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
	"github.com/shouni/gemini-studio-kit/pkg/settings"
)

// MediaService は生成コアのうちハンドラが利用する呼び出し面です。
type MediaService interface {
	ValidateCredential(ctx context.Context, apiKey string) bool
	GenerateImage(ctx context.Context, apiKey string, req domain.ImageGenerationRequest) (*domain.ImageResponse, error)
	EditImage(ctx context.Context, apiKey string, req domain.ImageEditRequest) (*domain.ImageResponse, error)
	GenerateVideo(ctx context.Context, apiKey string, req domain.VideoGenerationRequest) (*domain.VideoResponse, error)
	Chat(ctx context.Context, apiKey string, history []domain.ChatMessage, message string) (string, error)
	FetchSeedImage(ctx context.Context, rawURL string) (*domain.SeedImage, error)
}

// Handler は全エンドポイントの依存をまとめます。
type Handler struct {
	service MediaService
	store   *settings.Store
}

// NewHandler は Handler を初期化します。
func NewHandler(service MediaService, store *settings.Store) *Handler {
	return &Handler{service: service, store: store}
}

// apiKey は呼び出し時点の資格情報を解決します。リクエストヘッダの
// 上書きがあればそれを優先し、なければ設定ストアから読みます。
func (h *Handler) apiKey(r *http.Request) string {
	if key := r.Header.Get("X-Api-Key"); key != "" {
		return key
	}
	return h.store.APIKey()
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("レスポンスのエンコードに失敗しました", "error", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// sendFailure はエラー種別をステータスコードに写像して返します。
// どの失敗も致命的ではなく、利用者は常に再試行できます。
func (h *Handler) sendFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrGenerationFailed), errors.Is(err, domain.ErrDownloadFailed):
		status = http.StatusBadGateway
	}
	h.sendError(w, err.Error(), status)
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// HandleValidate - 資格情報検証API。入力のたびに呼ばれる前提のため、
// 失敗理由は区別せず常に 200 で真偽値のみを返します。
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"valid": false})
		return
	}

	valid := h.service.ValidateCredential(r.Context(), req.APIKey)
	h.writeJSON(w, http.StatusOK, map[string]any{"valid": valid})
}

// HandleGetSettings - 永続設定の取得API。資格情報そのものは返しません。
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"accent_color":   h.store.AccentColor(),
		"background_url": h.store.BackgroundURL(),
		"has_api_key":    h.store.APIKey() != "",
	})
}

// HandleUpdateSettings - 永続設定の更新API。指定されたフィールドのみ更新します。
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey        *string `json:"api_key"`
		AccentColor   *string `json:"accent_color"`
		BackgroundURL *string `json:"background_url"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.sendError(w, "リクエストの形式が不正です", http.StatusBadRequest)
		return
	}

	if req.APIKey != nil {
		if err := h.store.SetAPIKey(*req.APIKey); err != nil {
			h.sendFailure(w, err)
			return
		}
	}
	if req.AccentColor != nil {
		if err := h.store.SetAccentColor(*req.AccentColor); err != nil {
			h.sendFailure(w, err)
			return
		}
	}
	if req.BackgroundURL != nil {
		if err := h.store.SetBackgroundURL(*req.BackgroundURL); err != nil {
			h.sendFailure(w, err)
			return
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
