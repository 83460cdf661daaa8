package api

import (
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

// HandleGenerateImage - 画像生成API
func (h *Handler) HandleGenerateImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt      string `json:"prompt"`
		AspectRatio string `json:"aspect_ratio"`
		Seed        *int64 `json:"seed"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.sendError(w, "リクエストの形式が不正です", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		h.sendError(w, "プロンプトを入力してください", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GenerateImage(r.Context(), h.apiKey(r), domain.ImageGenerationRequest{
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
		Seed:        req.Seed,
	})
	if err != nil {
		slog.Warn("画像生成に失敗しました", "error", err)
		h.sendFailure(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"artifact": resp.Artifact(),
	})
}

// HandleEditImage - 画像編集API。ソースは自己記述型のインライン表現で受け取ります。
func (h *Handler) HandleEditImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
		Source string `json:"source"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.sendError(w, "リクエストの形式が不正です", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" || req.Source == "" {
		h.sendError(w, "プロンプトと編集対象の画像を指定してください", http.StatusBadRequest)
		return
	}

	resp, err := h.service.EditImage(r.Context(), h.apiKey(r), domain.ImageEditRequest{
		Prompt: req.Prompt,
		Source: domain.DataURI(req.Source),
	})
	if err != nil {
		slog.Warn("画像編集に失敗しました", "error", err)
		h.sendFailure(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"artifact": resp.Artifact(),
	})
}
