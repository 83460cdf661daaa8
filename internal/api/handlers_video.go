package api

import (
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

// HandleGenerateVideo - 動画生成API。投入からポーリング、ダウンロードまでを
// 1リクエストの中で完了させます。素材画像はインライン表現または URL
// （http(s):// / gs://）のいずれかで指定できます。
func (h *Handler) HandleGenerateVideo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt       string `json:"prompt"`
		Model        string `json:"model"`
		AspectRatio  string `json:"aspect_ratio"`
		SeedImage    string `json:"seed_image"`
		SeedImageURL string `json:"seed_image_url"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.sendError(w, "リクエストの形式が不正です", http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		h.sendError(w, "動画プロンプトを入力してください", http.StatusBadRequest)
		return
	}

	var seed *domain.SeedImage
	switch {
	case req.SeedImage != "":
		mimeType, data, err := domain.DataURI(req.SeedImage).Decode()
		if err != nil {
			h.sendFailure(w, err)
			return
		}
		seed = &domain.SeedImage{Data: data, MimeType: mimeType}
	case req.SeedImageURL != "":
		fetched, err := h.service.FetchSeedImage(r.Context(), req.SeedImageURL)
		if err != nil {
			h.sendFailure(w, err)
			return
		}
		seed = fetched
	}

	resp, err := h.service.GenerateVideo(r.Context(), h.apiKey(r), domain.VideoGenerationRequest{
		Prompt:      req.Prompt,
		Model:       req.Model,
		AspectRatio: req.AspectRatio,
		SeedImage:   seed,
	})
	if err != nil {
		slog.Warn("動画生成に失敗しました", "error", err)
		h.sendFailure(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"artifact":  domain.NewDataURI(resp.MimeType, resp.Data),
		"mime_type": resp.MimeType,
	})
}
