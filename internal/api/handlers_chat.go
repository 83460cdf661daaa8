package api

import (
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-studio-kit/pkg/domain"
)

// HandleChat - チャットAPI。履歴はクライアントが保持して毎回送るステートレス設計です。
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		History []domain.ChatMessage `json:"history"`
		Message string               `json:"message"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.sendError(w, "リクエストの形式が不正です", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		h.sendError(w, "メッセージを入力してください", http.StatusBadRequest)
		return
	}

	reply, err := h.service.Chat(r.Context(), h.apiKey(r), req.History, req.Message)
	if err != nil {
		slog.Warn("チャット応答の生成に失敗しました", "error", err)
		h.sendFailure(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reply":   reply,
	})
}
