package api

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter は全エンドポイントのルーティングを設定します。
// static には単一ページUIのファイル群を渡します（nil 可）。
func NewRouter(h *Handler, static fs.FS) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/validate", h.HandleValidate).Methods(http.MethodPost)
	r.HandleFunc("/api/images", h.HandleGenerateImage).Methods(http.MethodPost)
	r.HandleFunc("/api/images/edit", h.HandleEditImage).Methods(http.MethodPost)
	r.HandleFunc("/api/videos", h.HandleGenerateVideo).Methods(http.MethodPost)
	r.HandleFunc("/api/chat", h.HandleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/settings", h.HandleGetSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", h.HandleUpdateSettings).Methods(http.MethodPut)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	if static != nil {
		r.PathPrefix("/").Handler(http.FileServer(http.FS(static)))
	}

	return r
}
