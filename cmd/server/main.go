package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"github.com/spf13/viper"

	"github.com/shouni/gemini-studio-kit/internal/api"
	"github.com/shouni/gemini-studio-kit/pkg/generator"
	"github.com/shouni/gemini-studio-kit/pkg/settings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

//go:embed web
var webFS embed.FS

func main() {
	ctx := context.Background()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("GSK")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("settings_path", "data/settings.yaml")
	v.SetDefault("cache_ttl", time.Hour)
	v.SetDefault("poll_interval", generator.DefaultPollInterval)
	v.SetDefault("max_wait", time.Duration(0))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("設定ファイルの読み込みに失敗しました", "error", err)
			os.Exit(1)
		}
	}

	store, err := settings.NewStore(v.GetString("settings_path"))
	if err != nil {
		slog.Error("設定ストアの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ioFactory, err := gcsfactory.New(ctx)
	if err != nil {
		slog.Error("リモートリーダーの初期化に失敗しました", "error", err)
		os.Exit(1)
	}
	reader, err := ioFactory.InputReader()
	if err != nil {
		slog.Error("リモートリーダーの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	httpClient := httpkit.New(30 * time.Second)
	cacheTTL := v.GetDuration("cache_ttl")
	cache := gocache.New(cacheTTL, 2*cacheTTL)

	core, err := generator.NewGeminiMediaCore(
		generator.NewClientPool(),
		reader,
		httpClient,
		cache,
		cacheTTL,
		generator.Config{
			ImageModel:   v.GetString("image_model"),
			VideoModel:   v.GetString("video_model"),
			TextModel:    v.GetString("text_model"),
			PollInterval: v.GetDuration("poll_interval"),
			MaxWait:      v.GetDuration("max_wait"),
		},
	)
	if err != nil {
		slog.Error("生成コアの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	static, err := fs.Sub(webFS, "web")
	if err != nil {
		slog.Error("静的ファイルの展開に失敗しました", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(core, store)
	router := api.NewRouter(handler, static)

	port := v.GetString("port")
	slog.Info("[boot] starting server",
		"port", port,
		"settings_path", v.GetString("settings_path"),
		"poll_interval", v.GetDuration("poll_interval"),
	)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           cors.Default().Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		slog.Error("サーバーの起動に失敗しました", "error", err)
		os.Exit(1)
	}
}
