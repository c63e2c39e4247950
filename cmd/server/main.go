package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mhojune/idea-creator/config"
	"github.com/mhojune/idea-creator/internal/database"
	"github.com/mhojune/idea-creator/internal/favorites"
	"github.com/mhojune/idea-creator/internal/generate"
	"github.com/mhojune/idea-creator/internal/logger"
	"github.com/mhojune/idea-creator/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer logg.Sync()

	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	db, err := database.Open(cfg.Database.URL, cfg.Database.Token)
	if err != nil {
		logg.Fatal("failed to open database", "error", err)
	}
	defer db.Close()

	store := favorites.NewStore(db)
	if err := store.Load(ctx); err != nil {
		logg.Fatal("failed to load favorites", "error", err)
	}

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		logg.Fatal("failed to init generation backend", "error", err)
	}
	svc := generate.NewService(backend, logg, cfg.Generation.MaxIdeas)

	router := server.NewRouter(server.RouterConfig{
		IdeaHandler:     server.NewIdeaHandler(svc, logg),
		FavoriteHandler: server.NewFavoriteHandler(store, logg),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Logger:          logg,
	})

	logg.Info("relay listening",
		"addr", cfg.Server.Addr,
		"provider", cfg.Generation.Provider,
	)
	if err := router.Run(cfg.Server.Addr); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}

func newBackend(ctx context.Context, cfg *config.Config) (generate.Backend, error) {
	if cfg.Generation.Provider == "gemini" {
		return generate.NewGeminiBackend(ctx, cfg.Generation.APIKey, cfg.Generation.Model)
	}
	return generate.NewMistralBackend(
		cfg.Generation.APIKey,
		cfg.Generation.Model,
		cfg.Generation.BaseURL,
		cfg.Generation.TimeoutSecs,
	)
}
