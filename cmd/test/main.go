package main

import (
	"context"
	"log"

	"github.com/k0kubun/pp/v3"

	"github.com/mhojune/idea-creator/config"
	"github.com/mhojune/idea-creator/internal/generate"
	"github.com/mhojune/idea-creator/internal/logger"
)

// Manual smoke run against the real generation backend. Needs a valid
// generation.api_key; prints whatever the pipeline kept.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logg, err := logger.New(cfg.Log.Mode)
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer logg.Sync()

	var backend generate.Backend
	if cfg.Generation.Provider == "gemini" {
		backend, err = generate.NewGeminiBackend(ctx, cfg.Generation.APIKey, cfg.Generation.Model)
	} else {
		backend, err = generate.NewMistralBackend(cfg.Generation.APIKey, cfg.Generation.Model, cfg.Generation.BaseURL, cfg.Generation.TimeoutSecs)
	}
	if err != nil {
		log.Fatal(err)
	}

	svc := generate.NewService(backend, logg, cfg.Generation.MaxIdeas)

	ideas, err := svc.Generate(ctx, generate.Request{
		Topic: "퇴근 후 1시간으로 시작할 수 있는 부업",
		Count: 3,
	})
	if err != nil {
		log.Fatal(err)
	}

	pp.Print(ideas)
}
