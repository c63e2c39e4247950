package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr           string
		GinMode        string
		AllowedOrigins []string
	}
	Generation struct {
		Provider    string // "mistral" or "gemini"
		APIKey      string
		Model       string
		BaseURL     string
		TimeoutSecs int
		MaxIdeas    int
	}
	Database struct {
		URL   string
		Token string
	}
	Log struct {
		Mode string // "development" or "production"
	}
}

func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Env overrides, e.g. IDEA_GENERATION_API_KEY
	v.SetEnvPrefix("idea")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read config file (optional - env vars and defaults cover the rest)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Server config
	cfg.Server.Addr = v.GetString("server.addr")
	cfg.Server.GinMode = v.GetString("server.gin_mode")
	cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")

	// Generation config
	cfg.Generation.Provider = v.GetString("generation.provider")
	cfg.Generation.APIKey = v.GetString("generation.api_key")
	cfg.Generation.Model = v.GetString("generation.model")
	cfg.Generation.BaseURL = v.GetString("generation.base_url")
	cfg.Generation.TimeoutSecs = v.GetInt("generation.timeout_secs")
	cfg.Generation.MaxIdeas = v.GetInt("generation.max_ideas")

	// Database config
	cfg.Database.URL = v.GetString("database.url")
	cfg.Database.Token = v.GetString("database.token")

	// Log config
	cfg.Log.Mode = v.GetString("log.mode")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.addr", ":8787")
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:3000",
	})

	// Generation defaults; the model falls back per provider when unset
	v.SetDefault("generation.provider", "mistral")
	v.SetDefault("generation.base_url", "https://api.mistral.ai/v1")
	v.SetDefault("generation.timeout_secs", 60)
	v.SetDefault("generation.max_ideas", 10)

	// Log defaults
	v.SetDefault("log.mode", "development")
}

func validate(cfg *Config) error {
	switch cfg.Generation.Provider {
	case "mistral", "gemini":
	default:
		return fmt.Errorf("generation.provider must be mistral or gemini, got %q", cfg.Generation.Provider)
	}
	if cfg.Generation.APIKey == "" {
		return fmt.Errorf("generation.api_key is required")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("database.url is required")
	}
	return nil
}
