package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhojune/idea-creator/internal/logger"
)

type RouterConfig struct {
	IdeaHandler     *IdeaHandler
	FavoriteHandler *FavoriteHandler

	AllowedOrigins []string
	Logger         *logger.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(CORS(cfg.AllowedOrigins))

	// Health
	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		if cfg.IdeaHandler != nil {
			api.POST("/ideas", cfg.IdeaHandler.Generate)
		}

		if cfg.FavoriteHandler != nil {
			api.GET("/favorites", cfg.FavoriteHandler.List)
			api.POST("/favorites", cfg.FavoriteHandler.Add)
			api.DELETE("/favorites/:id", cfg.FavoriteHandler.Remove)
		}
	}

	return r
}
