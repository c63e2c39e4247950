// Package server exposes the generation pipeline and the favorites
// store over HTTP. It is the only layer that turns empty generation
// results into user-facing errors; the pipeline itself never fails on
// unusable model output.
package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhojune/idea-creator/internal/generate"
	"github.com/mhojune/idea-creator/internal/idea"
	"github.com/mhojune/idea-creator/internal/logger"
)

// IdeaGenerator produces canonical ideas for a topic.
type IdeaGenerator interface {
	Generate(ctx context.Context, req generate.Request) ([]idea.Idea, error)
}

// FavoriteStore persists the ideas a user kept.
type FavoriteStore interface {
	Add(ctx context.Context, it idea.Idea) error
	Remove(ctx context.Context, id string) (bool, error)
	List() []idea.Idea
}

type IdeaHandler struct {
	generator IdeaGenerator
	log       *logger.Logger
}

func NewIdeaHandler(generator IdeaGenerator, log *logger.Logger) *IdeaHandler {
	return &IdeaHandler{generator: generator, log: log}
}

type generateRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Count    int    `json:"count"`
	Category string `json:"category"`
}

// POST /api/ideas
func (h *IdeaHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	ideas, err := h.generator.Generate(c.Request.Context(), generate.Request{
		Topic:    req.Topic,
		Count:    req.Count,
		Category: req.Category,
	})
	if err != nil {
		h.log.Error("generation failed", "topic", req.Topic, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "idea generation failed, please retry"})
		return
	}
	if len(ideas) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not parse ideas from the model response, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

type FavoriteHandler struct {
	store FavoriteStore
	log   *logger.Logger
}

func NewFavoriteHandler(store FavoriteStore, log *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{store: store, log: log}
}

// GET /api/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	var filter idea.Filter
	filter.Category = c.Query("category")

	if q := c.Query("complexity"); q != "" {
		cx, ok := idea.ComplexityFromString(q)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "complexity must be Simple, Medium or Hard"})
			return
		}
		filter.Complexity = cx
	}
	if q := c.Query("monetizable"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "monetizable must be a boolean"})
			return
		}
		filter.MonetizableOnly = v
	}

	c.JSON(http.StatusOK, gin.H{"favorites": filter.Apply(h.store.List())})
}

type favoritePayload struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Complexity  string   `json:"complexity"`
	Monetizable bool     `json:"monetizable"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// POST /api/favorites
//
// The body carries the idea fields; the id is recomputed here so a
// client can never store a record under someone else's identity.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var body favoritePayload
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	it := idea.Idea{
		Title:       strings.TrimSpace(body.Title),
		Description: strings.TrimSpace(body.Description),
		Monetizable: body.Monetizable,
		Category:    strings.TrimSpace(body.Category),
		Tags:        body.Tags,
	}
	if it.Title == "" || it.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}
	it.Complexity = idea.ComplexityMedium
	if cx, ok := idea.ComplexityFromString(body.Complexity); ok {
		it.Complexity = cx
	}
	if it.Category == "" {
		it.Category = idea.CategoryOther
	}
	it.ID = idea.StableID(it.Title, it.Description)

	if err := h.store.Add(c.Request.Context(), it); err != nil {
		h.log.Error("failed to store favorite", "id", it.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": it})
}

// DELETE /api/favorites/:id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.store.Remove(c.Request.Context(), id)
	if err != nil {
		h.log.Error("failed to delete favorite", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete favorite"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
