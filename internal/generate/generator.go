// Package generate asks a language model for idea records and turns
// its raw reply into canonical ideas.
package generate

import (
	"context"
	"fmt"

	"github.com/mhojune/idea-creator/internal/extract"
	"github.com/mhojune/idea-creator/internal/idea"
	"github.com/mhojune/idea-creator/internal/logger"
)

// Backend is one round trip to a language model: prompt in, raw text
// out. Implementations must not post-process the reply.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Request is one generation call from a client.
type Request struct {
	Topic    string
	Count    int
	Category string
}

const defaultCount = 5

// Service runs the full pipeline: prompt, backend call, extraction,
// normalization. An empty result with a nil error means the reply was
// unusable; the caller decides how to surface that.
type Service struct {
	backend  Backend
	log      *logger.Logger
	maxIdeas int
}

func NewService(backend Backend, log *logger.Logger, maxIdeas int) *Service {
	return &Service{backend: backend, log: log, maxIdeas: maxIdeas}
}

func (s *Service) Generate(ctx context.Context, req Request) ([]idea.Idea, error) {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	if s.maxIdeas > 0 && count > s.maxIdeas {
		count = s.maxIdeas
	}

	raw, err := s.backend.Complete(ctx, BuildPrompt(req.Topic, count, req.Category))
	if err != nil {
		return nil, fmt.Errorf("generation request: %w", err)
	}

	candidates := extract.JSONArray(raw)
	ideas := idea.Normalize(candidates)

	s.log.Info("generated ideas",
		"topic", req.Topic,
		"requested", count,
		"candidates", len(candidates),
		"kept", len(ideas),
	)
	if len(ideas) == 0 {
		s.log.Debug("unusable model reply", "raw_len", len(raw))
	}
	return ideas, nil
}
