package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mhojune/idea-creator/internal/idea"
)

// relayClient speaks the relay's JSON API. Generation can sit behind a
// slow model call, so the timeout is generous.
type relayClient struct {
	base string
	http *http.Client
}

func newRelayClient(base string) *relayClient {
	return &relayClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *relayClient) Generate(ctx context.Context, topic string, count int, category string) ([]idea.Idea, error) {
	payload, err := json.Marshal(map[string]any{
		"topic":    topic,
		"count":    count,
		"category": category,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/ideas", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var body struct {
		Ideas []idea.Idea `json:"ideas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode relay response: %w", err)
	}
	return body.Ideas, nil
}

func (c *relayClient) Favorites(ctx context.Context, category, complexity string, monetizable bool) ([]idea.Idea, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if complexity != "" {
		q.Set("complexity", complexity)
	}
	if monetizable {
		q.Set("monetizable", "true")
	}
	endpoint := c.base + "/api/favorites"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var body struct {
		Favorites []idea.Idea `json:"favorites"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode relay response: %w", err)
	}
	return body.Favorites, nil
}

func (c *relayClient) AddFavorite(ctx context.Context, it idea.Idea) (idea.Idea, error) {
	payload, err := json.Marshal(it)
	if err != nil {
		return idea.Idea{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/favorites", bytes.NewReader(payload))
	if err != nil {
		return idea.Idea{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return idea.Idea{}, fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return idea.Idea{}, apiError(resp)
	}

	var body struct {
		Favorite idea.Idea `json:"favorite"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return idea.Idea{}, fmt.Errorf("decode relay response: %w", err)
	}
	return body.Favorite, nil
}

func (c *relayClient) RemoveFavorite(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/api/favorites/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// apiError turns a non-2xx relay response into a readable error,
// preferring the server's own message when the body carries one.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return fmt.Errorf("%s (HTTP %d)", body.Error, resp.StatusCode)
	}
	return fmt.Errorf("relay returned HTTP %d", resp.StatusCode)
}
