// Package favorites persists the ideas a user chose to keep.
package favorites

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mhojune/idea-creator/internal/idea"
)

// Store keeps favorites in libsql behind an in-memory view. The view is
// read once at startup (Load) and every change is written to the
// database before the view is touched, so the two cannot diverge past a
// failed write. Safe for concurrent use.
//
// A Store is always a constructed dependency handed to whoever needs
// it; there is no package-level instance.
type Store struct {
	db *sql.DB

	mu    sync.RWMutex
	ideas map[string]idea.Idea
	order []string // insertion order, oldest first
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, ideas: make(map[string]idea.Idea)}
}

// Load reads every stored favorite into the view. Call once at startup.
func (s *Store) Load(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, complexity, monetizable, category, tags
		FROM favorites
		ORDER BY created_at, id
	`)
	if err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}
	defer rows.Close()

	ideas := make(map[string]idea.Idea)
	order := make([]string, 0)
	for rows.Next() {
		var (
			it          idea.Idea
			complexity  string
			monetizable int
			tags        sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &complexity, &monetizable, &it.Category, &tags); err != nil {
			return fmt.Errorf("failed to scan favorite: %w", err)
		}
		it.Complexity = idea.Complexity(complexity)
		it.Monetizable = monetizable != 0
		it.Tags, err = decodeTags(tags)
		if err != nil {
			return fmt.Errorf("failed to decode tags for %s: %w", it.ID, err)
		}
		ideas[it.ID] = it
		order = append(order, it.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read favorites: %w", err)
	}

	s.mu.Lock()
	s.ideas = ideas
	s.order = order
	s.mu.Unlock()
	return nil
}

// Add stores a favorite. Re-adding an id overwrites the stored record
// and keeps its original position.
func (s *Store) Add(ctx context.Context, it idea.Idea) error {
	tags, err := encodeTags(it.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	monetizable := 0
	if it.Monetizable {
		monetizable = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorites (id, title, description, complexity, monetizable, category, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			complexity = excluded.complexity,
			monetizable = excluded.monetizable,
			category = excluded.category,
			tags = excluded.tags
	`, it.ID, it.Title, it.Description, string(it.Complexity), monetizable, it.Category, tags)
	if err != nil {
		return fmt.Errorf("failed to store favorite: %w", err)
	}

	s.put(it)
	return nil
}

// Remove deletes a favorite and reports whether it existed.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id); err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return s.drop(id), nil
}

// List returns the favorites, most recently added first.
func (s *Store) List() []idea.Idea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]idea.Idea, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.ideas[s.order[i]])
	}
	return out
}

func (s *Store) put(it idea.Idea) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ideas[it.ID]; !exists {
		s.order = append(s.order, it.ID)
	}
	s.ideas[it.ID] = it
}

func (s *Store) drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ideas[id]; !exists {
		return false
	}
	delete(s.ideas, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Tags persist as a JSON text column, NULL when the idea has none.
func encodeTags(tags []string) (any, error) {
	if tags == nil {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func decodeTags(col sql.NullString) ([]string, error) {
	if !col.Valid || col.String == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(col.String), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
