package favorites

import (
	"database/sql"
	"reflect"
	"testing"

	"github.com/mhojune/idea-creator/internal/idea"
)

func viewOnlyStore() *Store {
	return &Store{ideas: make(map[string]idea.Idea)}
}

func TestViewOrdering(t *testing.T) {
	s := viewOnlyStore()
	s.put(idea.Idea{ID: "id_a", Title: "첫번째"})
	s.put(idea.Idea{ID: "id_b", Title: "두번째"})
	s.put(idea.Idea{ID: "id_c", Title: "세번째"})

	got := s.List()
	if len(got) != 3 {
		t.Fatalf("List() returned %d ideas, want 3", len(got))
	}
	if got[0].ID != "id_c" || got[2].ID != "id_a" {
		t.Errorf("List() order = %s, %s, %s; want newest first", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestViewReAddKeepsPosition(t *testing.T) {
	s := viewOnlyStore()
	s.put(idea.Idea{ID: "id_a", Title: "원래 제목"})
	s.put(idea.Idea{ID: "id_b"})
	s.put(idea.Idea{ID: "id_a", Title: "갱신된 제목"})

	got := s.List()
	if len(got) != 2 {
		t.Fatalf("List() returned %d ideas, want 2", len(got))
	}
	if got[1].ID != "id_a" || got[1].Title != "갱신된 제목" {
		t.Errorf("re-added idea = %+v, want original slot with updated record", got[1])
	}
}

func TestViewDrop(t *testing.T) {
	s := viewOnlyStore()
	s.put(idea.Idea{ID: "id_a"})
	s.put(idea.Idea{ID: "id_b"})

	if !s.drop("id_a") {
		t.Error("drop() = false for an existing id")
	}
	if s.drop("id_a") {
		t.Error("drop() = true for an already removed id")
	}
	if s.drop("id_unknown") {
		t.Error("drop() = true for an unknown id")
	}

	got := s.List()
	if len(got) != 1 || got[0].ID != "id_b" {
		t.Errorf("List() after drop = %+v", got)
	}
}

func TestTagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{name: "nil stays nil", tags: nil},
		{name: "empty list survives", tags: []string{}},
		{name: "values survive", tags: []string{"이사", "매칭"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := encodeTags(tt.tags)
			if err != nil {
				t.Fatalf("encodeTags() error = %v", err)
			}

			var col sql.NullString
			if enc != nil {
				col = sql.NullString{String: enc.(string), Valid: true}
			}

			got, err := decodeTags(col)
			if err != nil {
				t.Fatalf("decodeTags() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.tags) {
				t.Errorf("round trip = %#v, want %#v", got, tt.tags)
			}
		})
	}
}

func TestDecodeTagsNull(t *testing.T) {
	got, err := decodeTags(sql.NullString{})
	if err != nil || got != nil {
		t.Errorf("decodeTags(NULL) = %#v, %v; want nil, nil", got, err)
	}
}
