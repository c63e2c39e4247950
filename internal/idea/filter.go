package idea

import "strings"

// Filter selects ideas by attribute. The zero value matches everything;
// set fields are combined with AND.
type Filter struct {
	Category        string
	Complexity      Complexity
	MonetizableOnly bool
}

// Apply keeps the ideas matching every set field, preserving order.
func (f Filter) Apply(ideas []Idea) []Idea {
	out := make([]Idea, 0, len(ideas))
	for _, it := range ideas {
		if f.Category != "" && !strings.EqualFold(it.Category, f.Category) {
			continue
		}
		if f.Complexity != "" && it.Complexity != f.Complexity {
			continue
		}
		if f.MonetizableOnly && !it.Monetizable {
			continue
		}
		out = append(out, it)
	}
	return out
}
