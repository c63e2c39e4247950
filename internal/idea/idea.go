// Package idea defines the canonical idea record and the rules that
// turn loosely shaped model output into one.
package idea

import "strings"

// Complexity grades how hard an idea is to build. The set is closed:
// normalization never produces a value outside these three.
type Complexity string

const (
	ComplexitySimple Complexity = "Simple"
	ComplexityMedium Complexity = "Medium"
	ComplexityHard   Complexity = "Hard"
)

// ComplexityFromString matches s against the canonical values, ignoring
// case. ok is false when s names none of them.
func ComplexityFromString(s string) (Complexity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return ComplexitySimple, true
	case "medium":
		return ComplexityMedium, true
	case "hard":
		return ComplexityHard, true
	}
	return "", false
}

// CategoryOther is the sentinel for ideas the model did not categorize.
const CategoryOther = "Other"

// Idea is one normalized suggestion. Records are built by Normalize and
// never mutated afterwards; ID is a pure function of Title and
// Description.
type Idea struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Complexity  Complexity `json:"complexity"`
	Monetizable bool       `json:"monetizable"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags,omitempty"`
}
