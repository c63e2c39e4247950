package idea

import (
	"fmt"
	"strconv"
	"strings"
)

// Ordered lookup keys per logical field. Models drift between these
// spellings depending on provider and prompt phrasing.
var (
	titleKeys       = []string{"title", "name"}
	descriptionKeys = []string{"description", "detail"}
	complexityKeys  = []string{"complexity", "level"}
	monetizableKeys = []string{"monetizable", "monetization", "monetizationPossible"}
)

// Raw complexity spellings the prompt invites. Anything unlisted lands
// on Medium.
var complexityAliases = map[string]Complexity{
	"간단":  ComplexitySimple,
	"쉬움":  ComplexitySimple,
	"어려움": ComplexityHard,
	"고급":  ComplexityHard,
}

// Normalize turns extracted candidates into canonical records. Elements
// that are not objects, or that lack a usable title or description, are
// dropped silently; everything else is coerced field by field. Output
// order follows input order and duplicates are kept.
func Normalize(candidates []any) []Idea {
	ideas := make([]Idea, 0, len(candidates))
	for _, candidate := range candidates {
		obj, ok := candidate.(map[string]any)
		if !ok {
			continue
		}

		title := strings.TrimSpace(text(firstPresent(obj, titleKeys)))
		description := strings.TrimSpace(text(firstPresent(obj, descriptionKeys)))
		if title == "" || description == "" {
			continue
		}

		out := Idea{
			ID:          StableID(title, description),
			Title:       title,
			Description: description,
			Complexity:  parseComplexity(text(firstPresent(obj, complexityKeys))),
			Monetizable: truthy(firstPresent(obj, monetizableKeys)),
			Category:    parseCategory(obj["category"]),
		}
		if raw, ok := obj["tags"].([]any); ok {
			out.Tags = textSlice(raw)
		}
		ideas = append(ideas, out)
	}
	return ideas
}

// firstPresent resolves a logical field against its candidate keys.
// JSON null counts as absent, so a null primary key falls through to
// the alias.
func firstPresent(obj map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func parseComplexity(raw string) Complexity {
	if c, ok := complexityAliases[strings.TrimSpace(raw)]; ok {
		return c
	}
	return ComplexityMedium
}

func parseCategory(v any) string {
	if s := strings.TrimSpace(text(v)); s != "" {
		return s
	}
	return CategoryOther
}

// truthy mirrors how the loosest JSON producers mean booleans: absent,
// false, zero and the empty string are false, any other value is true.
// Note the string "false" is true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// text coerces a decoded JSON value to its textual form.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func textSlice(vals []any) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, text(v))
	}
	return out
}
