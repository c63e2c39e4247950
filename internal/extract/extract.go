// Package extract recovers structured JSON from raw model output.
// Generation backends are asked for a bare JSON array but routinely
// wrap it in prose or markdown fences, so parsing is best effort.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?is)```json\\s*(.*?)```")

// JSONArray pulls a JSON array out of raw model output. Strategies are
// tried in order, first success wins:
//
//  1. the whole text parses as a JSON array
//  2. the first ```json fenced block parses as a JSON array
//  3. the substring from the first '[' to the last ']' parses as one
//
// When everything fails the result is an empty array. JSONArray never
// returns an error; an empty result is the only failure signal.
func JSONArray(raw string) []any {
	text := strings.TrimSpace(raw)

	if arr, ok := parseArray(text); ok {
		return arr
	}

	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		if arr, ok := parseArray(strings.TrimSpace(m[1])); ok {
			return arr
		}
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start != -1 && end > start {
		if arr, ok := parseArray(text[start : end+1]); ok {
			return arr
		}
	}

	return []any{}
}

// parseArray accepts only a JSON array document. Objects, scalars and
// null are failures, not results.
func parseArray(s string) ([]any, bool) {
	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err != nil || arr == nil {
		return nil, false
	}
	return arr, true
}
