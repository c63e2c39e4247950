package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/mhojune/idea-creator/internal/idea"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

var complexityLabels = map[idea.Complexity]string{
	idea.ComplexitySimple: "간단",
	idea.ComplexityMedium: "중간",
	idea.ComplexityHard:   "어려움",
}

func complexityLabel(cx idea.Complexity) string {
	if label, ok := complexityLabels[cx]; ok {
		return label
	}
	return string(cx)
}

func monetizableLabel(ok bool) string {
	if ok {
		return "가능"
	}
	return "어려움"
}

// renderList prints ideas as a numbered list; the numbers are what
// 'favorite <n>' and 'copy <n>' accept.
func renderList(w io.Writer, ideas []idea.Idea) {
	for i, it := range ideas {
		fmt.Fprintf(w, "%d. %s  (%s, 수익화 %s, %s)\n", i+1, it.Title,
			complexityLabel(it.Complexity), monetizableLabel(it.Monetizable), it.Category)
		fmt.Fprintf(w, "   %s\n", it.ID)
		fmt.Fprintf(w, "   %s\n", it.Description)
		if len(it.Tags) > 0 {
			fmt.Fprintf(w, "   태그: %s\n", strings.Join(it.Tags, ", "))
		}
		fmt.Fprintln(w)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ideaMarkdown formats one idea the way it would be pasted into notes.
func ideaMarkdown(it idea.Idea) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", it.Title)
	fmt.Fprintf(&b, "%s\n\n", it.Description)
	fmt.Fprintf(&b, "- 난이도: %s\n", complexityLabel(it.Complexity))
	fmt.Fprintf(&b, "- 수익화: %s\n", monetizableLabel(it.Monetizable))
	fmt.Fprintf(&b, "- 카테고리: %s\n", it.Category)
	if len(it.Tags) > 0 {
		fmt.Fprintf(&b, "- 태그: %s\n", strings.Join(it.Tags, ", "))
	}
	return b.String()
}

func copyIdea(it idea.Idea) error {
	if err := clipboardWriteAll(ideaMarkdown(it)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
