package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mhojune/idea-creator/internal/idea"
)

func sampleIdea() idea.Idea {
	return idea.Idea{
		ID:          "id_8dd659bb",
		Title:       "퇴근길 오디오 요약",
		Description: "출퇴근 시간에 듣는 5분 뉴스 요약 서비스.",
		Complexity:  idea.ComplexitySimple,
		Monetizable: true,
		Category:    "생산성",
		Tags:        []string{"ai", "부업"},
	}
}

func TestParseIndexList(t *testing.T) {
	got, err := parseIndexList("1,3")
	if err != nil {
		t.Fatalf("parseIndexList: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("got %v, want [1 3]", got)
	}

	got, err = parseIndexList(" 2 , 4 ")
	if err != nil {
		t.Fatalf("parseIndexList with spaces: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("got %v, want [2 4]", got)
	}

	if _, err := parseIndexList("1,x"); err == nil {
		t.Error("expected an error for a non-numeric entry")
	}
	if _, err := parseIndexList(""); err == nil {
		t.Error("expected an error for an empty list value")
	}
}

func TestPickByNumber(t *testing.T) {
	ideas := []idea.Idea{{ID: "id_1"}, {ID: "id_2"}}

	it, err := pickByNumber(ideas, 2)
	if err != nil {
		t.Fatalf("pickByNumber(2): %v", err)
	}
	if it.ID != "id_2" {
		t.Errorf("got %s, want id_2", it.ID)
	}

	if _, err := pickByNumber(ideas, 0); err == nil {
		t.Error("expected an error for 0, numbers are 1-based")
	}
	if _, err := pickByNumber(ideas, 3); err == nil {
		t.Error("expected an error past the end of the list")
	}
}

func TestComplexityLabel(t *testing.T) {
	if got := complexityLabel(idea.ComplexitySimple); got != "간단" {
		t.Errorf("Simple rendered as %q", got)
	}
	if got := complexityLabel(idea.ComplexityMedium); got != "중간" {
		t.Errorf("Medium rendered as %q", got)
	}
	if got := complexityLabel(idea.ComplexityHard); got != "어려움" {
		t.Errorf("Hard rendered as %q", got)
	}
}

func TestRenderList(t *testing.T) {
	var sb strings.Builder
	renderList(&sb, []idea.Idea{sampleIdea()})
	out := sb.String()

	for _, want := range []string{
		"1. 퇴근길 오디오 요약",
		"간단",
		"수익화 가능",
		"id_8dd659bb",
		"태그: ai, 부업",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestIdeaMarkdown(t *testing.T) {
	md := ideaMarkdown(sampleIdea())

	for _, want := range []string{
		"## 퇴근길 오디오 요약",
		"출퇴근 시간에 듣는 5분 뉴스 요약 서비스.",
		"- 난이도: 간단",
		"- 수익화: 가능",
		"- 카테고리: 생산성",
		"- 태그: ai, 부업",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	bare := sampleIdea()
	bare.Tags = nil
	if strings.Contains(ideaMarkdown(bare), "태그") {
		t.Error("markdown should not carry a tags line when there are no tags")
	}
}

func TestCopyIdea(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	if err := copyIdea(sampleIdea()); err != nil {
		t.Fatalf("copyIdea: %v", err)
	}
	if !strings.HasPrefix(copied, "## 퇴근길 오디오 요약") {
		t.Errorf("clipboard got:\n%s", copied)
	}
}
