package idea

import (
	"fmt"
	"strings"
	"testing"
)

func TestStableID(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{name: "ascii", title: "a", description: "b", want: "id_16c83"},
		{name: "korean folds per utf8 byte", title: "가", description: "나", want: "id_8dd659bb"},
		{name: "accumulator wraps at 32 bits", title: "이사 도우미 매칭", description: "이사 업체 견적을 한 번에 비교하는 서비스", want: "id_f9927af6"},
		{name: "empty inputs", title: "", description: "", want: "id_0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StableID(tt.title, tt.description); got != tt.want {
				t.Errorf("StableID(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestStableIDDeterministic(t *testing.T) {
	title := "AI 기반 식단 추천 앱"
	description := "사진 한 장으로 하루 식단을 분석하고 다음 끼니를 추천한다"

	first := StableID(title, description)
	for i := 0; i < 100; i++ {
		if got := StableID(title, description); got != first {
			t.Fatalf("id changed between calls: %q then %q", first, got)
		}
	}
	if first != "id_fcc212d0" {
		t.Errorf("StableID = %q, want id_fcc212d0", first)
	}
}

func TestStableIDSeparatesTitleFromDescription(t *testing.T) {
	if StableID("ab", "c") == StableID("a", "bc") {
		t.Error("moving the title/description boundary must change the id")
	}
}

func TestStableIDDistinctOverSample(t *testing.T) {
	seen := make(map[string]string, 500)
	for i := 0; i < 500; i++ {
		title := fmt.Sprintf("아이디어 %d", i)
		id := StableID(title, fmt.Sprintf("%d번째 설명", i))
		if !strings.HasPrefix(id, "id_") {
			t.Fatalf("id %q lacks the id_ prefix", id)
		}
		if prev, ok := seen[id]; ok {
			t.Fatalf("id %q collides: %q and %q", id, prev, title)
		}
		seen[id] = title
	}
}
