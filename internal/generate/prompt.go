package generate

import (
	"fmt"
	"strings"
)

// The model is asked for a bare JSON array, not a schema-constrained
// response. Replies still arrive wrapped in prose or markdown fences
// often enough that parsing stays best effort (internal/extract).
const promptTemplate = `당신은 경험 많은 제품 기획자입니다. 아래 주제로 새로운 아이디어를 %d개 제안해 주세요.

주제: %s
%s
각 아이디어는 다음 필드를 가진 JSON 객체로 작성하세요.
- "title": 짧고 명확한 이름
- "description": 한두 문장의 설명
- "complexity": "간단", "중간", "어려움" 중 하나
- "monetizable": 수익화 가능 여부 (true 또는 false)
- "category": 카테고리 (예: "앱", "웹", "게임", "생활")
- "tags": 관련 키워드 배열

서로 다른 아이디어 %d개를 담은 JSON 배열 하나만 출력하세요. 배열 밖에 다른 텍스트를 쓰지 마세요.`

// BuildPrompt renders the generation request for one topic.
func BuildPrompt(topic string, count int, category string) string {
	categoryLine := ""
	if c := strings.TrimSpace(category); c != "" {
		categoryLine = fmt.Sprintf("카테고리: %q 범위 안에서만 제안해 주세요.\n", c)
	}
	return fmt.Sprintf(promptTemplate, count, topic, categoryLine, count)
}
