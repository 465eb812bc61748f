package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"transparencyai/internal/model"
)

// priorQA is how answered questions are presented to the model; absent
// values serialise as null.
type priorQA struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// BuildQuestionPrompt renders the follow-up generation prompt for req
func BuildQuestionPrompt(req model.QuestionRequest) string {
	return fmt.Sprintf(`You are an assistant generating follow-up questions for a product transparency form.
Return ONLY a JSON array of objects with keys: question_text (string), question_type (one of: text, boolean, select), metadata (object or null).
- Use product context and prior Q&A.
- Ask concise, high-signal questions (2-5).
- If select type, include metadata.options as an array of strings.
- Avoid duplicates or asking for already-provided info.
- STRICT: Do NOT ask for documentation/evidence/attachments/uploads/certificates. Ask only informational follow-up questions.
- Avoid generic prompts like 'Provide documentation...'.
Context: %s
PriorQAs: %s
`, req.ContextText, priorQAsJSON(req.AnsweredQuestions))
}

func priorQAsJSON(answered []model.AnsweredQuestion) string {
	qas := make([]priorQA, 0, len(answered))
	for _, a := range answered {
		if !a.Valid() {
			continue
		}
		qas = append(qas, priorQA{Question: optional(a.QuestionText), Answer: optional(a.AnswerText)})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(qas); err != nil {
		return "[]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
