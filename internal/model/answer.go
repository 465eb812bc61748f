package model

import (
	"encoding/json"
	"strconv"
)

// AnsweredQuestion is a prior question/answer record as submitted by clients.
// Clients send either camelCase or snake_case keys; both are resolved here so
// nothing downstream inspects raw maps. A non-empty camelCase value wins over
// its snake_case counterpart.
type AnsweredQuestion struct {
	QuestionID   string `json:"questionId,omitempty"`
	QuestionText string `json:"questionText,omitempty"`
	AnswerText   string `json:"answerText,omitempty"`
	AnswerJSON   any    `json:"answerJson,omitempty"` // Structured answer value

	// valid is false for array elements that were not JSON objects
	valid bool
}

// Valid reports whether the record decoded from a JSON object
func (a AnsweredQuestion) Valid() bool {
	return a.valid
}

// HasAnswer reports whether either the text or structured answer is set
func (a AnsweredQuestion) HasAnswer() bool {
	return a.AnswerText != "" || Truthy(a.AnswerJSON)
}

// NewAnsweredQuestion builds a valid record from already-resolved fields
func NewAnsweredQuestion(questionText, answerText string) AnsweredQuestion {
	return AnsweredQuestion{QuestionText: questionText, AnswerText: answerText, valid: true}
}

func (a *AnsweredQuestion) UnmarshalJSON(data []byte) error {
	*a = AnsweredQuestion{}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		// Not an object: keep the zero value and let callers skip it
		return nil
	}

	a.valid = true
	a.QuestionID = firstText(raw, "questionId", "question_id")
	a.QuestionText = firstText(raw, "questionText", "question_text")
	a.AnswerText = firstText(raw, "answerText", "answer_text")
	a.AnswerJSON = firstTruthy(raw, "answerJson", "answer_json")
	return nil
}

func firstTruthy(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v := raw[k]; Truthy(v) {
			return v
		}
	}
	return nil
}

func firstText(raw map[string]any, keys ...string) string {
	return textOf(firstTruthy(raw, keys...))
}

// textOf renders a decoded JSON value as answer text
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Truthy reports whether a decoded JSON value counts as present:
// null, false, 0, "", [] and {} do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
