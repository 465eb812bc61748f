package model

import "strings"

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeText    QuestionType = "text"    // Free text answer
	QuestionTypeBoolean QuestionType = "boolean" // Yes/no
	QuestionTypeSelect  QuestionType = "select"  // One of metadata.options
)

// ParseQuestionType lowercases s and maps anything unknown to text
func ParseQuestionType(s string) QuestionType {
	switch qt := QuestionType(strings.ToLower(s)); qt {
	case QuestionTypeText, QuestionTypeBoolean, QuestionTypeSelect:
		return qt
	default:
		return QuestionTypeText
	}
}

// QuestionItem is a generated follow-up question returned to the caller
type QuestionItem struct {
	QuestionText string         `json:"question_text"`
	QuestionType QuestionType   `json:"question_type"`
	Metadata     map[string]any `json:"metadata"` // select: {"options": [...]}
}

// Key is the normalized text used for de-duplication
func (q QuestionItem) Key() string {
	return strings.ToLower(strings.TrimSpace(q.QuestionText))
}

// QuestionRequest is the body of POST /generate-questions
type QuestionRequest struct {
	ProductID         string             `json:"productId"`
	AnsweredQuestions []AnsweredQuestion `json:"answeredQuestions,omitempty"`
	ContextText       string             `json:"contextText,omitempty"`
}
