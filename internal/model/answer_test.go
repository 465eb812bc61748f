package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnsweredQuestionKeyPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		questionText string
		answerText   string
	}{
		{"camelCase", `{"questionText":"Color?","answerText":"red"}`, "Color?", "red"},
		{"snake_case", `{"question_text":"Color?","answer_text":"red"}`, "Color?", "red"},
		{"camel wins", `{"questionText":"A","question_text":"B","answerText":"x","answer_text":"y"}`, "A", "x"},
		{"empty camel falls back", `{"questionText":"","question_text":"B","answerText":null,"answer_text":"y"}`, "B", "y"},
		{"numeric answer", `{"questionText":"Weight?","answerText":12.5}`, "Weight?", "12.5"},
		{"false answer is absent", `{"questionText":"Q","answerText":false}`, "Q", ""},
		{"missing", `{}`, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a AnsweredQuestion
			require.NoError(t, json.Unmarshal([]byte(tt.body), &a))
			assert.True(t, a.Valid())
			assert.Equal(t, tt.questionText, a.QuestionText)
			assert.Equal(t, tt.answerText, a.AnswerText)
		})
	}
}

func TestAnsweredQuestionNonObjectElements(t *testing.T) {
	var list []AnsweredQuestion
	require.NoError(t, json.Unmarshal([]byte(`[{"answerText":"a"}, "junk", 3, null, [1]]`), &list))
	require.Len(t, list, 5)

	assert.True(t, list[0].Valid())
	for _, a := range list[1:] {
		assert.False(t, a.Valid())
	}
}

func TestAnsweredQuestionHasAnswer(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"answer_text":"yes"}`, true},
		{`{"answer_json":{"value":1}}`, true},
		{`{"answerJson":["a"]}`, true},
		{`{"answer_json":{}}`, false},
		{`{"answer_json":0}`, false},
		{`{"answer_text":""}`, false},
		{`{"question_text":"only a question"}`, false},
	}
	for _, tt := range tests {
		var a AnsweredQuestion
		require.NoError(t, json.Unmarshal([]byte(tt.body), &a))
		assert.Equal(t, tt.want, a.HasAnswer(), tt.body)
	}
}

func TestParseQuestionType(t *testing.T) {
	assert.Equal(t, QuestionTypeBoolean, ParseQuestionType("BOOLEAN"))
	assert.Equal(t, QuestionTypeSelect, ParseQuestionType("select"))
	assert.Equal(t, QuestionTypeText, ParseQuestionType("number"))
	assert.Equal(t, QuestionTypeText, ParseQuestionType(""))
}

func TestQuestionItemJSON(t *testing.T) {
	b, err := json.Marshal(QuestionItem{QuestionText: "Q?", QuestionType: QuestionTypeText})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question_text":"Q?","question_type":"text","metadata":null}`, string(b))
}
