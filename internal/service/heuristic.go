package service

import (
	"strings"

	"transparencyai/internal/model"
)

const (
	clarificationPrefix  = "Please provide more specific details about"
	defaultQuestionLabel = "previous answer"
)

var (
	sustainabilityTriggers = []string{"sustain", "eco", "green", "esg", "carbon"}
	descriptiveKeywords    = []string{"description", "materials", "ingredients"}
)

// HeuristicQuestions builds the deterministic follow-up list used when the
// LLM path is disabled or produces nothing usable.
func HeuristicQuestions(req model.QuestionRequest) []model.QuestionItem {
	out := []model.QuestionItem{
		{QuestionText: "Provide a short product description.", QuestionType: model.QuestionTypeText},
		{QuestionText: "List key materials or ingredients.", QuestionType: model.QuestionTypeText},
		{QuestionText: "Does the product comply with relevant safety/compliance regulations?", QuestionType: model.QuestionTypeBoolean},
	}

	if containsAny(strings.ToLower(req.ContextText), sustainabilityTriggers) {
		out = append(out, model.QuestionItem{
			QuestionText: "Is the product certified by any sustainability standards?",
			QuestionType: model.QuestionTypeSelect,
			Metadata:     map[string]any{"options": []string{"Yes", "No", "In progress"}},
		})
	}

	for _, a := range req.AnsweredQuestions {
		if item, ok := clarificationFor(a); ok {
			out = append(out, item)
		}
	}

	return dedupe(out)
}

// clarificationFor asks for more detail on a prior answer, unless the question
// was itself a clarification or is already descriptive.
func clarificationFor(a model.AnsweredQuestion) (model.QuestionItem, bool) {
	if !a.Valid() || strings.TrimSpace(a.AnswerText) == "" {
		return model.QuestionItem{}, false
	}

	q := a.QuestionText
	if q == "" {
		q = defaultQuestionLabel
	}
	ql := strings.ToLower(q)
	if strings.HasPrefix(ql, strings.ToLower(clarificationPrefix)) {
		return model.QuestionItem{}, false
	}
	if containsAny(ql, descriptiveKeywords) {
		return model.QuestionItem{}, false
	}

	return model.QuestionItem{
		QuestionText: clarificationPrefix + ": " + q,
		QuestionType: model.QuestionTypeText,
	}, true
}

// dedupe keeps the first item per normalized text and drops empty texts
func dedupe(items []model.QuestionItem) []model.QuestionItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]model.QuestionItem, 0, len(items))
	for _, it := range items {
		key := it.Key()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
