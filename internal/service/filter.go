package service

import (
	"strings"

	"transparencyai/internal/model"
)

// bannedWords mark questions that ask for documents rather than information
var bannedWords = []string{"document", "documentation", "evidence", "proof", "upload", "certificate", "attach"}

// nestedClarification is the clarification template echoed back on itself
var nestedClarification = strings.ToLower(clarificationPrefix + ": " + clarificationPrefix)

// FilterQuestions drops document-style and nested clarification questions from
// LLM output, then de-duplicates by normalized text keeping the first.
func FilterQuestions(items []model.QuestionItem) []model.QuestionItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]model.QuestionItem, 0, len(items))
	for _, it := range items {
		key := it.Key()
		if containsAny(key, bannedWords) {
			continue
		}
		if strings.HasPrefix(key, nestedClarification) {
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
