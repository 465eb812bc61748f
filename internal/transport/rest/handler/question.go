package handler

import (
	"encoding/json"
	"net/http"

	"transparencyai/internal/model"
	"transparencyai/internal/service"
)

// QuestionHandler handles question generation endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// GenerateQuestionsRequest is the request body for generating questions
type GenerateQuestionsRequest struct {
	ProductID         *string                  `json:"productId"`
	AnsweredQuestions []model.AnsweredQuestion `json:"answeredQuestions"`
	ContextText       *string                  `json:"contextText"`
}

// Generate handles POST /generate-questions
func (h *QuestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == nil {
		writeError(w, http.StatusBadRequest, "productId required")
		return
	}

	qr := model.QuestionRequest{
		ProductID:         *req.ProductID,
		AnsweredQuestions: req.AnsweredQuestions,
	}
	if req.ContextText != nil {
		qr.ContextText = *req.ContextText
	}

	writeJSON(w, http.StatusOK, h.questionSvc.Generate(r.Context(), qr))
}
