package handler

import (
	"encoding/json"
	"net/http"

	"transparencyai/internal/model"
	"transparencyai/internal/service"
)

// ScoreHandler handles transparency score endpoints
type ScoreHandler struct {
	scoreSvc *service.ScoreService
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreSvc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// Score handles POST /transparency-score
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Product == nil {
		writeError(w, http.StatusBadRequest, "product required")
		return
	}
	if req.Answers == nil {
		writeError(w, http.StatusBadRequest, "answers required")
		return
	}

	writeJSON(w, http.StatusOK, h.scoreSvc.Score(req))
}
