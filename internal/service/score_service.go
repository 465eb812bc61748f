package service

import (
	"math"

	"transparencyai/internal/model"
)

const (
	scoreBase      = 20.0
	scorePerAnswer = 8.0
	scoreFieldBump = 2.5
	scoreMax       = 100.0
)

// ScoreService computes the transparency score
type ScoreService struct{}

// NewScoreService creates a new score service
func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// Score rates completeness from the number of answered records and the
// presence of category and sku on the product.
func (s *ScoreService) Score(req model.ScoreRequest) model.ScoreResponse {
	answered := 0
	for _, a := range req.Answers {
		if a.Valid() && a.HasAnswer() {
			answered++
		}
	}

	score := math.Min(scoreMax, scoreBase+scorePerAnswer*float64(answered))
	if model.Truthy(req.Product["category"]) {
		score += scoreFieldBump
	}
	if model.Truthy(req.Product["sku"]) {
		score += scoreFieldBump
	}

	score = math.Max(0, math.Min(scoreMax, score))
	return model.ScoreResponse{Score: math.Round(score*10) / 10}
}
