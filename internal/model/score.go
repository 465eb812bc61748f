package model

// ScoreRequest is the body of POST /transparency-score
type ScoreRequest struct {
	Product map[string]any     `json:"product"`
	Answers []AnsweredQuestion `json:"answers"`
}

// ScoreResponse carries the transparency score in [0, 100]
type ScoreResponse struct {
	Score float64 `json:"score"`
}
