package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"transparencyai/internal/config"
	"transparencyai/internal/service"
	"transparencyai/internal/transport/rest/handler"
	"transparencyai/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	QuestionService *service.QuestionService
	ScoreService    *service.ScoreService
	CORS            config.CORSConfig
	Logger          *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(c.QuestionService)
	scoreHandler := handler.NewScoreHandler(c.ScoreService)

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.CORS(c.CORS))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}).Methods("GET")

	r.HandleFunc("/generate-questions", questionHandler.Generate).Methods("POST", "OPTIONS")
	r.HandleFunc("/transparency-score", scoreHandler.Score).Methods("POST", "OPTIONS")

	return r
}
