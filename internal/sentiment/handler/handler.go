package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"centseek/internal/sentiment"
	"centseek/pkg/platform/httputil"
	"centseek/pkg/requestcontext"
)

// Service defines the interface for sentiment operations.
type Service interface {
	Analyze(ctx context.Context) sentiment.Result
}

// Handler wires the sentiment endpoint to the sentiment service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a sentiment handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the sentiment endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/sentiment", h.HandleSentiment)
}

// SentimentResponse is the HTTP response for GET /sentiment.
type SentimentResponse struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Message    string  `json:"message"`
	SourceTier string  `json:"source_tier"`
}

// HandleSentiment handles GET /sentiment requests. The chain always yields a
// result, so this endpoint never returns an error status for pipeline
// degradation; the source_tier field tells the caller what they got.
func (h *Handler) HandleSentiment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	result := h.service.Analyze(ctx)

	h.logger.InfoContext(ctx, "sentiment analyzed",
		"request_id", requestID,
		"label", result.Label,
		"source_tier", result.SourceTier,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, &SentimentResponse{
		Label:      string(result.Label),
		Score:      result.Score,
		Message:    result.Message,
		SourceTier: string(result.SourceTier),
	})
}
