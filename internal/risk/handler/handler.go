package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"centseek/internal/risk"
	"centseek/internal/sentiment"
	dErrors "centseek/pkg/domain-errors"
	"centseek/pkg/platform/httputil"
	"centseek/pkg/requestcontext"
)

// Service defines the interface for risk operations.
type Service interface {
	Evaluate(ctx context.Context, rec risk.MonthlyRecord) (*risk.Assessment, error)
	Profile(rec risk.MonthlyRecord) risk.Profile
	TopImportances(k int) ([]risk.FeatureImportance, error)
}

// SentimentService produces the auxiliary macro-sentiment signal.
type SentimentService interface {
	Analyze(ctx context.Context) sentiment.Result
}

// Handler wires risk endpoints to the risk and sentiment services.
type Handler struct {
	service   Service
	sentiment SentimentService
	logger    *slog.Logger
}

// New constructs a risk handler with its dependencies.
func New(service Service, sentimentSvc SentimentService, logger *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		sentiment: sentimentSvc,
		logger:    logger,
	}
}

// Register mounts risk endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/risk/evaluate", h.HandleEvaluate)
	r.Post("/risk/profile", h.HandleProfile)
	r.Get("/risk/importance", h.HandleImportance)
	r.Post("/risk/metrics", h.HandleMetrics)
}

// HandleEvaluate handles POST /risk/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	assessment, err := h.service.Evaluate(ctx, req.Record())
	if err != nil {
		h.logger.ErrorContext(ctx, "risk evaluation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "record evaluated",
		"request_id", requestID,
		"tier", assessment.Tier,
		"overridden", assessment.Overridden,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromAssessment(assessment))
}

// HandleProfile handles POST /risk/profile requests.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromProfile(h.service.Profile(req.Record())))
}

// HandleImportance handles GET /risk/importance requests.
func (h *Handler) HandleImportance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	k, err := topKParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ranked, err := h.service.TopImportances(k)
	if err != nil {
		h.logger.ErrorContext(ctx, "importance ranking failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromImportances(ranked))
}

// HandleMetrics handles POST /risk/metrics requests: one metric-selection
// token dispatched to the matching pipeline.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[MetricsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	resp := MetricsResponse{Metric: req.Metric}
	switch req.Metric {
	case MetricRiskProfile:
		resp.Profile = FromProfile(h.service.Profile(req.Record.Record()))

	case MetricFeatureImportance:
		ranked, err := h.service.TopImportances(req.TopK)
		if err != nil {
			h.logger.ErrorContext(ctx, "importance ranking failed",
				"request_id", requestID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		resp.Importances = FromImportances(ranked)

	case MetricSentiment:
		resp.Sentiment = FromSentiment(h.sentiment.Analyze(ctx))
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

func topKParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("k")
	if raw == "" {
		return risk.DefaultTopK, nil
	}
	k, err := strconv.Atoi(raw)
	if err != nil || k <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "k must be a positive integer")
	}
	return k, nil
}
