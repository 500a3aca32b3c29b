package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"centseek/internal/platform/config"
	"centseek/internal/platform/httpserver"
	"centseek/internal/platform/logger"
	platformmetrics "centseek/internal/platform/metrics"
	platformredis "centseek/internal/platform/redis"
	"centseek/internal/risk"
	riskhandler "centseek/internal/risk/handler"
	riskmetrics "centseek/internal/risk/metrics"
	"centseek/internal/scorer"
	"centseek/internal/sentiment"
	sentimenthandler "centseek/internal/sentiment/handler"
	"centseek/internal/sentiment/llm"
	sentimentmetrics "centseek/internal/sentiment/metrics"
	"centseek/internal/sentiment/secrets"
	"centseek/internal/sentiment/store"
	"centseek/pkg/platform/httputil"
	"centseek/pkg/platform/middleware/requestid"
	"centseek/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	// The model loads exactly once here; a failed load leaves scoring
	// permanently unavailable while profile and sentiment keep working.
	xgb := scorer.New(cfg.ModelPath, cfg.ImportancePath, scorer.WithLogger(log))

	riskSvc, err := risk.New(xgb,
		risk.WithLogger(log),
		risk.WithMetrics(riskmetrics.New()),
		risk.WithVectorBuilder(risk.VectorBuilder{IncludePay1: cfg.IncludePay1}),
		risk.WithNormalizer(risk.NewNormalizer(cfg.AssumedMax)),
	)
	if err != nil {
		log.Error("risk service init failed", "error", err)
		os.Exit(1)
	}

	apiKey := secrets.Discover(cfg.Sentiment.APIKeyName)
	if apiKey == "" {
		log.Warn("no language-model credential discovered, sentiment will degrade")
	}
	fetcher := llm.NewClient(apiKey,
		llm.WithEndpoint(cfg.Sentiment.Endpoint),
		llm.WithModel(cfg.Sentiment.Model),
	)

	var summaryCache store.SummaryCache = store.NewInMemorySummaryCache()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, using in-process summary cache", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		summaryCache = store.NewRedisSummaryCache(redisClient.Client)
	}

	sentimentSvc, err := sentiment.New(fetcher,
		sentiment.WithLogger(log),
		sentiment.WithMetrics(sentimentmetrics.New()),
		sentiment.WithClassifier(sentiment.NewVaderClassifier()),
		sentiment.WithCache(summaryCache, cfg.Sentiment.CacheTTL),
		sentiment.WithFetchTimeout(cfg.Sentiment.FetchTimeout),
	)
	if err != nil {
		log.Error("sentiment service init failed", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)
	router.Use(platformmetrics.NewHTTP().Middleware)

	riskhandler.New(riskSvc, sentimentSvc, log).Register(router)
	sentimenthandler.New(sentimentSvc, log).Register(router)

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"status":          "ok",
			"model_available": xgb.Available(),
		})
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting centseek", "addr", cfg.Addr, "model_available", xgb.Available())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
