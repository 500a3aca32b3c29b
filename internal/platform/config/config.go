package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration for the risk service.
type Server struct {
	Addr string

	// Classifier artifact paths. The model is loaded exactly once at startup.
	ModelPath      string
	ImportancePath string

	// IncludePay1 controls whether the month-1 delay code participates in
	// scoring. The trained schema omits it; flip only with a matching model.
	IncludePay1 bool

	// AssumedMax scales profile metrics to the [0,10] display range. It is a
	// display heuristic, not a statistic derived from data.
	AssumedMax float64

	Sentiment Sentiment
	Redis     Redis
}

// Sentiment configures the macro-sentiment pipeline.
type Sentiment struct {
	// APIKeyName is the credential name resolved through the discovery chain.
	APIKeyName string
	// Endpoint is the generative-language service base URL.
	Endpoint string
	// Model is the generative model identifier.
	Model string
	// FetchTimeout bounds the outbound generate call; a timeout degrades to
	// the unavailable tier, identical to any other fetch failure.
	FetchTimeout time.Duration
	// CacheTTL bounds how long a fetched summary is reused across requests.
	CacheTTL time.Duration
}

// Redis configures the optional summary cache. An empty URL disables it.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CENTSEEK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	modelPath := os.Getenv("CENTSEEK_MODEL_PATH")
	if modelPath == "" {
		modelPath = "centseek_model.model"
	}

	importancePath := os.Getenv("CENTSEEK_IMPORTANCE_PATH")
	if importancePath == "" {
		importancePath = "centseek_importance.json"
	}

	assumedMax := envFloat("CENTSEEK_ASSUMED_MAX", 100000)

	endpoint := os.Getenv("CENTSEEK_LLM_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com"
	}

	model := os.Getenv("CENTSEEK_LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return Server{
		Addr:           addr,
		ModelPath:      modelPath,
		ImportancePath: importancePath,
		IncludePay1:    os.Getenv("CENTSEEK_INCLUDE_PAY1") == "true",
		AssumedMax:     assumedMax,
		Sentiment: Sentiment{
			APIKeyName:   "GOOGLE_API_KEY",
			Endpoint:     endpoint,
			Model:        model,
			FetchTimeout: envDuration("CENTSEEK_LLM_TIMEOUT", 15*time.Second),
			CacheTTL:     envDuration("CENTSEEK_SENTIMENT_TTL", 10*time.Minute),
		},
		Redis: Redis{
			URL:          os.Getenv("CENTSEEK_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}

func envFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
