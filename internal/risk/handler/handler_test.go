package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"centseek/internal/risk"
	"centseek/internal/sentiment"
	dErrors "centseek/pkg/domain-errors"
)

// stubScorer substitutes the model artifact; everything else in the stack is
// the real component (project convention: real components over mocks).
type stubScorer struct {
	probability float64
	gains       map[string]float64
	err         error
}

func (s *stubScorer) Score(_ context.Context, _ []float64) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.probability, nil
}

func (s *stubScorer) GainImportance() (map[string]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.gains, nil
}

type stubFetcher struct {
	text string
	err  error
}

func (f *stubFetcher) GenerateContent(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type HandlerSuite struct {
	suite.Suite
	router  http.Handler
	scorer  *stubScorer
	fetcher *stubFetcher
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.scorer = &stubScorer{
		probability: 0.7,
		gains:       map[string]float64{"PAY_0": 9.1, "LIMIT_BAL": 4.2, "PAY_2": 4.2},
	}
	s.fetcher = &stubFetcher{text: "Broad recovery and steady growth continue."}

	riskSvc, err := risk.New(s.scorer)
	s.Require().NoError(err)

	sentimentSvc, err := sentiment.New(s.fetcher)
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(riskSvc, sentimentSvc, logger)

	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func recordBody(creditLimit float64, paid float64) string {
	return fmt.Sprintf(`{
		"credit_limit": %f,
		"pay_delay": {"0":0,"2":0,"3":0,"4":0,"5":0,"6":0},
		"bill_amount": {"1":100,"2":100,"3":100,"4":100,"5":100,"6":100},
		"paid_amount": {"1":%f,"2":%f,"3":%f,"4":%f,"5":%f,"6":%f}
	}`, creditLimit, paid, paid, paid, paid, paid, paid)
}

func (s *HandlerSuite) TestEvaluate_OverrideFires() {
	rec := s.post("/risk/evaluate", recordBody(10000, 100))
	s.Equal(http.StatusOK, rec.Code)

	var resp EvaluateResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Equal(0.0, resp.Probability)
	s.True(resp.Overridden)
	s.Equal("VERY_UNLIKELY", resp.Tier)
}

func (s *HandlerSuite) TestEvaluate_ModelProbabilityGoverns() {
	rec := s.post("/risk/evaluate", recordBody(10000, 0))
	s.Equal(http.StatusOK, rec.Code)

	var resp EvaluateResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Equal(0.7, resp.Probability)
	s.False(resp.Overridden)
	s.Equal("LIKELY", resp.Tier)
}

func (s *HandlerSuite) TestEvaluate_MissingMonthIsRejected() {
	body := `{
		"credit_limit": 1000,
		"pay_delay": {"0":0,"2":0,"3":0,"4":0,"5":0,"6":0},
		"bill_amount": {"1":100,"2":100,"3":100,"4":100,"5":100},
		"paid_amount": {"1":0,"2":0,"3":0,"4":0,"5":0,"6":0}
	}`
	rec := s.post("/risk/evaluate", body)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "bill_amount[6]")
}

func (s *HandlerSuite) TestEvaluate_MissingPay1Defaults() {
	// pay_delay month 1 is deliberately absent; the record still validates.
	rec := s.post("/risk/evaluate", recordBody(10000, 0))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestEvaluate_MalformedJSON() {
	rec := s.post("/risk/evaluate", `{`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestEvaluate_ModelUnavailable() {
	s.scorer.err = dErrors.New(dErrors.CodeModelUnavailable, "model not loaded")

	rec := s.post("/risk/evaluate", recordBody(10000, 0))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "model_unavailable")
}

func (s *HandlerSuite) TestProfile() {
	rec := s.post("/risk/profile", recordBody(50000, 50))
	s.Equal(http.StatusOK, rec.Code)

	var resp ProfileResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.InDelta(5.0, resp.CreditLimitN, 1e-9)
	s.Require().NotNil(resp.BillToPaymentRatio)
	s.InDelta(2.0, *resp.BillToPaymentRatio, 1e-9)
}

func (s *HandlerSuite) TestProfile_OmitsRatioWithoutPayments() {
	rec := s.post("/risk/profile", recordBody(50000, 0))
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "bill_to_payment_ratio")
}

func (s *HandlerSuite) TestImportance() {
	req := httptest.NewRequest(http.MethodGet, "/risk/importance?k=2", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp ImportanceResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Require().Len(resp.Importances, 2)
	s.Equal("PAY_0", resp.Importances[0].Feature)
	// LIMIT_BAL and PAY_2 tie; declaration order breaks it.
	s.Equal("LIMIT_BAL", resp.Importances[1].Feature)
}

func (s *HandlerSuite) TestImportance_BadK() {
	req := httptest.NewRequest(http.MethodGet, "/risk/importance?k=zero", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestMetrics_RiskProfile() {
	body := fmt.Sprintf(`{"metric": "Risk Profile", "record": %s}`, recordBody(50000, 50))
	rec := s.post("/risk/metrics", body)

	s.Equal(http.StatusOK, rec.Code)

	var resp MetricsResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Equal("Risk Profile", resp.Metric)
	s.Require().NotNil(resp.Profile)
	s.Nil(resp.Importances)
	s.Nil(resp.Sentiment)
}

func (s *HandlerSuite) TestMetrics_FeatureImportance() {
	rec := s.post("/risk/metrics", `{"metric": "Feature Importance", "top_k": 1}`)

	s.Equal(http.StatusOK, rec.Code)

	var resp MetricsResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Require().NotNil(resp.Importances)
	s.Len(resp.Importances.Importances, 1)
}

func (s *HandlerSuite) TestMetrics_Sentiment() {
	rec := s.post("/risk/metrics", `{"metric": "Sentiment Analysis"}`)

	s.Equal(http.StatusOK, rec.Code)

	var resp MetricsResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Require().NotNil(resp.Sentiment)
	s.Equal("KEYWORD_FALLBACK", resp.Sentiment.SourceTier)
	s.Equal("POSITIVE", resp.Sentiment.Label)
}

func (s *HandlerSuite) TestMetrics_UnknownToken() {
	rec := s.post("/risk/metrics", `{"metric": "Turbo Mode"}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *HandlerSuite) TestMetrics_ProfileRequiresRecord() {
	rec := s.post("/risk/metrics", `{"metric": "Risk Profile"}`)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}
