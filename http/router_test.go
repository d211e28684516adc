package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_Calculate(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, nil)

	req := postJSON(`{"principal": 10000, "rate": "FIXED_1", "frequency": "BI_WEEKLY", "amortization": 10}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment":51.167`)
}

func TestRouter_Catalog(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mortgage/catalog", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp catalogResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Rates, 6)
	assert.Equal(t, rateEntry{Name: "FIXED_5", AnnualRate: 0.0519}, resp.Rates[0])
	assert.Equal(t, []frequencyEntry{
		{Name: "MONTHLY", PaymentsPerYear: 12},
		{Name: "BI_WEEKLY", PaymentsPerYear: 26},
		{Name: "WEEKLY", PaymentsPerYear: 52},
	}, resp.Frequencies)
	assert.Equal(t, []int{5, 10, 15, 20, 25, 30}, resp.Amortizations)
}

func TestRouter_Health(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, nil)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code, "health is not rate limited")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	limiter := NewRateLimiter(10, time.Minute)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mortgage/calculate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(2, time.Hour)
	defer limiter.Stop()
	router := NewRouter(newTestHandler(), limiter, nil)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/mortgage/calculate",
			bytes.NewBufferString(`{"principal": 1000, "rate": "FIXED_5", "frequency": "WEEKLY", "amortization": 5}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.10:40000"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
