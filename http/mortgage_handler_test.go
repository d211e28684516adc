package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-calculator/domain"
	"mortgage-calculator/repository"
	"mortgage-calculator/service"
)

func newTestHandler() *MortgageHandler {
	repo := repository.NewMortgageRepositoryMemory()
	svc := service.NewMortgageService(repo, repository.NewMemoryCache(), nil)
	return NewMortgageHandler(svc, nil)
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(
		http.MethodPost,
		"/mortgage/calculate",
		bytes.NewBufferString(body),
	)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCalculateMortgageHandler_OK(t *testing.T) {
	handler := newTestHandler()

	req := postJSON(`{
		"principal": 682912.43,
		"rate": "FIXED_1",
		"frequency": "MONTHLY",
		"amortization": 10
	}`)
	w := httptest.NewRecorder()

	handler.CalculateMortgage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.MortgageResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.InDelta(t, 7578.30, result.Payment, 0.005)
	assert.Equal(t, "FIXED_1", result.Rate)
	assert.Equal(t, 12, result.PaymentsPerYear)
}

func TestCalculateMortgageHandler_ValidationError(t *testing.T) {
	handler := newTestHandler()

	tests := []struct {
		body string
		want string
	}{
		{`{"principal": -5, "rate": "FIXED_5", "frequency": "WEEKLY", "amortization": 10}`, "Loan Amount must be positive."},
		{`{"principal": 1000, "rate": "INVALID_RATE", "frequency": "WEEKLY", "amortization": 10}`, "Rate provided is invalid."},
		{`{"principal": 1000, "rate": "FIXED_5", "frequency": "DAILY", "amortization": 10}`, "Frequency provided is invalid."},
		{`{"principal": 1000, "rate": "FIXED_5", "frequency": "WEEKLY", "amortization": 0}`, "Amortization provided is invalid."},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		handler.CalculateMortgage(w, postJSON(tt.body))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp errorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, tt.want, resp.Error)
	}
}

func TestCalculateMortgageHandler_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/mortgage/calculate", nil)
	w := httptest.NewRecorder()

	handler.CalculateMortgage(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateMortgageHandler_BadRequest(t *testing.T) {
	handler := newTestHandler()

	for _, body := range []string{`{invalid-json}`, `{"principal": "lots"}`, `{"monto": 10000}`} {
		w := httptest.NewRecorder()
		handler.CalculateMortgage(w, postJSON(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCalculateMortgageHandler_UnsupportedMediaType(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/mortgage/calculate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.CalculateMortgage(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateMortgageHandler_BodyTooLarge(t *testing.T) {
	handler := newTestHandler()

	body := `{"rate": "` + strings.Repeat("A", maxRequestBodyBytes) + `"}`
	w := httptest.NewRecorder()
	handler.CalculateMortgage(w, postJSON(body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
