package http

import (
	"net/http"

	"mortgage-calculator/domain"
)

type rateEntry struct {
	Name       string  `json:"name"`
	AnnualRate float64 `json:"annual_rate"`
}

type frequencyEntry struct {
	Name            string `json:"name"`
	PaymentsPerYear int    `json:"payments_per_year"`
}

type catalogResponse struct {
	Rates         []rateEntry      `json:"rates"`
	Frequencies   []frequencyEntry `json:"frequencies"`
	Amortizations []int            `json:"amortizations"`
}

// Catalog lists the rates, frequencies and amortization periods a mortgage
// may use.
func Catalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{Amortizations: domain.Amortizations()}
	for _, rate := range domain.Rates() {
		resp.Rates = append(resp.Rates, rateEntry{Name: rate.String(), AnnualRate: rate.Value()})
	}
	for _, f := range domain.Frequencies() {
		resp.Frequencies = append(resp.Frequencies, frequencyEntry{Name: f.String(), PaymentsPerYear: f.PaymentsPerYear()})
	}

	writeJSON(w, http.StatusOK, resp)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
