package domain

import "fmt"

// MortgageInput is a raw calculation request, before validation.
type MortgageInput struct {
	Principal    float64 `json:"principal"`
	Rate         string  `json:"rate"`
	Frequency    string  `json:"frequency"`
	Amortization int     `json:"amortization"`
}

// MortgageResult is the outcome of a successful calculation.
type MortgageResult struct {
	Principal       float64 `json:"principal"`
	Rate            string  `json:"rate"`
	AnnualRate      float64 `json:"annual_rate"`
	Frequency       string  `json:"frequency"`
	PaymentsPerYear int     `json:"payments_per_year"`
	Amortization    int     `json:"amortization"`
	Payment         float64 `json:"payment"`
}

// Input returns the request that reproduces m.
func (m *Mortgage) Input() MortgageInput {
	return MortgageInput{
		Principal:    m.loanAmount,
		Rate:         m.rate.String(),
		Frequency:    m.frequency.String(),
		Amortization: m.amortization,
	}
}

// Result computes the payment for m and returns it with the resolved values.
func (m *Mortgage) Result() MortgageResult {
	return NewMortgageResult(m, m.CalculatePayment())
}

// NewMortgageResult describes m with an already known payment.
func NewMortgageResult(m *Mortgage, payment float64) MortgageResult {
	return MortgageResult{
		Principal:       m.loanAmount,
		Rate:            m.rate.String(),
		AnnualRate:      m.rate.Value(),
		Frequency:       m.frequency.String(),
		PaymentsPerYear: m.frequency.PaymentsPerYear(),
		Amortization:    m.amortization,
		Payment:         payment,
	}
}

// String renders the result the way batch output shows a mortgage.
func (r MortgageResult) String() string {
	return fmt.Sprintf(
		"Mortgage Amount: %.2f\nRate: %.2f%% (%s)\nAmortization: %d\nFrequency: %s -- Calculated Payment: %.3f",
		r.Principal,
		r.AnnualRate*100,
		r.Rate,
		r.Amortization,
		r.Frequency,
		r.Payment,
	)
}
