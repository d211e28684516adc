package domain

import (
	"errors"
	"math"
)

// Validation failures. The messages are shown to users verbatim.
var (
	ErrInvalidLoanAmount   = errors.New("Loan Amount must be positive.")
	ErrInvalidRate         = errors.New("Rate provided is invalid.")
	ErrInvalidFrequency    = errors.New("Frequency provided is invalid.")
	ErrInvalidAmortization = errors.New("Amortization provided is invalid.")
)

// Mortgage is a validated mortgage record. The zero value is not usable;
// build one with NewMortgage.
type Mortgage struct {
	loanAmount   float64
	rate         Rate
	frequency    Frequency
	amortization int
}

// NewMortgage validates the inputs in order (loan amount, rate, frequency,
// amortization) and returns the first failure.
func NewMortgage(
	loanAmount float64,
	rateName string,
	frequencyName string,
	amortization int,
) (*Mortgage, error) {
	if err := checkLoanAmount(loanAmount); err != nil {
		return nil, err
	}
	rate, err := resolveRate(rateName)
	if err != nil {
		return nil, err
	}
	frequency, err := resolveFrequency(frequencyName)
	if err != nil {
		return nil, err
	}
	if err := checkAmortization(amortization); err != nil {
		return nil, err
	}

	return &Mortgage{
		loanAmount:   loanAmount,
		rate:         rate,
		frequency:    frequency,
		amortization: amortization,
	}, nil
}

func checkLoanAmount(amount float64) error {
	// NaN fails every comparison, so test for the valid range instead.
	if !(amount > 0) || math.IsInf(amount, 1) {
		return ErrInvalidLoanAmount
	}
	return nil
}

func resolveRate(name string) (Rate, error) {
	rate, err := ResolveRate(name)
	if err != nil {
		return 0, ErrInvalidRate
	}
	return rate, nil
}

func resolveFrequency(name string) (Frequency, error) {
	frequency, err := ResolveFrequency(name)
	if err != nil {
		return 0, ErrInvalidFrequency
	}
	return frequency, nil
}

func checkAmortization(years int) error {
	if !IsValidAmortization(years) {
		return ErrInvalidAmortization
	}
	return nil
}

func (m *Mortgage) LoanAmount() float64 { return m.loanAmount }

// SetLoanAmount replaces the principal; on error the mortgage is unchanged.
func (m *Mortgage) SetLoanAmount(amount float64) error {
	if err := checkLoanAmount(amount); err != nil {
		return err
	}
	m.loanAmount = amount
	return nil
}

func (m *Mortgage) Rate() Rate { return m.rate }

// SetRate replaces the rate by identifier; on error the mortgage is unchanged.
func (m *Mortgage) SetRate(name string) error {
	rate, err := resolveRate(name)
	if err != nil {
		return err
	}
	m.rate = rate
	return nil
}

func (m *Mortgage) Frequency() Frequency { return m.frequency }

// SetFrequency replaces the payment frequency by identifier; on error the
// mortgage is unchanged.
func (m *Mortgage) SetFrequency(name string) error {
	frequency, err := resolveFrequency(name)
	if err != nil {
		return err
	}
	m.frequency = frequency
	return nil
}

func (m *Mortgage) Amortization() int { return m.amortization }

// SetAmortization replaces the amortization period; on error the mortgage is
// unchanged.
func (m *Mortgage) SetAmortization(years int) error {
	if err := checkAmortization(years); err != nil {
		return err
	}
	m.amortization = years
	return nil
}

// CalculatePayment returns the recurring payment for the mortgage using the
// fixed-rate amortized loan formula, rounded to 3 decimals.
func (m *Mortgage) CalculatePayment() float64 {
	payments := float64(m.frequency.PaymentsPerYear())
	periodicRate := m.rate.Value() / payments
	n := float64(m.amortization) * payments

	growth := math.Pow(1+periodicRate, n)
	payment := m.loanAmount * (periodicRate * growth) / (growth - 1)

	return roundTo3Decimals(payment)
}

func (m *Mortgage) String() string {
	return m.Result().String()
}

func roundTo3Decimals(value float64) float64 {
	return math.Round(value*1000) / 1000
}
