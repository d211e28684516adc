package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by catalog lookups for an unknown identifier.
var ErrInvalidArgument = errors.New("invalid argument")

// Rate is one of the permitted annual mortgage rates.
type Rate int

const (
	Fixed5 Rate = iota
	Fixed3
	Fixed1
	Variable5
	Variable3
	Variable1
)

// Frequency is one of the permitted payment frequencies.
type Frequency int

const (
	Monthly Frequency = iota
	BiWeekly
	Weekly
)

type rateEntry struct {
	name  string
	value float64
}

type frequencyEntry struct {
	name     string
	payments int
}

var rates = [...]rateEntry{
	Fixed5:    {"FIXED_5", 0.0519},
	Fixed3:    {"FIXED_3", 0.0589},
	Fixed1:    {"FIXED_1", 0.0599},
	Variable5: {"VARIABLE_5", 0.0649},
	Variable3: {"VARIABLE_3", 0.0669},
	Variable1: {"VARIABLE_1", 0.0679},
}

var frequencies = [...]frequencyEntry{
	Monthly:  {"MONTHLY", 12},
	BiWeekly: {"BI_WEEKLY", 26},
	Weekly:   {"WEEKLY", 52},
}

var validAmortization = [...]int{5, 10, 15, 20, 25, 30}

// ResolveRate looks up a rate by its identifier, e.g. "FIXED_5".
func ResolveRate(name string) (Rate, error) {
	for i, r := range rates {
		if r.name == name {
			return Rate(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rate %q", ErrInvalidArgument, name)
}

// ResolveFrequency looks up a payment frequency by its identifier, e.g. "MONTHLY".
func ResolveFrequency(name string) (Frequency, error) {
	for i, f := range frequencies {
		if f.name == name {
			return Frequency(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown frequency %q", ErrInvalidArgument, name)
}

// IsValidAmortization reports whether years is a permitted amortization period.
func IsValidAmortization(years int) bool {
	for _, y := range validAmortization {
		if y == years {
			return true
		}
	}
	return false
}

// Value returns the annual nominal rate as a decimal fraction.
func (r Rate) Value() float64 {
	return rates[r].value
}

func (r Rate) String() string {
	if r < 0 || int(r) >= len(rates) {
		return fmt.Sprintf("Rate(%d)", int(r))
	}
	return rates[r].name
}

// PaymentsPerYear returns the number of payments made in one year.
func (f Frequency) PaymentsPerYear() int {
	return frequencies[f].payments
}

func (f Frequency) String() string {
	if f < 0 || int(f) >= len(frequencies) {
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
	return frequencies[f].name
}

// Rates lists every permitted rate in catalog order.
func Rates() []Rate {
	out := make([]Rate, len(rates))
	for i := range rates {
		out[i] = Rate(i)
	}
	return out
}

// Frequencies lists every permitted payment frequency in catalog order.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencies))
	for i := range frequencies {
		out[i] = Frequency(i)
	}
	return out
}

// Amortizations lists the permitted amortization periods in years.
func Amortizations() []int {
	out := make([]int, len(validAmortization))
	copy(out, validAmortization[:])
	return out
}
