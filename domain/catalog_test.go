package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name  string
		want  Rate
		value float64
	}{
		{"FIXED_5", Fixed5, 0.0519},
		{"FIXED_3", Fixed3, 0.0589},
		{"FIXED_1", Fixed1, 0.0599},
		{"VARIABLE_5", Variable5, 0.0649},
		{"VARIABLE_3", Variable3, 0.0669},
		{"VARIABLE_1", Variable1, 0.0679},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := ResolveRate(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate)
			assert.Equal(t, tt.value, rate.Value())
			assert.Equal(t, tt.name, rate.String())
		})
	}
}

func TestResolveRate_Unknown(t *testing.T) {
	for _, name := range []string{"", "INVALID_RATE", "fixed_5", "FIXED_5 ", "FIXED_10"} {
		_, err := ResolveRate(name)
		assert.ErrorIs(t, err, ErrInvalidArgument, "name %q", name)
	}
}

func TestResolveFrequency(t *testing.T) {
	tests := []struct {
		name     string
		want     Frequency
		payments int
	}{
		{"MONTHLY", Monthly, 12},
		{"BI_WEEKLY", BiWeekly, 26},
		{"WEEKLY", Weekly, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frequency, err := ResolveFrequency(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, frequency)
			assert.Equal(t, tt.payments, frequency.PaymentsPerYear())
			assert.Equal(t, tt.name, frequency.String())
		})
	}
}

func TestResolveFrequency_Unknown(t *testing.T) {
	for _, name := range []string{"", "INVALID_FREQUENCY", "monthly", "DAILY"} {
		_, err := ResolveFrequency(name)
		assert.ErrorIs(t, err, ErrInvalidArgument, "name %q", name)
	}
}

func TestIsValidAmortization(t *testing.T) {
	for _, years := range []int{5, 10, 15, 20, 25, 30} {
		assert.True(t, IsValidAmortization(years), "years %d", years)
	}
	for _, years := range []int{-5, 0, 1, 4, 6, 12, 35, 40} {
		assert.False(t, IsValidAmortization(years), "years %d", years)
	}
}

func TestCatalogListings(t *testing.T) {
	assert.Len(t, Rates(), 6)
	assert.Equal(t, []Frequency{Monthly, BiWeekly, Weekly}, Frequencies())

	years := Amortizations()
	assert.Equal(t, []int{5, 10, 15, 20, 25, 30}, years)

	// callers get their own copy
	years[0] = 99
	assert.True(t, IsValidAmortization(5))
	assert.False(t, IsValidAmortization(99))
}

func TestOutOfRangeVariantString(t *testing.T) {
	assert.Equal(t, "Rate(42)", Rate(42).String())
	assert.Equal(t, "Frequency(-1)", Frequency(-1).String())
}
