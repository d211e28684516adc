package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mortgage-calculator/domain"
)

// Errors for records that cannot be handed to the domain.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrMalformedNumber = errors.New("malformed number")
	ErrInvalidLayout   = errors.New("invalid column layout")
)

// Column names accepted in a Layout.
const (
	ColumnPrincipal    = "principal"
	ColumnRate         = "rate"
	ColumnFrequency    = "frequency"
	ColumnAmortization = "amortization"
)

// DefaultColumns is the field order of the mortgage data files.
var DefaultColumns = []string{ColumnPrincipal, ColumnRate, ColumnAmortization, ColumnFrequency}

// Layout maps each mortgage field to its position in a record.
type Layout struct {
	principal    int
	rate         int
	frequency    int
	amortization int
}

// DefaultLayout returns the layout for DefaultColumns.
func DefaultLayout() Layout {
	return Layout{principal: 0, rate: 1, amortization: 2, frequency: 3}
}

// NewLayout builds a Layout from column names. Every column must appear
// exactly once.
func NewLayout(columns []string) (Layout, error) {
	if len(columns) != recordFields {
		return Layout{}, fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidLayout, recordFields, len(columns))
	}

	positions := make(map[string]int, recordFields)
	for i, c := range columns {
		name := strings.ToLower(strings.TrimSpace(c))
		switch name {
		case ColumnPrincipal, ColumnRate, ColumnFrequency, ColumnAmortization:
		default:
			return Layout{}, fmt.Errorf("%w: unknown column %q", ErrInvalidLayout, c)
		}
		if _, dup := positions[name]; dup {
			return Layout{}, fmt.Errorf("%w: duplicate column %q", ErrInvalidLayout, c)
		}
		positions[name] = i
	}

	return Layout{
		principal:    positions[ColumnPrincipal],
		rate:         positions[ColumnRate],
		frequency:    positions[ColumnFrequency],
		amortization: positions[ColumnAmortization],
	}, nil
}

// Record is the outcome of processing one input line: either a valid
// mortgage with its result, or the error that rejected the line.
type Record struct {
	Line     string
	Mortgage *domain.Mortgage
	Result   domain.MortgageResult
	Err      error
}

// OK reports whether the record produced a mortgage.
func (r Record) OK() bool {
	return r.Err == nil
}

// ParseRecord splits a comma-separated line according to layout and builds
// the mortgage it describes. It does not compute the payment.
func ParseRecord(line string, layout Layout) Record {
	rec := Record{Line: strings.TrimSpace(line)}

	fields := strings.Split(line, ",")
	if len(fields) != recordFields {
		rec.Err = fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, recordFields, len(fields))
		return rec
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	principal, err := strconv.ParseFloat(fields[layout.principal], 64)
	if err != nil {
		rec.Err = fmt.Errorf("%w: could not convert %q to float", ErrMalformedNumber, fields[layout.principal])
		return rec
	}
	amortization, err := strconv.Atoi(fields[layout.amortization])
	if err != nil {
		rec.Err = fmt.Errorf("%w: could not convert %q to int", ErrMalformedNumber, fields[layout.amortization])
		return rec
	}

	rec.Mortgage, rec.Err = domain.NewMortgage(
		principal,
		fields[layout.rate],
		fields[layout.frequency],
		amortization,
	)
	return rec
}
