package repository

import (
	"sync"

	"mortgage-calculator/domain"
)

// MortgageRepositoryMemory is an in-memory implementation of MortgageRepository.
type MortgageRepositoryMemory struct {
	mu   sync.Mutex
	data []domain.MortgageResult
}

// NewMortgageRepositoryMemory creates a new in-memory mortgage repository.
func NewMortgageRepositoryMemory() *MortgageRepositoryMemory {
	return &MortgageRepositoryMemory{
		data: []domain.MortgageResult{},
	}
}

// Save stores the mortgage result in memory.
func (r *MortgageRepositoryMemory) Save(
	input domain.MortgageInput,
	result domain.MortgageResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, result)
	return nil
}

// All returns a copy of every stored result in insertion order.
func (r *MortgageRepositoryMemory) All() []domain.MortgageResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.MortgageResult, len(r.data))
	copy(out, r.data)
	return out
}
