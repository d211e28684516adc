package repository

import "mortgage-calculator/domain"

// MortgageRepository records completed mortgage calculations.
type MortgageRepository interface {
	Save(input domain.MortgageInput, result domain.MortgageResult) error
}
