// Package usecase implements the business logic for the symbol catalog.
package usecase

import (
	"context"

	"quote_aggregator/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the Symbol catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListAll(ctx context.Context) ([]entity.Symbol, error)
	UpdateMetadata(ctx context.Context, id string, md entity.Metadata) error
}

// SymbolUsecase provides business logic for symbol catalog operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSymbols returns every tracked symbol, initialized or not.
func (u *SymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListAll(ctx)
}
