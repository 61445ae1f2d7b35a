package interfaces

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for SavedQuote.
//
// Lookups return a zero-value quote (empty ID) when nothing matches.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.SavedQuote) (entities.SavedQuote, error)
	GetByID(ctx context.Context, id string) (entities.SavedQuote, error)
	List(ctx context.Context) ([]entities.SavedQuote, error)
	Delete(ctx context.Context, id string) (bool, error)
}
