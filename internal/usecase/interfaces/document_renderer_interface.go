package interfaces

//go:generate mockgen -source=document_renderer_interface.go -destination=mocks/mock_document_renderer_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

// IDocumentRenderer renders the quote PDF. It is a pure function of its inputs.
type IDocumentRenderer interface {
	RenderQuote(ctx context.Context, items []entities.LineItem, info entities.QuoteInfo) ([]byte, error)
}
