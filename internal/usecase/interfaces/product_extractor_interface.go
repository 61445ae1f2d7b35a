package interfaces

//go:generate mockgen -source=product_extractor_interface.go -destination=mocks/mock_product_extractor_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

// IProductExtractor converts an image or PDF into a validated ExtractionResult.
//
// When every backend fails the error is an *entities.ExtractionFailure.
type IProductExtractor interface {
	Extract(ctx context.Context, payload []byte, mimeType string) (entities.ExtractionResult, error)
}
