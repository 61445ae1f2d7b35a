package interfaces

//go:generate mockgen -source=pending_product_repository_interface.go -destination=mocks/mock_pending_product_repository_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

// IPendingProductRepository abstracts persistence for PendingReviewRecord.
type IPendingProductRepository interface {
	CreateBatch(ctx context.Context, records []entities.PendingReviewRecord) error
	GetByID(ctx context.Context, id string) (entities.PendingReviewRecord, error)
	ListByStatus(ctx context.Context, status entities.PendingStatus) ([]entities.PendingReviewRecord, error)
	CountByStatus(ctx context.Context, status entities.PendingStatus) (int, error)
	// UpdateStatus moves a record from one status to another. It returns a zero
	// value when the record is missing or not in the expected status.
	UpdateStatus(ctx context.Context, id string, from, to entities.PendingStatus) (entities.PendingReviewRecord, error)
}
