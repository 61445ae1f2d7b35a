package interfaces

//go:generate mockgen -source=category_repository_interface.go -destination=mocks/mock_category_repository_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/entities"
)

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}
