package interfaces

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository_interface.go -package=mock_interfaces

import (
	"context"
	"errors"

	"cotizador_inprotar/internal/domain/entities"
)

// ErrCatalogNameTaken is returned by Create/Update when another entry already owns the name.
var ErrCatalogNameTaken = errors.New("catalog name already taken")

// ICatalogRepository abstracts persistence for CatalogEntry.
//
// Name is unique across the catalog; lookups return a zero-value entry when nothing matches.
type ICatalogRepository interface {
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	FindByName(ctx context.Context, name string) (entities.CatalogEntry, error)
	Search(ctx context.Context, query string, limit int) ([]entities.CatalogEntry, error)
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ISkuSequencer hands out SKUs from an atomic per brand/category counter.
// Every call returns a distinct SKU, also under concurrent callers.
type ISkuSequencer interface {
	NextSku(ctx context.Context, brand, category string) (string, error)
}
