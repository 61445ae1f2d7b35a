package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"
)

// CatalogSearchLimit caps the results of a catalog search.
const CatalogSearchLimit = 20

var (
	ErrInvalidCatalogID   = errors.New("invalid catalog id")
	ErrInvalidCatalogName = errors.New("catalog name cannot be empty")
	ErrCatalogNameTaken   = errors.New("another catalog entry already uses this name")
)

// ICatalogUseCase exposes catalog search and administration. SKUs are never editable.
type ICatalogUseCase interface {
	Search(ctx context.Context, query string) ([]entities.CatalogEntry, error)
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Search matches name, brand or category case-insensitively. Queries shorter
// than two characters return nothing.
func (u *CatalogUseCase) Search(ctx context.Context, query string) ([]entities.CatalogEntry, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) <= 1 {
		return []entities.CatalogEntry{}, nil
	}
	return u.repo.Search(ctx, query, CatalogSearchLimit)
}

func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if e.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	return e, nil
}

func (u *CatalogUseCase) Update(ctx context.Context, id string, patch entities.CatalogEntryPatch) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.CatalogEntry{}, ErrInvalidCatalogName
		}
		patch.Name = &name
	}
	if patch.NetPrice != nil && patch.NetPrice.IsNegative() {
		return entities.CatalogEntry{}, ErrInvalidPrice
	}
	if patch.Unit != nil && !patch.Unit.IsValid() {
		unit := entities.ParseUnit(string(*patch.Unit))
		patch.Unit = &unit
	}
	if patch.DeliveryDays != nil && *patch.DeliveryDays < 0 {
		zero := 0
		patch.DeliveryDays = &zero
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if errors.Is(err, interfaces.ErrCatalogNameTaken) {
		return entities.CatalogEntry{}, ErrCatalogNameTaken
	}
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if updated.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCatalogEntryNotFound
	}
	return nil
}
