package usecase

//go:generate mockgen -source=category_usecase.go -destination=../adapter/http/handlers/mocks/mock_category_usecase.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrInvalidCategoryID   = errors.New("invalid category id")
	ErrInvalidCategoryName = errors.New("category name cannot be empty")
	ErrCategoryExists      = errors.New("category already exists")
	ErrCategoryNotFound    = errors.New("category not found")
)

type ICategoryUseCase interface {
	List(ctx context.Context) ([]entities.Category, error)
	Create(ctx context.Context, name string) (entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List orders categories by name using Spanish collation, so "Óptica" sorts with "O".
func (u *CategoryUseCase) List(ctx context.Context) ([]entities.Category, error) {
	cats, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortCategories(cats)
	return cats, nil
}

func (u *CategoryUseCase) Create(ctx context.Context, name string) (entities.Category, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return entities.Category{}, ErrInvalidCategoryName
	}
	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Category{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return entities.Category{}, ErrCategoryExists
		}
	}
	return u.repo.Create(ctx, entities.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()})
}

func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCategoryID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func sortCategories(cats []entities.Category) {
	col := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(cats, func(i, j int) bool {
		return col.CompareString(cats[i].Name, cats[j].Name) < 0
	})
}
