package usecase

//go:generate mockgen -source=quote_history_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_history_usecase.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"
)

var (
	ErrInvalidQuoteID = errors.New("invalid quote id")
	ErrQuoteNotFound  = errors.New("quote not found")
)

// IQuoteHistoryUseCase exposes finalized quotes. Saved quotes are immutable;
// only deletion is allowed.
type IQuoteHistoryUseCase interface {
	List(ctx context.Context) ([]entities.SavedQuote, error)
	GetByID(ctx context.Context, id string) (entities.SavedQuote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteHistoryUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteHistoryUseCase = (*QuoteHistoryUseCase)(nil)

func NewQuoteHistoryUseCase(repo interfaces.IQuoteRepository) *QuoteHistoryUseCase {
	return &QuoteHistoryUseCase{repo: repo}
}

// List returns the newest quotes first.
func (u *QuoteHistoryUseCase) List(ctx context.Context) ([]entities.SavedQuote, error) {
	quotes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (u *QuoteHistoryUseCase) GetByID(ctx context.Context, id string) (entities.SavedQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedQuote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SavedQuote{}, err
	}
	if q.ID == "" {
		return entities.SavedQuote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteHistoryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	return nil
}
