package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	mock_interfaces "cotizador_inprotar/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteHistoryUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteHistoryUseCase(repo)

	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any()).Return([]entities.SavedQuote{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(24 * time.Hour)},
	}, nil)

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].ID != "new" || out[1].ID != "mid" || out[2].ID != "old" {
		t.Fatalf("expected newest first, got %v %v %v", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestQuoteHistoryUseCase_GetAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteHistoryUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.SavedQuote{}, nil)
	repo.EXPECT().Delete(gomock.Any(), "q-2").Return(true, nil)

	if _, err := uc.GetByID(context.Background(), "q-1"); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
		t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
	}
	if err := uc.Delete(context.Background(), "q-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
