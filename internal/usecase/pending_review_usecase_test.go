package usecase

import (
	"context"
	"errors"
	"testing"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase/interfaces"
	mock_interfaces "cotizador_inprotar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pendingRecord() entities.PendingReviewRecord {
	return entities.PendingReviewRecord{
		ID:            "pend-1",
		Name:          "Luminaria LED",
		Brand:         "Philips",
		Description:   "Panel 60x60",
		SuggestedUnit: entities.UnitPiece,
		Status:        entities.PendingStatusPending,
	}
}

func TestPendingReviewUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
	uc := NewPendingReviewUseCase(repo, nil, nil)

	repo.EXPECT().ListByStatus(gomock.Any(), entities.PendingStatusPending).Return([]entities.PendingReviewRecord{pendingRecord()}, nil)

	out, err := uc.List(context.Background(), "")
	if err != nil || len(out) != 1 {
		t.Fatalf("unexpected list: %v %v", out, err)
	}
	if _, err := uc.List(context.Background(), "archived"); !errors.Is(err, ErrInvalidPendingStatus) {
		t.Fatalf("expected ErrInvalidPendingStatus, got %v", err)
	}
}

func TestPendingReviewUseCase_Approve(t *testing.T) {
	t.Run("category required", func(t *testing.T) {
		uc := NewPendingReviewUseCase(nil, nil, nil)
		if _, err := uc.Approve(context.Background(), "pend-1", ApproveInput{Category: " "}); !errors.Is(err, ErrCategoryRequired) {
			t.Fatalf("expected ErrCategoryRequired, got %v", err)
		}
	})

	t.Run("already reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		uc := NewPendingReviewUseCase(repo, nil, nil)

		rec := pendingRecord()
		rec.Status = entities.PendingStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(rec, nil)

		if _, err := uc.Approve(context.Background(), "pend-1", ApproveInput{Category: "Iluminación"}); !errors.Is(err, ErrPendingAlreadyHandled) {
			t.Fatalf("expected ErrPendingAlreadyHandled, got %v", err)
		}
	})

	t.Run("inserts a catalog entry with a fresh sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		skus := mock_interfaces.NewMockISkuSequencer(ctrl)
		uc := NewPendingReviewUseCase(repo, catalog, skus)

		price := decimal.NewFromInt(35990)
		imp := entities.DeliveryImport
		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(pendingRecord(), nil)
		catalog.EXPECT().FindByName(gomock.Any(), "Luminaria LED").Return(entities.CatalogEntry{}, nil)
		skus.EXPECT().NextSku(gomock.Any(), "Philips", "Iluminación").Return("PHI-ILU-0001", nil)
		catalog.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.SKU != "PHI-ILU-0001" || e.Category != "Iluminación" || !e.NetPrice.Equal(price) {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.DeliveryType != entities.DeliveryImport || e.DeliveryDays != entities.DefaultImportDeliveryDays {
					t.Fatalf("unexpected delivery: %+v", e)
				}
				return e, nil
			},
		)
		approved := pendingRecord()
		approved.Status = entities.PendingStatusApproved
		repo.EXPECT().UpdateStatus(gomock.Any(), "pend-1", entities.PendingStatusPending, entities.PendingStatusApproved).Return(approved, nil)

		res, err := uc.Approve(context.Background(), "pend-1", ApproveInput{Category: " Iluminación ", NetPrice: &price, DeliveryType: &imp})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Record.Status != entities.PendingStatusApproved || res.Entry.SKU != "PHI-ILU-0001" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("existing name is reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPendingReviewUseCase(repo, catalog, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(pendingRecord(), nil)
		catalog.EXPECT().FindByName(gomock.Any(), "Luminaria LED").Return(entities.CatalogEntry{ID: "p-9", SKU: "PHI-ILU-0003"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pend-1", entities.PendingStatusPending, entities.PendingStatusApproved).Return(entities.PendingReviewRecord{ID: "pend-1", Status: entities.PendingStatusApproved}, nil)

		res, err := uc.Approve(context.Background(), "pend-1", ApproveInput{Category: "Iluminación"})
		if err != nil || res.Entry.ID != "p-9" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("name taken during insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		skus := mock_interfaces.NewMockISkuSequencer(ctrl)
		uc := NewPendingReviewUseCase(repo, catalog, skus)

		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(pendingRecord(), nil)
		gomock.InOrder(
			catalog.EXPECT().FindByName(gomock.Any(), "Luminaria LED").Return(entities.CatalogEntry{}, nil),
			catalog.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CatalogEntry{}, interfaces.ErrCatalogNameTaken),
			catalog.EXPECT().FindByName(gomock.Any(), "Luminaria LED").Return(entities.CatalogEntry{ID: "p-9", SKU: "PHI-ILU-0003"}, nil),
		)
		skus.EXPECT().NextSku(gomock.Any(), gomock.Any(), gomock.Any()).Return("PHI-ILU-0004", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pend-1", gomock.Any(), gomock.Any()).Return(entities.PendingReviewRecord{ID: "pend-1"}, nil)

		res, err := uc.Approve(context.Background(), "pend-1", ApproveInput{Category: "Iluminación"})
		if err != nil || res.Entry.SKU != "PHI-ILU-0003" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestPendingReviewUseCase_Reject(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		uc := NewPendingReviewUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(entities.PendingReviewRecord{}, nil)

		if _, err := uc.Reject(context.Background(), "pend-1"); !errors.Is(err, ErrPendingNotFound) {
			t.Fatalf("expected ErrPendingNotFound, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		uc := NewPendingReviewUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(pendingRecord(), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pend-1", entities.PendingStatusPending, entities.PendingStatusRejected).Return(entities.PendingReviewRecord{}, nil)

		if _, err := uc.Reject(context.Background(), "pend-1"); !errors.Is(err, ErrPendingAlreadyHandled) {
			t.Fatalf("expected ErrPendingAlreadyHandled, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPendingProductRepository(ctrl)
		uc := NewPendingReviewUseCase(repo, nil, nil)

		rejected := pendingRecord()
		rejected.Status = entities.PendingStatusRejected
		repo.EXPECT().GetByID(gomock.Any(), "pend-1").Return(pendingRecord(), nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "pend-1", entities.PendingStatusPending, entities.PendingStatusRejected).Return(rejected, nil)

		res, err := uc.Reject(context.Background(), " pend-1 ")
		if err != nil || res.Status != entities.PendingStatusRejected {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}
