package usecase

import (
	"context"
	"errors"
	"testing"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	mock_interfaces "cotizador_inprotar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestQuoteSessionUseCase_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockISessionStore(ctrl)
	uc := NewQuoteSessionUseCase(store, nil, nil)

	store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&session.Session{})).DoAndReturn(
		func(_ context.Context, s *session.Session) error {
			if s.ID == "" || s.Step != session.StepCustomerInfo || s.Info.QuoteNumber == "" {
				t.Fatalf("unexpected session: %+v", s)
			}
			return nil
		},
	)

	s, err := uc.Start(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Items) != 0 {
		t.Fatalf("expected empty quote")
	}
}

func TestQuoteSessionUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteSessionUseCase(nil, nil, nil)
		if _, err := uc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewQuoteSessionUseCase(store, nil, nil)

		store.EXPECT().Get(gomock.Any(), "x").Return(nil, nil)

		if _, err := uc.Get(context.Background(), "x"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("update on missing session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewQuoteSessionUseCase(store, nil, nil)

		store.EXPECT().Update(gomock.Any(), "x", gomock.Any()).Return(nil, nil)

		if _, err := uc.Retreat(context.Background(), "x"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestQuoteSessionUseCase_Advance(t *testing.T) {
	t.Run("missing customer fields block step 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := newTestSession()
		uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

		_, err := uc.Advance(context.Background(), s.ID)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Fields) != 4 || vErr.Fields[0] != "customer_company" {
			t.Fatalf("unexpected fields: %v", vErr.Fields)
		}
		if s.Step != session.StepCustomerInfo {
			t.Fatalf("step must not move, got %d", s.Step)
		}
	})

	t.Run("complete customer info advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := newTestSession()
		uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

		company, rut, name, email := "ACME", "763543219", "Ana", "ana@acme.cl"
		_, err := uc.UpdateInfo(context.Background(), s.ID, entities.QuoteInfoPatch{
			CustomerCompany: &company, CustomerRut: &rut, CustomerName: &name, CustomerEmail: &email,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		res, err := uc.Advance(context.Background(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Step != session.StepItemSelection || res.Info.CustomerRut != "76.354.321-9" {
			t.Fatalf("unexpected session: step=%d rut=%q", res.Step, res.Info.CustomerRut)
		}
	})

	t.Run("later steps are not validated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := newTestSession()
		s.Step = session.StepReview
		uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

		res, err := uc.Advance(context.Background(), s.ID)
		if err != nil || res.Step != session.StepFinalize {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

func TestQuoteSessionUseCase_JumpAndRetreat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newTestSession()
	uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

	if _, err := uc.JumpTo(context.Background(), s.ID, 9); !errors.Is(err, session.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
	res, err := uc.JumpTo(context.Background(), s.ID, session.StepReview)
	if err != nil || res.Step != session.StepReview {
		t.Fatalf("unexpected jump: %v %v", res, err)
	}
	res, err = uc.Retreat(context.Background(), s.ID)
	if err != nil || res.Step != session.StepAdjustment {
		t.Fatalf("unexpected retreat: %v %v", res, err)
	}
}

func TestQuoteSessionUseCase_Items(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newTestSession()
	uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)
	ctx := context.Background()

	res, err := uc.AddItem(ctx, s.ID, entities.LineItem{
		ID:           "client-id",
		Name:         "  Cable THHN 12 AWG ",
		Quantity:     100,
		Unit:         entities.UnitMeter,
		NetPrice:     decimal.NewFromInt(450),
		DeliveryType: entities.DeliveryImport,
		SKU:          "forged",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := res.Items[0]
	if it.ID == "client-id" || it.ID == "" || it.Name != "Cable THHN 12 AWG" || it.SKU != "" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.DeliveryDays != entities.DefaultImportDeliveryDays {
		t.Fatalf("expected default import days, got %d", it.DeliveryDays)
	}

	immediate := entities.DeliveryImmediate
	res, err = uc.UpdateItem(ctx, s.ID, it.ID, entities.LineItemPatch{DeliveryType: &immediate})
	if err != nil || res.Items[0].DeliveryDays != 0 {
		t.Fatalf("immediate delivery must zero days: %+v %v", res.Items[0], err)
	}

	res, err = uc.UpdateItem(ctx, s.ID, "missing", entities.LineItemPatch{DeliveryType: &immediate})
	if err != nil || len(res.Items) != 1 {
		t.Fatalf("missing item update must be a no-op: %v", err)
	}

	if _, err := uc.RemoveItem(ctx, s.ID, " "); !errors.Is(err, ErrInvalidItemID) {
		t.Fatalf("expected ErrInvalidItemID, got %v", err)
	}
	res, err = uc.RemoveItem(ctx, s.ID, it.ID)
	if err != nil || len(res.Items) != 0 {
		t.Fatalf("unexpected remove: %v %v", res, err)
	}
}

func TestQuoteSessionUseCase_AddFromCatalog(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteSessionUseCase(nil, catalog, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.CatalogEntry{}, nil)

		if _, err := uc.AddFromCatalog(context.Background(), "sess-1", "p-1"); !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("copies the entry with quantity 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := newTestSession()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewQuoteSessionUseCase(backedStore(ctrl, s), catalog, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.CatalogEntry{
			ID: "p-1", Name: "Breaker 2x32A", Brand: "Schneider", Unit: entities.UnitPiece,
			NetPrice: decimal.NewFromInt(12990), DeliveryType: entities.DeliveryImmediate,
			Category: "Protecciones", SKU: "SCH-PRO-0001",
		}, nil)

		res, err := uc.AddFromCatalog(context.Background(), s.ID, "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		it := res.Items[0]
		if it.Quantity != 1 || it.SKU != "SCH-PRO-0001" || !it.NetPrice.Equal(decimal.NewFromInt(12990)) || it.ID == "p-1" {
			t.Fatalf("unexpected item: %+v", it)
		}
	})
}

func TestQuoteSessionUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newTestSession()
	s.AddItem(lineItem("a", "A", 1, 10))
	s.Step = session.StepReview
	prev := s.Info.QuoteNumber
	uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

	res, err := uc.Reset(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 0 || res.Step != session.StepCustomerInfo || res.Info.QuoteNumber == prev {
		t.Fatalf("unexpected reset: %+v", res)
	}
}

func TestQuoteSessionUseCase_BlockedWhileFinalizing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := newTestSession()
	s.AddItem(lineItem("a", "A", 1, 10))
	if err := s.BeginFinalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, nil)

	if _, err := uc.RemoveItem(context.Background(), s.ID, "a"); !errors.Is(err, session.ErrFinalizeInProgress) {
		t.Fatalf("expected ErrFinalizeInProgress, got %v", err)
	}
	if len(s.Items) != 1 {
		t.Fatalf("items must not change while finalizing")
	}
}

func TestQuoteSessionUseCase_LoadSavedQuote(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteSessionUseCase(nil, nil, quotes)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.SavedQuote{}, nil)

		if _, err := uc.LoadSavedQuote(context.Background(), "sess-1", "q-1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("reopens at the adjustment step with the same total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := newTestSession()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteSessionUseCase(backedStore(ctrl, s), nil, quotes)

		src := newTestSession()
		src.AddItem(lineItem("a", "A", 2, 1000))
		src.AddItem(lineItem("b", "B", 1, 500))
		src.Info.CustomerName = "Ana"
		saved := entities.SavedQuote{ID: "q-1", Products: src.Items, Info: src.Info, Total: src.Total()}
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(saved, nil)

		res, err := uc.LoadSavedQuote(context.Background(), s.ID, "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Step != session.StepAdjustment || res.Info.CustomerName != "Ana" || len(res.Items) != 2 {
			t.Fatalf("unexpected session: %+v", res)
		}
		if !res.Total().Equal(decimal.NewFromInt(2975)) || !res.Total().Equal(saved.Total) {
			t.Fatalf("expected total %s, got %s", saved.Total, res.Total())
		}
	})
}
