package usecase

import (
	"context"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	mock_interfaces "cotizador_inprotar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// backedStore wires a mock store to a single live session, committing an
// update only when fn succeeds, like the real store.
func backedStore(ctrl *gomock.Controller, s *session.Session) *mock_interfaces.MockISessionStore {
	store := mock_interfaces.NewMockISessionStore(ctrl)
	store.EXPECT().Get(gomock.Any(), s.ID).DoAndReturn(
		func(_ context.Context, _ string) (*session.Session, error) {
			return s.Clone(), nil
		},
	).AnyTimes()
	store.EXPECT().Update(gomock.Any(), s.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*session.Session) error) (*session.Session, error) {
			work := s.Clone()
			if err := fn(work); err != nil {
				return nil, err
			}
			*s = *work
			return s.Clone(), nil
		},
	).AnyTimes()
	return store
}

func newTestSession() *session.Session {
	return session.New("sess-1", time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))
}

func lineItem(id, name string, qty int, price int64) entities.LineItem {
	return entities.LineItem{
		ID:           id,
		Name:         name,
		Quantity:     qty,
		Unit:         entities.UnitPiece,
		NetPrice:     decimal.NewFromInt(price),
		DeliveryType: entities.DeliveryImmediate,
	}
}
