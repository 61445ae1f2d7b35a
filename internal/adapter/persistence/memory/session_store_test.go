package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) *session.Session {
	return session.New(id, time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
}

func TestSessionStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewSessionStore()

	require.NoError(t, st.Create(ctx, newSession("s-1")))
	assert.Error(t, st.Create(ctx, newSession("s-1")))

	got, err := st.Get(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s-1", got.ID)

	got.Step = session.StepReview
	again, _ := st.Get(ctx, "s-1")
	assert.Equal(t, session.StepCustomerInfo, again.Step, "Get must hand out a copy")

	ok, err := st.Delete(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = st.Delete(ctx, "s-1")
	assert.False(t, ok)

	missing, err := st.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, 0, st.Len())
}

func TestSessionStore_UpdateCommitsOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	st := NewSessionStore()
	require.NoError(t, st.Create(ctx, newSession("s-1")))

	boom := errors.New("boom")
	_, err := st.Update(ctx, "s-1", func(s *session.Session) error {
		s.AddItem(entities.LineItem{ID: "a", Name: "Cable", Quantity: 1, NetPrice: decimal.NewFromInt(10)})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := st.Get(ctx, "s-1")
	assert.Empty(t, got.Items)

	updated, err := st.Update(ctx, "s-1", func(s *session.Session) error {
		s.AddItem(entities.LineItem{ID: "a", Name: "Cable", Quantity: 1, NetPrice: decimal.NewFromInt(10)})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)

	missing, err := st.Update(ctx, "nope", func(*session.Session) error { return nil })
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	st := NewSessionStore()
	require.NoError(t, st.Create(ctx, newSession("s-1")))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := st.Update(ctx, "s-1", func(s *session.Session) error {
				s.AddItem(entities.LineItem{ID: "x", Name: "Item", Quantity: 1, NetPrice: decimal.NewFromInt(1)})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, _ := st.Get(ctx, "s-1")
	assert.Len(t, got.Items, workers)
	assert.True(t, got.NetTotal().Equal(decimal.NewFromInt(workers)))
}

func TestSessionStore_DeleteRefusedWhileFinalizing(t *testing.T) {
	ctx := context.Background()
	st := NewSessionStore()
	require.NoError(t, st.Create(ctx, newSession("s-1")))

	_, err := st.Update(ctx, "s-1", func(s *session.Session) error { return s.BeginFinalize() })
	require.NoError(t, err)

	ok, err := st.Delete(ctx, "s-1")
	assert.ErrorIs(t, err, session.ErrFinalizeInProgress)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())

	_, err = st.Update(ctx, "s-1", func(s *session.Session) error {
		s.EndFinalize()
		return nil
	})
	require.NoError(t, err)

	ok, err = st.Delete(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, st.Len())
}
