package interfaces

//go:generate mockgen -source=session_store_interface.go -destination=mocks/mock_session_store_interface.go -package=mock_interfaces

import (
	"context"

	"cotizador_inprotar/internal/domain/session"
)

// ISessionStore keeps in-progress quotes in memory.
//
// Update runs fn while holding the session's lock and returns a copy of the
// result; Get returns a copy as well. A nil session means "not found".
// Delete fails with session.ErrFinalizeInProgress while a finalization holds
// the session.
type ISessionStore interface {
	Create(ctx context.Context, s *session.Session) error
	Get(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error)
	Delete(ctx context.Context, id string) (bool, error)
}
