package usecase

//go:generate mockgen -source=finalize_usecase.go -destination=../adapter/http/handlers/mocks/mock_finalize_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyQuote       = errors.New("quote has no items")
	ErrDocumentRender   = errors.New("quote document could not be rendered")
	ErrDocumentNotFound = errors.New("no document rendered for this session")
)

// FinalizeResult is what one finalization produced. Quote is zero when the
// record could not be saved; Document is always set on success and on
// persistence failure.
type FinalizeResult struct {
	Session  *session.Session
	Document session.Document
	Quote    entities.SavedQuote
	Warnings []entities.ReconciliationWarning
}

// IFinalizeUseCase runs reconciliation, rendering and persistence as one step.
type IFinalizeUseCase interface {
	Finalize(ctx context.Context, sessionID string) (FinalizeResult, error)
	Document(ctx context.Context, sessionID string) (session.Document, error)
}

type FinalizeUseCase struct {
	store      interfaces.ISessionStore
	reconciler ICatalogReconciler
	renderer   interfaces.IDocumentRenderer
	quotes     interfaces.IQuoteRepository
}

var _ IFinalizeUseCase = (*FinalizeUseCase)(nil)

func NewFinalizeUseCase(store interfaces.ISessionStore, reconciler ICatalogReconciler, renderer interfaces.IDocumentRenderer, quotes interfaces.IQuoteRepository) *FinalizeUseCase {
	return &FinalizeUseCase{store: store, reconciler: reconciler, renderer: renderer, quotes: quotes}
}

// Finalize claims the session, reconciles its items against the catalog in
// order, renders the document and saves the quote. A second call for the same
// session fails with session.ErrFinalizeInProgress until this one returns.
//
// When only the save fails, the result still carries the document and the
// error is an *entities.PersistenceError. Once the document is rendered it is
// always returned; Session is nil if the session could not take it back.
func (u *FinalizeUseCase) Finalize(ctx context.Context, sessionID string) (FinalizeResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return FinalizeResult{}, ErrInvalidSessionID
	}

	snap, err := u.store.Update(ctx, sessionID, func(s *session.Session) error {
		if len(s.Items) == 0 {
			return ErrEmptyQuote
		}
		return s.BeginFinalize()
	})
	if err != nil {
		return FinalizeResult{}, err
	}
	if snap == nil {
		return FinalizeResult{}, ErrSessionNotFound
	}

	// The claim must be released even if the caller went away.
	release := context.WithoutCancel(ctx)
	log := zap.L().With(zap.String("session_id", sessionID), zap.String("quote_number", snap.Info.QuoteNumber))

	items, warnings := u.reconciler.Reconcile(ctx, snap.Items)

	pdf, err := u.renderer.RenderQuote(ctx, items, snap.Info)
	if err != nil {
		log.Error("quote document render failed", zap.Error(err))
		_, uerr := u.store.Update(release, sessionID, func(s *session.Session) error {
			s.ReplaceAll(items)
			s.EndFinalize()
			return nil
		})
		if uerr != nil {
			log.Error("releasing session after render failure", zap.Error(uerr))
		}
		return FinalizeResult{Warnings: warnings}, fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	priced := snap.Clone()
	priced.ReplaceAll(items)
	totals := priced.Totals()

	now := time.Now().UTC()
	quote := entities.SavedQuote{
		ID:              uuid.NewString(),
		QuoteNumber:     snap.Info.QuoteNumber,
		CustomerName:    snap.Info.CustomerName,
		CustomerCompany: snap.Info.CustomerCompany,
		Date:            snap.Info.Date,
		Products:        items,
		Info:            snap.Info,
		TotalNet:        totals.Net,
		TotalTax:        totals.Tax,
		Total:           totals.Total,
		CreatedAt:       now,
	}

	var persistErr error
	saved, err := u.quotes.Create(ctx, quote)
	if err != nil {
		log.Error("saving quote failed, document kept", zap.Error(err))
		persistErr = &entities.PersistenceError{QuoteNumber: quote.QuoteNumber, Err: err}
		saved = entities.SavedQuote{}
	}

	doc := session.Document{
		FileName: entities.QuoteDocumentFileName(snap.Info.QuoteNumber),
		Data:     pdf,
		QuoteID:  saved.ID,
	}
	final, err := u.store.Update(release, sessionID, func(s *session.Session) error {
		s.ReplaceAll(items)
		d := doc
		s.Document = &d
		s.Step = session.StepFinalize
		s.EndFinalize()
		s.UpdatedAt = now
		return nil
	})
	if err != nil {
		log.Error("writing document back to session failed", zap.Error(err))
		final = nil
	} else if final == nil {
		log.Warn("session vanished during finalization, document returned to caller only")
	}

	log.Info("quote finalized",
		zap.String("quote_id", saved.ID),
		zap.Int("items", len(items)),
		zap.Int("warnings", len(warnings)),
		zap.String("total", totals.Total.String()),
	)
	return FinalizeResult{Session: final, Document: doc, Quote: saved, Warnings: warnings}, persistErr
}

func (u *FinalizeUseCase) Document(ctx context.Context, sessionID string) (session.Document, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return session.Document{}, ErrInvalidSessionID
	}
	s, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return session.Document{}, err
	}
	if s == nil {
		return session.Document{}, ErrSessionNotFound
	}
	if s.Document == nil {
		return session.Document{}, ErrDocumentNotFound
	}
	return *s.Document, nil
}
