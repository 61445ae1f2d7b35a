package usecase

//go:generate mockgen -source=quote_session_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_session_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID     = errors.New("invalid session id")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidItemID        = errors.New("invalid item id")
	ErrInvalidCatalogRef    = errors.New("invalid catalog id")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
)

// ValidationError lists the customer fields that block leaving step 1.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// IQuoteSessionUseCase exposes the quote wizard.
//
// Every mutation goes through the session store, which serializes access per session:
//   - step navigation: Advance / Retreat / JumpTo / Reset
//   - customer data: SetInfo / UpdateInfo
//   - items: AddItem / AddFromCatalog / UpdateItem / RemoveItem
//   - LoadSavedQuote re-opens a finalized quote at the adjustment step
type IQuoteSessionUseCase interface {
	Start(ctx context.Context) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
	Advance(ctx context.Context, id string) (*session.Session, error)
	Retreat(ctx context.Context, id string) (*session.Session, error)
	JumpTo(ctx context.Context, id string, step int) (*session.Session, error)
	Reset(ctx context.Context, id string) (*session.Session, error)
	SetInfo(ctx context.Context, id string, info entities.QuoteInfo) (*session.Session, error)
	UpdateInfo(ctx context.Context, id string, patch entities.QuoteInfoPatch) (*session.Session, error)
	AddItem(ctx context.Context, id string, item entities.LineItem) (*session.Session, error)
	AddFromCatalog(ctx context.Context, id, catalogID string) (*session.Session, error)
	UpdateItem(ctx context.Context, id, itemID string, patch entities.LineItemPatch) (*session.Session, error)
	RemoveItem(ctx context.Context, id, itemID string) (*session.Session, error)
	LoadSavedQuote(ctx context.Context, id, quoteID string) (*session.Session, error)
}

type QuoteSessionUseCase struct {
	store   interfaces.ISessionStore
	catalog interfaces.ICatalogRepository
	quotes  interfaces.IQuoteRepository
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(store interfaces.ISessionStore, catalog interfaces.ICatalogRepository, quotes interfaces.IQuoteRepository) *QuoteSessionUseCase {
	return &QuoteSessionUseCase{store: store, catalog: catalog, quotes: quotes}
}

func (u *QuoteSessionUseCase) Start(ctx context.Context) (*session.Session, error) {
	s := session.New(uuid.NewString(), time.Now())
	if err := u.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s.Clone(), nil
}

func (u *QuoteSessionUseCase) Get(ctx context.Context, id string) (*session.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *QuoteSessionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	deleted, err := u.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

// Advance moves forward one step. Leaving step 1 requires the customer fields.
func (u *QuoteSessionUseCase) Advance(ctx context.Context, id string) (*session.Session, error) {
	return u.mutate(ctx, id, func(s *session.Session) error {
		if s.Step == session.StepCustomerInfo {
			if missing := s.Info.MissingRequired(); len(missing) > 0 {
				return &ValidationError{Fields: missing}
			}
		}
		s.Advance()
		return nil
	})
}

func (u *QuoteSessionUseCase) Retreat(ctx context.Context, id string) (*session.Session, error) {
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.Retreat()
		return nil
	})
}

func (u *QuoteSessionUseCase) JumpTo(ctx context.Context, id string, step int) (*session.Session, error) {
	return u.mutate(ctx, id, func(s *session.Session) error {
		return s.JumpTo(step)
	})
}

func (u *QuoteSessionUseCase) Reset(ctx context.Context, id string) (*session.Session, error) {
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.Reset(time.Now())
		return nil
	})
}

func (u *QuoteSessionUseCase) SetInfo(ctx context.Context, id string, info entities.QuoteInfo) (*session.Session, error) {
	info.CustomerRut = entities.FormatRut(info.CustomerRut)
	return u.mutate(ctx, id, func(s *session.Session) error {
		if strings.TrimSpace(info.QuoteNumber) == "" {
			info.QuoteNumber = s.Info.QuoteNumber
		}
		if strings.TrimSpace(info.Date) == "" {
			info.Date = s.Info.Date
		}
		s.SetInfo(info)
		return nil
	})
}

func (u *QuoteSessionUseCase) UpdateInfo(ctx context.Context, id string, patch entities.QuoteInfoPatch) (*session.Session, error) {
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.UpdateInfo(patch)
		return nil
	})
}

// AddItem appends a manually entered item. The item id is always assigned here.
func (u *QuoteSessionUseCase) AddItem(ctx context.Context, id string, item entities.LineItem) (*session.Session, error) {
	item.ID = uuid.NewString()
	item.Name = strings.TrimSpace(item.Name)
	item.SKU = ""
	if item.DeliveryType == entities.DeliveryImport && item.DeliveryDays == 0 {
		item.DeliveryDays = entities.DefaultImportDeliveryDays
	}
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.AddItem(item)
		return nil
	})
}

// AddFromCatalog copies a catalog entry into the quote with quantity 1.
func (u *QuoteSessionUseCase) AddFromCatalog(ctx context.Context, id, catalogID string) (*session.Session, error) {
	catalogID = strings.TrimSpace(catalogID)
	if catalogID == "" {
		return nil, ErrInvalidCatalogRef
	}
	entry, err := u.catalog.GetByID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		return nil, ErrCatalogEntryNotFound
	}
	item := entry.ToLineItem(uuid.NewString())
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.AddItem(item)
		return nil
	})
}

// UpdateItem merges patch into the item; an unknown item id leaves the quote untouched.
func (u *QuoteSessionUseCase) UpdateItem(ctx context.Context, id, itemID string, patch entities.LineItemPatch) (*session.Session, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.UpdateItem(itemID, patch)
		return nil
	})
}

// RemoveItem drops the item; an unknown item id leaves the quote untouched.
func (u *QuoteSessionUseCase) RemoveItem(ctx context.Context, id, itemID string) (*session.Session, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidItemID
	}
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.RemoveItem(itemID)
		return nil
	})
}

// LoadSavedQuote replaces the session content with a saved quote and jumps to
// the adjustment step, so prices can be revised before finalizing again.
func (u *QuoteSessionUseCase) LoadSavedQuote(ctx context.Context, id, quoteID string) (*session.Session, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuoteNotFound
	}
	return u.mutate(ctx, id, func(s *session.Session) error {
		s.ReplaceAll(q.Products)
		s.SetInfo(q.Info)
		s.Selection = nil
		s.Document = nil
		return s.JumpTo(session.StepAdjustment)
	})
}

func (u *QuoteSessionUseCase) mutate(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	s, err := u.store.Update(ctx, id, func(s *session.Session) error {
		// The finalization writes the reconciled items back; nothing may change underneath it.
		if s.Finalizing() {
			return session.ErrFinalizeInProgress
		}
		if err := fn(s); err != nil {
			return err
		}
		s.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
