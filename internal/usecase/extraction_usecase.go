package usecase

//go:generate mockgen -source=extraction_usecase.go -destination=../adapter/http/handlers/mocks/mock_extraction_usecase.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/domain/triage"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyPayload         = errors.New("empty document")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrSelectionChanged     = errors.New("candidate selection changed while resolving")
)

// supportedMediaTypes are the payloads the extraction backends understand.
var supportedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
}

// ExtractionOutcome reports how a document entered the quote.
type ExtractionOutcome struct {
	Decision  triage.Decision
	Added     []entities.LineItem
	Selection *triage.Selection
	Session   *session.Session
}

// SelectionOutcome reports the resolution of a staged selection.
type SelectionOutcome struct {
	Added     []entities.LineItem
	Queued    []entities.PendingReviewRecord
	Discarded int
	Session   *session.Session
}

// IExtractionUseCase sends documents through extraction and triage.
//
//   - Extract: nothing detected / auto-add a single candidate / stage a selection
//   - ResolveSelection: promote the chosen candidates and dispose of the rest
//   - CancelSelection: discard every staged candidate
type IExtractionUseCase interface {
	Extract(ctx context.Context, sessionID string, payload []byte, mimeType string) (ExtractionOutcome, error)
	ResolveSelection(ctx context.Context, sessionID string, selected []int, disposition triage.Disposition) (SelectionOutcome, error)
	CancelSelection(ctx context.Context, sessionID string) (SelectionOutcome, error)
}

type ExtractionUseCase struct {
	store     interfaces.ISessionStore
	extractor interfaces.IProductExtractor
	pending   interfaces.IPendingProductRepository
}

var _ IExtractionUseCase = (*ExtractionUseCase)(nil)

func NewExtractionUseCase(store interfaces.ISessionStore, extractor interfaces.IProductExtractor, pending interfaces.IPendingProductRepository) *ExtractionUseCase {
	return &ExtractionUseCase{store: store, extractor: extractor, pending: pending}
}

// Extract runs the document through the extraction backends. On failure the
// session is left exactly as it was.
func (u *ExtractionUseCase) Extract(ctx context.Context, sessionID string, payload []byte, mimeType string) (ExtractionOutcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ExtractionOutcome{}, ErrInvalidSessionID
	}
	if len(payload) == 0 {
		return ExtractionOutcome{}, ErrEmptyPayload
	}
	mimeType = normalizeMediaType(mimeType)
	if !supportedMediaTypes[mimeType] {
		return ExtractionOutcome{}, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mimeType)
	}

	current, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return ExtractionOutcome{}, err
	}
	if current == nil {
		return ExtractionOutcome{}, ErrSessionNotFound
	}
	if current.Selection != nil {
		return ExtractionOutcome{}, session.ErrSelectionPending
	}

	result, err := u.extractor.Extract(ctx, payload, mimeType)
	if err != nil {
		zap.L().Warn("extraction failed", zap.String("session_id", sessionID), zap.Error(err))
		return ExtractionOutcome{}, err
	}

	decision := triage.Decide(result)
	zap.L().Info("extraction triaged",
		zap.String("session_id", sessionID),
		zap.Stringer("decision", decision),
		zap.Int("candidates", len(result.Products)),
		zap.Bool("multiple_models", result.MultipleModelsFound),
	)

	out := ExtractionOutcome{Decision: decision}
	switch decision {
	case triage.DecisionNothing:
		out.Session = current
		return out, nil
	case triage.DecisionAutoAdd:
		item := triage.Promote(result.Products[0], uuid.NewString())
		s, err := u.update(ctx, sessionID, func(s *session.Session) error {
			s.AddItem(item)
			return nil
		})
		if err != nil {
			return ExtractionOutcome{}, err
		}
		added, _ := s.Item(item.ID)
		out.Added = []entities.LineItem{added}
		out.Session = s
		return out, nil
	default:
		sel := triage.Selection{ID: uuid.NewString(), Candidates: result.Products, CreatedAt: time.Now().UTC()}
		s, err := u.update(ctx, sessionID, func(s *session.Session) error {
			return s.StageSelection(sel)
		})
		if err != nil {
			return ExtractionOutcome{}, err
		}
		out.Selection = s.Selection
		out.Session = s
		return out, nil
	}
}

// ResolveSelection promotes the selected candidates into the quote. Any
// candidate left over needs an explicit disposition: queue persists it for
// review, discard drops it. The queue write happens before the selection is
// consumed, so a failed write leaves the selection staged for a retry.
func (u *ExtractionUseCase) ResolveSelection(ctx context.Context, sessionID string, selected []int, disposition triage.Disposition) (SelectionOutcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SelectionOutcome{}, ErrInvalidSessionID
	}
	current, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return SelectionOutcome{}, err
	}
	if current == nil {
		return SelectionOutcome{}, ErrSessionNotFound
	}
	if current.Selection == nil {
		return SelectionOutcome{}, session.ErrNoSelection
	}
	staged := *current.Selection

	chosen, rest, err := staged.Split(selected)
	if err != nil {
		return SelectionOutcome{}, err
	}
	if len(rest) > 0 && !disposition.IsValid() {
		return SelectionOutcome{}, triage.ErrInvalidDisposition
	}

	var queued []entities.PendingReviewRecord
	if len(rest) > 0 && disposition == triage.DispositionQueue {
		queued = triage.PendingRecords(rest, uuid.NewString, time.Now().UTC())
		if err := u.pending.CreateBatch(ctx, queued); err != nil {
			return SelectionOutcome{}, err
		}
	}

	items := make([]entities.LineItem, 0, len(chosen))
	for _, c := range chosen {
		items = append(items, triage.Promote(c, uuid.NewString()))
	}

	s, err := u.update(ctx, sessionID, func(s *session.Session) error {
		taken, err := s.TakeSelection()
		if err != nil {
			return err
		}
		if taken.ID != staged.ID {
			return ErrSelectionChanged
		}
		for _, it := range items {
			s.AddItem(it)
		}
		return nil
	})
	if err != nil {
		return SelectionOutcome{}, err
	}

	out := SelectionOutcome{Queued: queued, Session: s}
	for _, it := range items {
		added, _ := s.Item(it.ID)
		out.Added = append(out.Added, added)
	}
	if disposition != triage.DispositionQueue {
		out.Discarded = len(rest)
	}
	return out, nil
}

func (u *ExtractionUseCase) CancelSelection(ctx context.Context, sessionID string) (SelectionOutcome, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SelectionOutcome{}, ErrInvalidSessionID
	}
	var discarded int
	s, err := u.update(ctx, sessionID, func(s *session.Session) error {
		sel, err := s.TakeSelection()
		if err != nil {
			return err
		}
		discarded = len(sel.Candidates)
		return nil
	})
	if err != nil {
		return SelectionOutcome{}, err
	}
	return SelectionOutcome{Discarded: discarded, Session: s}, nil
}

func (u *ExtractionUseCase) update(ctx context.Context, sessionID string, fn func(s *session.Session) error) (*session.Session, error) {
	s, err := u.store.Update(ctx, sessionID, func(s *session.Session) error {
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

// normalizeMediaType drops parameters and fixes the common "image/jpg" alias.
func normalizeMediaType(mimeType string) string {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}
	return mt
}
