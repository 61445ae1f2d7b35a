// Package session holds the in-progress quote and its step machine.
//
// A Session is not safe for concurrent use; the session store serializes access.
package session

import (
	"errors"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/triage"

	"github.com/shopspring/decimal"
)

// Steps of the quote wizard.
const (
	StepCustomerInfo  = 1
	StepItemSelection = 2
	StepAdjustment    = 3
	StepReview        = 4
	StepFinalize      = 5
)

var (
	ErrInvalidStep        = errors.New("step out of range")
	ErrFinalizeInProgress = errors.New("finalization already in progress")
	ErrSelectionPending   = errors.New("a candidate selection is waiting for a decision")
	ErrNoSelection        = errors.New("no candidate selection staged")
)

// Document is the last quote document rendered for the session.
type Document struct {
	FileName string
	Data     []byte
	QuoteID  string
}

// Totals are the derived amounts of a quote.
type Totals struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

type Session struct {
	ID        string
	Step      int
	Info      entities.QuoteInfo
	Items     []entities.LineItem
	Selection *triage.Selection
	Document  *Document
	CreatedAt time.Time
	UpdatedAt time.Time

	finalizing bool
}

// New starts a quote at step 1 with fresh customer defaults.
func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      StepCustomerInfo,
		Info:      entities.NewQuoteInfo(now, ""),
		Items:     []entities.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves one step forward, clamped at the last step.
func (s *Session) Advance() {
	if s.Step < StepFinalize {
		s.Step++
	}
}

// Retreat moves one step back, clamped at the first step.
func (s *Session) Retreat() {
	if s.Step > StepCustomerInfo {
		s.Step--
	}
}

// JumpTo sets the step directly. Only the range is checked.
func (s *Session) JumpTo(step int) error {
	if step < StepCustomerInfo || step > StepFinalize {
		return ErrInvalidStep
	}
	s.Step = step
	return nil
}

// AddItem appends without deduplication.
func (s *Session) AddItem(item entities.LineItem) {
	s.Items = append(s.Items, item.Normalized())
}

// UpdateItem merges patch into the item with the given id. It reports whether
// the item was found; a missing id is a no-op.
func (s *Session) UpdateItem(id string, patch entities.LineItemPatch) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items[i] = patch.Apply(s.Items[i])
			return true
		}
	}
	return false
}

// RemoveItem drops the item with the given id; a missing id is a no-op.
func (s *Session) RemoveItem(id string) bool {
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Item returns a copy of the item with the given id.
func (s *Session) Item(id string) (entities.LineItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return entities.LineItem{}, false
}

func (s *Session) ReplaceAll(items []entities.LineItem) {
	next := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		next = append(next, it.Normalized())
	}
	s.Items = next
}

func (s *Session) SetInfo(info entities.QuoteInfo) {
	if info.TaxRate.IsZero() {
		info.TaxRate = entities.DefaultTaxRate
	}
	s.Info = info
}

func (s *Session) UpdateInfo(patch entities.QuoteInfoPatch) {
	s.Info = patch.Apply(s.Info)
}

// Reset clears the quote and starts over at step 1 with a new quote number.
// A staged selection and the last document are dropped with it.
func (s *Session) Reset(now time.Time) {
	s.Items = []entities.LineItem{}
	s.Info = entities.NewQuoteInfo(now, s.Info.QuoteNumber)
	s.Step = StepCustomerInfo
	s.Selection = nil
	s.Document = nil
}

// NetTotal is Σ quantity × net price over the current items.
func (s *Session) NetTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (s *Session) Tax() decimal.Decimal {
	return s.NetTotal().Mul(s.taxRate())
}

func (s *Session) Total() decimal.Decimal {
	net := s.NetTotal()
	return net.Add(net.Mul(s.taxRate()))
}

func (s *Session) Totals() Totals {
	net := s.NetTotal()
	tax := net.Mul(s.taxRate())
	return Totals{Net: net, Tax: tax, Total: net.Add(tax)}
}

func (s *Session) taxRate() decimal.Decimal {
	if s.Info.TaxRate.IsZero() {
		return entities.DefaultTaxRate
	}
	return s.Info.TaxRate
}

// StageSelection parks a multi-candidate result. It refuses to overwrite a
// selection that has not been resolved yet.
func (s *Session) StageSelection(sel triage.Selection) error {
	if s.Selection != nil {
		return ErrSelectionPending
	}
	s.Selection = &sel
	return nil
}

// TakeSelection removes and returns the staged selection.
func (s *Session) TakeSelection() (triage.Selection, error) {
	if s.Selection == nil {
		return triage.Selection{}, ErrNoSelection
	}
	sel := *s.Selection
	s.Selection = nil
	return sel, nil
}

// BeginFinalize marks the session as finalizing; a second call fails until
// EndFinalize.
func (s *Session) BeginFinalize() error {
	if s.finalizing {
		return ErrFinalizeInProgress
	}
	s.finalizing = true
	return nil
}

func (s *Session) EndFinalize() {
	s.finalizing = false
}

func (s *Session) Finalizing() bool {
	return s.finalizing
}

// Clone returns a deep copy safe to hand out of the store.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Items = append([]entities.LineItem(nil), s.Items...)
	if cp.Items == nil {
		cp.Items = []entities.LineItem{}
	}
	if s.Selection != nil {
		sel := *s.Selection
		sel.Candidates = append([]entities.ExtractedCandidate(nil), s.Selection.Candidates...)
		cp.Selection = &sel
	}
	if s.Document != nil {
		doc := *s.Document
		doc.Data = append([]byte(nil), s.Document.Data...)
		cp.Document = &doc
	}
	return &cp
}
