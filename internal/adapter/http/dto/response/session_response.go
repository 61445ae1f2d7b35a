package response

import (
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/domain/triage"
	"cotizador_inprotar/internal/usecase"

	"github.com/shopspring/decimal"
)

type TotalsResponse struct {
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

type SelectionResponse struct {
	ID         string                        `json:"id"`
	Candidates []entities.ExtractedCandidate `json:"candidates"`
	CreatedAt  time.Time                     `json:"created_at"`
}

// SessionResponse is the full state of a quote in progress.
type SessionResponse struct {
	ID          string              `json:"id"`
	Step        int                 `json:"step"`
	Info        entities.QuoteInfo  `json:"info"`
	Items       []entities.LineItem `json:"items"`
	Totals      TotalsResponse      `json:"totals"`
	Selection   *SelectionResponse  `json:"selection,omitempty"`
	HasDocument bool                `json:"has_document"`
	Finalizing  bool                `json:"finalizing"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromSession(s *session.Session) SessionResponse {
	if s == nil {
		return SessionResponse{Items: []entities.LineItem{}}
	}
	t := s.Totals()
	out := SessionResponse{
		ID:          s.ID,
		Step:        s.Step,
		Info:        s.Info,
		Items:       s.Items,
		Totals:      TotalsResponse{Net: t.Net, Tax: t.Tax, Total: t.Total},
		Selection:   fromSelection(s.Selection),
		HasDocument: s.Document != nil,
		Finalizing:  s.Finalizing(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if out.Items == nil {
		out.Items = []entities.LineItem{}
	}
	return out
}

func fromSelection(sel *triage.Selection) *SelectionResponse {
	if sel == nil {
		return nil
	}
	return &SelectionResponse{ID: sel.ID, Candidates: sel.Candidates, CreatedAt: sel.CreatedAt}
}

// ExtractionResponse reports what one uploaded document did to the quote.
type ExtractionResponse struct {
	Decision  string              `json:"decision"`
	Added     []entities.LineItem `json:"added"`
	Selection *SelectionResponse  `json:"selection,omitempty"`
	Session   SessionResponse     `json:"session"`
}

func FromExtraction(o usecase.ExtractionOutcome) ExtractionResponse {
	added := o.Added
	if added == nil {
		added = []entities.LineItem{}
	}
	return ExtractionResponse{
		Decision:  o.Decision.String(),
		Added:     added,
		Selection: fromSelection(o.Selection),
		Session:   FromSession(o.Session),
	}
}

type SelectionOutcomeResponse struct {
	Added     []entities.LineItem            `json:"added"`
	Queued    []entities.PendingReviewRecord `json:"queued"`
	Discarded int                            `json:"discarded"`
	Session   SessionResponse                `json:"session"`
}

func FromSelectionOutcome(o usecase.SelectionOutcome) SelectionOutcomeResponse {
	out := SelectionOutcomeResponse{
		Added:     o.Added,
		Queued:    o.Queued,
		Discarded: o.Discarded,
		Session:   FromSession(o.Session),
	}
	if out.Added == nil {
		out.Added = []entities.LineItem{}
	}
	if out.Queued == nil {
		out.Queued = []entities.PendingReviewRecord{}
	}
	return out
}

// FinalizeResponse is returned after the quote document has been rendered.
// PersistenceError is set when the document exists but the quote could not
// be saved to history.
type FinalizeResponse struct {
	FileName         string                           `json:"file_name"`
	QuoteID          string                           `json:"quote_id,omitempty"`
	QuoteNumber      string                           `json:"quote_number"`
	DocumentURL      string                           `json:"document_url"`
	Warnings         []entities.ReconciliationWarning `json:"warnings"`
	PersistenceError string                           `json:"persistence_error,omitempty"`
	Session          SessionResponse                  `json:"session"`
}

func FromFinalize(r usecase.FinalizeResult, documentURL string, persistErr error) FinalizeResponse {
	out := FinalizeResponse{
		FileName:    r.Document.FileName,
		QuoteID:     r.Document.QuoteID,
		DocumentURL: documentURL,
		Warnings:    r.Warnings,
		Session:     FromSession(r.Session),
	}
	if r.Session != nil {
		out.QuoteNumber = r.Session.Info.QuoteNumber
	} else {
		out.QuoteNumber = r.Quote.QuoteNumber
	}
	if out.Warnings == nil {
		out.Warnings = []entities.ReconciliationWarning{}
	}
	if persistErr != nil {
		out.PersistenceError = persistErr.Error()
	}
	return out
}
