// Package triage decides how the candidates of one extraction enter a quote.
package triage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cotizador_inprotar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSelection   = errors.New("invalid candidate selection")
	ErrInvalidDisposition = errors.New("invalid disposition for unselected candidates")
)

// Decision is the routing outcome for an ExtractionResult.
type Decision int

const (
	// DecisionNothing: no candidates, nothing changes.
	DecisionNothing Decision = iota
	// DecisionAutoAdd: exactly one unambiguous candidate, promoted without asking.
	DecisionAutoAdd
	// DecisionSelect: the user has to pick, and explicitly dispose of the rest.
	DecisionSelect
)

func (d Decision) String() string {
	switch d {
	case DecisionNothing:
		return "nothing_detected"
	case DecisionAutoAdd:
		return "auto_added"
	case DecisionSelect:
		return "selection_required"
	}
	return fmt.Sprintf("decision(%d)", int(d))
}

func Decide(r entities.ExtractionResult) Decision {
	switch {
	case len(r.Products) == 0:
		return DecisionNothing
	case len(r.Products) == 1 && !r.MultipleModelsFound:
		return DecisionAutoAdd
	default:
		return DecisionSelect
	}
}

// Promote turns a candidate into a line item. Price is never inferred: it
// starts at zero and is entered by hand later.
func Promote(c entities.ExtractedCandidate, id string) entities.LineItem {
	brand := strings.TrimSpace(c.Brand)
	if brand == "" {
		brand = entities.DefaultBrand
	}
	return entities.LineItem{
		ID:           id,
		Name:         c.DisplayName(),
		Brand:        brand,
		Description:  c.Description,
		Quantity:     1,
		Unit:         entities.ParseUnit(string(c.SuggestedUnit)),
		NetPrice:     decimal.Zero,
		DeliveryType: entities.DeliveryImmediate,
		DeliveryDays: 0,
		Category:     c.Category,
	}
}

// Disposition is what happens to candidates the user did not select.
type Disposition string

const (
	DispositionQueue   Disposition = "queue"
	DispositionDiscard Disposition = "discard"
)

func (d Disposition) IsValid() bool {
	return d == DispositionQueue || d == DispositionDiscard
}

// Selection is a multi-candidate result waiting for the user's choice.
type Selection struct {
	ID         string
	Candidates []entities.ExtractedCandidate
	CreatedAt  time.Time
}

// Split partitions the candidates into selected (in index order given) and the rest
// (in original order). Indices must be in range; duplicates are ignored.
func (s Selection) Split(selected []int) (chosen, rest []entities.ExtractedCandidate, err error) {
	picked := make(map[int]bool, len(selected))
	for _, idx := range selected {
		if idx < 0 || idx >= len(s.Candidates) {
			return nil, nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSelection, idx, len(s.Candidates))
		}
		if picked[idx] {
			continue
		}
		picked[idx] = true
		chosen = append(chosen, s.Candidates[idx])
	}
	for i, c := range s.Candidates {
		if !picked[i] {
			rest = append(rest, c)
		}
	}
	return chosen, rest, nil
}

// PendingRecords builds the queue records for unselected candidates.
func PendingRecords(candidates []entities.ExtractedCandidate, newID func() string, now time.Time) []entities.PendingReviewRecord {
	records := make([]entities.PendingReviewRecord, 0, len(candidates))
	for _, c := range candidates {
		brand := strings.TrimSpace(c.Brand)
		if brand == "" {
			brand = entities.DefaultBrand
		}
		records = append(records, entities.PendingReviewRecord{
			ID:            newID(),
			Name:          c.Name,
			Brand:         brand,
			Description:   c.Description,
			SuggestedUnit: entities.ParseUnit(string(c.SuggestedUnit)),
			SpecDetails:   c.SpecDetails,
			Category:      c.Category,
			Status:        entities.PendingStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return records
}
