package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExtractionFailed is matched by every ExtractionFailure.
var ErrExtractionFailed = errors.New("extraction failed")

// BackendError records why one extraction backend gave up.
type BackendError struct {
	Backend string
	Err     error
}

func (e BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

// ExtractionFailure is returned once every extraction backend is exhausted.
type ExtractionFailure struct {
	Attempts []BackendError
}

// Backends returns the exhausted chain in the order it was tried.
func (e *ExtractionFailure) Backends() []string {
	names := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		names = append(names, a.Backend)
	}
	return names
}

func (e *ExtractionFailure) Error() string {
	if len(e.Attempts) == 0 {
		return "extraction failed: no backend configured"
	}
	causes := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		causes = append(causes, a.Error())
	}
	return fmt.Sprintf("extraction failed after [%s]: %s",
		strings.Join(e.Backends(), " -> "), strings.Join(causes, "; "))
}

func (e *ExtractionFailure) Is(target error) bool {
	return target == ErrExtractionFailed
}

// ReconciliationStage names the catalog step that failed for an item.
type ReconciliationStage string

const (
	StageLookup ReconciliationStage = "lookup"
	StageSku    ReconciliationStage = "sku"
	StageInsert ReconciliationStage = "insert"
)

// ReconciliationWarning is a non-fatal catalog failure for one item. The item
// keeps going through finalization without a SKU.
type ReconciliationWarning struct {
	ItemID   string              `json:"item_id"`
	ItemName string              `json:"item_name"`
	Stage    ReconciliationStage `json:"stage"`
	Cause    string              `json:"cause"`
}

func (w ReconciliationWarning) String() string {
	return fmt.Sprintf("%s %q: %s", w.Stage, w.ItemName, w.Cause)
}

// ErrQuotePersistence is matched by every PersistenceError.
var ErrQuotePersistence = errors.New("quote persistence failed")

// PersistenceError reports that the quote record could not be saved after the
// document was rendered.
type PersistenceError struct {
	QuoteNumber string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving quote %s: %v", e.QuoteNumber, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrQuotePersistence
}
