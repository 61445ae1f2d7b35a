package response

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/domain/triage"
	"cotizador_inprotar/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromSession(t *testing.T) {
	s := session.New("s-1", time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC))
	s.AddItem(entities.LineItem{ID: "a", Name: "Cable", Quantity: 2, NetPrice: decimal.NewFromInt(1000)})

	out := FromSession(s)
	if out.ID != "s-1" || out.Step != session.StepCustomerInfo || len(out.Items) != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if !out.Totals.Net.Equal(decimal.NewFromInt(2000)) || !out.Totals.Total.Equal(decimal.NewFromInt(2380)) {
		t.Fatalf("unexpected totals: %+v", out.Totals)
	}
	if out.Selection != nil || out.HasDocument {
		t.Fatalf("unexpected selection/document flags")
	}

	if empty := FromSession(nil); empty.Items == nil {
		t.Fatalf("nil session must render an empty item list")
	}
}

func TestFromExtraction(t *testing.T) {
	sel := &triage.Selection{ID: "sel", Candidates: []entities.ExtractedCandidate{{Name: "A"}, {Name: "B"}}}
	out := FromExtraction(usecase.ExtractionOutcome{Decision: triage.DecisionSelect, Selection: sel})

	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"decision":"selection_required"`) || !strings.Contains(body, `"added":[]`) {
		t.Fatalf("unexpected body %s", body)
	}
	if out.Selection == nil || len(out.Selection.Candidates) != 2 {
		t.Fatalf("expected the staged candidates in the response")
	}
}

func TestFromFinalize(t *testing.T) {
	s := session.New("s-1", time.Now())
	r := usecase.FinalizeResult{
		Session:  s,
		Document: session.Document{FileName: "Cotizacion_Inprotar_COT-1000.pdf"},
	}
	out := FromFinalize(r, "/v1/sessions/s-1/document", errors.New("dynamo down"))
	if out.PersistenceError != "dynamo down" || out.QuoteID != "" || out.Warnings == nil {
		t.Fatalf("unexpected response: %+v", out)
	}
	if out.QuoteNumber != s.Info.QuoteNumber {
		t.Fatalf("expected quote number %s, got %s", s.Info.QuoteNumber, out.QuoteNumber)
	}
}

func TestNonNil(t *testing.T) {
	raw, _ := json.Marshal(NonNil[entities.Category](nil))
	if string(raw) != "[]" {
		t.Fatalf("expected [], got %s", raw)
	}
}
