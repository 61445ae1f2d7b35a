package entities

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestNextQuoteNumber(t *testing.T) {
	format := regexp.MustCompile(`^COT-\d{4}$`)

	t.Run("format", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			if n := NextQuoteNumber(""); !format.MatchString(n) {
				t.Fatalf("unexpected quote number %q", n)
			}
		}
	})

	t.Run("differs from previous", func(t *testing.T) {
		orig := quoteNumberSource
		t.Cleanup(func() { quoteNumberSource = orig })

		seq := []int{1234, 1234, 1234, 5678}
		quoteNumberSource = func() int {
			n := seq[0]
			seq = seq[1:]
			return n
		}
		if got := NextQuoteNumber("COT-1234"); got != "COT-5678" {
			t.Fatalf("expected COT-5678, got %s", got)
		}
	})
}

func TestNewQuoteInfo(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	info := NewQuoteInfo(now, "")
	if info.Date != "07-03-2026" {
		t.Fatalf("unexpected date %q", info.Date)
	}
	if !info.TaxRate.Equal(DefaultTaxRate) {
		t.Fatalf("unexpected tax rate %s", info.TaxRate)
	}
	if info.CustomerName != "" || info.QuoteNumber == "" {
		t.Fatalf("unexpected defaults: %+v", info)
	}
}

func TestQuoteInfo_MissingRequired(t *testing.T) {
	info := QuoteInfo{CustomerName: "Ana", CustomerEmail: "  "}
	missing := info.MissingRequired()
	want := []string{"customer_company", "customer_rut", "customer_email"}
	if len(missing) != len(want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, missing)
		}
	}

	full := QuoteInfo{CustomerName: "Ana", CustomerCompany: "ACME", CustomerRut: "1-9", CustomerEmail: "a@acme.cl"}
	if len(full.MissingRequired()) != 0 {
		t.Fatalf("expected no missing fields")
	}
}

func TestQuoteInfoPatch_FormatsRut(t *testing.T) {
	rut := "76354321-9"
	info := QuoteInfoPatch{CustomerRut: &rut}.Apply(QuoteInfo{CustomerName: "Ana"})
	if info.CustomerRut != "76.354.321-9" || info.CustomerName != "Ana" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestFormatRut(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"k":            "K",
		"19":           "1-9",
		"123456785":    "12.345.678-5",
		"12.345.678-k": "12.345.678-K",
		"76354321-9":   "76.354.321-9",
		"abc":          "",
	}
	for in, want := range cases {
		if got := FormatRut(in); got != want {
			t.Fatalf("FormatRut(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractionFailure(t *testing.T) {
	f := &ExtractionFailure{Attempts: []BackendError{
		{Backend: "anthropic", Err: errors.New("timeout")},
		{Backend: "groq", Err: errors.New("malformed json")},
	}}
	if !errors.Is(f, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed match")
	}
	if got := f.Error(); got != "extraction failed after [anthropic -> groq]: anthropic: timeout; groq: malformed json" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("dynamo down")
	err := &PersistenceError{QuoteNumber: "COT-1000", Err: cause}
	if !errors.Is(err, ErrQuotePersistence) || !errors.Is(err, cause) {
		t.Fatalf("expected both sentinel and cause to match")
	}
}

func TestCandidateDisplayName(t *testing.T) {
	if got := (ExtractedCandidate{Name: "Breaker", SpecDetails: "32 Amperes"}).DisplayName(); got != "Breaker (32 Amperes)" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := (ExtractedCandidate{Name: "Breaker"}).DisplayName(); got != "Breaker" {
		t.Fatalf("unexpected name %q", got)
	}
	if QuoteDocumentFileName("COT-1000") != "Cotizacion_Inprotar_COT-1000.pdf" {
		t.Fatalf("unexpected file name")
	}
}
