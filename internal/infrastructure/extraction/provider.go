package extraction

import "context"

const mimePDF = "application/pdf"

// Input is one document handed to a backend.
type Input struct {
	Data     []byte
	MimeType string
}

// Provider is a single vision backend. Complete returns the raw reply text;
// parsing and validation happen in the Gateway.
type Provider interface {
	Name() string
	// AcceptsPDF reports whether PDFs can be sent as-is. Image-only providers
	// get the first page rasterized.
	AcceptsPDF() bool
	Complete(ctx context.Context, in Input) (string, error)
}
