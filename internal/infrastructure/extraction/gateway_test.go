package extraction

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okReply = `{"multipleModelsFound": false, "products": [{"name": "Breaker", "brand": "Schneider", "description": "Curva C", "suggestedUnit": "u", "specDetails": "32 Amperes"}]}`

type fakeProvider struct {
	name     string
	pdf      bool
	calls    atomic.Int32
	complete func(ctx context.Context, in Input) (string, error)
	inputs   []Input
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) AcceptsPDF() bool { return f.pdf }
func (f *fakeProvider) Complete(ctx context.Context, in Input) (string, error) {
	f.calls.Add(1)
	f.inputs = append(f.inputs, in)
	return f.complete(ctx, in)
}

type fakeRasterizer struct {
	calls int
	err   error
}

func (f *fakeRasterizer) FirstPage(context.Context, []byte) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png-bytes"), nil
}

func testConfig() GatewayConfig {
	return GatewayConfig{
		CallTimeout: 200 * time.Millisecond,
		Retry:       resilience.RetryConfig{MaxAttempts: 3, Backoff: time.Millisecond},
	}
}

func TestGateway_PrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", pdf: true, complete: func(context.Context, Input) (string, error) {
		return "```json\n" + okReply + "\n```", nil
	}}
	fallback := &fakeProvider{name: "chat", complete: func(context.Context, Input) (string, error) {
		t.Fatal("fallback must not be called")
		return "", nil
	}}

	g := NewGateway([]Provider{primary, fallback}, nil, testConfig(), nil)
	res, err := g.Extract(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Breaker", res.Products[0].Name)
	assert.Equal(t, entities.UnitPiece, res.Products[0].SuggestedUnit)
}

func TestGateway_RateLimitRetriedThenSucceeds(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", pdf: true}
	primary.complete = func(context.Context, Input) (string, error) {
		if primary.calls.Load() < 3 {
			return "", resilience.NewRateLimitedError("anthropic", 429, nil)
		}
		return okReply, nil
	}

	g := NewGateway([]Provider{primary}, nil, testConfig(), nil)
	_, err := g.Extract(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, int32(3), primary.calls.Load())
}

func TestGateway_FallsBackOnPersistentRateLimit(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", pdf: true, complete: func(context.Context, Input) (string, error) {
		return "", resilience.NewRateLimitedError("anthropic", 429, nil)
	}}
	fallback := &fakeProvider{name: "chat", complete: func(context.Context, Input) (string, error) {
		return okReply, nil
	}}

	g := NewGateway([]Provider{primary, fallback}, nil, testConfig(), nil)
	res, err := g.Extract(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Len(t, res.Products, 1)
	assert.Equal(t, int32(3), primary.calls.Load())
	assert.Equal(t, int32(1), fallback.calls.Load())
}

func TestGateway_TimeoutMovesOn(t *testing.T) {
	slow := &fakeProvider{name: "anthropic", pdf: true, complete: func(ctx context.Context, _ Input) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	fallback := &fakeProvider{name: "chat", complete: func(context.Context, Input) (string, error) {
		return okReply, nil
	}}

	cfg := testConfig()
	cfg.CallTimeout = 20 * time.Millisecond
	g := NewGateway([]Provider{slow, fallback}, nil, cfg, nil)

	_, err := g.Extract(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, int32(1), slow.calls.Load(), "timeouts are not retried")
}

func TestGateway_PDFRasterizedOnceForImageOnlyProviders(t *testing.T) {
	raster := &fakeRasterizer{}
	a := &fakeProvider{name: "chat-a", complete: func(context.Context, Input) (string, error) {
		return "not json at all", nil
	}}
	b := &fakeProvider{name: "chat-b", complete: func(context.Context, Input) (string, error) {
		return okReply, nil
	}}

	g := NewGateway([]Provider{a, b}, raster, testConfig(), nil)
	_, err := g.Extract(context.Background(), []byte("%PDF"), mimePDF)
	require.NoError(t, err)

	assert.Equal(t, 1, raster.calls)
	require.Len(t, b.inputs, 1)
	assert.Equal(t, "image/png", b.inputs[0].MimeType)
	assert.Equal(t, []byte("png-bytes"), b.inputs[0].Data)
}

func TestGateway_PDFSentAsIsToDocumentProviders(t *testing.T) {
	raster := &fakeRasterizer{}
	p := &fakeProvider{name: "anthropic", pdf: true, complete: func(context.Context, Input) (string, error) {
		return okReply, nil
	}}

	g := NewGateway([]Provider{p}, raster, testConfig(), nil)
	_, err := g.Extract(context.Background(), []byte("%PDF"), mimePDF)
	require.NoError(t, err)
	assert.Equal(t, 0, raster.calls)
	assert.Equal(t, mimePDF, p.inputs[0].MimeType)
}

func TestGateway_AllBackendsFail(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", pdf: true, complete: func(context.Context, Input) (string, error) {
		return "", errors.New("boom")
	}}
	fallback := &fakeProvider{name: "chat", complete: func(context.Context, Input) (string, error) {
		return `{"products": [{"name": ""}]}`, nil
	}}

	g := NewGateway([]Provider{primary, fallback}, nil, testConfig(), nil)
	_, err := g.Extract(context.Background(), []byte("img"), "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrExtractionFailed)

	var failure *entities.ExtractionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, []string{"anthropic", "chat"}, failure.Backends())
	assert.Equal(t, int32(1), primary.calls.Load(), "plain errors are not retried")
}

func TestGateway_RasterFailureRecorded(t *testing.T) {
	raster := &fakeRasterizer{err: errors.New("pdftoppm missing")}
	p := &fakeProvider{name: "chat", complete: func(context.Context, Input) (string, error) {
		t.Fatal("provider must not be called without an image")
		return "", nil
	}}

	g := NewGateway([]Provider{p}, raster, testConfig(), nil)
	_, err := g.Extract(context.Background(), []byte("%PDF"), mimePDF)

	var failure *entities.ExtractionFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, []string{"chat"}, failure.Backends())
}

func TestGatewayConfigFrom(t *testing.T) {
	cfg := GatewayConfigFrom(configFixture())
	assert.Equal(t, 60*time.Second, cfg.CallTimeout)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Retry.Backoff)
	assert.Equal(t, 30, cfg.RequestsPerMinute)
}
