// Package extraction turns product photos and PDFs into ExtractionResults by
// trying an ordered chain of vision backends.
package extraction

import (
	"context"
	"errors"
	"time"

	"cotizador_inprotar/internal/config"
	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/resilience"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrCallTimeout marks a backend call that exceeded the per-call bound.
var ErrCallTimeout = errors.New("backend call timed out")

// GatewayConfig bounds every backend call.
type GatewayConfig struct {
	CallTimeout       time.Duration
	Retry             resilience.RetryConfig
	RequestsPerMinute int
}

// GatewayConfigFrom maps the extraction section of the app config.
func GatewayConfigFrom(cfg config.ExtractionConfig) GatewayConfig {
	retry := resilience.DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BackoffMillis > 0 {
		retry.Backoff = cfg.Backoff()
	}
	return GatewayConfig{
		CallTimeout:       cfg.CallTimeout(),
		Retry:             retry,
		RequestsPerMinute: cfg.RequestsPerMinute,
	}
}

type backend struct {
	provider Provider
	limiter  *rate.Limiter
}

// Gateway tries each provider in order. Rate limits are retried with linear
// backoff on the same provider; any other failure, a timeout included, moves on
// to the next one.
type Gateway struct {
	backends   []backend
	rasterizer Rasterizer
	cfg        GatewayConfig
	logger     *zap.Logger
}

var _ interfaces.IProductExtractor = (*Gateway)(nil)

func NewGateway(providers []Provider, rasterizer Rasterizer, cfg GatewayConfig, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	backends := make([]backend, 0, len(providers))
	for _, p := range providers {
		backends = append(backends, backend{provider: p, limiter: rate.NewLimiter(limit, 1)})
	}
	return &Gateway{backends: backends, rasterizer: rasterizer, cfg: cfg, logger: logger}
}

// Extract returns the first valid result. When every backend fails the error is
// an *entities.ExtractionFailure naming the chain.
func (g *Gateway) Extract(ctx context.Context, payload []byte, mimeType string) (entities.ExtractionResult, error) {
	if len(payload) == 0 {
		return entities.ExtractionResult{}, eris.New("extraction: empty payload")
	}

	failure := &entities.ExtractionFailure{}
	var rastered *Input

	for _, b := range g.backends {
		name := b.provider.Name()
		in := Input{Data: payload, MimeType: mimeType}

		if mimeType == mimePDF && !b.provider.AcceptsPDF() {
			if rastered == nil {
				img, err := g.rasterize(ctx, payload)
				if err != nil {
					g.logger.Warn("pdf rasterization failed", zap.String("backend", name), zap.Error(err))
					failure.Attempts = append(failure.Attempts, entities.BackendError{Backend: name, Err: err})
					continue
				}
				rastered = &Input{Data: img, MimeType: "image/png"}
			}
			in = *rastered
		}

		start := time.Now()
		result, err := g.try(ctx, b, in)
		if err == nil {
			g.logger.Info("extraction succeeded",
				zap.String("backend", name),
				zap.Int("products", len(result.Products)),
				zap.Bool("multiple_models", result.MultipleModelsFound),
				zap.Duration("elapsed", time.Since(start)),
			)
			return result, nil
		}

		g.logger.Warn("extraction backend failed",
			zap.String("backend", name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		failure.Attempts = append(failure.Attempts, entities.BackendError{Backend: name, Err: err})
		if ctx.Err() != nil {
			break
		}
	}

	if len(failure.Attempts) == 0 {
		failure.Attempts = append(failure.Attempts, entities.BackendError{Backend: "none", Err: eris.New("no extraction backend configured")})
	}
	return entities.ExtractionResult{}, failure
}

func (g *Gateway) rasterize(ctx context.Context, pdf []byte) ([]byte, error) {
	if g.rasterizer == nil {
		return nil, eris.New("no rasterizer configured for PDF input")
	}
	return g.rasterizer.FirstPage(ctx, pdf)
}

func (g *Gateway) try(ctx context.Context, b backend, in Input) (entities.ExtractionResult, error) {
	retry := g.cfg.Retry
	retry.ShouldRetry = resilience.IsRateLimited
	retry.OnRetry = resilience.RetryLogger("extraction", b.provider.Name())

	return resilience.DoVal(ctx, retry, func(ctx context.Context) (entities.ExtractionResult, error) {
		if err := b.limiter.Wait(ctx); err != nil {
			return entities.ExtractionResult{}, eris.Wrap(err, "wait for rate limiter")
		}

		callCtx := ctx
		if g.cfg.CallTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.cfg.CallTimeout)
			defer cancel()
		}

		raw, err := b.provider.Complete(callCtx, in)
		if err != nil {
			if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
				return entities.ExtractionResult{}, eris.Wrapf(ErrCallTimeout, "%s after %s", b.provider.Name(), g.cfg.CallTimeout)
			}
			return entities.ExtractionResult{}, err
		}
		return parseResult(raw)
	})
}
