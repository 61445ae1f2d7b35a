package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "cotizador_inprotar/docs"
	"cotizador_inprotar/internal/adapter/http/handlers"
	"cotizador_inprotar/internal/adapter/persistence/memory"
	"cotizador_inprotar/internal/adapter/persistence/repository"
	"cotizador_inprotar/internal/config"
	"cotizador_inprotar/internal/infrastructure/database"
	"cotizador_inprotar/internal/infrastructure/extraction"
	"cotizador_inprotar/internal/infrastructure/payments"
	"cotizador_inprotar/internal/infrastructure/printing"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const defaultPort = 8080

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Sessions   *handlers.SessionHandler
	Extraction *handlers.ExtractionHandler
	Finalize   *handlers.FinalizeHandler
	Quotes     *handlers.QuoteHandler
	Catalog    *handlers.CatalogHandler
	Pending    *handlers.PendingHandler
	Categories *handlers.CategoryHandler
	Auth       *handlers.AuthHandler
}

// Run wires the application from cfg and starts the server.
func Run(cfg *config.Config) error {
	logger := zap.L()

	h, cleanup, err := build(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	Register(router, h)

	port := cfg.Server.Port
	if port == 0 {
		port = defaultPort
	}
	logger.Info("starting server", zap.Int("port", port))
	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		return eris.Wrap(err, "failed to start the application")
	}
	return nil
}

// Register mounts the /v1 API on r.
func Register(r *gin.Engine, h Handlers) {
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/login", h.Auth.Login)
	addSessionRoutes(v1, h)
	addQuoteRoutes(v1, h.Quotes)
	addCatalogRoutes(v1, h.Catalog, h.Pending, h.Categories)
}

func build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, func(), error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, nil, err
	}
	tables := cfg.DynamoDB.Tables

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, tables.Quotes)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb, tables.Products, tables.ProductNames)
	pendingRepo := repository.NewPendingProductDynamoRepository(ddb, tables.PendingProducts)
	categoryRepo := repository.NewCategoryDynamoRepository(ddb, tables.Categories)
	linkRepo := repository.NewPaymentLinkDynamoRepository(ddb, tables.PaymentLinks)
	skus := repository.NewSkuDynamoSequencer(ddb, tables.SkuSequences)
	store := memory.NewSessionStore()

	gateway := buildExtractionGateway(cfg, logger)

	renderer := printing.NewChromedpRenderer(cfg.Printing, printing.DefaultLetterhead, logger)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	reconciler := usecase.NewCatalogReconciler(catalogRepo, skus, logger)

	h := Handlers{
		Sessions:   handlers.NewSessionHandler(usecase.NewQuoteSessionUseCase(store, catalogRepo, quoteRepo)),
		Extraction: handlers.NewExtractionHandler(usecase.NewExtractionUseCase(store, gateway, pendingRepo), int64(cfg.Extraction.MaxUploadMegabytes)<<20),
		Finalize:   handlers.NewFinalizeHandler(usecase.NewFinalizeUseCase(store, reconciler, renderer, quoteRepo)),
		Quotes:     handlers.NewQuoteHandler(usecase.NewQuoteHistoryUseCase(quoteRepo), usecase.NewPaymentLinkUseCase(quoteRepo, linkRepo, paymentGateway)),
		Catalog:    handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogRepo)),
		Pending:    handlers.NewPendingHandler(usecase.NewPendingReviewUseCase(pendingRepo, catalogRepo, skus)),
		Categories: handlers.NewCategoryHandler(usecase.NewCategoryUseCase(categoryRepo)),
		Auth:       handlers.NewAuthHandler(usecase.NewAuthUseCase(cfg.Auth.Username, cfg.Auth.Password)),
	}

	cleanup := func() {
		if err := renderer.Close(); err != nil {
			logger.Warn("closing renderer", zap.Error(err))
		}
	}
	return h, cleanup, nil
}

// buildExtractionGateway orders the configured vision backends: Anthropic
// first, then the chat-completions fallback.
func buildExtractionGateway(cfg *config.Config, logger *zap.Logger) *extraction.Gateway {
	var providers []extraction.Provider
	if cfg.Anthropic.Key != "" {
		providers = append(providers, extraction.NewAnthropicProvider(cfg.Anthropic))
	}
	if cfg.Chat.Key != "" {
		providers = append(providers, extraction.NewChatCompletionsProvider(cfg.Chat, &http.Client{
			Timeout: cfg.Extraction.CallTimeout() + 5*time.Second,
		}))
	}
	if len(providers) == 0 {
		logger.Warn("no extraction backend configured, uploads will fail")
	}

	rasterizer := extraction.NewPdftoppmRasterizer(cfg.Extraction.PdftoppmPath, cfg.Extraction.RasterDPI, nil, logger)
	return extraction.NewGateway(providers, rasterizer, extraction.GatewayConfigFrom(cfg.Extraction), logger)
}

func setMiddlewares(r *gin.Engine, logger *zap.Logger) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
