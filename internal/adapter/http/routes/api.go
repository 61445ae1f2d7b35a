package routes

import (
	"net/http"

	"cotizador_inprotar/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions   = "/sessions"
	PathQuotes     = "/quotes"
	PathCatalog    = "/catalog"
	PathPending    = "/pending"
	PathCategories = "/categories"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addSessionRoutes(rg *gin.RouterGroup, h Handlers) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.Sessions.Start)
		sessions.GET("/:id", h.Sessions.Get)
		sessions.DELETE("/:id", h.Sessions.Delete)

		sessions.POST("/:id/advance", h.Sessions.Advance)
		sessions.POST("/:id/retreat", h.Sessions.Retreat)
		sessions.POST("/:id/jump", h.Sessions.Jump)
		sessions.POST("/:id/reset", h.Sessions.Reset)

		sessions.PUT("/:id/info", h.Sessions.SetInfo)
		sessions.PATCH("/:id/info", h.Sessions.UpdateInfo)

		sessions.POST("/:id/items", h.Sessions.AddItem)
		sessions.POST("/:id/items/catalog", h.Sessions.AddFromCatalog)
		sessions.PATCH("/:id/items/:item_id", h.Sessions.UpdateItem)
		sessions.DELETE("/:id/items/:item_id", h.Sessions.RemoveItem)

		sessions.POST("/:id/extractions", h.Extraction.Extract)
		sessions.POST("/:id/extractions/selection", h.Extraction.ResolveSelection)
		sessions.DELETE("/:id/extractions/selection", h.Extraction.CancelSelection)

		sessions.POST("/:id/finalize", h.Finalize.Finalize)
		sessions.GET("/:id/document", h.Finalize.Document)
		sessions.POST("/:id/load/:quote_id", h.Sessions.LoadSavedQuote)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.List)
		quotes.GET("/:id", h.Get)
		quotes.DELETE("/:id", h.Delete)
		quotes.POST("/:id/payment-link", h.CreatePaymentLink)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalog *handlers.CatalogHandler, pending *handlers.PendingHandler, categories *handlers.CategoryHandler) {
	products := rg.Group(PathCatalog)
	{
		products.GET("", catalog.List)
		products.GET("/:id", catalog.Get)
		products.PATCH("/:id", catalog.Update)
		products.DELETE("/:id", catalog.Delete)
	}

	queue := rg.Group(PathPending)
	{
		queue.GET("", pending.List)
		queue.GET("/count", pending.Count)
		queue.POST("/:id/approve", pending.Approve)
		queue.POST("/:id/reject", pending.Reject)
	}

	cats := rg.Group(PathCategories)
	{
		cats.GET("", categories.List)
		cats.POST("", categories.Create)
		cats.DELETE("/:id", categories.Delete)
	}
}
