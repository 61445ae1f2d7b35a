package handlers

import (
	"net/http"

	request "cotizador_inprotar/internal/adapter/http/dto/request"
	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the quote wizard: steps, customer info and items.
type SessionHandler struct {
	usecase usecase.IQuoteSessionUseCase
}

func NewSessionHandler(uc usecase.IQuoteSessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// Start godoc
// @Summary      Start a quote
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	s, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// Get godoc
// @Summary      Get a quote in progress
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.Get(c.Request.Context(), c.Param("id"))
	})
}

func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) Advance(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.Advance(c.Request.Context(), c.Param("id"))
	})
}

func (h *SessionHandler) Retreat(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.Retreat(c.Request.Context(), c.Param("id"))
	})
}

func (h *SessionHandler) Jump(c *gin.Context) {
	var payload request.JumpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.JumpTo(c.Request.Context(), c.Param("id"), payload.Step)
	})
}

// Reset clears the quote and issues a new quote number.
func (h *SessionHandler) Reset(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.Reset(c.Request.Context(), c.Param("id"))
	})
}

// SetInfo godoc
// @Summary      Replace the customer block
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Session ID"
// @Param        payload  body      request.QuoteInfoRequest  true  "Customer info"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{id}/info [put]
func (h *SessionHandler) SetInfo(c *gin.Context) {
	var payload request.QuoteInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.SetInfo(c.Request.Context(), c.Param("id"), payload.ToInfo())
	})
}

func (h *SessionHandler) UpdateInfo(c *gin.Context) {
	var payload request.QuoteInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.UpdateInfo(c.Request.Context(), c.Param("id"), payload.ToPatch())
	})
}

// AddItem godoc
// @Summary      Add a hand-entered item
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        payload  body      request.LineItemRequest  true  "Item"
// @Success      201  {object}  response.SessionResponse
// @Router       /sessions/{id}/items [post]
func (h *SessionHandler) AddItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if payload.NetPrice.IsNegative() || (payload.Quantity != nil && *payload.Quantity < 0) {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToLineItem())
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *SessionHandler) AddFromCatalog(c *gin.Context) {
	var payload request.AddFromCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	s, err := h.usecase.AddFromCatalog(c.Request.Context(), c.Param("id"), payload.CatalogID)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *SessionHandler) UpdateItem(c *gin.Context) {
	var payload request.LineItemPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.Valid() {
		writeError(c, errInvalidPayload)
		return
	}
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToPatch())
	})
}

func (h *SessionHandler) RemoveItem(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	})
}

// LoadSavedQuote reopens a saved quote in the session at the adjustment step.
func (h *SessionHandler) LoadSavedQuote(c *gin.Context) {
	h.respond(c, func() (*session.Session, error) {
		return h.usecase.LoadSavedQuote(c.Request.Context(), c.Param("id"), c.Param("quote_id"))
	})
}

func (h *SessionHandler) respond(c *gin.Context, op func() (*session.Session, error)) {
	s, err := op()
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}
