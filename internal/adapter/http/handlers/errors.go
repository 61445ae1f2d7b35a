package handlers

import (
	"errors"
	"net/http"

	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/domain/session"
	"cotizador_inprotar/internal/domain/triage"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapSessionError covers the errors any session-scoped operation can return.
func mapSessionError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	var failure *entities.ExtractionFailure
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Required customer fields are missing", http.StatusUnprocessableEntity).
			WithDetails(map[string]any{"fields": validation.Fields})
	case errors.As(err, &failure):
		return pkg.NewDomainError("EXTRACTION_FAILED", failure.Error(), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidCatalogRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, session.ErrInvalidStep):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Step must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Catalog entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPayload):
		return pkg.NewDomainErrorSimple("EMPTY_DOCUMENT", "The uploaded document is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedMediaType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_MEDIA_TYPE", "Only images and PDF documents are accepted", http.StatusUnsupportedMediaType)
	case errors.Is(err, session.ErrSelectionPending):
		return pkg.NewDomainErrorSimple("SELECTION_PENDING", "Resolve the pending candidate selection first", http.StatusConflict)
	case errors.Is(err, session.ErrNoSelection):
		return pkg.NewDomainErrorSimple("NO_SELECTION", "There is no candidate selection to resolve", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelectionChanged):
		return pkg.NewDomainErrorSimple("SELECTION_CHANGED", "The candidate selection changed, try again", http.StatusConflict)
	case errors.Is(err, triage.ErrInvalidSelection), errors.Is(err, triage.ErrInvalidDisposition):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", err.Error(), http.StatusBadRequest)
	case errors.Is(err, session.ErrFinalizeInProgress):
		return pkg.NewDomainErrorSimple("FINALIZE_IN_PROGRESS", "The quote is being finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrEmptyQuote):
		return pkg.NewDomainErrorSimple("EMPTY_QUOTE", "Add at least one item before finalizing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDocumentRender):
		return pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "The quote document could not be generated", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "No document has been generated for this session", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
