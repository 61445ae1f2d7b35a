package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	request "cotizador_inprotar/internal/adapter/http/dto/request"
	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/domain/triage"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const uploadField = "file"

var errUploadTooLarge = pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "The uploaded document is too large", http.StatusRequestEntityTooLarge)

// ExtractionHandler receives product photos and datasheets and routes the
// extracted candidates into the quote.
type ExtractionHandler struct {
	usecase  usecase.IExtractionUseCase
	maxBytes int64
}

func NewExtractionHandler(uc usecase.IExtractionUseCase, maxBytes int64) *ExtractionHandler {
	return &ExtractionHandler{usecase: uc, maxBytes: maxBytes}
}

// Extract godoc
// @Summary      Extract products from an image or PDF
// @Description  Accepts multipart field "file" or a raw body with its Content-Type.
// @Tags         extraction
// @Accept       mpfd
// @Produce      json
// @Param        id    path      string  true  "Session ID"
// @Param        file  formData  file    true  "Image or PDF"
// @Success      200  {object}  response.ExtractionResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /sessions/{id}/extractions [post]
func (h *ExtractionHandler) Extract(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	payload, mimeType, err := readUpload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, errUploadTooLarge)
			return
		}
		writeError(c, errInvalidPayload)
		return
	}

	out, err := h.usecase.Extract(c.Request.Context(), c.Param("id"), payload, mimeType)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromExtraction(out))
}

// ResolveSelection adds the chosen candidates and queues or discards the rest.
func (h *ExtractionHandler) ResolveSelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	out, err := h.usecase.ResolveSelection(c.Request.Context(), c.Param("id"), payload.Selected, triage.Disposition(payload.Disposition))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSelectionOutcome(out))
}

func (h *ExtractionHandler) CancelSelection(c *gin.Context) {
	out, err := h.usecase.CancelSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSelectionOutcome(out))
}

func readUpload(c *gin.Context) ([]byte, string, error) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/") {
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return nil, "", err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, "", err
		}
		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = sniff(data)
		}
		return data, mediaType(mimeType), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, "", err
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = sniff(data)
	}
	return data, mediaType(contentType), nil
}

// sniff guesses the media type of an upload sent without a usable one.
func sniff(data []byte) string {
	return mimetype.Detect(data).String()
}

func mediaType(v string) string {
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mt
}
