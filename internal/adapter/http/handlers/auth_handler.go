package handlers

import (
	"errors"
	"net/http"

	request "cotizador_inprotar/internal/adapter/http/dto/request"
	response "cotizador_inprotar/internal/adapter/http/dto/response"
	"cotizador_inprotar/internal/usecase"
	"cotizador_inprotar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Log in with the configured account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200  {object}  response.LoginResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		writeError(c, errInvalidCredentials)
		return
	}
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(res))
}
