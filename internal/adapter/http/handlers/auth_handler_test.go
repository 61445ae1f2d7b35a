package handlers

import (
	"net/http"
	"testing"

	"cotizador_inprotar/internal/adapter/http/handlers/mocks"
	"cotizador_inprotar/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/login", h.Login)
		if w := doJSON(r, http.MethodPost, "/v1/login", `{"username":"admin"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "admin", "nope").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		r := gin.New()
		r.POST("/v1/login", h.Login)
		if w := doJSON(r, http.MethodPost, "/v1/login", `{"username":"admin","password":"nope"}`); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		uc.EXPECT().Login(gomock.Any(), "admin", "s3cret").Return(usecase.LoginResult{Username: "admin", Token: "tok"}, nil)

		r := gin.New()
		r.POST("/v1/login", h.Login)
		w := doJSON(r, http.MethodPost, "/v1/login", `{"username":"admin","password":"s3cret"}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"username":"admin","token":"tok"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
