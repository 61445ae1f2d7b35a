package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"cotizador_inprotar/internal/adapter/http/handlers/mocks"
	"cotizador_inprotar/internal/domain/entities"
	"cotizador_inprotar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func catalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/catalog", h.List)
	r.GET("/v1/catalog/:id", h.Get)
	r.PATCH("/v1/catalog/:id", h.Update)
	r.DELETE("/v1/catalog/:id", h.Delete)
	return r
}

func TestCatalogHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().Search(gomock.Any(), "schneider").Return([]entities.CatalogEntry{{ID: "c-1", Name: "Breaker", SKU: "SCH-PRO-0001"}}, nil)

		w := doJSON(catalogRouter(h), http.MethodGet, "/v1/catalog?q=schneider", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out []entities.CatalogEntry
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(out) != 1 || out[0].SKU != "SCH-PRO-0001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list all renders empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(catalogRouter(h), http.MethodGet, "/v1/catalog", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestCatalogHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.CatalogEntry{}, usecase.ErrCatalogNameTaken)

		w := doJSON(catalogRouter(h), http.MethodPatch, "/v1/catalog/c-1", `{"name":"Breaker"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("price edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		uc.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, p entities.CatalogEntryPatch) (entities.CatalogEntry, error) {
				if p.NetPrice == nil || !p.NetPrice.Equal(decimal.NewFromInt(12990)) || p.Name != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.CatalogEntry{ID: "c-1", NetPrice: *p.NetPrice}, nil
			})

		w := doJSON(catalogRouter(h), http.MethodPatch, "/v1/catalog/c-1", `{"net_price":12990}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	uc.EXPECT().GetByID(gomock.Any(), "c-9").Return(entities.CatalogEntry{}, usecase.ErrCatalogEntryNotFound)
	uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

	if w := doJSON(catalogRouter(h), http.MethodGet, "/v1/catalog/c-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doJSON(catalogRouter(h), http.MethodDelete, "/v1/catalog/c-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
