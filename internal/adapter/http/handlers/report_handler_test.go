package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salomao_ai/internal/adapter/http/handlers/mocks"
	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(t *testing.T, setup func(uc *mocks.MockIReportUseCase)) *httptest.ResponseRecorder {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		setup(uc)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:id", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/rep-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("not found", func(t *testing.T) {
		w := get(t, func(uc *mocks.MockIReportUseCase) {
			uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.StoredReport{}, usecase.ErrReportNotFound)
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		w := get(t, func(uc *mocks.MockIReportUseCase) {
			uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.StoredReport{}, errors.New("db"))
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		now := time.Now().UTC()
		w := get(t, func(uc *mocks.MockIReportUseCase) {
			uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.StoredReport{
				ID:        "rep-1",
				Report:    entities.FinancialReport{Renda: 3000, Economia: 500},
				CreatedAt: now,
			}, nil)
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["report_id"] != "rep-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, ok := body["graficos"]; !ok {
			t.Fatalf("expected chart series: %s", w.Body.String())
		}
	})
}

func TestMapReportError(t *testing.T) {
	if got := mapReportError(usecase.ErrInvalidReportID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapReportError(usecase.ErrReportNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapReportError(usecase.ErrReportStoreUnavailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapReportError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
