package handlers

import (
	"errors"
	"log"
	"net/http"
	response "salomao_ai/internal/adapter/http/dto/response"
	"salomao_ai/internal/usecase"
	"salomao_ai/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves reports stored by finished conversations.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetReport returns a stored report together with its chart series.
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")

	stored, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[report][handler] get failed report_id=%s err=%v", id, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredReport(stored))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportID):
		return pkg.NewDomainErrorSimple("INVALID_INPUT", "Invalid report id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportStoreUnavailable):
		return pkg.NewDomainErrorSimple("REPORT_STORAGE_DISABLED", "Report storage is disabled", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
