package report

import (
	"fmt"
	"net/http"

	"eventdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/:month", h.Monthly)
	rg.GET("/reports/:month/csv", h.MonthlyCSV)
}

func (h *Handler) Monthly(c *gin.Context) {
	resp, err := h.service.Monthly(c.Request.Context(), c.Param("month"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) MonthlyCSV(c *gin.Context) {
	month := c.Param("month")

	data, err := h.service.MonthlyCSV(c.Request.Context(), month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export report")
		return
	}

	filename := fmt.Sprintf("report-%s.csv", month)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
