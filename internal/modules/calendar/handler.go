package calendar

import (
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
	rg.GET("/calendar/:month/overuse", h.MonthOveruse)
	rg.GET("/calendar/days/:date", h.DayUsage)
}

// MonthOveruse returns every day of the month that has at least one
// equipment shortage. An unparseable month yields an empty map, not an
// error, so the calendar can always render.
func (h *Handler) MonthOveruse(c *gin.Context) {
	month := c.Param("month")

	overuse, err := h.service.MonthOveruse(c.Request.Context(), month)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute overuse")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"month":   month,
		"overuse": overuse,
	})
}

func (h *Handler) DayUsage(c *gin.Context) {
	du, err := h.service.DayUsage(c.Request.Context(), c.Param("date"))
	if err != nil {
		if err == ErrInvalidDate {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute day usage")
		return
	}

	response.Success(c, http.StatusOK, du)
}
