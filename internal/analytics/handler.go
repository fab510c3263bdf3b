package analytics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/auth"
)

type Handler struct {
	service Service
	months  int
}

func NewHandler(service Service, defaultMonths int) *Handler {
	return &Handler{service: service, months: defaultMonths}
}

// GetDashboard godoc
// @Summary      Dashboard summary for the current gym
// @Description  Member counts, revenue and expense series, churn/retention and breakdowns.
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        months query int false "Trailing months for the series (default from config)"
// @Success      200 {object} Dashboard
// @Router       /dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	months := h.months
	if raw := c.Query("months"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 36 {
			months = n
		}
	}

	d, err := h.service.Dashboard(c.Request.Context(), gymID, months, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, d)
}
