package gym

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/auth"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetMyGym godoc
// @Summary      Current gym profile
// @Tags         gym
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} Gym
// @Failure      404 {object} api.ErrorResponse
// @Router       /gym [get]
func (h *Handler) GetMyGym(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	gym, err := h.repo.GetByID(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gym not found"})
		return
	}

	c.JSON(http.StatusOK, gym)
}

// UpdateMyGym godoc
// @Summary      Update gym profile
// @Tags         gym
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body UpdateGymRequest true "Gym profile"
// @Success      200 {object} Gym
// @Failure      400 {object} api.ErrorResponse
// @Router       /gym [put]
func (h *Handler) UpdateMyGym(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gym, err := h.repo.Update(c.Request.Context(), gymID, req.Name, req.Address, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gym"})
		return
	}

	c.JSON(http.StatusOK, gym)
}
