package plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/auth"
	"gymdesk/internal/cache"
)

type Handler struct {
	repo  Repository
	cache *cache.Cache
}

func NewHandler(repo Repository, c *cache.Cache) *Handler {
	return &Handler{repo: repo, cache: c}
}

// ListPlans godoc
// @Summary      List membership plans
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Plan
// @Router       /plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	ctx := c.Request.Context()
	var plans []Plan
	if !h.cache.Get(ctx, gymID, cache.EntityPlans, &plans) {
		var err error
		plans, err = h.repo.ListByGym(ctx, gymID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
			return
		}
		h.cache.Set(ctx, gymID, cache.EntityPlans, plans)
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan godoc
// @Summary      Get one membership plan
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        planID path int true "Plan ID"
// @Success      200 {object} Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{planID} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	p, err := h.repo.GetByID(c.Request.Context(), gymID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreatePlan godoc
// @Summary      Create membership plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreatePlanRequest true "Plan"
// @Success      201 {object} Plan
// @Failure      400 {object} api.ErrorResponse
// @Router       /plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), gymID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), gymID, cache.EntityPlans)
	c.JSON(http.StatusCreated, p)
}

// UpdatePlan godoc
// @Summary      Update membership plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        planID path int true "Plan ID"
// @Param        body body UpdatePlanRequest true "Plan"
// @Success      200 {object} Plan
// @Failure      404 {object} api.ErrorResponse
// @Router       /plans/{planID} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("planID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	h.cache.Invalidate(c.Request.Context(), gymID, cache.EntityPlans)
	c.JSON(http.StatusOK, p)
}
