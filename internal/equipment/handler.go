package equipment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/api"
	"gymdesk/internal/auth"
	"gymdesk/internal/export"
	"gymdesk/internal/filter"
	"gymdesk/internal/metrics"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseFilter(c *gin.Context) Filter {
	return Filter{
		Query:             c.Query("q"),
		Statuses:          filter.SplitCSV(c.QueryArray("status")),
		Categories:        filter.SplitCSV(c.QueryArray("category")),
		WarrantyLabels:    filter.SplitCSV(c.QueryArray("warranty")),
		MaintenanceLabels: filter.SplitCSV(c.QueryArray("maintenance")),
		CostFrom:          filter.ParseFloat(c.Query("cost_from")),
		CostTo:            filter.ParseFloat(c.Query("cost_to")),
		AgeFrom:           filter.ParseFloat(c.Query("age_from")),
		AgeTo:             filter.ParseFloat(c.Query("age_to")),
	}
}

// ListEquipment godoc
// @Summary      List equipment
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        q           query string false "Search across name, category, serial"
// @Param        status      query []string false "Status filter" collectionFormat(multi)
// @Param        category    query []string false "Category filter" collectionFormat(multi)
// @Param        warranty    query []string false "Derived warranty label filter" collectionFormat(multi)
// @Param        maintenance query []string false "Derived maintenance label filter" collectionFormat(multi)
// @Param        cost_from   query number false "Minimum cost"
// @Param        cost_to     query number false "Maximum cost"
// @Param        age_from    query number false "Minimum age in years since purchase"
// @Param        age_to      query number false "Maximum age in years since purchase"
// @Success      200 {object} api.ListResponse[EquipmentView]
// @Router       /equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	views, total, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load equipment"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse[EquipmentView]{
		Items:    views,
		Total:    total,
		Filtered: len(views),
	})
}

// GetEquipment godoc
// @Summary      Get one piece of equipment
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID path int true "Equipment ID"
// @Success      200 {object} EquipmentView
// @Failure      404 {object} api.ErrorResponse
// @Router       /equipment/{equipmentID} [get]
func (h *Handler) GetEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	view, err := h.service.Get(c.Request.Context(), gymID, id, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateEquipment godoc
// @Summary      Add equipment
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateEquipmentRequest true "Equipment"
// @Success      201 {object} Equipment
// @Failure      400 {object} api.ErrorResponse
// @Router       /equipment [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, ErrUnknownStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add equipment"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// UpdateEquipment godoc
// @Summary      Update equipment
// @Tags         equipment
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        equipmentID path int true "Equipment ID"
// @Param        body body UpdateEquipmentRequest true "Fields to update"
// @Success      200 {object} Equipment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /equipment/{equipmentID} [put]
func (h *Handler) UpdateEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEquipmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		case errors.Is(err, ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update equipment"})
		}
		return
	}

	c.JSON(http.StatusOK, e)
}

// DeleteEquipment godoc
// @Summary      Delete equipment
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Param        equipmentID path int true "Equipment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /equipment/{equipmentID} [delete]
func (h *Handler) DeleteEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("equipmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete equipment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted"})
}

// EquipmentNeedsAttention godoc
// @Summary      Equipment with expired or soon-due warranty/maintenance
// @Tags         equipment
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} EquipmentView
// @Router       /equipment/attention [get]
func (h *Handler) EquipmentNeedsAttention(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	views, err := h.service.NeedsAttention(c.Request.Context(), gymID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load equipment"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ExportEquipment godoc
// @Summary      Export the filtered equipment list as CSV
// @Tags         equipment
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200 {string} string
// @Router       /equipment/export [get]
func (h *Handler) ExportEquipment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	now := time.Now()
	views, _, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load equipment"})
		return
	}

	doc := BuildExport(views, now)
	metrics.RecordExport("equipment")

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("equipment", now))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Serialize(doc)))
}
