package expense

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
		Query:      c.Query("q"),
		Categories: filter.SplitCSV(c.QueryArray("category")),
		AmountFrom: filter.ParseFloat(c.Query("amount_from")),
		AmountTo:   filter.ParseFloat(c.Query("amount_to")),
		DateFrom:   filter.ParseDate(c.Query("date_from")),
		DateTo:     filter.ParseDate(c.Query("date_to")),
	}
}

// ListExpenses godoc
// @Summary      List expenses
// @Tags         expenses
// @Security     BearerAuth
// @Produce      json
// @Param        q           query string false "Search across description, category, amount"
// @Param        category    query []string false "Category filter" collectionFormat(multi)
// @Param        amount_from query number false "Minimum amount"
// @Param        amount_to   query number false "Maximum amount"
// @Param        date_from   query string false "Spent on/after (YYYY-MM-DD)"
// @Param        date_to     query string false "Spent on/before (YYYY-MM-DD)"
// @Success      200 {object} api.ListResponse[Expense]
// @Router       /expenses [get]
func (h *Handler) ListExpenses(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	expenses, total, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse[Expense]{
		Items:    expenses,
		Total:    total,
		Filtered: len(expenses),
	})
}

// GetExpense godoc
// @Summary      Get one expense
// @Tags         expenses
// @Security     BearerAuth
// @Produce      json
// @Param        expenseID path int true "Expense ID"
// @Success      200 {object} Expense
// @Failure      404 {object} api.ErrorResponse
// @Router       /expenses/{expenseID} [get]
func (h *Handler) GetExpense(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("expenseID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	e, err := h.service.Get(c.Request.Context(), gymID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// CreateExpense godoc
// @Summary      Record an expense
// @Tags         expenses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateExpenseRequest true "Expense"
// @Success      201 {object} Expense
// @Failure      400 {object} api.ErrorResponse
// @Router       /expenses [post]
func (h *Handler) CreateExpense(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), gymID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// UpdateExpense godoc
// @Summary      Update an expense
// @Tags         expenses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        expenseID path int true "Expense ID"
// @Param        body body UpdateExpenseRequest true "Fields to update"
// @Success      200 {object} Expense
// @Failure      404 {object} api.ErrorResponse
// @Router       /expenses/{expenseID} [put]
func (h *Handler) UpdateExpense(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("expenseID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// DeleteExpense godoc
// @Summary      Delete an expense
// @Tags         expenses
// @Security     BearerAuth
// @Produce      json
// @Param        expenseID path int true "Expense ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /expenses/{expenseID} [delete]
func (h *Handler) DeleteExpense(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("expenseID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// ExpenseBreakdown godoc
// @Summary      Spend grouped by category
// @Tags         expenses
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} stats.Entry
// @Router       /expenses/breakdown [get]
func (h *Handler) ExpenseBreakdown(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	entries, err := h.service.CategoryBreakdown(c.Request.Context(), gymID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ExportExpenses godoc
// @Summary      Export the filtered expense list as CSV
// @Tags         expenses
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200 {string} string
// @Router       /expenses/export [get]
func (h *Handler) ExportExpenses(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	now := time.Now()
	expenses, _, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}

	doc := BuildExport(expenses, now)
	metrics.RecordExport("expenses")

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("expenses", now))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Serialize(doc)))
}
