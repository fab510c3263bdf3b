package payment

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
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
	"gymdesk/internal/stats"
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
		Modes:      filter.SplitCSV(c.QueryArray("mode")),
		AmountFrom: filter.ParseFloat(c.Query("amount_from")),
		AmountTo:   filter.ParseFloat(c.Query("amount_to")),
		DateFrom:   filter.ParseDate(c.Query("date_from")),
		DateTo:     filter.ParseDate(c.Query("date_to")),
	}
}

// ListPayments godoc
// @Summary      List payments
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        q           query string false "Search across member name, amount, mode"
// @Param        mode        query []string false "Mode filter" collectionFormat(multi)
// @Param        amount_from query number false "Minimum amount"
// @Param        amount_to   query number false "Maximum amount"
// @Param        date_from   query string false "Paid on/after (YYYY-MM-DD)"
// @Param        date_to     query string false "Paid on/before (YYYY-MM-DD)"
// @Success      200 {object} api.ListResponse[PaymentWithMember]
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	payments, total, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse[PaymentWithMember]{
		Items:    payments,
		Total:    total,
		Filtered: len(payments),
	})
}

// MemberHistory is the payment history screen for one member: the rows plus
// the pre-computed totals the screen shows above them.
type MemberHistory struct {
	Payments  []Payment `json:"payments"`
	Count     int       `json:"count"`
	TotalPaid float64   `json:"total_paid"`
}

// MemberPayments godoc
// @Summary      Payment history for one member
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {object} MemberHistory
// @Router       /members/{memberID}/payments [get]
func (h *Handler) MemberPayments(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	payments, err := h.service.ListByMember(c.Request.Context(), gymID, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	points := make([]stats.Point, len(payments))
	for i, p := range payments {
		points[i] = stats.Point{Date: p.PaymentDate, Amount: p.Amount}
	}

	c.JSON(http.StatusOK, MemberHistory{
		Payments:  payments,
		Count:     stats.Count(points),
		TotalPaid: stats.Sum(points),
	})
}

// RecordPayment godoc
// @Summary      Record a payment
// @Description  Stores the payment and settles the member's next due installment when a schedule is active.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreatePaymentRequest true "Payment"
// @Success      201 {object} RecordResult
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Record(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// UpdatePayment godoc
// @Summary      Update a payment
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        paymentID path int true "Payment ID"
// @Param        body body UpdatePaymentRequest true "Fields to update"
// @Success      200 {object} Payment
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{paymentID} [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeletePayment godoc
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        paymentID path int true "Payment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{paymentID} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("paymentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}

// ExportPayments godoc
// @Summary      Export the filtered payment list as CSV
// @Tags         payments
// @Security     BearerAuth
// @Produce      text/csv
// @Success      200 {string} string
// @Router       /payments/export [get]
func (h *Handler) ExportPayments(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	now := time.Now()
	payments, _, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	doc := BuildExport(payments, now)
	metrics.RecordExport("payments")

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("payments", now))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Serialize(doc)))
}
