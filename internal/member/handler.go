package member

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
	"gymdesk/internal/status"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func parseFilter(c *gin.Context) Filter {
	return Filter{
		Query:       c.Query("q"),
		Statuses:    filter.SplitCSV(c.QueryArray("status")),
		PlanIDs:     filter.ParseInts(c.QueryArray("plan_id")),
		Genders:     filter.SplitCSV(c.QueryArray("gender")),
		JoinedFrom:  filter.ParseDate(c.Query("joined_from")),
		JoinedTo:    filter.ParseDate(c.Query("joined_to")),
		ExpiresFrom: filter.ParseDate(c.Query("expires_from")),
		ExpiresTo:   filter.ParseDate(c.Query("expires_to")),
		AgeFrom:     filter.ParseFloat(c.Query("age_from")),
		AgeTo:       filter.ParseFloat(c.Query("age_to")),
	}
}

// ListMembers godoc
// @Summary      List members
// @Description  Applies the basic search and advanced filters to the gym's member snapshot.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        q            query string false "Search across name, phone, email"
// @Param        status       query []string false "Status filter" collectionFormat(multi)
// @Param        plan_id      query []int false "Plan filter" collectionFormat(multi)
// @Param        gender       query []string false "Gender filter" collectionFormat(multi)
// @Param        joined_from  query string false "Joined on/after (YYYY-MM-DD)"
// @Param        joined_to    query string false "Joined on/before (YYYY-MM-DD)"
// @Param        expires_from query string false "Expires on/after (YYYY-MM-DD)"
// @Param        expires_to   query string false "Expires on/before (YYYY-MM-DD)"
// @Param        age_from     query number false "Minimum age in years"
// @Param        age_to       query number false "Maximum age in years"
// @Success      200 {object} api.ListResponse[MemberView]
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	views, total, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	c.JSON(http.StatusOK, api.ListResponse[MemberView]{
		Items:    views,
		Total:    total,
		Filtered: len(views),
	})
}

// GetMember godoc
// @Summary      Get one member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {object} MemberView
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	view, err := h.service.Get(c.Request.Context(), gymID, id, time.Now())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateMember godoc
// @Summary      Enroll a member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body CreateMemberRequest true "Member"
// @Success      201 {object} Member
// @Failure      400 {object} api.ErrorResponse
// @Router       /members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.Enroll(c.Request.Context(), gymID, req)
	if err != nil {
		if errors.Is(err, ErrEndBeforeStart) || errors.Is(err, ErrNoEndDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll member"})
		return
	}

	metrics.RecordMemberCreated()
	c.JSON(http.StatusCreated, m)
}

// UpdateMember godoc
// @Summary      Update a member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Param        body body UpdateMemberRequest true "Fields to update"
// @Success      200 {object} Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.Update(c.Request.Context(), gymID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrEndBeforeStart), errors.Is(err, ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

// RenewMember godoc
// @Summary      Renew a membership
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Param        body body RenewRequest true "Renewal"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID}/renew [post]
func (h *Handler) RenewMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Renew(c.Request.Context(), gymID, id, req, time.Now()); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to renew membership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Membership renewed"})
}

// QuitMember godoc
// @Summary      Mark a member as quit
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID}/quit [post]
func (h *Handler) QuitMember(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.service.Quit(c.Request.Context(), gymID, id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member marked as quit"})
}

// ExpiringMembers godoc
// @Summary      Members expired or expiring soon
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        within query int false "Window in days (default 7)"
// @Success      200 {array} MemberView
// @Router       /members/expiring [get]
func (h *Handler) ExpiringMembers(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	within := status.MembershipSoonDays
	if raw := c.Query("within"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			within = n
		}
	}

	views, err := h.service.Expiring(c.Request.Context(), gymID, within, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ExportMembers godoc
// @Summary      Export the filtered member list as CSV
// @Tags         members
// @Security     BearerAuth
// @Produce      text/csv
// @Param        q query string false "Search"
// @Param        columns query []string false "Column subset by header" collectionFormat(multi)
// @Success      200 {string} string
// @Router       /members/export [get]
func (h *Handler) ExportMembers(c *gin.Context) {
	gymID, ok := auth.GetGymID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Gym scope missing"})
		return
	}

	now := time.Now()
	views, _, err := h.service.List(c.Request.Context(), gymID, parseFilter(c), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	doc := BuildExport(views, filter.SplitCSV(c.QueryArray("columns")), now)
	metrics.RecordExport("members")

	c.Header("Content-Disposition", "attachment; filename="+export.Filename("members", now))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.Serialize(doc)))
}
