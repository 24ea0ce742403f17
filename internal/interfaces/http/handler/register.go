package handler

import (
	"strconv"
	"time"

	appregister "github.com/barberia/backend/internal/application/register"
	"github.com/barberia/backend/internal/domain/register"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// RegisterHandler serves the register summary and day-close endpoints
type RegisterHandler struct {
	BaseHandler
	service *appregister.RegisterService
}

// NewRegisterHandler creates a new RegisterHandler
func NewRegisterHandler(service *appregister.RegisterService) *RegisterHandler {
	return &RegisterHandler{service: service}
}

type summaryQuery struct {
	Date        string `form:"date"`
	Granularity string `form:"granularity"`
}

type closeDayBody struct {
	Date        string `json:"date" binding:"required"`
	Granularity string `json:"granularity"`
}

// Summary returns the register totals for a day, week, or month.
// GET /api/v1/register/summary?date=2026-03-14&granularity=DAY
func (h *RegisterHandler) Summary(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query summaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	ref := time.Now()
	if query.Date != "" {
		ref, err = time.Parse(dateLayout, query.Date)
		if err != nil {
			h.BadRequest(c, "Date must be in YYYY-MM-DD format")
			return
		}
	}

	granularity := register.GranularityDay
	if query.Granularity != "" {
		granularity = register.Granularity(query.Granularity)
	}

	summary, err := h.service.Summary(c.Request.Context(), tenantID, ref, granularity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// CloseDay freezes the totals for a date. At most one close can ever
// exist per date; a repeat close is a 409.
// POST /api/v1/register/close
func (h *RegisterHandler) CloseDay(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var body closeDayBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Date is required in YYYY-MM-DD format")
		return
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		h.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	granularity := register.GranularityDay
	if body.Granularity != "" {
		granularity = register.Granularity(body.Granularity)
	}

	dc, err := h.service.CloseDay(c.Request.Context(), tenantID, date, granularity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, dc)
}

// RecentCloses lists the most recent closes, newest first.
// GET /api/v1/register/closes?limit=30
func (h *RegisterHandler) RecentCloses(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			h.BadRequest(c, "Limit must be a number")
			return
		}
	}

	closes, err := h.service.RecentCloses(c.Request.Context(), tenantID, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, closes)
}
