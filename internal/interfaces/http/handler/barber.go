package handler

import (
	appstaff "github.com/barberia/backend/internal/application/staff"
	"github.com/barberia/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BarberHandler serves the barber management endpoints
type BarberHandler struct {
	BaseHandler
	service *appstaff.BarberService
}

// NewBarberHandler creates a new BarberHandler
func NewBarberHandler(service *appstaff.BarberService) *BarberHandler {
	return &BarberHandler{service: service}
}

// Create adds a barber to the shop.
// POST /api/v1/barbers
func (h *BarberHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appstaff.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	barber, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, barber)
}

// GetByID returns a single barber.
// GET /api/v1/barbers/:id
func (h *BarberHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bindID(c)
	if !ok {
		return
	}

	barber, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, barber)
}

// List returns the shop's barbers.
// GET /api/v1/barbers?active=&page=&page_size=
func (h *BarberHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter appstaff.BarberListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	barbers, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, barbers, filter.Page, filter.PageSize, len(barbers))
}

// UpdateProfile updates a barber's display data.
// PUT /api/v1/barbers/:id
func (h *BarberHandler) UpdateProfile(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req appstaff.UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	barber, err := h.service.UpdateProfile(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, barber)
}

// UpdateCommission changes the commission settings used for future jobs.
// Commission already snapshotted onto existing jobs never changes.
// PUT /api/v1/barbers/:id/commission
func (h *BarberHandler) UpdateCommission(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req appstaff.UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	barber, err := h.service.UpdateCommission(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, barber)
}

type setActiveBody struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive activates or deactivates a barber.
// PUT /api/v1/barbers/:id/active
func (h *BarberHandler) SetActive(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var body setActiveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "Active flag is required")
		return
	}

	barber, err := h.service.SetActive(c.Request.Context(), tenantID, id, *body.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, barber)
}

// Delete removes a barber. Their past jobs stay on the books.
// DELETE /api/v1/barbers/:id
func (h *BarberHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *BarberHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid barber ID")
		return uuid.Nil, false
	}
	return uuid.MustParse(idReq.ID), true
}
