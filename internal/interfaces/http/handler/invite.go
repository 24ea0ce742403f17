package handler

import (
	appstaff "github.com/barberia/backend/internal/application/staff"
	"github.com/gin-gonic/gin"
)

// InviteHandler serves the invitation code endpoints
type InviteHandler struct {
	BaseHandler
	service *appstaff.InviteService
}

// NewInviteHandler creates a new InviteHandler
func NewInviteHandler(service *appstaff.InviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

// Generate creates a new single-use invitation code.
// POST /api/v1/invites
func (h *InviteHandler) Generate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invite, err := h.service.Generate(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, invite)
}

// List returns the shop's invitation codes.
// GET /api/v1/invites
func (h *InviteHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invites, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, invites)
}

// Redeem burns an invitation code and enrolls the caller as a barber
// of the code's shop.
// POST /api/v1/invites/redeem
func (h *InviteHandler) Redeem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appstaff.RedeemInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}
	req.UserID = userID

	barber, err := h.service.Redeem(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, barber)
}
