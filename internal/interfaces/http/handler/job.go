package handler

import (
	appregister "github.com/barberia/backend/internal/application/register"
	"github.com/barberia/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobHandler serves the job recording endpoints
type JobHandler struct {
	BaseHandler
	service *appregister.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(service *appregister.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create records a completed job.
// POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appregister.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	job, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, job)
}

// GetByID returns a single job.
// GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid job ID")
		return
	}
	id := uuid.MustParse(idReq.ID)

	job, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// List returns jobs with optional filtering.
// GET /api/v1/jobs?barber_id=&method=&from=&to=&page=&page_size=
func (h *JobHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter appregister.JobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	jobs, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, jobs, filter.Page, filter.PageSize, len(jobs))
}
