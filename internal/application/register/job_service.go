package register

import (
	"context"
	"time"

	"github.com/barberia/backend/internal/domain/catalog"
	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
)

// JobService provides application-level job operations
type JobService struct {
	jobRepo        register.JobRepository
	barberRepo     staff.BarberRepository
	offeringRepo   catalog.ServiceOfferingRepository
	cache          SummaryCache
	eventPublisher shared.EventPublisher
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo register.JobRepository,
	barberRepo staff.BarberRepository,
	offeringRepo catalog.ServiceOfferingRepository,
) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		barberRepo:   barberRepo,
		offeringRepo: offeringRepo,
	}
}

// SetSummaryCache sets the summary cache used for day invalidation
func (s *JobService) SetSummaryCache(cache SummaryCache) {
	s.cache = cache
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *JobService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records a completed job. The commission is snapshotted from the
// barber's current settings; later commission edits never touch this job.
func (s *JobService) Create(ctx context.Context, tenantID uuid.UUID, req CreateJobRequest) (*JobResponse, error) {
	barber, err := s.barberRepo.FindByIDForTenant(ctx, tenantID, req.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Barber not found")
	}
	if !barber.Active {
		return nil, shared.NewDomainError("INVALID_STATE", "Barber is not active")
	}

	offering, err := s.offeringRepo.FindByIDForTenant(ctx, tenantID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if offering == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Service not found")
	}

	// The offering price only pre-fills; an explicit price wins.
	price := offering.Price
	if req.Price != nil {
		price = *req.Price
	}

	commission, err := barber.CommissionFor(price)
	if err != nil {
		return nil, err
	}

	occurredOn := time.Now()
	if req.OccurredOn != nil {
		occurredOn = *req.OccurredOn
	}

	job, err := register.NewJob(
		tenantID,
		req.BarberID,
		req.ServiceID,
		req.CustomerID,
		price,
		commission,
		register.PaymentMethod(req.Method),
		occurredOn,
	)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateDay(ctx, tenantID, job.OccurredOn)
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, job.GetDomainEvents()...)
	}

	return ToJobResponse(job), nil
}

// GetByID gets a job by ID
func (s *JobService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*JobResponse, error) {
	job, err := s.jobRepo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Job not found")
	}
	return ToJobResponse(job), nil
}

// List lists jobs with filtering
func (s *JobService) List(ctx context.Context, tenantID uuid.UUID, filter JobListFilter) ([]JobResponse, error) {
	domainFilter := register.JobFilter{
		BarberID: filter.BarberID,
		FromDate: filter.FromDate,
		ToDate:   filter.ToDate,
	}
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize

	if filter.Method != "" {
		method := register.PaymentMethod(filter.Method)
		if !method.IsValid() {
			return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
		}
		domainFilter.Method = &method
	}

	jobs, err := s.jobRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = *ToJobResponse(&jobs[i])
	}
	return responses, nil
}
