package register

import (
	"context"
	"errors"
	"time"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"github.com/barberia/backend/internal/domain/staff"
	"github.com/google/uuid"
)

const (
	defaultClosesLimit = 30
	maxClosesLimit     = 100
)

// UnknownBarberName is used when a job references a barber that no longer
// exists. The job still counts toward the totals.
const UnknownBarberName = "Unknown"

// RegisterService is the close manager: it computes period summaries and
// freezes days into immutable closes.
type RegisterService struct {
	jobRepo        register.JobRepository
	expenseRepo    register.ExpenseRepository
	closeRepo      register.DailyCloseRepository
	barberRepo     staff.BarberRepository
	cache          SummaryCache
	eventPublisher shared.EventPublisher
}

// NewRegisterService creates a new RegisterService
func NewRegisterService(
	jobRepo register.JobRepository,
	expenseRepo register.ExpenseRepository,
	closeRepo register.DailyCloseRepository,
	barberRepo staff.BarberRepository,
) *RegisterService {
	return &RegisterService{
		jobRepo:     jobRepo,
		expenseRepo: expenseRepo,
		closeRepo:   closeRepo,
		barberRepo:  barberRepo,
	}
}

// SetSummaryCache sets the cache used for day summaries
func (s *RegisterService) SetSummaryCache(cache SummaryCache) {
	s.cache = cache
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *RegisterService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Summary computes the register totals for the period containing ref.
// Day summaries may be served from the cache; it is best-effort and a
// cache failure falls through to a fresh computation.
func (s *RegisterService) Summary(ctx context.Context, tenantID uuid.UUID, ref time.Time, granularity register.Granularity) (*SummaryResponse, error) {
	if !granularity.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Granularity must be DAY, WEEK or MONTH")
	}

	period := register.ResolvePeriod(ref, granularity)
	singleDay := period.ContainsSingleDay()

	if singleDay && s.cache != nil {
		if cached, err := s.cache.GetDaySummary(ctx, tenantID, period.From); err == nil && cached != nil {
			return cached, nil
		}
	}

	summary, err := s.computeSummary(ctx, tenantID, period, granularity)
	if err != nil {
		return nil, err
	}

	if singleDay {
		closed, closeResp, err := s.closeStatus(ctx, tenantID, period.From)
		if err != nil {
			return nil, err
		}
		summary.Closed = &closed
		summary.Close = closeResp

		if s.cache != nil {
			_ = s.cache.SetDaySummary(ctx, tenantID, period.From, summary)
		}
	}

	return summary, nil
}

// CloseDay freezes the totals of a single day into an immutable close.
// The period derived from ref must be exactly one day; the storage layer's
// unique constraint is the authoritative guard against double closes, the
// existence pre-check is only a fast path.
func (s *RegisterService) CloseDay(ctx context.Context, tenantID uuid.UUID, ref time.Time, granularity register.Granularity) (*CloseResponse, error) {
	if !granularity.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Granularity must be DAY, WEEK or MONTH")
	}

	period := register.ResolvePeriod(ref, granularity)
	if !period.ContainsSingleDay() {
		return nil, shared.ErrInvalidPeriod
	}
	date := period.From

	existing, err := s.closeRepo.FindByDate(ctx, tenantID, date)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrAlreadyClosed
	}

	totals, err := s.totalsForRange(ctx, tenantID, date, date)
	if err != nil {
		return nil, err
	}

	dc, err := register.NewDailyClose(tenantID, date, totals)
	if err != nil {
		return nil, err
	}

	if err := s.closeRepo.Insert(ctx, dc); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateDay(ctx, tenantID, date)
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, dc.GetDomainEvents()...)
	}

	return ToCloseResponse(dc), nil
}

// RecentCloses lists closes ordered by close date descending
func (s *RegisterService) RecentCloses(ctx context.Context, tenantID uuid.UUID, limit int) ([]CloseResponse, error) {
	if limit <= 0 {
		limit = defaultClosesLimit
	}
	if limit > maxClosesLimit {
		limit = maxClosesLimit
	}

	closes, err := s.closeRepo.ListRecent(ctx, tenantID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]CloseResponse, len(closes))
	for i := range closes {
		responses[i] = *ToCloseResponse(&closes[i])
	}
	return responses, nil
}

func (s *RegisterService) computeSummary(ctx context.Context, tenantID uuid.UUID, period register.Period, granularity register.Granularity) (*SummaryResponse, error) {
	totals, err := s.totalsForRange(ctx, tenantID, period.From, period.To)
	if err != nil {
		return nil, err
	}

	perBarber, err := s.resolveBarberNames(ctx, tenantID, totals.PerBarber)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		From:         period.From,
		To:           period.To,
		Label:        period.Label,
		Granularity:  granularity.String(),
		Income:       totals.Income,
		Commissions:  totals.Commissions,
		Expenses:     totals.Expenses,
		Net:          totals.Net,
		CashTotal:    totals.CashTotal,
		DigitalTotal: totals.DigitalTotal,
		PerBarber:    perBarber,
	}, nil
}

func (s *RegisterService) totalsForRange(ctx context.Context, tenantID uuid.UUID, from, to time.Time) (register.Totals, error) {
	jobs, err := s.jobRepo.FindByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return register.Totals{}, err
	}
	expenses, err := s.expenseRepo.FindByDateRange(ctx, tenantID, from, to)
	if err != nil {
		return register.Totals{}, err
	}
	return register.AggregateTotals(jobs, expenses), nil
}

func (s *RegisterService) resolveBarberNames(ctx context.Context, tenantID uuid.UUID, rows []register.BarberTotals) ([]BarberLineResponse, error) {
	lines := make([]BarberLineResponse, len(rows))
	if len(rows) == 0 {
		return lines, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i := range rows {
		ids[i] = rows[i].BarberID
	}

	barbers, err := s.barberRepo.FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(barbers))
	for i := range barbers {
		names[barbers[i].ID] = barbers[i].FullName
	}

	for i := range rows {
		name, ok := names[rows[i].BarberID]
		if !ok {
			name = UnknownBarberName
		}
		lines[i] = BarberLineResponse{
			BarberID:    rows[i].BarberID,
			BarberName:  name,
			Income:      rows[i].Income,
			Commissions: rows[i].Commissions,
			JobCount:    rows[i].JobCount,
		}
	}
	return lines, nil
}

func (s *RegisterService) closeStatus(ctx context.Context, tenantID uuid.UUID, date time.Time) (bool, *CloseResponse, error) {
	dc, err := s.closeRepo.FindByDate(ctx, tenantID, date)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil, nil
		}
		return false, nil, err
	}
	if dc == nil {
		return false, nil, nil
	}
	return true, ToCloseResponse(dc), nil
}
