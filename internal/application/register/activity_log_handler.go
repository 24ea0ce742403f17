package register

import (
	"context"
	"fmt"

	"github.com/barberia/backend/internal/domain/register"
	"github.com/barberia/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ActivityLogHandler writes a structured audit entry for every register
// mutation: recorded jobs, recorded expenses and day closes. The entries
// form the operational trail of the cash register, tagged with tenant and
// aggregate ids so a shop's history can be filtered from the logs.
type ActivityLogHandler struct {
	logger *zap.Logger
}

// NewActivityLogHandler creates a new handler for register activity events
func NewActivityLogHandler(logger *zap.Logger) *ActivityLogHandler {
	return &ActivityLogHandler{
		logger: logger.Named("register.activity"),
	}
}

// EventTypes returns the event types this handler is interested in
func (h *ActivityLogHandler) EventTypes() []string {
	return []string{"JobCreated", "ExpenseCreated", "RegisterClosed"}
}

// Handle writes one audit entry per event
func (h *ActivityLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *register.JobCreatedEvent:
		h.logger.Info("job recorded",
			zap.String("tenant_id", e.TenantID().String()),
			zap.String("job_id", e.JobID.String()),
			zap.String("barber_id", e.BarberID.String()),
			zap.String("service_id", e.ServiceID.String()),
			zap.String("price", e.Price.String()),
			zap.String("commission", e.Commission.String()),
			zap.String("method", string(e.Method)),
			zap.Time("occurred_on", e.OccurredOn),
		)
	case *register.ExpenseCreatedEvent:
		h.logger.Info("expense recorded",
			zap.String("tenant_id", e.TenantID().String()),
			zap.String("expense_id", e.ExpenseID.String()),
			zap.String("description", e.Description),
			zap.String("amount", e.Amount.String()),
			zap.Time("incurred_on", e.IncurredOn),
		)
	case *register.RegisterClosedEvent:
		h.logger.Info("register closed",
			zap.String("tenant_id", e.TenantID().String()),
			zap.String("close_id", e.CloseID.String()),
			zap.Time("close_date", e.CloseDate),
			zap.String("total_income", e.TotalIncome.String()),
			zap.String("net_profit", e.NetProfit.String()),
		)
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}

// Ensure ActivityLogHandler implements shared.EventHandler
var _ shared.EventHandler = (*ActivityLogHandler)(nil)
