package register

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyClose is the immutable frozen snapshot of one day's totals.
// At most one exists per (tenant, close date); the storage layer's unique
// constraint is the authoritative guard. A close is a computed snapshot,
// not a live aggregate: it stays correct even if the underlying records
// were ever altered afterwards.
type DailyClose struct {
	shared.TenantAggregateRoot
	CloseDate        time.Time       `json:"close_date"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalCommissions decimal.Decimal `json:"total_commissions"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	NetProfit        decimal.Decimal `json:"net_profit"`
}

// NewDailyClose freezes the given totals into a close for the given date
func NewDailyClose(tenantID uuid.UUID, closeDate time.Time, totals Totals) (*DailyClose, error) {
	if closeDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Close date cannot be empty")
	}

	dc := &DailyClose{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CloseDate:           NormalizeDate(closeDate),
		TotalIncome:         totals.Income,
		TotalCommissions:    totals.Commissions,
		TotalExpenses:       totals.Expenses,
		NetProfit:           totals.Net,
	}

	dc.AddDomainEvent(NewRegisterClosedEvent(dc))

	return dc, nil
}

// Totals reconstructs the frozen totals of the close (without the
// per-barber breakdown, which is not part of the snapshot)
func (c *DailyClose) Totals() Totals {
	t := ZeroTotals()
	t.Income = c.TotalIncome
	t.Commissions = c.TotalCommissions
	t.Expenses = c.TotalExpenses
	t.Net = c.NetProfit
	return t
}
