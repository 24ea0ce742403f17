package register

import (
	"time"

	"github.com/barberia/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterClosedEvent is raised when a day's register is closed
type RegisterClosedEvent struct {
	shared.BaseDomainEvent
	CloseID     uuid.UUID       `json:"close_id"`
	CloseDate   time.Time       `json:"close_date"`
	TotalIncome decimal.Decimal `json:"total_income"`
	NetProfit   decimal.Decimal `json:"net_profit"`
}

// EventType returns the event type name
func (e *RegisterClosedEvent) EventType() string {
	return "RegisterClosed"
}

// NewRegisterClosedEvent creates a new RegisterClosedEvent
func NewRegisterClosedEvent(close *DailyClose) *RegisterClosedEvent {
	return &RegisterClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("RegisterClosed", "DailyClose", close.ID, close.TenantID),
		CloseID:         close.ID,
		CloseDate:       close.CloseDate,
		TotalIncome:     close.TotalIncome,
		NetProfit:       close.NetProfit,
	}
}
