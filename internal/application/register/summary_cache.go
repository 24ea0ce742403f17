package register

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SummaryCache caches computed day summaries keyed by (tenant, date).
// Implementations are best-effort: a lookup error is treated as a miss and
// a write error is ignored, so a broken cache never breaks the register.
type SummaryCache interface {
	// GetDaySummary returns the cached summary for the date, or nil on miss
	GetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time) (*SummaryResponse, error)

	// SetDaySummary stores the summary for the date
	SetDaySummary(ctx context.Context, tenantID uuid.UUID, date time.Time, summary *SummaryResponse) error

	// InvalidateDay drops the cached summary for the date
	InvalidateDay(ctx context.Context, tenantID uuid.UUID, date time.Time) error
}
