package register

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarberTotals is the per-barber slice of a period's totals
type BarberTotals struct {
	BarberID    uuid.UUID       `json:"barber_id"`
	Income      decimal.Decimal `json:"income"`
	Commissions decimal.Decimal `json:"commissions"`
	JobCount    int             `json:"job_count"`
}

// Totals holds the derived financial totals for a period
type Totals struct {
	Income       decimal.Decimal `json:"income"`
	Commissions  decimal.Decimal `json:"commissions"`
	Expenses     decimal.Decimal `json:"expenses"`
	Net          decimal.Decimal `json:"net"`
	CashTotal    decimal.Decimal `json:"cash_total"`
	DigitalTotal decimal.Decimal `json:"digital_total"`
	PerBarber    []BarberTotals  `json:"per_barber"`
}

// ZeroTotals returns an all-zero Totals with an empty per-barber slice
func ZeroTotals() Totals {
	return Totals{
		Income:       decimal.Zero,
		Commissions:  decimal.Zero,
		Expenses:     decimal.Zero,
		Net:          decimal.Zero,
		CashTotal:    decimal.Zero,
		DigitalTotal: decimal.Zero,
		PerBarber:    []BarberTotals{},
	}
}

// AggregateTotals computes the financial totals for a set of jobs and
// expenses in a single pass over each slice. Nil slices are treated as
// empty: callers fetching jobs and expenses independently may aggregate
// before both have arrived. Net may be negative; nothing is clamped.
// Jobs are never dropped, even when the barber is unknown to the caller.
// The per-barber breakdown is ordered by descending income; barbers with
// equal income keep their first-encounter order.
func AggregateTotals(jobs []Job, expenses []Expense) Totals {
	totals := ZeroTotals()

	perBarber := make(map[uuid.UUID]*BarberTotals)
	order := make([]uuid.UUID, 0, len(jobs))

	for i := range jobs {
		job := &jobs[i]
		totals.Income = totals.Income.Add(job.Price)
		totals.Commissions = totals.Commissions.Add(job.Commission)

		if job.IsCash() {
			totals.CashTotal = totals.CashTotal.Add(job.Price)
		} else {
			totals.DigitalTotal = totals.DigitalTotal.Add(job.Price)
		}

		row, ok := perBarber[job.BarberID]
		if !ok {
			row = &BarberTotals{
				BarberID:    job.BarberID,
				Income:      decimal.Zero,
				Commissions: decimal.Zero,
			}
			perBarber[job.BarberID] = row
			order = append(order, job.BarberID)
		}
		row.Income = row.Income.Add(job.Price)
		row.Commissions = row.Commissions.Add(job.Commission)
		row.JobCount++
	}

	for i := range expenses {
		totals.Expenses = totals.Expenses.Add(expenses[i].Amount)
	}

	totals.Net = totals.Income.Sub(totals.Commissions).Sub(totals.Expenses)

	rows := make([]BarberTotals, 0, len(order))
	for _, id := range order {
		rows = append(rows, *perBarber[id])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Income.GreaterThan(rows[j].Income)
	})
	totals.PerBarber = rows

	return totals
}
