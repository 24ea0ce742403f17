package register

import (
	"fmt"
	"time"
)

// Granularity represents the period unit totals are aggregated over
type Granularity string

const (
	GranularityDay   Granularity = "DAY"
	GranularityWeek  Granularity = "WEEK"
	GranularityMonth Granularity = "MONTH"
)

// IsValid checks if the granularity is a valid Granularity
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// String returns the string representation of Granularity
func (g Granularity) String() string {
	return string(g)
}

// Period is an inclusive calendar date range with a display label.
// From and To are normalized to midnight UTC.
type Period struct {
	From  time.Time
	To    time.Time
	Label string
}

// ContainsSingleDay returns true if the period covers exactly one calendar day
func (p Period) ContainsSingleDay() bool {
	return p.From.Equal(p.To)
}

// NormalizeDate strips the time-of-day component, keeping the calendar day in UTC
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolvePeriod converts a reference date and granularity into an inclusive
// date range. Weeks run Monday through Sunday (ISO 8601); months cover the
// first through the last calendar day.
func ResolvePeriod(ref time.Time, g Granularity) Period {
	day := NormalizeDate(ref)

	switch g {
	case GranularityWeek:
		// time.Weekday numbers Sunday as 0; shift so Monday is the origin.
		offset := (int(day.Weekday()) + 6) % 7
		from := day.AddDate(0, 0, -offset)
		to := from.AddDate(0, 0, 6)
		return Period{
			From:  from,
			To:    to,
			Label: fmt.Sprintf("%s - %s", from.Format("02 Jan"), to.Format("02 Jan 2006")),
		}
	case GranularityMonth:
		from := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, -1)
		return Period{
			From:  from,
			To:    to,
			Label: from.Format("January 2006"),
		}
	default:
		return Period{
			From:  day,
			To:    day,
			Label: day.Format("02 Jan 2006"),
		}
	}
}

// ShiftPeriod moves the reference date by one period unit in the given
// direction (-1 or +1) and returns the new reference date.
func ShiftPeriod(ref time.Time, g Granularity, direction int) time.Time {
	day := NormalizeDate(ref)
	switch g {
	case GranularityWeek:
		return day.AddDate(0, 0, 7*direction)
	case GranularityMonth:
		return day.AddDate(0, direction, 0)
	default:
		return day.AddDate(0, 0, direction)
	}
}
