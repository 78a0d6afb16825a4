// Package status derives a read-only lifecycle signal for one tracked
// item relative to a supplied current date. The current date is always
// injected by the caller, never read from the system clock here, so
// classification stays deterministic and testable.
package status

import (
	"time"

	"github.com/mgreer/arc-tracker/internal/arc"
)

// Category is the lifecycle state of a tracked item.
type Category int

const (
	Pending Category = iota
	DueSoon
	Overdue
	Completed
)

func (c Category) String() string {
	switch c {
	case Pending:
		return "pending"
	case DueSoon:
		return "due-soon"
	case Overdue:
		return "overdue"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// DueSoonWindow is the number of days before publication within which
// an item counts as due soon.
const DueSoonWindow = 7

// Status is the classifier output for one item.
type Status struct {
	Category         Category
	DaysUntilPublish int
}

// ParseDate parses a calendar date in arc.DateFormat, anchored to UTC
// midnight so later subtraction cannot pick up time-of-day drift.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(arc.DateFormat, s, time.UTC)
}

// midnight truncates a timestamp to its UTC calendar date.
func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole days from asOf until the publish date,
// rounding up, at calendar-date granularity. Negative once the date has
// passed.
func DaysUntil(publish, asOf time.Time) int {
	diff := midnight(publish).Sub(midnight(asOf))
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Classify derives the lifecycle category for an item as of the given
// date. Precedence, first match wins: Completed (both obligations done,
// regardless of date), Overdue, DueSoon, Pending. An unparsable publish
// date classifies as Pending with zero days; callers validate dates
// before items are persisted, so that path only shows malformed store
// data.
func Classify(a arc.ARC, asOf time.Time) Status {
	publish, err := ParseDate(a.PublishDate)
	if err != nil {
		if a.ReviewCompleted && a.PromoPostCompleted {
			return Status{Category: Completed}
		}
		return Status{Category: Pending}
	}

	days := DaysUntil(publish, asOf)

	switch {
	case a.ReviewCompleted && a.PromoPostCompleted:
		return Status{Category: Completed, DaysUntilPublish: days}
	case days < 0:
		return Status{Category: Overdue, DaysUntilPublish: days}
	case days <= DueSoonWindow:
		return Status{Category: DueSoon, DaysUntilPublish: days}
	default:
		return Status{Category: Pending, DaysUntilPublish: days}
	}
}
