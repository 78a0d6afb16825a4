// Package filter selects subsets of the tracked collection by named
// view, for display and for count badges.
package filter

import (
	"fmt"
	"time"

	"github.com/mgreer/arc-tracker/internal/arc"
	"github.com/mgreer/arc-tracker/internal/status"
)

// View names a selectable subset of the collection.
type View string

const (
	All           View = "all"
	PendingReview View = "pending-review"
	PendingPromo  View = "pending-promo"
	Completed     View = "completed"
	// DueSoon selects items publishing in the next 0..7 days. This is
	// also the definition behind the due-soon count badge.
	DueSoon View = "due-soon"
	// Urgent selects everything publishing within the due-soon window,
	// including items already past their publish date. DueSoon has a
	// lower bound Urgent lacks; the two are intentionally not the same
	// set.
	Urgent View = "urgent"
)

// Views lists every selectable view, in display order.
var Views = []View{All, PendingReview, PendingPromo, DueSoon, Urgent, Completed}

// ParseView validates a view name.
func ParseView(name string) (View, error) {
	v := View(name)
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q (valid: %v)", name, Views)
}

func matches(v View, a arc.ARC, asOf time.Time) bool {
	switch v {
	case PendingReview:
		return !a.ReviewCompleted
	case PendingPromo:
		return !a.PromoPostCompleted
	case Completed:
		return a.ReviewCompleted && a.PromoPostCompleted
	case DueSoon:
		days := status.Classify(a, asOf).DaysUntilPublish
		return days >= 0 && days <= status.DueSoonWindow
	case Urgent:
		return status.Classify(a, asOf).DaysUntilPublish <= status.DueSoonWindow
	default: // All, and anything unrecognized
		return true
	}
}

// Apply returns the items matching the view, preserving the original
// relative order. The source slice is never mutated.
func Apply(v View, items []arc.ARC, asOf time.Time) []arc.ARC {
	out := make([]arc.ARC, 0, len(items))
	for _, a := range items {
		if matches(v, a, asOf) {
			out = append(out, a)
		}
	}
	return out
}

// Counts holds the badge numbers shown alongside the filter chips.
type Counts struct {
	All           int
	PendingReview int
	PendingPromo  int
	DueSoon       int
	Completed     int
}

// Count computes the badge numbers for a collection. Note the due-soon
// badge counts 0..7 days only, excluding already-published items that
// the urgent view still selects.
func Count(items []arc.ARC, asOf time.Time) Counts {
	var c Counts
	c.All = len(items)
	for _, a := range items {
		if !a.ReviewCompleted {
			c.PendingReview++
		}
		if !a.PromoPostCompleted {
			c.PendingPromo++
		}
		if a.ReviewCompleted && a.PromoPostCompleted {
			c.Completed++
		}
		days := status.Classify(a, asOf).DaysUntilPublish
		if days >= 0 && days <= status.DueSoonWindow {
			c.DueSoon++
		}
	}
	return c
}
