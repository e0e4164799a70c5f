// Package conflict implements reservation overlap detection and availability
// filtering over an inventory of rentable resources.
//
// The package is a pure decision layer: every operation takes a snapshot of
// reservations as an argument, never mutates it, and performs no I/O, so it
// is safe to call concurrently over different snapshots. The at-most-one-
// booking guarantee is completed by the persistence layer (per-item advisory
// locks and the exclusion constraint in the schema); callers must consult
// this package before commit, inside that serialization point.
package conflict

import (
	"fmt"
	"time"
)

// Interval is a closed calendar-date range [Start, End], day granularity.
// Dates are civil dates, not instants; any time-of-day component is ignored.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a validated interval from delivery and pickup dates.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv.normalized(), nil
}

// Validate rejects an interval whose start falls after its end. Bounds are
// never swapped or clamped.
func (iv Interval) Validate() error {
	a, b := dateOnly(iv.Start), dateOnly(iv.End)
	if a.After(b) {
		return &ValidationError{Interval: iv}
	}
	return nil
}

// Overlaps reports whether two closed intervals share at least one day.
// A boundary touch (one interval ends the day the other starts) counts as
// overlap; same-day turnover is handled by Policy, not here.
func (iv Interval) Overlaps(other Interval) bool {
	a, b := iv.normalized(), other.normalized()
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// Days returns the rental length in days, counting both endpoints.
// A single-day interval is one day.
func (iv Interval) Days() int {
	n := iv.normalized()
	return int(n.End.Sub(n.Start).Hours()/24) + 1
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s to %s", dateOnly(iv.Start).Format("2006-01-02"), dateOnly(iv.End).Format("2006-01-02"))
}

func (iv Interval) normalized() Interval {
	return Interval{Start: dateOnly(iv.Start), End: dateOnly(iv.End)}
}

// dateOnly strips time-of-day and timezone, leaving the civil date at UTC
// midnight so date comparison is a plain time comparison.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidationError reports a malformed interval (start after end). When the
// interval came from a reservation, ReservationID names it.
type ValidationError struct {
	ReservationID string
	Interval      Interval
}

func (e *ValidationError) Error() string {
	if e.ReservationID != "" {
		return fmt.Sprintf("reservation %s: invalid interval %s: start is after end", e.ReservationID, e.Interval)
	}
	return fmt.Sprintf("invalid interval %s: start is after end", e.Interval)
}
