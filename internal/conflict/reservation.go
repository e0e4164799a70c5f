package conflict

// Status is a reservation's lifecycle state as seen by the engine. The
// booking workflow owns the full lifecycle; by the time a snapshot reaches
// this package it has been collapsed to the two states that matter for
// conflict bookkeeping.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reservation is one claim on one resource for a closed date interval.
// A booking holding several items appears here once per item claim.
type Reservation struct {
	ID         string   `json:"reservation_id"`
	ResourceID string   `json:"resource_id"`
	Interval   Interval `json:"interval"`
	Status     Status   `json:"status"`
}

// Resource is a rentable unit. The engine treats the ID as opaque; any
// eligibility semantics (space, surface, power) live in caller-supplied
// predicates.
type Resource struct {
	ID string `json:"resource_id"`
}

// ConflictPair is one unordered pair of active reservations on the same
// resource whose intervals overlap.
type ConflictPair struct {
	ResourceID string      `json:"resource_id"`
	A          Reservation `json:"reservation_a"`
	B          Reservation `json:"reservation_b"`
}

// Unavailability explains why one resource cannot serve a requested
// interval: every active reservation that overlaps the request.
type Unavailability struct {
	ResourceID string        `json:"resource_id"`
	Conflicts  []Reservation `json:"conflicts"`
}

// validateAll checks every reservation's interval up front. Either the
// whole batch validates or the call fails before any computation begins;
// the engine never returns partial results over a half-validated snapshot.
func validateAll(reservations []Reservation) error {
	for _, r := range reservations {
		if err := r.Interval.Validate(); err != nil {
			return &ValidationError{ReservationID: r.ID, Interval: r.Interval}
		}
	}
	return nil
}
