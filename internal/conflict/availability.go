package conflict

// FilterAvailable returns the resources that can serve the requested
// interval: the eligibility predicate passes and no active reservation on
// the resource overlaps the request. The filter is stable, preserving the
// input order; sorting is a presentation concern left to callers. A nil
// eligibility predicate accepts every resource.
//
// A resource with no reservations at all is available for any interval.
func (d Detector) FilterAvailable(resources []Resource, reservations []Reservation, requested Interval, eligible func(Resource) bool) ([]Resource, error) {
	if err := requested.Validate(); err != nil {
		return nil, err
	}
	if err := validateAll(reservations); err != nil {
		return nil, err
	}

	groups := groupActiveByResource(reservations)

	available := make([]Resource, 0, len(resources))
	for _, res := range resources {
		if eligible != nil && !eligible(res) {
			continue
		}
		if len(d.overlapping(groups[res.ID], requested)) > 0 {
			continue
		}
		available = append(available, res)
	}
	return available, nil
}

// CheckAvailability is the inverse framing of FilterAvailable: given
// resource IDs and a requested interval, it returns the subset that is NOT
// available, each paired with the reservations blocking it so callers can
// report which order conflicts with which item. Eligibility is not
// evaluated here, only temporal conflict.
//
// A reservation counts against its resource even when the resource ID is
// absent from any catalog the caller holds; conflict bookkeeping does not
// require catalog membership.
func (d Detector) CheckAvailability(resourceIDs []string, reservations []Reservation, requested Interval) ([]Unavailability, error) {
	if err := requested.Validate(); err != nil {
		return nil, err
	}
	if err := validateAll(reservations); err != nil {
		return nil, err
	}

	groups := groupActiveByResource(reservations)

	var unavailable []Unavailability
	for _, id := range resourceIDs {
		blocking := d.overlapping(groups[id], requested)
		if len(blocking) > 0 {
			unavailable = append(unavailable, Unavailability{ResourceID: id, Conflicts: blocking})
		}
	}
	return unavailable, nil
}

// FilterAvailable applies the default closed-interval policy.
func FilterAvailable(resources []Resource, reservations []Reservation, requested Interval, eligible func(Resource) bool) ([]Resource, error) {
	return Detector{}.FilterAvailable(resources, reservations, requested, eligible)
}

// CheckAvailability applies the default closed-interval policy.
func CheckAvailability(resourceIDs []string, reservations []Reservation, requested Interval) ([]Unavailability, error) {
	return Detector{}.CheckAvailability(resourceIDs, reservations, requested)
}

func (d Detector) overlapping(group []Reservation, requested Interval) []Reservation {
	var blocking []Reservation
	for _, r := range group {
		if d.Policy.Overlaps(r.Interval, requested) {
			blocking = append(blocking, r)
		}
	}
	return blocking
}
