package conflict

// Policy controls the boundary behavior of the overlap predicate. The zero
// value is the conservative default: closed intervals, a pickup scheduled on
// another booking's delivery day is a conflict. Businesses that turn items
// around same-day set AllowSameDayTurnover instead of special-casing call
// sites.
type Policy struct {
	AllowSameDayTurnover bool
}

// Overlaps applies the policy to two intervals.
func (p Policy) Overlaps(a, b Interval) bool {
	if p.AllowSameDayTurnover {
		an, bn := a.normalized(), b.normalized()
		return an.Start.Before(bn.End) && bn.Start.Before(an.End)
	}
	return a.Overlaps(b)
}

// Detector runs conflict and availability queries under one Policy. The
// zero value is ready to use.
type Detector struct {
	Policy Policy
}

// FindConflicts enumerates every unordered pair of active reservations that
// claim the same resource with overlapping intervals. Cancelled reservations
// are filtered here so callers cannot forget to. The whole snapshot is
// validated before any pair is compared.
//
// Pairs are emitted in input order per resource group and each pair appears
// exactly once, with A preceding B in the input. Reservations on different
// resources are never compared. Catalogs are small, so the quadratic scan
// per group is deliberate.
func (d Detector) FindConflicts(reservations []Reservation) ([]ConflictPair, error) {
	if err := validateAll(reservations); err != nil {
		return nil, err
	}

	groups := groupActiveByResource(reservations)

	var pairs []ConflictPair
	for _, r := range reservations {
		if r.Status == StatusCancelled {
			continue
		}
		group := groups[r.ResourceID]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if d.Policy.Overlaps(group[i].Interval, group[j].Interval) {
					pairs = append(pairs, ConflictPair{
						ResourceID: r.ResourceID,
						A:          group[i],
						B:          group[j],
					})
				}
			}
		}
		// A group is fully enumerated the first time its resource is seen.
		delete(groups, r.ResourceID)
	}
	return pairs, nil
}

// FindConflicts runs conflict enumeration under the default closed-interval
// policy.
func FindConflicts(reservations []Reservation) ([]ConflictPair, error) {
	return Detector{}.FindConflicts(reservations)
}

// groupActiveByResource drops cancelled reservations and buckets the rest
// by resource, preserving input order within each bucket.
func groupActiveByResource(reservations []Reservation) map[string][]Reservation {
	groups := make(map[string][]Reservation)
	for _, r := range reservations {
		if r.Status == StatusCancelled {
			continue
		}
		groups[r.ResourceID] = append(groups[r.ResourceID], r)
	}
	return groups
}
