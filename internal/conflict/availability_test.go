package conflict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotR1() []Reservation {
	return []Reservation{
		reservation("b1", "R1", date(2025, 10, 20), date(2025, 10, 20), StatusActive),
		reservation("b2", "R1", date(2025, 10, 22), date(2025, 10, 22), StatusActive),
	}
}

func TestCheckAvailabilityGapDay(t *testing.T) {
	unavailable, err := CheckAvailability([]string{"R1"}, snapshotR1(), span(date(2025, 10, 21), date(2025, 10, 21)))
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}

func TestCheckAvailabilitySpanningBoth(t *testing.T) {
	unavailable, err := CheckAvailability([]string{"R1"}, snapshotR1(), span(date(2025, 10, 20), date(2025, 10, 23)))
	require.NoError(t, err)
	require.Len(t, unavailable, 1)
	assert.Equal(t, "R1", unavailable[0].ResourceID)
	require.Len(t, unavailable[0].Conflicts, 2)
	assert.Equal(t, "b1", unavailable[0].Conflicts[0].ID)
	assert.Equal(t, "b2", unavailable[0].Conflicts[1].ID)
}

func TestCheckAvailabilityCancelledDoesNotBlock(t *testing.T) {
	reservations := []Reservation{
		reservation("b1", "R1", date(2025, 10, 20), date(2025, 10, 24), StatusCancelled),
	}
	unavailable, err := CheckAvailability([]string{"R1"}, reservations, span(date(2025, 10, 21), date(2025, 10, 22)))
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}

func TestCheckAvailabilityUncataloguedResourceStillCounts(t *testing.T) {
	// The reservation references a resource no catalog knows about; its
	// claims still block that ID when asked directly.
	reservations := []Reservation{
		reservation("b1", "ghost", date(2025, 10, 20), date(2025, 10, 24), StatusActive),
	}
	unavailable, err := CheckAvailability([]string{"ghost"}, reservations, span(date(2025, 10, 22), date(2025, 10, 22)))
	require.NoError(t, err)
	require.Len(t, unavailable, 1)
	assert.Equal(t, "ghost", unavailable[0].ResourceID)
}

func TestFilterAvailable(t *testing.T) {
	resources := []Resource{{ID: "R1"}, {ID: "R2"}, {ID: "R3"}}
	reservations := []Reservation{
		reservation("b1", "R1", date(2025, 10, 20), date(2025, 10, 24), StatusActive),
		reservation("b2", "R3", date(2025, 10, 25), date(2025, 10, 28), StatusActive),
	}

	got, err := FilterAvailable(resources, reservations, span(date(2025, 10, 22), date(2025, 10, 23)), nil)
	require.NoError(t, err)
	// R1 is booked; R2 has no reservations; R3's booking starts later.
	assert.Equal(t, []Resource{{ID: "R2"}, {ID: "R3"}}, got)
}

func TestFilterAvailableEligibilityPredicate(t *testing.T) {
	resources := []Resource{{ID: "R1"}, {ID: "R2"}, {ID: "R3"}}

	got, err := FilterAvailable(resources, nil, span(date(2025, 10, 22), date(2025, 10, 23)), func(r Resource) bool {
		return r.ID != "R2"
	})
	require.NoError(t, err)
	assert.Equal(t, []Resource{{ID: "R1"}, {ID: "R3"}}, got)
}

func TestFilterAvailablePreservesOrder(t *testing.T) {
	resources := []Resource{{ID: "R9"}, {ID: "R2"}, {ID: "R7"}, {ID: "R1"}}

	got, err := FilterAvailable(resources, nil, span(date(2025, 10, 22), date(2025, 10, 23)), nil)
	require.NoError(t, err)
	assert.Equal(t, resources, got)
}

func TestFilterAvailableEmptyInputs(t *testing.T) {
	got, err := FilterAvailable(nil, nil, span(date(2025, 10, 22), date(2025, 10, 23)), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterAvailableRejectsMalformedRequest(t *testing.T) {
	_, err := FilterAvailable([]Resource{{ID: "R1"}}, nil, span(date(2025, 10, 25), date(2025, 10, 20)), nil)
	require.Error(t, err)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

// The two framings must agree: a resource is missing from FilterAvailable's
// result (ignoring eligibility) exactly when CheckAvailability reports it
// unavailable.
func TestFilterAndCheckAgree(t *testing.T) {
	resources := []Resource{{ID: "R1"}, {ID: "R2"}, {ID: "R3"}, {ID: "R4"}}
	ids := []string{"R1", "R2", "R3", "R4"}
	reservations := []Reservation{
		reservation("b1", "R1", date(2025, 10, 20), date(2025, 10, 24), StatusActive),
		reservation("b2", "R2", date(2025, 10, 23), date(2025, 10, 26), StatusActive),
		reservation("b3", "R3", date(2025, 10, 1), date(2025, 10, 5), StatusActive),
		reservation("b4", "R4", date(2025, 10, 22), date(2025, 10, 22), StatusCancelled),
	}

	requests := []Interval{
		span(date(2025, 10, 22), date(2025, 10, 22)),
		span(date(2025, 10, 24), date(2025, 10, 24)),
		span(date(2025, 10, 1), date(2025, 10, 31)),
		span(date(2025, 11, 1), date(2025, 11, 2)),
	}

	for _, req := range requests {
		available, err := FilterAvailable(resources, reservations, req, nil)
		require.NoError(t, err)
		unavailable, err := CheckAvailability(ids, reservations, req)
		require.NoError(t, err)

		availableSet := make(map[string]bool)
		for _, r := range available {
			availableSet[r.ID] = true
		}
		blockedSet := make(map[string]bool)
		for _, u := range unavailable {
			blockedSet[u.ResourceID] = true
		}

		for _, id := range ids {
			assert.NotEqual(t, availableSet[id], blockedSet[id], "resource %s for %s", id, req)
		}
	}
}

func TestDetectorPolicyAppliesToAvailability(t *testing.T) {
	reservations := []Reservation{
		reservation("b1", "R1", date(2025, 10, 20), date(2025, 10, 22), StatusActive),
	}
	requested := span(date(2025, 10, 22), date(2025, 10, 25))

	strict := Detector{}
	unavailable, err := strict.CheckAvailability([]string{"R1"}, reservations, requested)
	require.NoError(t, err)
	assert.Len(t, unavailable, 1)

	relaxed := Detector{Policy: Policy{AllowSameDayTurnover: true}}
	unavailable, err = relaxed.CheckAvailability([]string{"R1"}, reservations, requested)
	require.NoError(t, err)
	assert.Empty(t, unavailable)
}
