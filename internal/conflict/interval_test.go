package conflict

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func span(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "disjoint before",
			a:    span(date(2025, 1, 1), date(2025, 1, 3)),
			b:    span(date(2025, 1, 4), date(2025, 1, 6)),
			want: false,
		},
		{
			name: "disjoint after",
			a:    span(date(2025, 1, 4), date(2025, 1, 6)),
			b:    span(date(2025, 1, 1), date(2025, 1, 3)),
			want: false,
		},
		{
			name: "boundary touch counts as overlap",
			a:    span(date(2025, 1, 1), date(2025, 1, 5)),
			b:    span(date(2025, 1, 5), date(2025, 1, 10)),
			want: true,
		},
		{
			name: "contained",
			a:    span(date(2025, 1, 1), date(2025, 1, 10)),
			b:    span(date(2025, 1, 3), date(2025, 1, 4)),
			want: true,
		},
		{
			name: "partial overlap",
			a:    span(date(2025, 1, 1), date(2025, 1, 5)),
			b:    span(date(2025, 1, 4), date(2025, 1, 8)),
			want: true,
		},
		{
			name: "single day inside range",
			a:    span(date(2025, 10, 21), date(2025, 10, 21)),
			b:    span(date(2025, 10, 20), date(2025, 10, 23)),
			want: true,
		},
		{
			name: "single day between two single days",
			a:    span(date(2025, 10, 21), date(2025, 10, 21)),
			b:    span(date(2025, 10, 22), date(2025, 10, 22)),
			want: false,
		},
		{
			name: "time of day is ignored",
			a:    span(date(2025, 1, 1), time.Date(2025, 1, 5, 23, 30, 0, 0, time.UTC)),
			b:    span(time.Date(2025, 1, 5, 0, 5, 0, 0, time.UTC), date(2025, 1, 10)),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Symmetry: the predicate cannot depend on argument order.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsReflexive(t *testing.T) {
	iv := span(date(2025, 3, 10), date(2025, 3, 12))
	assert.True(t, iv.Overlaps(iv))

	single := span(date(2025, 3, 10), date(2025, 3, 10))
	assert.True(t, single.Overlaps(single))
}

func TestPolicySameDayTurnover(t *testing.T) {
	a := span(date(2025, 1, 1), date(2025, 1, 5))
	b := span(date(2025, 1, 5), date(2025, 1, 10))

	strict := Policy{}
	relaxed := Policy{AllowSameDayTurnover: true}

	assert.True(t, strict.Overlaps(a, b))
	assert.False(t, relaxed.Overlaps(a, b))

	// Ranges sharing more than the boundary conflict under either policy.
	c := span(date(2025, 1, 4), date(2025, 1, 10))
	assert.True(t, strict.Overlaps(a, c))
	assert.True(t, relaxed.Overlaps(a, c))
}

func TestValidate(t *testing.T) {
	require.NoError(t, span(date(2025, 10, 20), date(2025, 10, 20)).Validate())
	require.NoError(t, span(date(2025, 10, 20), date(2025, 10, 25)).Validate())

	err := span(date(2025, 10, 25), date(2025, 10, 20)).Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestNewIntervalNormalizes(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	iv, err := NewInterval(time.Date(2025, 7, 1, 14, 0, 0, 0, loc), time.Date(2025, 7, 3, 9, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, date(2025, 7, 1), iv.Start)
	assert.Equal(t, date(2025, 7, 3), iv.End)

	_, err = NewInterval(date(2025, 7, 3), date(2025, 7, 1))
	require.Error(t, err)
}

func TestDays(t *testing.T) {
	assert.Equal(t, 1, span(date(2025, 10, 20), date(2025, 10, 20)).Days())
	assert.Equal(t, 3, span(date(2025, 10, 20), date(2025, 10, 22)).Days())
}
