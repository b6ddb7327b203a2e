package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaster2025(t *testing.T) {
	e := Easter(2025)
	assert.Equal(t, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), e)
}

func TestHolidaySetForYear_Idempotent(t *testing.T) {
	// 2025: Tiradentes (Apr 21) happens to not coincide with Carnival, but
	// the set must still collapse any coincidental duplicate dates into one
	// entry regardless of year, since the underlying map can only hold a
	// date once.
	set := HolidaySetForYear(2025, RegionNone)
	count := 0
	for range set {
		count++
	}
	assert.Len(t, set, count)
}

func TestRegionalAdditions(t *testing.T) {
	spSet := HolidaySetForYear(2025, RegionSP)
	require.True(t, spSet.Contains(time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)))

	noneSet := HolidaySetForYear(2025, RegionNone)
	assert.False(t, noneSet.Contains(time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)))
}

func TestBridgeDayInference(t *testing.T) {
	// Tiradentes 2026 falls on a Tuesday; Monday 2026-04-20 should bridge.
	bridges := BridgeDaysForYear(2026, RegionNone)
	assert.True(t, bridges.Contains(time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)))
}

func TestBusinessDayCount_SpansYearBoundary(t *testing.T) {
	start := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)     // Friday
	// Jan 1 2026 falls on a Thursday, so it is both a holiday and makes the
	// following Friday (Jan 2) a bridge day.
	count := BusinessDayCount(start, end, RegionNone)
	assert.Equal(t, 3, count) // Dec 29-31 only
}

func TestIsValidStartDate_RejectsGoodFridayAdjacent(t *testing.T) {
	easter := Easter(2025)
	goodFriday := easter.AddDate(0, 0, -2)
	// Good Friday always falls on a Friday, so the Wednesday two days
	// earlier has D+2 == Good Friday and must be rejected as a start.
	candidate := goodFriday.AddDate(0, 0, -2)
	require.Equal(t, time.Wednesday, candidate.Weekday())
	assert.False(t, IsValidStartDate(candidate, RegionNone, time.Wednesday))
}

func TestRegionOfLocality(t *testing.T) {
	cases := map[string]Region{
		"São Paulo":       RegionSP,
		"campinas":        RegionSP,
		"Rio de Janeiro":  RegionRJ,
		"Porto Alegre/RS": RegionRS,
		"Curitiba":        RegionNone,
	}
	for locality, want := range cases {
		assert.Equal(t, want, RegionOfLocality(locality), locality)
	}
}
