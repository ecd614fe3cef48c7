package payperiod_test

import (
	"testing"
	"time"

	"restropay/internal/payperiod"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_MidMonthAnchor(t *testing.T) {
	joined := date(2024, time.January, 15)
	now := date(2024, time.April, 2)

	periods := payperiod.Generate(joined, now)

	assert.Len(t, periods, 3)
	assert.Equal(t, date(2024, time.January, 15), periods[0].Start)
	assert.Equal(t, date(2024, time.February, 14), periods[0].End)
	assert.Equal(t, date(2024, time.February, 15), periods[1].Start)
	assert.Equal(t, date(2024, time.March, 14), periods[1].End)
	assert.Equal(t, date(2024, time.March, 15), periods[2].Start)
	assert.Equal(t, date(2024, time.April, 14), periods[2].End)
}

func TestGenerate_AnchorDayClampsInShortMonths(t *testing.T) {
	joined := date(2023, time.January, 31)
	now := date(2023, time.May, 10)

	periods := payperiod.Generate(joined, now)

	assert.Len(t, periods, 4)

	// February has no 31st; the boundary lands on its last day.
	assert.Equal(t, date(2023, time.January, 31), periods[0].Start)
	assert.Equal(t, date(2023, time.February, 27), periods[0].End)
	assert.Equal(t, date(2023, time.February, 28), periods[1].Start)
	assert.Equal(t, date(2023, time.March, 30), periods[1].End)

	// The anchor recovers to 31 in longer months rather than drifting.
	assert.Equal(t, date(2023, time.March, 31), periods[2].Start)
	assert.Equal(t, date(2023, time.April, 29), periods[2].End)
	assert.Equal(t, date(2023, time.April, 30), periods[3].Start)
	assert.Equal(t, date(2023, time.May, 30), periods[3].End)
}

func TestGenerate_LeapYearFebruary(t *testing.T) {
	joined := date(2024, time.January, 31)
	now := date(2024, time.March, 5)

	periods := payperiod.Generate(joined, now)

	assert.Len(t, periods, 2)
	assert.Equal(t, date(2024, time.February, 28), periods[0].End)
	assert.Equal(t, date(2024, time.February, 29), periods[1].Start)
	assert.Equal(t, date(2024, time.March, 30), periods[1].End)
}

func TestGenerate_JoinedInFuture(t *testing.T) {
	periods := payperiod.Generate(date(2025, time.June, 1), date(2025, time.May, 1))
	assert.Empty(t, periods)
}

func TestGenerate_JoinedToday(t *testing.T) {
	today := date(2025, time.March, 10)

	periods := payperiod.Generate(today, today)

	assert.Len(t, periods, 1)
	assert.Equal(t, today, periods[0].Start)
	assert.Equal(t, date(2025, time.April, 9), periods[0].End)
}

func TestGenerate_PeriodsAreContiguousAndNonOverlapping(t *testing.T) {
	joined := date(2022, time.August, 29)
	now := date(2024, time.February, 1)

	periods := payperiod.Generate(joined, now)

	assert.NotEmpty(t, periods)
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].End.AddDate(0, 0, 1), periods[i].Start,
			"period %d must start the day after period %d ends", i, i-1)
	}
	last := periods[len(periods)-1]
	assert.True(t, last.Contains(now))
}

func TestCalculable_ExcludesPeriodsBeforeJoining(t *testing.T) {
	joined := date(2024, time.January, 15)

	periods := []payperiod.Period{
		{Start: date(2023, time.December, 15), End: date(2024, time.January, 14)},
		{Start: date(2024, time.January, 15), End: date(2024, time.February, 14)},
	}

	calculable := payperiod.Calculable(joined, periods)

	assert.Len(t, calculable, 1)
	for _, p := range calculable {
		assert.False(t, p.Start.Before(joined))
	}
}

func TestCurrent(t *testing.T) {
	joined := date(2024, time.January, 15)
	now := date(2024, time.March, 20)

	current, ok := payperiod.Current(joined, now)

	assert.True(t, ok)
	assert.Equal(t, date(2024, time.March, 15), current.Start)
	assert.Equal(t, date(2024, time.April, 14), current.End)

	_, ok = payperiod.Current(now, joined)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	p := payperiod.Period{Start: date(2024, time.January, 15), End: date(2024, time.February, 14)}

	assert.True(t, p.Contains(date(2024, time.January, 15)))
	assert.True(t, p.Contains(date(2024, time.February, 14)))
	assert.False(t, p.Contains(date(2024, time.January, 14)))
	assert.False(t, p.Contains(date(2024, time.February, 15)))
}
