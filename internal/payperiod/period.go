// Package payperiod derives monthly pay-period boundaries anchored to an
// employee's joining date. Everything here is a pure function of its inputs.
package payperiod

import "time"

const DateLayout = "2006-01-02"

// Period is one month-long pay cycle. Start and End are inclusive calendar
// dates at UTC midnight.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls within the period, inclusive on both ends.
func (p Period) Contains(date time.Time) bool {
	d := Truncate(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Truncate drops the time-of-day component, keeping a UTC calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Generate returns the ascending sequence of pay periods from the one
// containing joined up to and including the one containing now. The anchor
// day is joined's day-of-month, clamped to the last valid day of shorter
// months (anchor 31 lands on Feb 28/29). Empty when joined is after now.
func Generate(joined, now time.Time) []Period {
	joined = Truncate(joined)
	now = Truncate(now)

	if joined.After(now) {
		return nil
	}

	anchorDay := joined.Day()

	var periods []Period
	for n := 0; ; n++ {
		start := anchoredDate(joined.Year(), joined.Month(), anchorDay, n)
		if start.After(now) {
			break
		}
		next := anchoredDate(joined.Year(), joined.Month(), anchorDay, n+1)
		periods = append(periods, Period{
			Start: start,
			End:   next.AddDate(0, 0, -1),
		})
	}

	return periods
}

// Calculable filters out periods that start before the joining date; salary
// is never computed for time the employee was not yet employed.
func Calculable(joined time.Time, periods []Period) []Period {
	joined = Truncate(joined)

	out := make([]Period, 0, len(periods))
	for _, p := range periods {
		if !p.Start.Before(joined) {
			out = append(out, p)
		}
	}
	return out
}

// Current returns the period containing now, i.e. the last generated one.
// The second return is false when no period exists yet.
func Current(joined, now time.Time) (Period, bool) {
	periods := Generate(joined, now)
	if len(periods) == 0 {
		return Period{}, false
	}
	return periods[len(periods)-1], true
}

// anchoredDate is the anchor day in the month n months after (year, month),
// clamped so anchor 31 in a 30-day month yields the 30th. time.Date is not
// used directly with the anchor day because Go normalizes overflow
// (Feb 31 -> Mar 3) instead of clamping.
func anchoredDate(year int, month time.Month, anchorDay, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)

	day := anchorDay
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
