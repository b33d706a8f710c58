package domain

import "time"

// DateLayout is the wire format for calendar days throughout the API.
const DateLayout = "2006-01-02"

// ReportWindow is an inclusive [Start, End] range of calendar days.
type ReportWindow struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to midnight UTC so windows compare at day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayWindow is the single-day window for the report date.
func TodayWindow(date time.Time) ReportWindow {
	d := Day(date)
	return ReportWindow{Start: d, End: d}
}

// MonthToDateWindow runs from the first of the report date's month through
// the report date.
func MonthToDateWindow(date time.Time) ReportWindow {
	d := Day(date)
	return ReportWindow{
		Start: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC),
		End:   d,
	}
}

// TrailingWindow covers the `days` calendar days ending on the report date.
func TrailingWindow(date time.Time, days int) ReportWindow {
	d := Day(date)
	if days < 1 {
		days = 1
	}
	return ReportWindow{Start: d.AddDate(0, 0, -(days - 1)), End: d}
}

// Days lists every calendar day in the window in ascending order.
func (w ReportWindow) Days() []time.Time {
	var days []time.Time
	for d := Day(w.Start); !d.After(Day(w.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// String renders the window as "start..end" for logs and error messages.
func (w ReportWindow) String() string {
	return w.Start.Format(DateLayout) + ".." + w.End.Format(DateLayout)
}
