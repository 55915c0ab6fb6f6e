package coursework

import "time"

// Date is a calendar date without time zone. Due dates are in UTC.
type Date struct {
	Year  int `json:"year,omitempty" validate:"min=0,max=9999"`
	Month int `json:"month,omitempty" validate:"min=0,max=12"`
	Day   int `json:"day,omitempty" validate:"min=0,max=31"`
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// IsZero reports whether no component is set.
func (d Date) IsZero() bool {
	return d == Date{}
}

// TimeOfDay is a wall-clock time. Due times are in UTC.
type TimeOfDay struct {
	Hours   int `json:"hours,omitempty" validate:"min=0,max=23"`
	Minutes int `json:"minutes,omitempty" validate:"min=0,max=59"`
	Seconds int `json:"seconds,omitempty" validate:"min=0,max=59"`
	Nanos   int `json:"nanos,omitempty" validate:"min=0,max=999999999"`
}

// TimeOfDayOf returns the UTC wall-clock time of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	t = t.UTC()
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute(), Seconds: t.Second(), Nanos: t.Nanosecond()}
}

// At combines d with a time of day into a UTC instant. A nil tod means
// midnight.
func (d Date) At(tod *TimeOfDay) time.Time {
	var h, m, s, ns int
	if tod != nil {
		h, m, s, ns = tod.Hours, tod.Minutes, tod.Seconds, tod.Nanos
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, h, m, s, ns, time.UTC)
}
