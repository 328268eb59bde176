package domain

import "time"

// Filter narrows a task listing to a named time window. Bounds are
// inclusive and compare at day granularity.
type Filter struct {
	From        *time.Time
	To          *time.Time
	OpenOnly    bool
	ExcludeDate *time.Time
}

// Day normalizes a timestamp to UTC midnight. All date comparisons go
// through this so a late-evening reference time cannot shift the
// window across a day boundary.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveFilter maps a named view onto a Filter.
//
//	tree  (default): date <= reference day
//	all:   unchecked tasks not scheduled for today
//	week:  today .. today+7d
//	month: today .. today+30d
//
// Unrecognized names behave like "tree".
func ResolveFilter(name string, reference, today time.Time) Filter {
	ref := Day(reference)
	day := Day(today)

	switch name {
	case "all":
		return Filter{OpenOnly: true, ExcludeDate: &day}
	case "week":
		to := day.AddDate(0, 0, 7)
		return Filter{From: &day, To: &to}
	case "month":
		to := day.AddDate(0, 0, 30)
		return Filter{From: &day, To: &to}
	default:
		return Filter{To: &ref}
	}
}

// Matches reports whether a task falls inside the filter window.
func (f Filter) Matches(t Task) bool {
	d := Day(t.Date)
	if f.From != nil && d.Before(*f.From) {
		return false
	}
	if f.To != nil && d.After(*f.To) {
		return false
	}
	if f.OpenOnly && t.Checked {
		return false
	}
	if f.ExcludeDate != nil && d.Equal(*f.ExcludeDate) {
		return false
	}
	return true
}
