package sales

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"atelier/internal/domain"
)

const (
	FilterAll       = "all"
	weekLabelLayout = "01.02"
)

// Filter holds the dashboard selections. A date range wins over a week,
// a week over a month, and a month narrows a year.
type Filter struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	// Week is "MM.dd-MM.dd" within Year.
	Week string `json:"week,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type WindowKind string

const (
	WindowRange WindowKind = "range"
	WindowWeek  WindowKind = "week"
	WindowAll   WindowKind = "all"
	WindowYear  WindowKind = "year"
	WindowMonth WindowKind = "month"
)

// Window is the resolved submission-date interval. A nil bound is open.
type Window struct {
	Kind  WindowKind `json:"kind"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ResolveWindow picks the first applicable filter tier. Unparseable
// parameters fall through to the next, looser tier.
func ResolveWindow(f Filter, loc *time.Location) Window {
	if w, ok := rangeWindow(f.From, f.To, loc); ok {
		return w
	}

	year, yearOK := parseYear(f.Year)

	if yearOK && f.Week != "" {
		if start, end, ok := ParseWeek(f.Week, year, loc); ok {
			return Window{Kind: WindowWeek, Start: &start, End: &end}
		}
	}

	if !yearOK {
		return Window{Kind: WindowAll}
	}

	month, monthOK := parseMonth(f.Month)
	if !monthOK {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)
		return Window{Kind: WindowYear, Start: &start, End: &end}
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return Window{Kind: WindowMonth, Start: &start, End: &end}
}

func rangeWindow(from, to string, loc *time.Location) (Window, bool) {
	w := Window{Kind: WindowRange}
	if from != "" {
		if t, err := domain.ParseTimestamp(from, loc); err == nil {
			s := startOfDay(t.In(loc))
			w.Start = &s
		}
	}
	if to != "" {
		if t, err := domain.ParseTimestamp(to, loc); err == nil {
			e := endOfDay(t.In(loc))
			w.End = &e
		}
	}
	return w, w.Start != nil || w.End != nil
}

func parseYear(s string) (int, bool) {
	if strings.EqualFold(s, FilterAll) {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}

func parseMonth(s string) (time.Month, bool) {
	if strings.EqualFold(s, FilterAll) {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 1 || m > 12 {
		return 0, false
	}
	return time.Month(m), true
}

// ParseWeek reads "MM.dd-MM.dd" in year. A week that crosses New Year
// belongs to both years, so its start is placed in year or year-1,
// whichever makes it a Monday, and it ends in the year after that.
func ParseWeek(week string, year int, loc *time.Location) (time.Time, time.Time, bool) {
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(week), "-")
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	start, err := parseWeekDay(startStr, year, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := parseWeekDay(endStr, year, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if end.Before(start) {
		if start.Weekday() != time.Monday {
			if prev := start.AddDate(-1, 0, 0); prev.Weekday() == time.Monday {
				start = prev
			}
		}
		end = end.AddDate(start.Year()+1-end.Year(), 0, 0)
	}

	return startOfDay(start), endOfDay(end), true
}

func parseWeekDay(s string, year int, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006."+weekLabelLayout, strconv.Itoa(year)+"."+s, loc)
}

// WeekStart returns the Monday that starts t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}

// FormatWeek renders the Monday-start week containing t as "MM.dd-MM.dd".
func FormatWeek(t time.Time) string {
	start := WeekStart(t)
	return start.Format(weekLabelLayout) + "-" + start.AddDate(0, 0, 6).Format(weekLabelLayout)
}

// AvailableYears lists the submission years present in leads, newest first.
func AvailableYears(leads []domain.Lead, loc *time.Location) []int {
	seen := make(map[int]struct{})
	years := []int{}
	for _, l := range leads {
		t, err := domain.ParseTimestamp(l.SubmissionDateTime, loc)
		if err != nil {
			continue
		}
		y := t.In(loc).Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// AvailableWeeks lists the distinct weeks with submissions in year, in
// calendar order. An unparseable year considers every lead.
func AvailableWeeks(leads []domain.Lead, year string, loc *time.Location) []string {
	y, yearOK := parseYear(year)

	starts := make(map[time.Time]struct{})
	for _, l := range leads {
		t, err := domain.ParseTimestamp(l.SubmissionDateTime, loc)
		if err != nil {
			continue
		}
		t = t.In(loc)
		if yearOK && t.Year() != y {
			continue
		}
		starts[WeekStart(t)] = struct{}{}
	}

	ordered := make([]time.Time, 0, len(starts))
	for s := range starts {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	weeks := make([]string, 0, len(ordered))
	for _, s := range ordered {
		weeks = append(weeks, FormatWeek(s))
	}
	return weeks
}
