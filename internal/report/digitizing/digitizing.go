// Package digitizing builds the production dashboards of the digitizing
// team: queue status, SLA standing, digitizer workload and daily uploads.
package digitizing

import (
	"time"

	"atelier/internal/domain"
)

const PriorityAll = "All"

type Filter struct {
	// Priority is All, Rush or Regular.
	Priority string
	Month    time.Month
	Year     int
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Report struct {
	StatusSummary    []NameCount   `json:"statusSummary"`
	OverdueSummary   []NameCount   `json:"overdueSummary"`
	DigitizerSummary []NameCount   `json:"digitizerSummary"`
	DailyProgress    DailyProgress `json:"dailyProgressData"`
}

type Aggregator struct {
	loc *time.Location
	now func() time.Time
}

// NewAggregator evaluates calendar dates in loc and measures SLA standing
// against now.
func NewAggregator(loc *time.Location, now func() time.Time) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Aggregator{loc: loc, now: now}
}

// Build computes every sub-report. Each one selects its own subset of
// leads: status and digitizer views use the priority-filtered queue, the
// SLA view ignores priority and the upload view scans every lead.
func (a *Aggregator) Build(leads []domain.Lead, f Filter) Report {
	return Report{
		StatusSummary:    StatusSummary(leads, f.Priority),
		OverdueSummary:   a.OverdueSummary(leads),
		DigitizerSummary: DigitizerSummary(leads, f.Priority),
		DailyProgress:    a.DailyProgress(leads, f.Year, f.Month),
	}
}

func queue(leads []domain.Lead, priority string) []domain.Lead {
	var out []domain.Lead
	for _, l := range leads {
		if !l.InProgrammingQueue() {
			continue
		}
		if priority != "" && priority != PriorityAll && l.Priority() != priority {
			continue
		}
		out = append(out, l)
	}
	return out
}
