package digitizing

import (
	"time"

	"atelier/internal/domain"
	"atelier/internal/report/tally"
)

const (
	OverdueOnTrack       = "On Track"
	OverdueNearlyOverdue = "Nearly Overdue"
	OverdueOverdue       = "Overdue"
)

const (
	rushSLADays    = 2
	regularSLADays = 6
	nearlyDueDays  = 2
)

// Deadline is the digitizing due date: 2 days after submission for Rush
// orders and 6 days otherwise.
func Deadline(submitted time.Time, priority string) time.Time {
	days := regularSLADays
	if priority == domain.PriorityRush {
		days = rushSLADays
	}
	return submitted.AddDate(0, 0, days)
}

// DaysBetween counts whole days from ref to deadline, truncated toward zero.
func DaysBetween(deadline, ref time.Time) int {
	return int(deadline.Sub(ref) / (24 * time.Hour))
}

func OverdueBucket(remainingDays int) string {
	switch {
	case remainingDays < 0:
		return OverdueOverdue
	case remainingDays <= nearlyDueDays:
		return OverdueNearlyOverdue
	default:
		return OverdueOnTrack
	}
}

// RemainingDays measures a lead against its deadline. Finished programs are
// measured at their final upload; everything else against now. The bool is
// false when the submission date is unusable.
func (a *Aggregator) RemainingDays(l domain.Lead) (int, bool) {
	submitted, err := domain.ParseTimestamp(l.SubmissionDateTime, a.loc)
	if err != nil {
		return 0, false
	}
	deadline := Deadline(submitted, l.PriorityType)

	ref := a.now()
	if l.IsFinalProgram && l.FinalProgramTimestamp != nil {
		if done, err := domain.ParseTimestamp(*l.FinalProgramTimestamp, a.loc); err == nil {
			ref = done
		}
	}

	return DaysBetween(deadline, ref), true
}

// OverdueSummary classifies every numbered, unarchived, digitized lead.
// The priority filter does not apply here.
func (a *Aggregator) OverdueSummary(leads []domain.Lead) []NameCount {
	counts := tally.NewCount[string]()
	counts.Seed(OverdueOnTrack, OverdueNearlyOverdue, OverdueOverdue)

	for _, l := range leads {
		if l.JONumber == nil || l.IsDigitizingArchived || domain.SkipsProgramming(l.OrderType) {
			continue
		}
		days, ok := a.RemainingDays(l)
		if !ok {
			continue
		}
		counts.Inc(OverdueBucket(days))
	}

	return toNameCounts(counts)
}
