package digitizing

import (
	"sort"

	"atelier/internal/domain"
	"atelier/internal/report/tally"
)

const (
	StatusUnderRevision         = "Under Revision"
	StatusPendingInitialProgram = "Pending Initial Program"
	StatusForInitialApproval    = "For Initial Approval"
	StatusForTesting            = "For Testing"
	StatusAwaitingFinalApproval = "Awaiting Final Approval"
	StatusForFinalUploading     = "For Final Program Uploading"
)

type statusRule struct {
	label   string
	matches func(domain.Lead) bool
}

// statusRules is evaluated top to bottom; the first match wins.
var statusRules = []statusRule{
	{StatusUnderRevision, func(l domain.Lead) bool { return l.IsRevision }},
	{StatusPendingInitialProgram, func(l domain.Lead) bool { return !l.IsUnderProgramming }},
	{StatusForInitialApproval, func(l domain.Lead) bool { return !l.IsInitialApproval }},
	{StatusForTesting, func(l domain.Lead) bool { return !l.IsLogoTesting }},
	{StatusAwaitingFinalApproval, func(l domain.Lead) bool { return !l.IsFinalApproval }},
	{StatusForFinalUploading, func(domain.Lead) bool { return true }},
}

// Status returns the production status bucket of a queued lead.
func Status(l domain.Lead) string {
	for _, r := range statusRules {
		if r.matches(l) {
			return r.label
		}
	}
	return StatusForFinalUploading
}

// StatusSummary counts queued leads per status, always in rule order.
func StatusSummary(leads []domain.Lead, priority string) []NameCount {
	counts := tally.NewCount[string]()
	for _, r := range statusRules {
		counts.Seed(r.label)
	}

	for _, l := range queue(leads, priority) {
		counts.Inc(Status(l))
	}

	return toNameCounts(counts)
}

// DigitizerSummary counts queued leads per assigned digitizer, busiest
// first, with Unassigned always last.
func DigitizerSummary(leads []domain.Lead, priority string) []NameCount {
	counts := tally.NewCount[string]()
	for _, l := range queue(leads, priority) {
		counts.Inc(l.DigitizerName())
	}

	out := toNameCounts(counts)
	sort.SliceStable(out, func(i, j int) bool {
		iu, ju := out[i].Name == domain.Unassigned, out[j].Name == domain.Unassigned
		if iu != ju {
			return ju
		}
		return out[i].Count > out[j].Count
	})
	return out
}

func toNameCounts(c tally.Count[string]) []NameCount {
	out := make([]NameCount, 0, c.Len())
	c.Each(func(name string, n int) {
		out = append(out, NameCount{Name: name, Count: n})
	})
	return out
}
