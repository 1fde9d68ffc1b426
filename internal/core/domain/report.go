package domain

// MissedEntry is one missed module of a report.
type MissedEntry struct {
	Module string `json:"module"`
	Reason string `json:"reason"`
}

// Report is the printable outcome of a validation run.
type Report struct {
	RunID  string         `json:"run_id"`
	Mode   ValidationMode `json:"mode"`
	Hit    []string       `json:"hit"`
	Missed []MissedEntry  `json:"missed"`
}

// NewReport flattens a result into a report with sorted entries.
func NewReport(runID string, mode ValidationMode, r ValidationResult) Report {
	report := Report{
		RunID:  runID,
		Mode:   mode,
		Hit:    r.Hit.Sorted(),
		Missed: make([]MissedEntry, 0, len(r.Missed)),
	}
	for _, id := range r.MissedIDs() {
		report.Missed = append(report.Missed, MissedEntry{Module: id, Reason: r.Missed[id]})
	}
	return report
}
