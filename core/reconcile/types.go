package reconcile

import "time"

// Outcome describes what a single reconcile call did to the store.
type Outcome string

const (
	// OutcomeInserted means a new record was written.
	OutcomeInserted Outcome = "inserted"
	// OutcomeUpdated means an existing record was overwritten without an audit entry.
	OutcomeUpdated Outcome = "updated"
	// OutcomeChanged means an existing record was overwritten after a change was logged.
	OutcomeChanged Outcome = "changed"
	// OutcomeSkipped means the record could not be reconciled and was left out.
	OutcomeSkipped Outcome = "skipped"
)

// RemovalWindow is the soft expiry added to a posting's date to derive its removal date.
const RemovalWindow = 7 * 24 * time.Hour

// EpochFloor seeds the reference date when a feed carries no posting batches.
var EpochFloor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// RemovalDate returns the expected removal date for a posting dated t.
func RemovalDate(t time.Time) time.Time {
	return t.UTC().Add(RemovalWindow)
}

// Summary provides aggregate counts for one posting sync run.
type Summary struct {
	// ReferenceDate is the maximum post date of the feed.
	ReferenceDate time.Time `json:"reference_date"`

	// Processed counts postings handed to the reconciler.
	Processed int `json:"processed"`

	// Inserted is the growth of the posting table during the run.
	Inserted int64 `json:"inserted"`

	// Changed counts updates that appended a change log entry.
	Changed int `json:"changed"`

	// Updated counts updates with no title or URL divergence.
	Updated int `json:"updated"`

	// Skipped counts postings left out because their link could not be resolved.
	Skipped int `json:"skipped"`

	// Total is the number of postings stored after the run.
	Total int64 `json:"total"`
}

// Record tallies a single posting outcome.
func (s *Summary) Record(o Outcome) {
	s.Processed++
	switch o {
	case OutcomeChanged:
		s.Changed++
	case OutcomeUpdated:
		s.Updated++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// CompanySummary provides aggregate counts for one company sync run.
type CompanySummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Record tallies a single company outcome.
func (s *CompanySummary) Record(o Outcome) {
	switch o {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeUpdated, OutcomeChanged:
		s.Updated++
	}
}
