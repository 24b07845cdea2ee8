// Package reconcile holds the vocabulary shared by the job board's sync runs:
// per-record outcomes, run summaries, the removal window and the reconcile
// configuration section.
//
// # Outcomes
//
// Every reconcile call reports exactly one Outcome. Inserted and Updated are plain
// writes; Changed means an audit entry was appended before the overwrite; Skipped
// is only produced when the run is configured to continue past unresolvable links.
//
// # Summaries
//
// Summary.Record tallies outcomes as a run progresses. Insertions are not tallied:
// the driver derives them from the table size before and after the run, so the
// summary reports what the store actually gained.
//
// # Configuration
//
//	RECONCILE_SCOPE=global RECONCILE_LINK_VARIANT=timestamp cts jobs jobs.yaml cts.db
package reconcile
