// Package sync reconciles a parsed feed against the store.
//
// CompanyReconciler upserts employers by key. PostingReconciler matches one feed
// posting against stored postings and decides between insert, update and update
// preceded by a change record. Driver runs both over a whole feed in document
// order and reports a reconcile.Summary.
//
// A posting run derives its reference date once, before any write, from the
// latest batch date in the feed. That date stamps change records and removal
// dates, so replaying a feed yields the same store state regardless of when it
// runs. Nothing is deleted and no transaction spans a run: a failure keeps the
// writes made before it.
package sync
