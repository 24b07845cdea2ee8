// Package store is the persistence boundary of the job board.
//
// It exposes lookup, insert and update operations over the company and
// job_posting tables and the append-only job_posting_change log, and nothing
// else: every insert/update decision is taken by the sync package.
//
// FindPosting applies the three-way match (url and title, date and url, date and
// title) and breaks ties by the lowest posting id, so the first stored candidate
// always wins.
package store
