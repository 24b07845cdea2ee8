// Package export renders stored postings, joined with their company, as CSV.
//
// Columns are fixed by Header. Dates are written as UTC timestamps with
// millisecond precision and booleans as "true" or "false". The file is rewritten
// on every export and may be published to the storage bucket under its base name.
package export
