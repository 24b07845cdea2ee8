// Package links derives the canonical URL stored for a posting.
//
// Resolution order: a job board id is templated into the board's URL; an
// allow-listed shared application page gets a "#N" suffix (optionally prefixed
// with the run's reference date); a missing link is an UNRESOLVABLE_LINK error;
// anything else is returned unchanged.
//
// The suffix counter belongs to a Resolver and is reset at the start of each run,
// so the same feed against the same store resolves to the same URLs.
package links
