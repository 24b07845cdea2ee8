// Package utils provides shared conversion and formatting helpers: loose scalar
// conversion for feed values and the text renderings of timestamps and flags
// used by exports and link disambiguation.
package utils
