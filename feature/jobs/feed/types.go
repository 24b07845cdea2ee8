package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Company holds the attributes of one employer in the companies feed.
type Company struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	// Local drives all three company facets (remote, local, canadian).
	Local bool `yaml:"local" json:"local"`
}

// CompanyEntry is a company paired with its key, in feed order.
type CompanyEntry struct {
	Key string
	Company
}

// Posting is a single job in a batch.
type Posting struct {
	Title  string  `yaml:"title" json:"title"`
	Link   string  `yaml:"link" json:"link"`
	Indeed BoardID `yaml:"indeed" json:"indeed"`
	Remote bool    `yaml:"remote" json:"remote"`
}

// Batch is a set of postings that share a post date.
type Batch struct {
	PostDate Date      `yaml:"post_date" json:"post_date"`
	Postings []Posting `yaml:"jobs" json:"jobs"`
}

// CompanyPostings groups the batches of one company.
type CompanyPostings struct {
	Company string  `yaml:"company" json:"company"`
	Batches []Batch `yaml:"jobs" json:"jobs"`
}

// BoardID is a third-party job board identifier. The scalar is kept verbatim as
// text, so numeric-looking ids keep leading zeros and their original base.
type BoardID string

// UnmarshalYAML takes the raw scalar token, without quotes or trailing comment.
func (b *BoardID) UnmarshalYAML(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if i := strings.Index(raw, " #"); i >= 0 && raw[0] != '"' && raw[0] != '\'' {
		raw = strings.TrimSpace(raw[:i])
	}
	switch {
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid board id %s: %w", raw, err)
		}
		raw = unquoted
	case len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'':
		raw = strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
	case raw == "~" || raw == "null" || raw == "Null" || raw == "NULL":
		raw = ""
	case strings.ContainsAny(raw, "\n[]{}"):
		return fmt.Errorf("board id must be a scalar, got %q", raw)
	}
	*b = BoardID(strings.TrimSpace(raw))
	return nil
}

// Date is a feed post date, normalised to UTC.
type Date struct {
	time.Time
}

// dateLayouts are tried in order when a post date is given as text.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a feed date. Dates without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// UnmarshalYAML accepts YAML timestamps and date strings.
func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = v.UTC()
	case string:
		t, err := ParseDate(v)
		if err != nil {
			return err
		}
		d.Time = t
	default:
		return fmt.Errorf("unsupported post date %v", v)
	}
	return nil
}
