package reconcile

import (
	"fmt"
	"strings"
)

// Config controls matching and link resolution for posting sync runs.
type Config struct {
	// Scope restricts posting candidates to the posting's company ("company")
	// or searches every stored posting ("global").
	Scope string `mapstructure:"scope" default:"company"`
	// LinkVariant selects the shared link suffix: "counter" (link#N) or
	// "timestamp" (link#<reference date>N).
	LinkVariant string `mapstructure:"link_variant" default:"counter"`
	// IndeedTemplate is the job board URL pattern; %s receives the board id.
	IndeedTemplate string `mapstructure:"indeed_template" default:"https://ca.indeed.com/viewjob?jk=%s"`
	// SharedURLs overrides the built-in list of application pages reused across postings.
	// Comma separated when set from the environment.
	SharedURLs []string `mapstructure:"shared_urls" default:""`
	// SkipUnresolvable skips postings without a usable link instead of aborting the run.
	SkipUnresolvable bool `mapstructure:"skip_unresolvable" default:"false"`
}

const (
	ScopeCompany = "company"
	ScopeGlobal  = "global"

	LinkVariantCounter   = "counter"
	LinkVariantTimestamp = "timestamp"
)

// IsValidScope checks if the configured scope is supported.
func (c Config) IsValidScope() bool {
	switch c.Scope {
	case ScopeCompany, ScopeGlobal:
		return true
	default:
		return false
	}
}

// IsValidLinkVariant checks if the configured link variant is supported.
func (c Config) IsValidLinkVariant() bool {
	switch c.LinkVariant {
	case LinkVariantCounter, LinkVariantTimestamp:
		return true
	default:
		return false
	}
}

// IsValidIndeedTemplate checks that the board template takes exactly one id.
// An empty template selects the built-in one.
func (c Config) IsValidIndeedTemplate() bool {
	if c.IndeedTemplate == "" {
		return true
	}
	if strings.Count(c.IndeedTemplate, "%s") != 1 {
		return false
	}
	return !strings.Contains(fmt.Sprintf(c.IndeedTemplate, "id"), "%!")
}
