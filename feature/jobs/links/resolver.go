package links

import (
	"fmt"
	"strconv"
	"time"

	apperrors "cts/core/errors"
	"cts/core/reconcile"
	"cts/core/utils"
	"cts/feature/jobs/feed"
)

// DefaultIndeedTemplate is the public job board URL pattern for indeed ids.
const DefaultIndeedTemplate = "https://ca.indeed.com/viewjob?jk=%s"

// DefaultSharedURLs lists employer application pages reused for every posting.
var DefaultSharedURLs = []string{
	"https://www.zambara.net/team",
	"https://www.colabsoftware.com/careers",
	"http://www.smartice.org/jobs/",
	"https://www.avalonholographics.com/careers",
	"https://www.bluedriver.com/about-us/careers",
	"https://www.bullseyebranding.ca/opportunities/",
	"https://www.compusult.com/web/guest/careers",
	"https://www.sequencebio.com/careers",
	"https://www.virtualmarine.ca/careers",
	"https://us.bluedriver.com/pages/careers",
	"https://strobeltek.com/careers/",
	"https://verafin.com/careers/",
	"http://radient360.com/r360careers/",
}

// Options configures a Resolver.
type Options struct {
	IndeedTemplate string
	SharedURLs     []string
	// Variant is reconcile.LinkVariantCounter or reconcile.LinkVariantTimestamp.
	Variant string
}

// OptionsFromConfig maps the reconcile configuration section onto resolver options,
// falling back to the built-in template and shared URL list.
func OptionsFromConfig(cfg reconcile.Config) Options {
	opts := Options{
		IndeedTemplate: cfg.IndeedTemplate,
		SharedURLs:     cfg.SharedURLs,
		Variant:        cfg.LinkVariant,
	}
	if opts.IndeedTemplate == "" {
		opts.IndeedTemplate = DefaultIndeedTemplate
	}
	if len(opts.SharedURLs) == 0 {
		opts.SharedURLs = DefaultSharedURLs
	}
	return opts
}

// Resolver computes canonical posting URLs for one run. It is not safe for
// concurrent use; the disambiguation counter follows call order.
type Resolver struct {
	indeedTemplate string
	shared         map[string]struct{}
	timestamped    bool

	counter  int
	captured time.Time
}

// NewResolver creates a resolver with its counter at zero.
func NewResolver(opts Options) *Resolver {
	shared := make(map[string]struct{}, len(opts.SharedURLs))
	for _, u := range opts.SharedURLs {
		shared[u] = struct{}{}
	}
	template := opts.IndeedTemplate
	if template == "" {
		template = DefaultIndeedTemplate
	}
	return &Resolver{
		indeedTemplate: template,
		shared:         shared,
		timestamped:    opts.Variant == reconcile.LinkVariantTimestamp,
	}
}

// Reset restarts the disambiguation counter and sets the capture time embedded
// by the timestamp variant. Call it once at the start of every run.
func (r *Resolver) Reset(captured time.Time) {
	r.counter = 0
	r.captured = captured.UTC()
}

// IsShared reports whether link is an allow-listed shared application page.
func (r *Resolver) IsShared(link string) bool {
	_, ok := r.shared[link]
	return ok
}

// Resolve returns the canonical URL of a posting. A job board id wins over the
// literal link; shared links get a per-occurrence suffix.
func (r *Resolver) Resolve(p feed.Posting) (string, error) {
	if p.Indeed != "" {
		return fmt.Sprintf(r.indeedTemplate, string(p.Indeed)), nil
	}

	if r.IsShared(p.Link) {
		suffix := strconv.Itoa(r.counter)
		r.counter++
		if r.timestamped {
			suffix = utils.FormatTimestamp(r.captured) + suffix
		}
		return p.Link + "#" + suffix, nil
	}

	if p.Link == "" {
		return "", apperrors.UnresolvableLink(fmt.Sprintf("no link for posting %q", p.Title), nil)
	}

	return p.Link, nil
}
