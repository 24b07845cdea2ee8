package links

import (
	"testing"
	"time"

	apperrors "cts/core/errors"
	"cts/core/reconcile"
	"cts/feature/jobs/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedLink = "https://verafin.com/careers/"

func TestResolve_Policy(t *testing.T) {
	tests := []struct {
		name    string
		posting feed.Posting
		want    string
	}{
		{
			name:    "job board id takes precedence",
			posting: feed.Posting{Title: "Support", Link: "https://acme.example/jobs/1", Indeed: "4b1f3e2a9c"},
			want:    "https://ca.indeed.com/viewjob?jk=4b1f3e2a9c",
		},
		{
			name:    "job board id over shared link",
			posting: feed.Posting{Title: "Support", Link: sharedLink, Indeed: "77"},
			want:    "https://ca.indeed.com/viewjob?jk=77",
		},
		{
			name:    "literal link",
			posting: feed.Posting{Title: "Engineer", Link: "https://acme.example/jobs/1"},
			want:    "https://acme.example/jobs/1",
		},
		{
			name:    "shared link gets suffix",
			posting: feed.Posting{Title: "Engineer", Link: sharedLink},
			want:    sharedLink + "#0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(Options{SharedURLs: DefaultSharedURLs})
			got, err := r.Resolve(tt.posting)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_MissingLink(t *testing.T) {
	r := NewResolver(Options{})

	_, err := r.Resolve(feed.Posting{Title: "Engineer"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrTypeUnresolvableLink))
	assert.Contains(t, err.Error(), "Engineer")
}

func TestResolve_CounterFollowsCallOrder(t *testing.T) {
	r := NewResolver(Options{SharedURLs: []string{sharedLink}})

	first, err := r.Resolve(feed.Posting{Title: "Engineer", Link: sharedLink})
	require.NoError(t, err)
	// Unshared links do not advance the counter
	_, err = r.Resolve(feed.Posting{Title: "Analyst", Link: "https://acme.example/jobs/9"})
	require.NoError(t, err)
	second, err := r.Resolve(feed.Posting{Title: "Engineer", Link: sharedLink})
	require.NoError(t, err)

	assert.Equal(t, sharedLink+"#0", first)
	assert.Equal(t, sharedLink+"#1", second)

	r.Reset(time.Time{})
	again, err := r.Resolve(feed.Posting{Title: "Engineer", Link: sharedLink})
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestResolve_TimestampVariant(t *testing.T) {
	r := NewResolver(Options{SharedURLs: []string{sharedLink}, Variant: reconcile.LinkVariantTimestamp})
	r.Reset(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))

	got, err := r.Resolve(feed.Posting{Title: "Engineer", Link: sharedLink})
	assert.NoError(t, err)
	assert.Equal(t, sharedLink+"#2024-01-12T00:00:00.000Z0", got)
}

func TestResolve_InstancesDoNotShareCounters(t *testing.T) {
	a := NewResolver(Options{SharedURLs: []string{sharedLink}})
	b := NewResolver(Options{SharedURLs: []string{sharedLink}})

	_, _ = a.Resolve(feed.Posting{Link: sharedLink})
	got, err := b.Resolve(feed.Posting{Link: sharedLink})
	assert.NoError(t, err)
	assert.Equal(t, sharedLink+"#0", got)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(reconcile.Config{LinkVariant: reconcile.LinkVariantCounter})
	assert.Equal(t, DefaultIndeedTemplate, opts.IndeedTemplate)
	assert.Equal(t, DefaultSharedURLs, opts.SharedURLs)

	opts = OptionsFromConfig(reconcile.Config{
		IndeedTemplate: "https://www.indeedjobs.com/breathesuite/jobs/%s",
		SharedURLs:     []string{"https://acme.example/careers"},
	})
	assert.Equal(t, "https://www.indeedjobs.com/breathesuite/jobs/%s", opts.IndeedTemplate)
	assert.Equal(t, []string{"https://acme.example/careers"}, opts.SharedURLs)
	assert.True(t, NewResolver(opts).IsShared("https://acme.example/careers"))
	assert.False(t, NewResolver(opts).IsShared(sharedLink))
}
