// Package report assembles an emissions report from an inventory and
// renders it as styled text, Markdown or JSON.
package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonfocus/internal/benchmark"
	"github.com/rshade/carbonfocus/internal/factors"
	"github.com/rshade/carbonfocus/internal/greenops"
	"github.com/rshade/carbonfocus/internal/input"
	"github.com/rshade/carbonfocus/internal/inventory"
	"github.com/rshade/carbonfocus/internal/strategies"
	"github.com/rshade/carbonfocus/internal/targets"
)

// ScopeSummary is one scope's subtotal and share of the total.
type ScopeSummary struct {
	Scope     string  `json:"scope"`
	Emissions float64 `json:"emissions"`
	Share     float64 `json:"share"`
}

// Report is everything a rendered report shows.
type Report struct {
	ID               string                         `json:"id"`
	GeneratedAt      time.Time                      `json:"generated_at"`
	Organization     input.Profile                  `json:"organization"`
	Total            float64                        `json:"total"`
	Scopes           []ScopeSummary                 `json:"scopes"`
	PerEmployee      float64                        `json:"per_employee"`
	Intensity        float64                        `json:"intensity"`
	PerformanceClass string                         `json:"performance_class"`
	Target           *targets.Target                `json:"target,omitempty"`
	Breakdowns       map[string]inventory.Breakdown `json:"breakdowns"`
	Equivalencies    greenops.Summary               `json:"equivalencies"`
	Recommendations  []strategies.Strategy          `json:"recommendations"`
	IndustryActions  []string                       `json:"industry_actions"`
}

// Options controls Build.
type Options struct {
	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
	// Target is the reduction target to include, if any.
	Target *targets.Target
}

// Build assembles a report.
func Build(profile input.Profile, snap inventory.Snapshot, opts Options) Report {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generated := now().UTC()

	scopes := make([]ScopeSummary, 0, len(factors.Scopes()))
	breakdowns := make(map[string]inventory.Breakdown, len(factors.Scopes()))
	for _, s := range factors.Scopes() {
		scopes = append(scopes, ScopeSummary{
			Scope:     s.String(),
			Emissions: snap.ScopeTotal(s),
			Share:     snap.Share(s),
		})
		breakdowns[s.Key()] = snap.ScopeBreakdown(s)
	}

	intensity := benchmark.EmissionsIntensity(snap.Total, profile.Revenue)

	return Report{
		ID:               ulid.MustNew(ulid.Timestamp(generated), rand.Reader).String(),
		GeneratedAt:      generated,
		Organization:     profile,
		Total:            snap.Total,
		Scopes:           scopes,
		PerEmployee:      benchmark.PerEmployee(snap.Total, profile.Employees),
		Intensity:        intensity,
		PerformanceClass: benchmark.Classify(intensity, profile.Industry),
		Target:           opts.Target,
		Breakdowns:       breakdowns,
		Equivalencies:    greenops.FromSnapshot(snap),
		Recommendations:  strategies.Recommend(snap),
		IndustryActions:  strategies.IndustryRecommendations(profile.Industry),
	}
}

// Breakdown returns the breakdown for scope.
func (r Report) Breakdown(scope factors.Scope) inventory.Breakdown {
	return r.Breakdowns[scope.Key()]
}
