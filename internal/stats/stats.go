// Package stats derives the aggregate dashboard counters from the canonical
// collections and applies the periodic synthetic drift that simulates live
// telemetry.
package stats

import (
	"math/rand"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

// Seed counters representing telemetry accumulated before this session.
// The deterministic baseline adds store-derived counts on top of these.
var seedStats = domain.Stats{
	TotalReports:    247,
	ActiveHazards:   23,
	VerifiedReports: 189,
	SocialMentions:  1342,
	ActiveUsers:     1847,
	Coverage:        94,
}

// Aggregator owns the Stats value object. It does not decide when to
// recompute; the owning controller triggers Recompute on every store
// mutation and Drift on the simulation interval.
type Aggregator struct {
	base    domain.Stats // drifting floor, mutated only by Drift
	current domain.Stats
}

// New creates an aggregator at the seed baseline.
func New() *Aggregator {
	return &Aggregator{base: seedStats, current: seedStats}
}

// Stats returns the current counters.
func (a *Aggregator) Stats() domain.Stats {
	return a.current
}

// Recompute rebuilds the deterministic baseline from store snapshots:
// every report counts toward the total, severity high or critical counts as
// an active hazard, the verified flag feeds verified reports, and each
// social post is a mention.
func (a *Aggregator) Recompute(reports []domain.Report, posts []domain.SocialPost) domain.Stats {
	cur := a.base
	cur.TotalReports += len(reports)
	cur.SocialMentions += len(posts)
	for _, r := range reports {
		if r.Severity.HighPriority() {
			cur.ActiveHazards++
		}
		if r.Verified {
			cur.VerifiedReports++
		}
	}
	cur.Coverage = clampCoverage(cur.Coverage)
	a.current = cur
	return cur
}

// Drift applies one round of bounded random increments to the telemetry
// floor: totalReports +[0,5), verifiedReports +[0,3), socialMentions
// +[0,20), activeUsers +[0,10), activeHazards +[0,3)-1 (may resolve, floor
// at zero), coverage +[0,2) clamped at 100. No counter ever goes negative.
// The caller recomputes afterwards so the drift reaches the current value.
func (a *Aggregator) Drift(rng *rand.Rand) {
	a.base.TotalReports += rng.Intn(5)
	a.base.VerifiedReports += rng.Intn(3)
	a.base.SocialMentions += rng.Intn(20)
	a.base.ActiveUsers += rng.Intn(10)

	a.base.ActiveHazards += rng.Intn(3) - 1
	if a.base.ActiveHazards < 0 {
		a.base.ActiveHazards = 0
	}

	a.base.Coverage = clampCoverage(a.base.Coverage + rng.Intn(2))
}

func clampCoverage(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
