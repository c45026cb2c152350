// Package simulate drives the periodic background updates: synthetic
// hazard reports, synthetic social posts, and statistics drift. All
// injections go through the same store operations as user-submitted data,
// so id assignment and downstream triggers are never bypassed.
package simulate

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/geo"
)

// DefaultInterval is the tick period of the background simulation.
const DefaultInterval = 30 * time.Second

// Per-tick probabilities of synthesizing new data, from the reference
// behavior of the dashboard.
const (
	reportProbability = 0.3
	postProbability   = 0.4
)

// coordinateSpread is the max jitter in degrees around the regional center.
const coordinateSpread = 0.25

// Target receives the simulated mutations. The dashboard controller
// implements it, serializing the injections with user-driven mutations.
type Target interface {
	AddSimulatedReport(draft domain.ReportDraft)
	AddSimulatedPost(draft domain.PostDraft)
	DriftStats()
}

// Simulator is the timer-driven generator. One goroutine runs the loop;
// cancel the context to stop it, after which no tick work runs.
type Simulator struct {
	target   Target
	clock    clockwork.Clock
	rng      *rand.Rand
	interval time.Duration
	center   domain.Geo
	logger   *slog.Logger
	onTick   func()
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithInterval overrides the tick period.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) { s.interval = d }
}

// WithTickHook registers a callback invoked after each completed tick,
// used for the tick counter metric.
func WithTickHook(fn func()) Option {
	return func(s *Simulator) { s.onTick = fn }
}

// New creates a simulator injecting into target, drawing randomness from
// the given source so a fixed seed gives a deterministic run.
func New(target Target, clk clockwork.Clock, rng *rand.Rand, center domain.Geo, logger *slog.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		target:   target,
		clock:    clk,
		rng:      rng,
		interval: DefaultInterval,
		center:   center,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the simulation loop until the context is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	s.logger.Info("background simulation started", "interval", s.interval)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("background simulation stopping", "reason", ctx.Err())
			return
		case <-ticker.Chan():
			s.tick()
		}
	}
}

// tick performs one simulation round: maybe a report, maybe a post, always
// statistics drift.
func (s *Simulator) tick() {
	if s.rng.Float64() < reportProbability {
		draft := s.RandomReportDraft()
		s.logger.Debug("injecting simulated report", "type", draft.Type, "severity", draft.Severity)
		s.target.AddSimulatedReport(draft)
	}

	if s.rng.Float64() < postProbability {
		draft := s.RandomPostDraft()
		s.logger.Debug("injecting simulated post", "platform", draft.Platform, "sentiment", draft.Sentiment)
		s.target.AddSimulatedPost(draft)
	}

	s.target.DriftStats()

	if s.onTick != nil {
		s.onTick()
	}
}

var (
	simHazardTypes = []domain.HazardType{
		domain.HazardOilSpill,
		domain.HazardPlasticWaste,
		domain.HazardChemicalPollution,
		domain.HazardMarineLife,
		domain.HazardAlgaeBloom,
	}
	simSeverities = []domain.Severity{
		domain.SeverityLow,
		domain.SeverityMedium,
		domain.SeverityHigh,
		domain.SeverityCritical,
	}
	simLocations = []string{
		"Bay of Bengal Coast",
		"Marina Beach Area",
		"Ennore Creek",
		"Pulicat Lake Region",
		"Covelong Beach",
	}
	simUsernames = []string{
		"OceanWatcher",
		"MarineAlert",
		"EcoWarrior",
		"CoastGuardian",
		"BlueDefender",
	}
	simPlatforms = []domain.Platform{
		domain.PlatformTwitter,
		domain.PlatformInstagram,
		domain.PlatformFacebook,
	}
	simSentiments = []domain.Sentiment{
		domain.SentimentPositive,
		domain.SentimentNegative,
		domain.SentimentNeutral,
	}
)

// RandomReportDraft synthesizes one report draft with jittered coordinates
// near the regional center.
func (s *Simulator) RandomReportDraft() domain.ReportDraft {
	return domain.ReportDraft{
		Type:        simHazardTypes[s.rng.Intn(len(simHazardTypes))],
		Severity:    simSeverities[s.rng.Intn(len(simSeverities))],
		Location:    simLocations[s.rng.Intn(len(simLocations))],
		Description: "New hazard detected through automated monitoring system.",
		Reporter:    "Automated System",
		Contact:     "system@oceanguardian.org",
		Geo:         geo.Jitter(s.rng, s.center, coordinateSpread),
		Images:      s.rng.Intn(3),
		Verified:    s.rng.Float64() > 0.5,
	}
}

// RandomPostDraft synthesizes one social post draft.
func (s *Simulator) RandomPostDraft() domain.PostDraft {
	return domain.PostDraft{
		Username:   simUsernames[s.rng.Intn(len(simUsernames))],
		Content:    "Monitoring ocean conditions and marine life safety. Stay alert for environmental changes.",
		Sentiment:  simSentiments[s.rng.Intn(len(simSentiments))],
		Platform:   simPlatforms[s.rng.Intn(len(simPlatforms))],
		Engagement: s.rng.Intn(500) + 50,
		Verified:   s.rng.Float64() > 0.7,
	}
}
