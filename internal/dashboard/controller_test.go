package dashboard

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/geo"
	"github.com/oceanguardio/oceanguard/internal/markers"
	"github.com/oceanguardio/oceanguard/internal/notify"
	"github.com/oceanguardio/oceanguard/internal/observability"
	"github.com/oceanguardio/oceanguard/internal/persist"
	"github.com/oceanguardio/oceanguard/internal/session"
	"github.com/oceanguardio/oceanguard/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	ctrl *Controller
	fake *clockwork.FakeClock
	kv   *persist.Memory
	rec  *markers.Recorder
}

// newEnv wires a controller against fakes and freezes every package-level
// time source on the same fake clock.
func newEnv(t *testing.T, mutate func(*Deps)) *testEnv {
	t.Helper()
	fake := clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC))
	store.SetClock(fake)
	domain.SetClock(fake)
	t.Cleanup(func() {
		store.SetClock(nil)
		domain.SetClock(nil)
	})

	kv := persist.NewMemory()
	rec := &markers.Recorder{}
	deps := Deps{
		Clock:    fake,
		Logger:   discardLogger(),
		Metrics:  observability.NewMetricsForTesting(),
		KV:       kv,
		Checker:  session.NewMockChecker(fake),
		Renderer: rec,
		Locator:  &geo.FixedLocator{Position: domain.Geo{Lat: 13.05, Lon: 80.28}},
		Rand:     rand.New(rand.NewSource(1)),
		Region:   domain.Geo{Lat: 13.0827, Lon: 80.2707},
	}
	if mutate != nil {
		mutate(&deps)
	}

	ctrl := New(deps)
	ctrl.Init(context.Background())
	t.Cleanup(ctrl.Dispose)
	return &testEnv{ctrl: ctrl, fake: fake, kv: kv, rec: rec}
}

// settle advances past the welcome notification and its expiry so no timer
// remains registered on the fake clock. Tests that park a goroutine on the
// clock and use BlockUntil need this first, or the leftover timers would
// satisfy BlockUntil prematurely.
func (e *testEnv) settle() {
	e.fake.Advance(DefaultStartupDelay + notify.DefaultTTL)
}

type submitResult struct {
	report domain.Report
	err    error
}

// submitAsync runs SubmitReport on a goroutine and advances the fake clock
// past the simulated network latency once the call is parked on it.
func submitAsync(t *testing.T, env *testEnv, form ReportForm) submitResult {
	t.Helper()
	env.settle()
	done := make(chan submitResult, 1)
	go func() {
		r, err := env.ctrl.SubmitReport(context.Background(), form)
		done <- submitResult{r, err}
	}()
	env.fake.BlockUntil(1)
	env.fake.Advance(session.DefaultLatency)
	return <-done
}

func notificationTitles(c *Controller) []string {
	var titles []string
	for _, n := range c.Notifications() {
		titles = append(titles, n.Title)
	}
	return titles
}

func TestInit(t *testing.T) {
	env := newEnv(t, nil)

	t.Run("loads the sample collections", func(t *testing.T) {
		reports := env.ctrl.ListReports(store.FilterAll)
		require.Len(t, reports, 5)
		assert.Equal(t, "Bay of Bengal, 15km from Chennai Port", reports[0].Location,
			"newest sample first")
		assert.Len(t, env.ctrl.Social(), 5)
	})

	t.Run("derives stats from the seed baseline plus the collections", func(t *testing.T) {
		s := env.ctrl.Stats()
		assert.Equal(t, 252, s.TotalReports, "247 seed + 5 samples")
		assert.Equal(t, 26, s.ActiveHazards, "23 seed + 3 high/critical samples")
		assert.Equal(t, 193, s.VerifiedReports, "189 seed + 4 verified samples")
		assert.Equal(t, 1347, s.SocialMentions)
	})

	t.Run("one marker per report", func(t *testing.T) {
		assert.Len(t, env.ctrl.Markers(), 5)
	})

	t.Run("welcome notification fires once after the startup delay", func(t *testing.T) {
		assert.Empty(t, env.ctrl.Notifications())
		env.fake.Advance(DefaultStartupDelay)
		titles := notificationTitles(env.ctrl)
		require.Len(t, titles, 1)
		assert.Equal(t, "Welcome to Ocean Guardian!", titles[0])
	})
}

func TestSubmitReport(t *testing.T) {
	t.Run("critical report lands first in the list with a pulsing red marker", func(t *testing.T) {
		env := newEnv(t, nil)

		position := domain.Geo{Lat: 13.05, Lon: 80.28}
		res := submitAsync(t, env, ReportForm{
			Type:        "oil-spill",
			Severity:    "critical",
			Location:    "Chennai Port approach",
			Description: "Sheen spreading from container terminal.",
			Geo:         &position,
		})
		require.NoError(t, res.err)
		assert.Equal(t, 6, res.report.ID)
		assert.Equal(t, "Anonymous User", res.report.Reporter, "reporter defaulted")
		assert.Equal(t, "N/A", res.report.Contact)
		assert.False(t, res.report.Verified)

		reports := env.ctrl.ListReports(store.FilterAll)
		require.NotEmpty(t, reports)
		assert.Equal(t, 6, reports[0].ID, "newest report first")

		m, ok := markerByID(env.ctrl.Markers(), 6)
		require.True(t, ok, "marker synchronized for the new report")
		assert.Equal(t, "#dc2626", m.Style.Color)
		assert.Equal(t, 20, m.Style.Radius)
		assert.True(t, m.Style.Pulsing)

		assert.Contains(t, notificationTitles(env.ctrl), "Report Submitted!")
	})

	t.Run("missing fields fail before the simulated call", func(t *testing.T) {
		env := newEnv(t, nil)

		_, err := env.ctrl.SubmitReport(context.Background(), ReportForm{Type: "oil-spill"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, env.ctrl.ListReports(store.FilterAll), 5, "nothing inserted")
		assert.Contains(t, notificationTitles(env.ctrl), "Form Error")
	})

	t.Run("missing coordinates fall back to the regional center", func(t *testing.T) {
		env := newEnv(t, nil)

		res := submitAsync(t, env, ReportForm{
			Type:        "debris",
			Severity:    "low",
			Location:    "Offshore",
			Description: "Floating debris field.",
		})
		require.NoError(t, res.err)
		assert.Equal(t, domain.Geo{Lat: 13.0827, Lon: 80.2707}, res.report.Geo)
	})

	t.Run("unknown severity is stored as medium", func(t *testing.T) {
		env := newEnv(t, nil)

		res := submitAsync(t, env, ReportForm{
			Type:        "debris",
			Severity:    "catastrophic",
			Location:    "Offshore",
			Description: "Unclassified sighting.",
		})
		require.NoError(t, res.err)
		assert.Equal(t, domain.SeverityMedium, res.report.Severity)
	})
}

func markerByID(ms []markers.Marker, id int) (markers.Marker, bool) {
	for _, m := range ms {
		if m.ReportID == id {
			return m, true
		}
	}
	return markers.Marker{}, false
}

func TestVerify(t *testing.T) {
	env := newEnv(t, nil)

	require.NoError(t, env.ctrl.Verify(3))
	reports := env.ctrl.ListReports(store.FilterVerifiedOnly)
	assert.Len(t, reports, 5, "all samples verified after confirming the algae bloom")
	assert.Contains(t, notificationTitles(env.ctrl), "Report Verified")

	assert.ErrorIs(t, env.ctrl.Verify(99), store.ErrNotFound)
}

func TestLogin(t *testing.T) {
	t.Run("short password keeps the session anonymous", func(t *testing.T) {
		env := newEnv(t, nil)

		_, err := env.ctrl.Login(context.Background(), "a@b.com", "12345")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "password", verr.Field)
		assert.Equal(t, session.StatusAnonymous, env.ctrl.SessionStatus())
		assert.Nil(t, env.ctrl.SessionUser())
		assert.Contains(t, notificationTitles(env.ctrl), "Authentication Failed")
	})

	t.Run("success authenticates and greets by display name", func(t *testing.T) {
		env := newEnv(t, nil)
		env.settle()

		done := make(chan error, 1)
		go func() {
			_, err := env.ctrl.Login(context.Background(), "jane.doe@example.com", "123456")
			done <- err
		}()
		env.fake.BlockUntil(1)
		env.fake.Advance(session.DefaultLatency)
		require.NoError(t, <-done)

		assert.Equal(t, session.StatusAuthenticated, env.ctrl.SessionStatus())
		require.NotNil(t, env.ctrl.SessionUser())
		assert.Equal(t, "Jane Doe", env.ctrl.SessionUser().Name)
		assert.Contains(t, notificationTitles(env.ctrl), "Login Successful")
	})

	t.Run("logout returns to anonymous", func(t *testing.T) {
		env := newEnv(t, nil)
		env.settle()

		done := make(chan error, 1)
		go func() {
			_, err := env.ctrl.Login(context.Background(), "a@b.com", "123456")
			done <- err
		}()
		env.fake.BlockUntil(1)
		env.fake.Advance(session.DefaultLatency)
		require.NoError(t, <-done)

		env.ctrl.Logout(context.Background())
		assert.Equal(t, session.StatusAnonymous, env.ctrl.SessionStatus())
		assert.Contains(t, notificationTitles(env.ctrl), "Signed Out")
	})
}

func TestNotificationLifecycle(t *testing.T) {
	env := newEnv(t, nil)
	env.settle()
	ctx := context.Background()

	// Three rapid pushes: distinct ids, insertion order preserved.
	env.ctrl.ToggleDarkMode(ctx)
	env.ctrl.ToggleDarkMode(ctx)
	env.ctrl.ToggleDarkMode(ctx)

	active := env.ctrl.Notifications()
	require.Len(t, active, 3)
	seen := map[string]bool{}
	for _, n := range active {
		assert.False(t, seen[n.ID], "ids are unique")
		seen[n.ID] = true
		assert.Equal(t, "Theme Changed", n.Title)
	}

	t.Run("dismiss removes one without touching the rest", func(t *testing.T) {
		env.ctrl.DismissNotification(active[1].ID)
		remaining := env.ctrl.Notifications()
		require.Len(t, remaining, 2)
		assert.Equal(t, active[0].ID, remaining[0].ID)
		assert.Equal(t, active[2].ID, remaining[1].ID)

		env.ctrl.DismissNotification(active[1].ID) // already gone
		assert.Len(t, env.ctrl.Notifications(), 2)
	})

	t.Run("the rest auto-expire after the delay", func(t *testing.T) {
		env.fake.Advance(5 * time.Second)
		assert.Empty(t, env.ctrl.Notifications())
	})
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("dark mode round-trips through the store", func(t *testing.T) {
		env := newEnv(t, nil)

		assert.False(t, env.ctrl.DarkMode())
		assert.True(t, env.ctrl.ToggleDarkMode(ctx))

		v, err := env.kv.Get(ctx, persist.KeyDarkMode)
		require.NoError(t, err)
		assert.Equal(t, "true", v)
	})

	t.Run("filter selection persists and survives restart", func(t *testing.T) {
		env := newEnv(t, nil)

		assert.Equal(t, store.FilterHighPriority, env.ctrl.SetFilter(ctx, "high"))
		v, err := env.kv.Get(ctx, persist.KeyReportFilter)
		require.NoError(t, err)
		assert.Equal(t, "high", v)

		reborn := newEnv(t, func(d *Deps) { d.KV = env.kv })
		assert.Equal(t, store.FilterHighPriority, reborn.ctrl.Filter())
	})

	t.Run("unknown filter value falls back to all", func(t *testing.T) {
		env := newEnv(t, nil)
		assert.Equal(t, store.FilterAll, env.ctrl.SetFilter(ctx, "bogus"))
	})
}

func TestUseCurrentLocation(t *testing.T) {
	t.Run("success yields a formatted label", func(t *testing.T) {
		env := newEnv(t, nil)

		label, pos, err := env.ctrl.UseCurrentLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Current Location (13.0500, 80.2800)", label)
		assert.Equal(t, domain.Geo{Lat: 13.05, Lon: 80.28}, pos)
		assert.Contains(t, notificationTitles(env.ctrl), "Location Found")
	})

	t.Run("failure degrades to a notification", func(t *testing.T) {
		env := newEnv(t, func(d *Deps) {
			d.Locator = &geo.FailingLocator{Err: geo.ErrPermissionDenied}
		})

		_, _, err := env.ctrl.UseCurrentLocation(context.Background())
		var eerr *domain.ExternalFailure
		require.ErrorAs(t, err, &eerr)
		assert.Contains(t, notificationTitles(env.ctrl), "Location Error")
	})
}

func TestSimulatedInjection(t *testing.T) {
	env := newEnv(t, nil)

	env.ctrl.AddSimulatedReport(domain.ReportDraft{
		Type:     domain.HazardDebris,
		Severity: domain.SeverityHigh,
		Location: "12km offshore",
		Geo:      domain.Geo{Lat: 13.1, Lon: 80.4},
	})
	env.ctrl.AddSimulatedPost(domain.PostDraft{
		Username:  "SimFeed",
		Content:   "Debris sighting confirmed",
		Sentiment: domain.SentimentNeutral,
		Platform:  domain.PlatformTwitter,
	})

	assert.Len(t, env.ctrl.ListReports(store.FilterAll), 6)
	assert.Len(t, env.ctrl.Social(), 6)
	assert.Len(t, env.ctrl.Markers(), 6, "marker synchronized for the injected report")
	assert.Equal(t, 1348, env.ctrl.Stats().SocialMentions)
}

func TestDriftStats(t *testing.T) {
	env := newEnv(t, nil)

	before := env.ctrl.Stats()
	for i := 0; i < 50; i++ {
		env.ctrl.DriftStats()
	}
	after := env.ctrl.Stats()

	assert.GreaterOrEqual(t, after.TotalReports, before.TotalReports)
	assert.GreaterOrEqual(t, after.VerifiedReports, before.VerifiedReports)
	assert.LessOrEqual(t, after.Coverage, 100)
	assert.GreaterOrEqual(t, after.ActiveHazards, 0)
}

func TestRefreshReports(t *testing.T) {
	env := newEnv(t, nil)
	env.ctrl.SetRefreshSource(func() domain.ReportDraft {
		return domain.ReportDraft{
			Type:        domain.HazardAlgaeBloom,
			Severity:    domain.SeverityLow,
			Location:    "Kovalam backwater",
			Description: "Discoloration reported by survey drone.",
			Geo:         domain.Geo{Lat: 12.79, Lon: 80.25},
		}
	})

	env.ctrl.RefreshReports()
	assert.Len(t, env.ctrl.ListReports(store.FilterAll), 6)
	assert.Contains(t, notificationTitles(env.ctrl), "Data Refreshed")
}

func TestDispose(t *testing.T) {
	t.Run("cancels the welcome notification", func(t *testing.T) {
		env := newEnv(t, nil)
		env.ctrl.Dispose()
		env.fake.Advance(DefaultStartupDelay)
		assert.Empty(t, env.ctrl.Notifications())
	})

	t.Run("rejects further mutation", func(t *testing.T) {
		env := newEnv(t, nil)
		env.ctrl.Dispose()

		env.ctrl.AddSimulatedReport(domain.ReportDraft{Type: domain.HazardDebris})
		env.ctrl.AddSimulatedPost(domain.PostDraft{Username: "late"})
		env.ctrl.RefreshReports()
		assert.Len(t, env.ctrl.ListReports(store.FilterAll), 5)
		assert.Len(t, env.ctrl.Social(), 5)
		assert.Empty(t, env.ctrl.Notifications(), "queue closed")

		env.ctrl.Dispose() // idempotent
	})

	t.Run("readiness reflects the lifecycle", func(t *testing.T) {
		env := newEnv(t, nil)
		assert.NoError(t, env.ctrl.CheckReadiness(context.Background()))
		env.ctrl.Dispose()
		assert.Error(t, env.ctrl.CheckReadiness(context.Background()))
	})
}

func TestChartSeries(t *testing.T) {
	env := newEnv(t, nil)

	series := env.ctrl.ChartSeries(7)
	assert.Len(t, series.Labels, 7)
	assert.Len(t, series.OilSpills, 7)
}
