// Package dashboard owns the reactive core of the Ocean Guardian
// dashboard: the canonical stores, derived statistics, the map-marker
// layer, the notification queue, and session state, all behind a single
// controller with an explicit init/dispose lifecycle. No package-level
// mutable state; views receive the controller by reference.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/oceanguardio/oceanguard/internal/chart"
	"github.com/oceanguardio/oceanguard/internal/domain"
	"github.com/oceanguardio/oceanguard/internal/geo"
	"github.com/oceanguardio/oceanguard/internal/markers"
	"github.com/oceanguardio/oceanguard/internal/notify"
	"github.com/oceanguardio/oceanguard/internal/observability"
	"github.com/oceanguardio/oceanguard/internal/persist"
	"github.com/oceanguardio/oceanguard/internal/session"
	"github.com/oceanguardio/oceanguard/internal/stats"
	"github.com/oceanguardio/oceanguard/internal/store"
)

// DefaultStartupDelay is the welcome-notification delay after Init.
const DefaultStartupDelay = 1500 * time.Millisecond

// Deps carries the collaborators wired into a Controller.
type Deps struct {
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	KV       persist.KV
	Checker  session.CredentialChecker
	Renderer markers.MapRenderer
	Locator  geo.Locator
	Rand     *rand.Rand

	Region          domain.Geo
	NotificationTTL time.Duration
	StartupDelay    time.Duration
	NetworkLatency  time.Duration
}

// ReportForm is the raw user input of a hazard report submission.
type ReportForm struct {
	Type        string
	Severity    string
	Location    string
	Description string
	Contact     string
	Images      int

	// Geo overrides the submission coordinates; nil uses the regional
	// center (or a previously fetched current location).
	Geo *domain.Geo
}

// Controller owns all mutable dashboard state. Every mutation entry point
// — user actions and timer callbacks alike — is serialized behind one
// mutex, preserving the run-to-completion semantics the derived views
// assume.
type Controller struct {
	mu sync.Mutex

	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
	kv      persist.KV
	locator geo.Locator
	rng     *rand.Rand

	reports *store.ReportStore
	social  *store.SocialStore
	aggr    *stats.Aggregator
	queue   *notify.Queue
	sync    *markers.Synchronizer
	session *session.Manager

	region       domain.Geo
	startupDelay time.Duration
	latency      time.Duration

	filter   store.ReportFilter
	darkMode bool

	refreshSource func() domain.ReportDraft

	welcome  clockwork.Timer
	ready    atomic.Bool
	disposed bool
}

// New wires a Controller from its collaborators. Call Init before use and
// Dispose on teardown.
func New(deps Deps) *Controller {
	if deps.StartupDelay <= 0 {
		deps.StartupDelay = DefaultStartupDelay
	}
	if deps.NetworkLatency <= 0 {
		deps.NetworkLatency = session.DefaultLatency
	}

	c := &Controller{
		clock:        deps.Clock,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		kv:           deps.KV,
		locator:      deps.Locator,
		rng:          deps.Rand,
		reports:      store.NewReportStore(),
		social:       store.NewSocialStore(),
		aggr:         stats.New(),
		sync:         markers.New(deps.Renderer),
		region:       deps.Region,
		startupDelay: deps.StartupDelay,
		latency:      deps.NetworkLatency,
		filter:       store.FilterAll,
	}

	queueOpts := []notify.Option{
		notify.WithExpireHook(func(domain.Notification) {
			deps.Metrics.NotificationsExpired.Inc()
		}),
	}
	if deps.NotificationTTL > 0 {
		queueOpts = append(queueOpts, notify.WithTTL(deps.NotificationTTL))
	}
	c.queue = notify.NewQueue(deps.Clock, queueOpts...)

	c.session = session.NewManager(deps.KV, deps.Checker, deps.Clock, deps.NetworkLatency, deps.Logger)

	// Every store mutation triggers recomputation and marker
	// reconciliation exactly once.
	c.reports.OnChange(c.refreshDerived)
	c.social.OnChange(c.refreshDerived)

	return c
}

// Init hydrates persisted preferences and session state, loads the sample
// collections, and schedules the one-shot welcome notification.
func (c *Controller) Init(ctx context.Context) {
	c.mu.Lock()

	c.reports.Load(SampleReports(c.clock.Now()))
	c.social.Load(SamplePosts(c.clock.Now()))

	if v, err := c.kv.Get(ctx, persist.KeyDarkMode); err == nil {
		c.darkMode = v == "true"
	}
	if v, err := c.kv.Get(ctx, persist.KeyReportFilter); err == nil {
		c.filter = store.ParseReportFilter(v)
	}

	c.welcome = c.clock.AfterFunc(c.startupDelay, func() {
		c.notifyUser("Welcome to Ocean Guardian!", "Ready to protect our oceans together.", "success")
	})
	c.mu.Unlock()

	c.session.Hydrate(ctx)
	c.ready.Store(true)
	c.logger.Info("dashboard initialized",
		"reports", c.reports.Len(),
		"posts", c.social.Len(),
		"filter", c.filter,
	)
}

// Dispose cancels scheduled work and rejects further mutation. Safe to
// call once the owning view is torn down; nothing fires afterward.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	if c.welcome != nil {
		c.welcome.Stop()
	}
	c.queue.Close()
	c.disposed = true
	c.ready.Store(false)
	c.logger.Info("dashboard disposed")
}

// CheckReadiness reports whether Init has completed, for the readiness
// endpoint.
func (c *Controller) CheckReadiness(_ context.Context) error {
	if !c.ready.Load() {
		return fmt.Errorf("dashboard not initialized")
	}
	return nil
}

// SubmitReport validates the form, waits out the simulated network delay,
// and inserts the report. Validation failures surface as an error
// notification and abort before the simulated call.
func (c *Controller) SubmitReport(ctx context.Context, form ReportForm) (domain.Report, error) {
	if form.Type == "" || form.Severity == "" || form.Location == "" || form.Description == "" {
		c.notifyUser("Form Error", "Please fill in all required fields.", "error")
		return domain.Report{}, &domain.ValidationError{Field: "form", Reason: "please fill in all required fields"}
	}

	// Deferred completion: the submission stays pending without blocking
	// the rest of the system.
	select {
	case <-ctx.Done():
		return domain.Report{}, ctx.Err()
	case <-c.clock.After(c.latency):
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return domain.Report{}, fmt.Errorf("dashboard disposed")
	}

	position := c.region
	if form.Geo != nil {
		position = *form.Geo
	}

	report := c.reports.Add(domain.ReportDraft{
		Type:        domain.HazardType(form.Type),
		Severity:    domain.ParseSeverity(form.Severity),
		Location:    form.Location,
		Description: form.Description,
		Contact:     form.Contact,
		Geo:         position,
		Images:      form.Images,
	})
	c.metrics.ReportsCreated.WithLabelValues("user").Inc()
	c.mu.Unlock()

	c.notifyUser("Report Submitted!", "Your hazard report has been submitted successfully.", "success")
	c.logger.Info("report submitted", "id", report.ID, "type", report.Type, "severity", report.Severity)
	return report, nil
}

// Verify marks a report verified on behalf of an external moderation
// actor. The transition never reverses.
func (c *Controller) Verify(id int) error {
	c.mu.Lock()
	err := c.reports.Verify(id)
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.metrics.ReportsVerified.Inc()
	c.notifyUser("Report Verified", "The hazard report has been confirmed by moderators.", "success")
	return nil
}

// ListReports returns the filtered, newest-first report projection.
func (c *Controller) ListReports(filter store.ReportFilter) []domain.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reports.List(filter)
}

// NearbyReports returns reports within radiusKm of a point, for the
// focus-area query backing the map viewport.
func (c *Controller) NearbyReports(center domain.Geo, radiusKm float64) []domain.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reports.Nearby(center, radiusKm)
}

// FilteredReports lists reports under the currently selected filter.
func (c *Controller) FilteredReports() []domain.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reports.List(c.filter)
}

// SetFilter selects and persists the report list filter.
func (c *Controller) SetFilter(ctx context.Context, raw string) store.ReportFilter {
	c.mu.Lock()
	c.filter = store.ParseReportFilter(raw)
	filter := c.filter
	c.mu.Unlock()

	if err := c.kv.Set(ctx, persist.KeyReportFilter, string(filter)); err != nil {
		c.logger.Warn("persisting report filter failed", "error", err)
	}
	return filter
}

// Filter returns the currently selected report filter.
func (c *Controller) Filter() store.ReportFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Social returns the newest-first social feed.
func (c *Controller) Social() []domain.SocialPost {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.social.List()
}

// SentimentBreakdown returns the social sentiment percentages.
func (c *Controller) SentimentBreakdown() store.SentimentBreakdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.social.Breakdown()
}

// Stats returns the current aggregate counters.
func (c *Controller) Stats() domain.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aggr.Stats()
}

// Markers returns the current map-marker layer ordered by report id.
func (c *Controller) Markers() []markers.Marker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sync.Markers()
}

// Notifications returns the live notifications in insertion order.
func (c *Controller) Notifications() []domain.Notification {
	return c.queue.Active()
}

// DismissNotification removes a notification ahead of its auto-expiry.
func (c *Controller) DismissNotification(id string) {
	if c.queue.Dismiss(id) {
		c.metrics.NotificationsDismissed.Inc()
	}
}

// ChartSeries generates the hazard-trend series for the trailing window.
func (c *Controller) ChartSeries(days int) chart.Series {
	c.mu.Lock()
	defer c.mu.Unlock()
	return chart.Generate(c.clock.Now(), days, c.rng)
}

// UseCurrentLocation asks the geolocation collaborator for a position and
// renders it as a location-field label. Failure degrades gracefully to a
// user-visible notification.
func (c *Controller) UseCurrentLocation(ctx context.Context) (string, domain.Geo, error) {
	pos, err := c.locator.Locate(ctx)
	if err != nil {
		c.notifyUser("Location Error", "Could not get your location. Please enter manually.", "error")
		return "", domain.Geo{}, &domain.ExternalFailure{Op: "geolocation", Reason: err.Error()}
	}

	label := fmt.Sprintf("Current Location (%.4f, %.4f)", pos.Lat, pos.Lon)
	c.notifyUser("Location Found", "Using your current location.", "success")
	return label, pos, nil
}

// ToggleDarkMode flips and persists the theme preference.
func (c *Controller) ToggleDarkMode(ctx context.Context) bool {
	c.mu.Lock()
	c.darkMode = !c.darkMode
	dark := c.darkMode
	c.mu.Unlock()

	if err := c.kv.Set(ctx, persist.KeyDarkMode, strconv.FormatBool(dark)); err != nil {
		c.logger.Warn("persisting theme failed", "error", err)
	}

	mode := "light"
	if dark {
		mode = "dark"
	}
	c.notifyUser("Theme Changed", fmt.Sprintf("Switched to %s mode.", mode), "success")
	return dark
}

// DarkMode returns the current theme preference.
func (c *Controller) DarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.darkMode
}

// SetRefreshSource attaches the synthetic draft generator used by manual
// refresh. Without one, refresh only recomputes.
func (c *Controller) SetRefreshSource(fn func() domain.ReportDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshSource = fn
}

// RefreshReports forces one synthetic injection (when a source is
// attached) and recomputation, mirroring the manual refresh action.
func (c *Controller) RefreshReports() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	if c.refreshSource != nil {
		c.reports.Add(c.refreshSource())
		c.metrics.ReportsCreated.WithLabelValues("simulator").Inc()
	} else {
		c.refreshDerived()
	}
	c.mu.Unlock()

	c.notifyUser("Data Refreshed", "Reports have been updated with latest data.", "success")
}

// Login authenticates through the session manager, surfacing the outcome
// as a notification.
func (c *Controller) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := c.session.Login(ctx, email, password)
	return c.finishAuth(user, err, fmt.Sprintf("Welcome back, %s!", user.Name))
}

// Signup registers through the session manager, surfacing the outcome as a
// notification.
func (c *Controller) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	user, err := c.session.Signup(ctx, name, email, password)
	return c.finishAuth(user, err, fmt.Sprintf("Welcome aboard, %s!", user.Name))
}

// Logout clears the session.
func (c *Controller) Logout(ctx context.Context) {
	c.session.Logout(ctx)
	c.notifyUser("Signed Out", "You have been logged out.", "info")
}

// SessionStatus returns the current session state.
func (c *Controller) SessionStatus() session.Status {
	return c.session.Status()
}

// SessionUser returns the authenticated user, or nil.
func (c *Controller) SessionUser() *domain.User {
	return c.session.User()
}

// AddSimulatedReport injects a synthetic report from the background
// simulator through the same store path as user submissions.
func (c *Controller) AddSimulatedReport(draft domain.ReportDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.reports.Add(draft)
	c.metrics.ReportsCreated.WithLabelValues("simulator").Inc()
}

// AddSimulatedPost injects a synthetic social post.
func (c *Controller) AddSimulatedPost(draft domain.PostDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.social.Add(draft)
	c.metrics.SocialPostsCreated.WithLabelValues("simulator").Inc()
}

// DriftStats applies one round of statistics drift and recomputes.
func (c *Controller) DriftStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.aggr.Drift(c.rng)
	c.refreshDerived()
}

func (c *Controller) finishAuth(user domain.User, err error, successMsg string) (domain.User, error) {
	switch e := err.(type) {
	case nil:
		c.metrics.LoginAttempts.WithLabelValues("success").Inc()
		c.notifyUser("Login Successful", successMsg, "success")
		return user, nil
	case *domain.ValidationError:
		c.metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		c.notifyUser("Authentication Failed", e.Reason, "error")
		return domain.User{}, err
	case *domain.ExternalFailure:
		c.metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		c.notifyUser("Authentication Failed", e.Reason, "error")
		return domain.User{}, err
	default:
		return domain.User{}, err
	}
}

// refreshDerived rebuilds every derived view from the canonical stores.
// Invoked by the store change listeners with c.mu held.
func (c *Controller) refreshDerived() {
	reports := c.reports.Snapshot()
	current := c.aggr.Recompute(reports, c.social.List())
	c.sync.Sync(reports)

	c.metrics.ActiveMarkers.Set(float64(c.sync.Len()))
	c.metrics.StatsCoverage.Set(float64(current.Coverage))
}

// notifyUser pushes a user-visible notification and counts it.
func (c *Controller) notifyUser(title, message, category string) {
	if c.queue.Push(title, message, category) != "" {
		c.metrics.NotificationsPushed.Inc()
	}
}
