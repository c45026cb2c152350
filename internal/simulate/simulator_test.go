package simulate

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanguardio/oceanguard/internal/domain"
)

var chennai = domain.Geo{Lat: 13.0827, Lon: 80.2707}

type recordingTarget struct {
	mu      sync.Mutex
	reports []domain.ReportDraft
	posts   []domain.PostDraft
	drifts  int
	drifted chan struct{}
}

func newRecordingTarget() *recordingTarget {
	return &recordingTarget{drifted: make(chan struct{}, 256)}
}

func (t *recordingTarget) AddSimulatedReport(d domain.ReportDraft) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reports = append(t.reports, d)
}

func (t *recordingTarget) AddSimulatedPost(d domain.PostDraft) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.posts = append(t.posts, d)
}

func (t *recordingTarget) DriftStats() {
	t.mu.Lock()
	t.drifts++
	t.mu.Unlock()
	t.drifted <- struct{}{}
}

func (t *recordingTarget) counts() (int, int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.reports), len(t.posts), t.drifts
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTick_AlwaysDrifts(t *testing.T) {
	target := newRecordingTarget()
	s := New(target, clockwork.NewFakeClock(), rand.New(rand.NewSource(1)), chennai, discardLogger())

	const ticks = 100
	for i := 0; i < ticks; i++ {
		s.tick()
	}

	reports, posts, drifts := target.counts()
	assert.Equal(t, ticks, drifts, "drift applies on every tick")

	// Injection is probabilistic (0.3 / 0.4) but the seed pins the counts.
	assert.Greater(t, reports, 0)
	assert.Greater(t, posts, 0)
	assert.Less(t, reports, ticks)
	assert.Less(t, posts, ticks)
}

func TestTick_DeterministicForFixedSeed(t *testing.T) {
	run := func() (int, int, int) {
		target := newRecordingTarget()
		s := New(target, clockwork.NewFakeClock(), rand.New(rand.NewSource(42)), chennai, discardLogger())
		for i := 0; i < 50; i++ {
			s.tick()
		}
		return target.counts()
	}

	r1, p1, d1 := run()
	r2, p2, d2 := run()
	assert.Equal(t, r1, r2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, d1, d2)
}

func TestRandomReportDraft(t *testing.T) {
	s := New(newRecordingTarget(), clockwork.NewFakeClock(), rand.New(rand.NewSource(7)), chennai, discardLogger())

	for i := 0; i < 100; i++ {
		d := s.RandomReportDraft()
		assert.True(t, d.Type.Known())
		assert.Contains(t, simSeverities, d.Severity)
		assert.Equal(t, "Automated System", d.Reporter)
		assert.InDelta(t, chennai.Lat, d.Geo.Lat, coordinateSpread)
		assert.InDelta(t, chennai.Lon, d.Geo.Lon, coordinateSpread)
	}
}

func TestRandomPostDraft(t *testing.T) {
	s := New(newRecordingTarget(), clockwork.NewFakeClock(), rand.New(rand.NewSource(7)), chennai, discardLogger())

	for i := 0; i < 100; i++ {
		d := s.RandomPostDraft()
		assert.Contains(t, simUsernames, d.Username)
		assert.Contains(t, simPlatforms, d.Platform)
		assert.GreaterOrEqual(t, d.Engagement, 50)
		assert.Less(t, d.Engagement, 550)
	}
}

func TestRun_TicksAndStops(t *testing.T) {
	fake := clockwork.NewFakeClock()
	target := newRecordingTarget()
	ticked := make(chan struct{}, 8)
	s := New(target, fake, rand.New(rand.NewSource(1)), chennai, discardLogger(),
		WithInterval(time.Second), WithTickHook(func() { ticked <- struct{}{} }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	fake.BlockUntil(1)
	fake.Advance(time.Second)

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("tick never fired")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("simulator did not stop on cancellation")
	}

	// No tick work after Run returned.
	_, _, before := target.counts()
	fake.Advance(5 * time.Second)
	_, _, after := target.counts()
	require.Equal(t, before, after)
}
