package service

import (
	"context"
	"shiplyne/internal/events"
	"shiplyne/internal/fixtures"
	"shiplyne/internal/repo"
	"shiplyne/internal/state"
	"sync"
	"time"
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, evs ...events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evs...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	p.events = nil
	p.mu.Unlock()
}

type testEnv struct {
	deps      Dependencies
	store     *state.Store
	publisher *recordingPublisher
}

// newTestEnv seeds the store from fixtures, or from snap when given.
func newTestEnv(snap *state.Snapshot) *testEnv {
	data := fixtures.Seed(fixedNow)
	seed := state.Snapshot{Routes: data.Routes, Bids: data.Bids, Shipments: data.Shipments}
	if snap != nil {
		seed = *snap
	}

	store := state.New(seed)
	pub := &recordingPublisher{}

	return &testEnv{
		deps: Dependencies{
			Repos:     repo.NewFixtureRepositories(data),
			Store:     store,
			Publisher: pub,
			Now:       func() time.Time { return fixedNow },
			Tracking:  TrackingOptions{Mode: TrackingPush},
		},
		store:     store,
		publisher: pub,
	}
}

// testClock is a settable clock safe to read from background goroutines.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
