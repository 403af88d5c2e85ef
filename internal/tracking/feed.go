// Package tracking delivers shipment snapshots to open shipment views. A feed
// either re-reads its source on a timer or reacts to store changes.
package tracking

import (
	"context"
	"log/slog"
	"shiplyne/internal/entity"
	"shiplyne/internal/state"
	"sync"
	"time"
)

const DefaultInterval = 5 * time.Second

type Handler func([]entity.Shipment)

// Source returns the shipments a subscriber is interested in.
type Source func(ctx context.Context) ([]entity.Shipment, error)

type Feed interface {
	// Subscribe delivers the current shipments before returning, then keeps
	// delivering until ctx is done or stop is called. stop is safe to call twice.
	Subscribe(ctx context.Context, h Handler) (stop func())
}

// Notifier is implemented by *state.Store.
type Notifier interface {
	Subscribe(l state.Listener) (unsubscribe func())
}

func deliver(ctx context.Context, source Source, h Handler, logger *slog.Logger) {
	shipments, err := source(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("shipment feed refresh failed", slog.String("error", err.Error()))
		}
		return
	}
	h(shipments)
}

type PollingFeed struct {
	source   Source
	interval time.Duration
	logger   *slog.Logger
}

func NewPollingFeed(source Source, interval time.Duration, logger *slog.Logger) *PollingFeed {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &PollingFeed{source: source, interval: interval, logger: logger}
}

func (f *PollingFeed) Subscribe(ctx context.Context, h Handler) func() {
	deliver(ctx, f.source, h, f.logger)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deliver(ctx, f.source, h, f.logger)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

type PushFeed struct {
	source   Source
	notifier Notifier
	logger   *slog.Logger
}

func NewPushFeed(source Source, notifier Notifier, logger *slog.Logger) *PushFeed {
	return &PushFeed{source: source, notifier: notifier, logger: logger}
}

func (f *PushFeed) Subscribe(ctx context.Context, h Handler) func() {
	deliver(ctx, f.source, h, f.logger)

	ctx, cancel := context.WithCancel(ctx)
	unsubscribe := f.notifier.Subscribe(func(c state.Change) {
		if ctx.Err() != nil || !c.Touches(state.ShipmentsReplaced) {
			return
		}
		deliver(ctx, f.source, h, f.logger)
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			cancel()
		})
	}
}

// OnceFeed delivers a single snapshot and never refreshes.
type OnceFeed struct {
	source Source
	logger *slog.Logger
}

func NewOnceFeed(source Source, logger *slog.Logger) *OnceFeed {
	return &OnceFeed{source: source, logger: logger}
}

func (f *OnceFeed) Subscribe(ctx context.Context, h Handler) func() {
	deliver(ctx, f.source, h, f.logger)

	return func() {}
}
