// Package state is the shared container for the mutable freight collections.
// Every mutation replaces a whole collection under one writer lock, so readers
// always observe a consistent snapshot.
package state

import (
	"shiplyne/internal/entity"
	"sync"
)

type ChangeKind string

const (
	RoutesReplaced    ChangeKind = "routes"
	BidsReplaced      ChangeKind = "bids"
	ShipmentsReplaced ChangeKind = "shipments"
	SnapshotReplaced  ChangeKind = "snapshot"
)

type Snapshot struct {
	Routes    []entity.Route
	Bids      []entity.Bid
	Shipments []entity.Shipment
}

func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Routes:    cloneRoutes(s.Routes),
		Bids:      cloneBids(s.Bids),
		Shipments: cloneShipments(s.Shipments),
	}
}

type Change struct {
	Kind     ChangeKind
	Snapshot Snapshot
}

// Touches reports whether the change may have altered the given collection kind.
func (c Change) Touches(kind ChangeKind) bool {
	return c.Kind == kind || c.Kind == SnapshotReplaced
}

type Listener func(Change)

type Store struct {
	writeMu sync.Mutex

	mu       sync.RWMutex
	snapshot Snapshot

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int
}

func New(seed Snapshot) *Store {
	return &Store{
		snapshot:  seed.Clone(),
		listeners: make(map[int]Listener),
	}
}

func (s *Store) Routes() []entity.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRoutes(s.snapshot.Routes)
}

func (s *Store) Bids() []entity.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneBids(s.snapshot.Bids)
}

func (s *Store) Shipments() []entity.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneShipments(s.snapshot.Shipments)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

func (s *Store) ReplaceRoutes(updater func([]entity.Route) []entity.Route) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := cloneRoutes(updater(s.Routes()))
	s.commit(RoutesReplaced, func(snap *Snapshot) { snap.Routes = next })
}

func (s *Store) ReplaceBids(updater func([]entity.Bid) []entity.Bid) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := cloneBids(updater(s.Bids()))
	s.commit(BidsReplaced, func(snap *Snapshot) { snap.Bids = next })
}

func (s *Store) ReplaceShipments(updater func([]entity.Shipment) []entity.Shipment) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := cloneShipments(updater(s.Shipments()))
	s.commit(ShipmentsReplaced, func(snap *Snapshot) { snap.Shipments = next })
}

// Update replaces several collections at once. When updater returns an error
// the store is left untouched and no listener is called.
func (s *Store) Update(updater func(Snapshot) (Snapshot, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := updater(s.Snapshot())
	if err != nil {
		return err
	}
	next = next.Clone()
	s.commit(SnapshotReplaced, func(snap *Snapshot) { *snap = next })

	return nil
}

// Subscribe registers l for every change. Listeners run synchronously on the
// mutating goroutine while the writer lock is still held, so they observe
// changes in commit order. They may read the store but must not mutate it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			delete(s.listeners, id)
			s.listenersMu.Unlock()
		})
	}
}

// commit must be called with writeMu held. Listeners are notified before
// the caller releases it.
func (s *Store) commit(kind ChangeKind, apply func(*Snapshot)) {
	s.mu.Lock()
	apply(&s.snapshot)
	s.mu.Unlock()

	s.notify(Change{Kind: kind, Snapshot: s.Snapshot()})
}

func (s *Store) notify(c Change) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l(Change{Kind: c.Kind, Snapshot: c.Snapshot.Clone()})
	}
}

func cloneRoutes(in []entity.Route) []entity.Route {
	if in == nil {
		return nil
	}
	out := make([]entity.Route, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}

	return out
}

func cloneBids(in []entity.Bid) []entity.Bid {
	if in == nil {
		return nil
	}
	out := make([]entity.Bid, len(in))
	copy(out, in)

	return out
}

func cloneShipments(in []entity.Shipment) []entity.Shipment {
	if in == nil {
		return nil
	}
	out := make([]entity.Shipment, len(in))
	for i, sh := range in {
		out[i] = sh.Clone()
	}

	return out
}
