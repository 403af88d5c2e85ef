package state

import (
	"errors"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() Snapshot {
	return Snapshot{
		Routes: []entity.Route{
			{Id: "r1", Status: common.RouteOpen, SpecialRequirements: []string{"Fragile"}},
			{Id: "r2", Status: common.RouteOpen},
		},
		Bids: []entity.Bid{
			{Id: "b1", RouteId: "r1", Status: common.BidPending},
		},
	}
}

func TestReplaceRoutesNotifiesBeforeReturning(t *testing.T) {
	store := New(seed())

	var got []Change
	store.Subscribe(func(c Change) { got = append(got, c) })

	store.ReplaceRoutes(func(routes []entity.Route) []entity.Route {
		return append(routes, entity.Route{Id: "r3", Status: common.RouteOpen})
	})

	require.Len(t, got, 1)
	assert.Equal(t, RoutesReplaced, got[0].Kind)
	assert.Len(t, got[0].Snapshot.Routes, 3)
	assert.Len(t, store.Routes(), 3)
	assert.Equal(t, "r3", store.Routes()[2].Id)
}

func TestReadsReturnCopies(t *testing.T) {
	store := New(seed())

	routes := store.Routes()
	routes[0].Status = common.RouteCompleted
	routes[0].SpecialRequirements[0] = "changed"

	fresh := store.Routes()
	assert.Equal(t, common.RouteOpen, fresh[0].Status)
	assert.Equal(t, "Fragile", fresh[0].SpecialRequirements[0])
}

func TestUpdateIsAtomic(t *testing.T) {
	store := New(seed())

	calls := 0
	store.Subscribe(func(Change) { calls++ })

	err := store.Update(func(s Snapshot) (Snapshot, error) {
		s.Routes[0].Status = common.RouteAssigned
		s.Bids[0].Status = common.BidAccepted
		return s, errors.New("boom")
	})
	require.Error(t, err)
	assert.Equal(t, 0, calls)
	assert.Equal(t, common.RouteOpen, store.Routes()[0].Status)
	assert.Equal(t, common.BidPending, store.Bids()[0].Status)

	err = store.Update(func(s Snapshot) (Snapshot, error) {
		s.Routes[0].Status = common.RouteAssigned
		s.Bids[0].Status = common.BidAccepted
		s.Shipments = append(s.Shipments, entity.Shipment{Id: "s1", RouteId: "r1"})
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	snap := store.Snapshot()
	assert.Equal(t, common.RouteAssigned, snap.Routes[0].Status)
	assert.Equal(t, common.BidAccepted, snap.Bids[0].Status)
	assert.Len(t, snap.Shipments, 1)
}

func TestUnsubscribe(t *testing.T) {
	store := New(seed())

	calls := 0
	unsubscribe := store.Subscribe(func(Change) { calls++ })

	store.ReplaceBids(func(b []entity.Bid) []entity.Bid { return b })
	unsubscribe()
	unsubscribe()
	store.ReplaceBids(func(b []entity.Bid) []entity.Bid { return b })

	assert.Equal(t, 1, calls)
}

func TestListenerMayReadStore(t *testing.T) {
	store := New(seed())

	var seen int
	store.Subscribe(func(Change) { seen = len(store.Shipments()) })

	store.ReplaceShipments(func(s []entity.Shipment) []entity.Shipment {
		return append(s, entity.Shipment{Id: "s1"})
	})

	assert.Equal(t, 1, seen)
}

func TestConcurrentWritersAreSerialized(t *testing.T) {
	store := New(Snapshot{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.ReplaceBids(func(b []entity.Bid) []entity.Bid {
				return append(b, entity.Bid{Status: common.BidPending})
			})
		}()
	}
	wg.Wait()

	assert.Len(t, store.Bids(), 50)
}

func TestListenersSeeChangesInCommitOrder(t *testing.T) {
	store := New(Snapshot{})

	var seen []int
	store.Subscribe(func(c Change) { seen = append(seen, len(c.Snapshot.Routes)) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.ReplaceRoutes(func(r []entity.Route) []entity.Route {
				return append(r, entity.Route{Status: common.RouteOpen})
			})
		}()
	}
	wg.Wait()

	require.Len(t, seen, 50)
	for i, n := range seen {
		assert.Equal(t, i+1, n)
	}
}

func TestChangeTouches(t *testing.T) {
	assert.True(t, Change{Kind: ShipmentsReplaced}.Touches(ShipmentsReplaced))
	assert.True(t, Change{Kind: SnapshotReplaced}.Touches(ShipmentsReplaced))
	assert.False(t, Change{Kind: RoutesReplaced}.Touches(ShipmentsReplaced))
}
