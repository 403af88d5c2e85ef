package service

import (
	"context"
	"errors"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/events"
	"shiplyne/internal/fixtures"
	"shiplyne/internal/state"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBidSnapshot is R1 (Delhi to Mumbai) with pending bids of 75000 and 82000.
func twoBidSnapshot() *state.Snapshot {
	locs := fixtures.Locations()
	return &state.Snapshot{
		Routes: []entity.Route{
			{Id: "R1", CreatedBy: "user3", Source: locs[0], Destination: locs[1], Status: common.RouteOpen, LoadType: "Electronics", Weight: 15, EstimatedDuration: 24, DepartureDate: "2025-03-22"},
		},
		Bids: []entity.Bid{
			{Id: "B1", RouteId: "R1", TransporterId: "user1", VehicleId: "veh1", Amount: 75000, Currency: common.CurrencyINR, Status: common.BidPending},
			{Id: "B2", RouteId: "R1", TransporterId: "user2", VehicleId: "veh3", Amount: 82000, Currency: common.CurrencyINR, Status: common.BidPending},
		},
	}
}

func bidStatus(t *testing.T, store *state.Store, id string) string {
	t.Helper()
	for _, b := range store.Bids() {
		if b.Id == id {
			return b.Status
		}
	}
	t.Fatalf("bid %s not in store", id)
	return ""
}

func TestAcceptBidAssignsRouteAndRejectsSiblings(t *testing.T) {
	env := newTestEnv(twoBidSnapshot())
	svc := NewRouteService(env.deps)

	out, err := svc.AcceptBid(context.Background(), "B1")
	require.NoError(t, err)

	routes := env.store.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, common.RouteAssigned, routes[0].Status)
	assert.Equal(t, "B1", routes[0].AssignedBidId)
	assert.Equal(t, common.BidAccepted, bidStatus(t, env.store, "B1"))
	assert.Equal(t, common.BidRejected, bidStatus(t, env.store, "B2"))

	assert.Equal(t, "B1", out.Bid.Id)
	require.Len(t, out.Rejected, 1)
	assert.Equal(t, "B2", out.Rejected[0].Id)

	shipments := env.store.Shipments()
	require.Len(t, shipments, 1)
	sh := shipments[0]
	assert.True(t, strings.HasPrefix(sh.Id, "ship-"))
	assert.Equal(t, "R1", sh.RouteId)
	assert.Equal(t, "B1", sh.BidId)
	assert.Equal(t, "user1", sh.TransporterId)
	assert.Equal(t, "user3", sh.FactoryOwnerId)
	assert.Equal(t, "veh1", sh.VehicleId)
	assert.Equal(t, common.ShipmentScheduled, sh.Status)
	assert.Equal(t, common.PaymentPending, sh.PaymentStatus)
	assert.Equal(t, "2025-03-22", sh.DepartureTime)
	assert.Equal(t, sh.Id, out.Shipment.Id)

	assert.Equal(t, []events.Type{events.BidAccepted, events.ShipmentCreated}, env.publisher.types())
}

func TestAcceptBidIsIdempotent(t *testing.T) {
	env := newTestEnv(twoBidSnapshot())
	svc := NewRouteService(env.deps)

	_, err := svc.AcceptBid(context.Background(), "B1")
	require.NoError(t, err)
	once := env.store.Snapshot()
	env.publisher.reset()

	notified := 0
	env.store.Subscribe(func(state.Change) { notified++ })

	out, err := svc.AcceptBid(context.Background(), "B1")
	require.NoError(t, err)

	assert.Equal(t, once, env.store.Snapshot())
	assert.Equal(t, once.Shipments[0].Id, out.Shipment.Id)
	assert.Equal(t, 0, notified)
	assert.Empty(t, env.publisher.types())
}

func TestAcceptBidRejectsEveryOtherStatus(t *testing.T) {
	snap := twoBidSnapshot()
	snap.Bids = append(snap.Bids,
		entity.Bid{Id: "B3", RouteId: "R1", Status: common.BidWithdrawn},
		entity.Bid{Id: "B4", RouteId: "other", Status: common.BidPending},
	)
	env := newTestEnv(snap)

	_, err := NewRouteService(env.deps).AcceptBid(context.Background(), "B2")
	require.NoError(t, err)

	assert.Equal(t, common.BidRejected, bidStatus(t, env.store, "B1"))
	assert.Equal(t, common.BidAccepted, bidStatus(t, env.store, "B2"))
	assert.Equal(t, common.BidRejected, bidStatus(t, env.store, "B3"))
	assert.Equal(t, common.BidPending, bidStatus(t, env.store, "B4"))
}

func TestAcceptBidSwitchingCancelsScheduledShipment(t *testing.T) {
	env := newTestEnv(twoBidSnapshot())
	svc := NewRouteService(env.deps)
	ctx := context.Background()

	first, err := svc.AcceptBid(ctx, "B1")
	require.NoError(t, err)
	second, err := svc.AcceptBid(ctx, "B2")
	require.NoError(t, err)

	assert.Equal(t, common.BidRejected, bidStatus(t, env.store, "B1"))
	assert.Equal(t, common.BidAccepted, bidStatus(t, env.store, "B2"))
	assert.Equal(t, "B2", env.store.Routes()[0].AssignedBidId)

	statuses := map[string]string{}
	for _, sh := range env.store.Shipments() {
		statuses[sh.Id] = sh.Status
	}
	assert.Equal(t, common.ShipmentCancelled, statuses[first.Shipment.Id])
	assert.Equal(t, common.ShipmentScheduled, statuses[second.Shipment.Id])
}

func TestAcceptBidRefusesOnceShipmentIsUnderWay(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewRouteService(env.deps)
	ctx := context.Background()
	require.Equal(t, common.ShipmentInTransit, env.store.Shipments()[0].Status)
	before := env.store.Snapshot()

	_, err := svc.AcceptBid(ctx, "bid5")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, before, env.store.Snapshot())
	assert.Empty(t, env.publisher.types())

	out, err := svc.AcceptBid(ctx, "bid4")
	require.NoError(t, err)
	assert.Equal(t, "ship1", out.Shipment.Id)

	_, err = NewShipmentService(env.deps).AdvanceShipment(ctx, "ship1", common.ShipmentDelivered)
	require.NoError(t, err)

	_, err = svc.AcceptBid(ctx, "bid5")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	shipments := env.store.Shipments()
	require.Len(t, shipments, 1)
	assert.Equal(t, "bid4", shipments[0].BidId)
	assert.Equal(t, common.BidAccepted, bidStatus(t, env.store, "bid4"))
	assert.Equal(t, common.BidRejected, bidStatus(t, env.store, "bid5"))
}

func TestAcceptBidFailuresLeaveStateUntouched(t *testing.T) {
	snap := twoBidSnapshot()
	snap.Bids = append(snap.Bids, entity.Bid{Id: "orphan", RouteId: "gone", Status: common.BidPending})
	env := newTestEnv(snap)
	svc := NewRouteService(env.deps)
	before := env.store.Snapshot()

	_, err := svc.AcceptBid(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBidNotFound)

	_, err = svc.AcceptBid(context.Background(), "orphan")
	assert.ErrorIs(t, err, ErrRouteNotFound)

	assert.Equal(t, before, env.store.Snapshot())
	assert.Empty(t, env.publisher.types())
}

func TestCreateRoute(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewRouteService(env.deps)
	before := len(env.store.Routes())

	out, err := svc.CreateRoute(context.Background(), &entity.CreateRouteInput{
		SourceId:            "loc3",
		DestinationId:       "loc6",
		LoadType:            " Spices ",
		Weight:              12.5,
		SpecialRequirements: []string{"Fragile, Dry ", "", " Stackable"},
		CreatedBy:           "user3",
	})
	require.NoError(t, err)

	routes := env.store.Routes()
	require.Len(t, routes, before+1)
	created := routes[len(routes)-1]
	assert.Equal(t, out.Id, created.Id)
	assert.True(t, strings.HasPrefix(created.Id, "route-"))
	assert.Equal(t, common.RouteOpen, created.Status)
	assert.Equal(t, 500, created.Distance)
	assert.Equal(t, 24, created.EstimatedDuration)
	assert.Equal(t, "user3", created.CreatedBy)
	assert.Equal(t, "Bangalore", created.Source.City)
	assert.Equal(t, "Kolkata", created.Destination.City)
	assert.Equal(t, "Spices", created.LoadType)
	assert.Equal(t, []string{"Fragile", "Dry", "Stackable"}, created.SpecialRequirements)
	assert.Equal(t, "2025-03-18", created.DepartureDate)
	assert.Equal(t, "Mar 18, 2025", out.DepartureDateDisplay)
	assert.Equal(t, fixedNow, created.CreatedAt)

	assert.Equal(t, []events.Type{events.RouteCreated}, env.publisher.types())
}

func TestCreateRouteUnknownLocation(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewRouteService(env.deps)
	before := env.store.Routes()

	_, err := svc.CreateRoute(context.Background(), &entity.CreateRouteInput{SourceId: "loc99", DestinationId: "loc1", LoadType: "x", Weight: 1})
	assert.ErrorIs(t, err, ErrLocationNotFound)

	_, err = svc.CreateRoute(context.Background(), &entity.CreateRouteInput{SourceId: "loc1", DestinationId: "loc99", LoadType: "x", Weight: 1})
	assert.ErrorIs(t, err, ErrLocationNotFound)

	_, err = svc.CreateRoute(context.Background(), &entity.CreateRouteInput{SourceId: "loc1", DestinationId: "loc1", LoadType: "x", Weight: 1})
	assert.ErrorIs(t, err, ErrSameLocation)

	assert.Equal(t, before, env.store.Routes())
}

func TestCreateRouteSurvivesPublishFailure(t *testing.T) {
	env := newTestEnv(nil)
	env.publisher.err = errors.New("broker down")

	_, err := NewRouteService(env.deps).CreateRoute(context.Background(), &entity.CreateRouteInput{
		SourceId: "loc1", DestinationId: "loc2", LoadType: "Steel", Weight: 5, DepartureDate: "2025-04-01",
	})
	require.NoError(t, err)
	assert.Len(t, env.store.Routes(), 6)
}

func TestDeleteRouteOrphansBids(t *testing.T) {
	env := newTestEnv(twoBidSnapshot())
	svc := NewRouteService(env.deps)
	bidsBefore := env.store.Bids()

	require.NoError(t, svc.DeleteRoute(context.Background(), "R1"))

	assert.Empty(t, env.store.Routes())
	assert.Equal(t, bidsBefore, env.store.Bids())

	assert.ErrorIs(t, svc.DeleteRoute(context.Background(), "R1"), ErrRouteNotFound)
}

func TestDeleteAssignedRouteKeepsShipment(t *testing.T) {
	env := newTestEnv(nil)

	require.NoError(t, NewRouteService(env.deps).DeleteRoute(context.Background(), "route3"))

	assert.Len(t, env.store.Shipments(), 1)
	assert.Equal(t, "route3", env.store.Shipments()[0].RouteId)
}

func TestMarkCompletedHasNoStatusGuard(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewRouteService(env.deps)

	out, err := svc.MarkCompleted(context.Background(), "route2")
	require.NoError(t, err)
	assert.Equal(t, common.RouteCompleted, out.Status)
	assert.Equal(t, 1, out.BidCount)

	_, err = svc.MarkCompleted(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

// racingStore runs before ahead of every Update, standing in for a writer
// that commits between a caller's read and its own write.
type racingStore struct {
	*state.Store
	before func()
}

func (s *racingStore) Update(updater func(state.Snapshot) (state.Snapshot, error)) error {
	if s.before != nil {
		s.before()
	}
	return s.Store.Update(updater)
}

func TestRouteWritesSeeConcurrentDelete(t *testing.T) {
	env := newTestEnv(twoBidSnapshot())
	racing := &racingStore{Store: env.store}
	racing.before = func() {
		env.store.ReplaceRoutes(func(routes []entity.Route) []entity.Route { return routes[:0] })
	}
	env.deps.Store = racing
	svc := NewRouteService(env.deps)
	ctx := context.Background()

	_, err := svc.MarkCompleted(ctx, "R1")
	assert.ErrorIs(t, err, ErrRouteNotFound)

	err = svc.DeleteRoute(ctx, "R1")
	assert.ErrorIs(t, err, ErrRouteNotFound)

	assert.Empty(t, env.store.Routes())
	assert.Empty(t, env.publisher.types())
}

func TestRouteQueries(t *testing.T) {
	env := newTestEnv(nil)
	svc := NewRouteService(env.deps)
	ctx := context.Background()

	mine, err := svc.GetUserRoutes(ctx, "user3", "", nil)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "route1", mine[0].Id)
	assert.Equal(t, 2, mine[0].BidCount)

	_, err = svc.GetUserRoutes(ctx, "user3", "lost", nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	assigned, err := svc.GetRoutesByStatus(ctx, common.RouteAssigned)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, "route3", assigned[0].Id)

	bids, err := svc.GetRouteBids(ctx, "route1")
	require.NoError(t, err)
	assert.Len(t, bids, 2)

	bid, err := svc.GetAssignedBid(ctx, "route3")
	require.NoError(t, err)
	assert.Equal(t, "bid4", bid.Id)

	_, err = svc.GetAssignedBid(ctx, "route1")
	assert.ErrorIs(t, err, ErrBidNotFound)

	_, err = svc.GetRoute(ctx, "route404")
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestRejectBidIsInert(t *testing.T) {
	env := newTestEnv(nil)
	before := env.store.Snapshot()

	err := NewRouteService(env.deps).RejectBid(context.Background(), "bid1")
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.Equal(t, before, env.store.Snapshot())
}
