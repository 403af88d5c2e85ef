package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/events"
	"shiplyne/internal/repo"
	"shiplyne/internal/repo/repo_errors"
	"shiplyne/internal/state"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Distance and duration are not derived from coordinates yet.
const (
	placeholderDistance = 500
	placeholderDuration = 24
	defaultLeadDays     = 3
)

// errUnchanged aborts a store update that would not change anything.
var errUnchanged = errors.New("unchanged")

type RouteService struct {
	eventSink
	store        StateStore
	locationRepo repo.Location
	now          func() time.Time
}

func NewRouteService(deps Dependencies) *RouteService {
	deps.withDefaults()

	return &RouteService{
		eventSink:    newEventSink(deps),
		store:        deps.Store,
		locationRepo: deps.Repos.Location,
		now:          deps.Now,
	}
}

func (s *RouteService) resolveLocation(ctx context.Context, id string) (*entity.Location, error) {
	loc, err := s.locationRepo.GetLocationById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrLocationNotFound
		}

		return nil, fmt.Errorf("service.CreateRoute: %w", err)
	}

	return loc, nil
}

func (s *RouteService) CreateRoute(ctx context.Context, input *entity.CreateRouteInput) (*entity.RouteOutputModel, error) {
	source, err := s.resolveLocation(ctx, input.SourceId)
	if err != nil {
		return nil, err
	}
	destination, err := s.resolveLocation(ctx, input.DestinationId)
	if err != nil {
		return nil, err
	}
	if source.Id == destination.Id {
		return nil, ErrSameLocation
	}

	now := s.now().UTC()
	departure := strings.TrimSpace(input.DepartureDate)
	if departure == "" {
		departure = now.AddDate(0, 0, defaultLeadDays).Format(entity.DateLayout)
	}

	route := entity.Route{
		Id:                  "route-" + uuid.NewString(),
		CreatedBy:           input.CreatedBy,
		Source:              *source,
		Destination:         *destination,
		Distance:            placeholderDistance,
		EstimatedDuration:   placeholderDuration,
		Status:              common.RouteOpen,
		LoadType:            strings.TrimSpace(input.LoadType),
		Weight:              input.Weight,
		SpecialRequirements: SplitRequirements(input.SpecialRequirements),
		CreatedAt:           now,
		DepartureDate:       departure,
	}

	s.store.ReplaceRoutes(func(routes []entity.Route) []entity.Route {
		return append(routes, route)
	})

	s.logger.Info("route created",
		slog.String("route_id", route.Id),
		slog.String("user_id", route.CreatedBy),
		slog.String("source", source.Name),
		slog.String("destination", destination.Name))
	s.publish(ctx, events.New(events.RouteCreated, route.Id, route))

	return mapRoute(&route, 0), nil
}

// DeleteRoute removes the route whatever its status. Its bids and shipments stay.
func (s *RouteService) DeleteRoute(ctx context.Context, routeId string) error {
	err := s.store.Update(func(snap state.Snapshot) (state.Snapshot, error) {
		i := findRoute(snap.Routes, routeId)
		if i < 0 {
			return snap, ErrRouteNotFound
		}
		snap.Routes = append(snap.Routes[:i], snap.Routes[i+1:]...)
		return snap, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("route deleted", slog.String("route_id", routeId))
	s.publish(ctx, events.New(events.RouteDeleted, routeId, nil))

	return nil
}

func (s *RouteService) MarkCompleted(ctx context.Context, routeId string) (*entity.RouteOutputModel, error) {
	var (
		completed entity.Route
		bidCount  int
	)
	err := s.store.Update(func(snap state.Snapshot) (state.Snapshot, error) {
		i := findRoute(snap.Routes, routeId)
		if i < 0 {
			return snap, ErrRouteNotFound
		}
		snap.Routes[i].Status = common.RouteCompleted
		completed = snap.Routes[i]
		bidCount = len(bidsByRoute(snap.Bids, routeId))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("route completed", slog.String("route_id", routeId))
	s.publish(ctx, events.New(events.RouteCompleted, routeId, nil))

	return mapRoute(&completed, bidCount), nil
}

type acceptance struct {
	route     entity.Route
	bid       entity.Bid
	rejected  []entity.Bid
	shipment  entity.Shipment
	created   bool
	cancelled []string
}

// AcceptBid assigns the bid's route, accepts the bid, rejects every sibling and
// makes sure a shipment exists for it, all in one store update. Once another
// bid's shipment has left scheduled the route can't switch bids.
func (s *RouteService) AcceptBid(ctx context.Context, bidId string) (*entity.AcceptBidOutputModel, error) {
	now := s.now().UTC()

	var result acceptance
	err := s.store.Update(func(snap state.Snapshot) (state.Snapshot, error) {
		result = acceptance{}
		changed := false

		bi := findBid(snap.Bids, bidId)
		if bi < 0 {
			return snap, ErrBidNotFound
		}
		ri := findRoute(snap.Routes, snap.Bids[bi].RouteId)
		if ri < 0 {
			return snap, ErrRouteNotFound
		}

		route := &snap.Routes[ri]
		for _, sh := range snap.Shipments {
			if sh.RouteId == route.Id && sh.BidId != bidId &&
				(sh.Status == common.ShipmentInTransit || sh.Status == common.ShipmentDelivered) {
				return snap, ErrInvalidTransition
			}
		}
		if route.Status != common.RouteAssigned || route.AssignedBidId != bidId {
			route.Status = common.RouteAssigned
			route.AssignedBidId = bidId
			changed = true
		}

		for i := range snap.Bids {
			b := &snap.Bids[i]
			if b.RouteId != route.Id {
				continue
			}
			want := common.BidRejected
			if b.Id == bidId {
				want = common.BidAccepted
			}
			if b.Status != want {
				b.Status = want
				changed = true
			}
			if b.Id == bidId {
				result.bid = *b
			} else {
				result.rejected = append(result.rejected, *b)
			}
		}

		found := false
		for i := range snap.Shipments {
			sh := &snap.Shipments[i]
			if sh.RouteId != route.Id {
				continue
			}
			if sh.BidId == bidId {
				result.shipment = *sh
				found = true
			} else if sh.Status == common.ShipmentScheduled {
				sh.Status = common.ShipmentCancelled
				result.cancelled = append(result.cancelled, sh.Id)
				changed = true
			}
		}
		if !found {
			result.shipment = newShipment(route, &result.bid, now)
			result.created = true
			snap.Shipments = append(snap.Shipments, result.shipment)
			changed = true
		}

		result.route = *route
		if !changed {
			return snap, errUnchanged
		}

		return snap, nil
	})
	if err != nil && !errors.Is(err, errUnchanged) {
		return nil, err
	}

	if err == nil {
		s.logger.Info("bid accepted",
			slog.String("bid_id", bidId),
			slog.String("route_id", result.route.Id),
			slog.String("shipment_id", result.shipment.Id),
			slog.Int("rejected", len(result.rejected)))

		evs := []events.Event{events.New(events.BidAccepted, result.route.Id, result.bid)}
		if result.created {
			evs = append(evs, events.New(events.ShipmentCreated, result.shipment.Id, result.shipment))
		}
		for _, id := range result.cancelled {
			evs = append(evs, events.New(events.ShipmentStatusChanged, id, map[string]string{"status": common.ShipmentCancelled}))
		}
		s.publish(ctx, evs...)
	}

	bidCount := len(result.rejected) + 1
	return &entity.AcceptBidOutputModel{
		Route:    *mapRoute(&result.route, bidCount),
		Bid:      *mapBid(&result.bid),
		Rejected: mapBids(result.rejected),
		Shipment: mapShipment(&result.shipment),
	}, nil
}

func newShipment(route *entity.Route, bid *entity.Bid, now time.Time) entity.Shipment {
	return entity.Shipment{
		Id:             "ship-" + uuid.NewString(),
		RouteId:        route.Id,
		BidId:          bid.Id,
		TransporterId:  bid.TransporterId,
		FactoryOwnerId: route.CreatedBy,
		VehicleId:      bid.VehicleId,
		Status:         common.ShipmentScheduled,
		DepartureTime:  route.DepartureDate,
		PaymentStatus:  common.PaymentPending,
		CreatedAt:      now,
	}
}

// RejectBid has no state transition behind it yet.
func (s *RouteService) RejectBid(ctx context.Context, bidId string) error {
	return ErrNotImplemented
}

func (s *RouteService) GetRoute(ctx context.Context, routeId string) (*entity.RouteOutputModel, error) {
	snap := s.store.Snapshot()
	i := findRoute(snap.Routes, routeId)
	if i < 0 {
		return nil, ErrRouteNotFound
	}

	return mapRoute(&snap.Routes[i], len(bidsByRoute(snap.Bids, routeId))), nil
}

func (s *RouteService) GetUserRoutes(ctx context.Context, createdBy string, status string, pg *entity.PaginationInput) ([]entity.RouteOutputModel, error) {
	if status != "" && !common.IsRouteStatus(status) {
		return nil, ErrInvalidStatus
	}

	snap := s.store.Snapshot()
	owned := make([]entity.Route, 0)
	for _, r := range routesByStatus(snap.Routes, status) {
		if r.CreatedBy == createdBy {
			owned = append(owned, r)
		}
	}

	return entity.Paginate(mapRoutes(owned, snap.Bids), pg), nil
}

func (s *RouteService) GetRoutesByStatus(ctx context.Context, status string) ([]entity.RouteOutputModel, error) {
	if status != "" && !common.IsRouteStatus(status) {
		return nil, ErrInvalidStatus
	}

	snap := s.store.Snapshot()
	return mapRoutes(routesByStatus(snap.Routes, status), snap.Bids), nil
}

func (s *RouteService) GetRouteBids(ctx context.Context, routeId string) ([]entity.BidOutputModel, error) {
	return mapBids(bidsByRoute(s.store.Bids(), routeId)), nil
}

func (s *RouteService) GetAssignedBid(ctx context.Context, routeId string) (*entity.BidOutputModel, error) {
	b, ok := assignedBid(s.store.Bids(), routeId)
	if !ok {
		return nil, ErrBidNotFound
	}

	return mapBid(&b), nil
}
