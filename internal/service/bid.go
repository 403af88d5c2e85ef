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
	"strings"
	"time"

	"github.com/google/uuid"
)

type BidService struct {
	eventSink
	store       StateStore
	vehicleRepo repo.Vehicle
	now         func() time.Time
}

func NewBidService(deps Dependencies) *BidService {
	deps.withDefaults()

	return &BidService{
		eventSink:   newEventSink(deps),
		store:       deps.Store,
		vehicleRepo: deps.Repos.Vehicle,
		now:         deps.Now,
	}
}

func (s *BidService) ListOpenRoutes(ctx context.Context, filter *entity.RouteFilter, pg *entity.PaginationInput) ([]entity.RouteOutputModel, error) {
	snap := s.store.Snapshot()

	open := make([]entity.Route, 0)
	for _, r := range snap.Routes {
		if r.Status == common.RouteOpen && matchesRouteFilter(&r, filter) {
			open = append(open, r)
		}
	}

	return entity.Paginate(mapRoutes(open, snap.Bids), pg), nil
}

// PlaceBid records a pending bid. The route's status and the vehicle's owner are not checked.
func (s *BidService) PlaceBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	vehicleId := strings.TrimSpace(input.VehicleId)
	if vehicleId == "" {
		return nil, ErrVehicleRequired
	}

	vehicle, err := s.vehicleRepo.GetVehicleById(ctx, vehicleId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}

		return nil, fmt.Errorf("service.PlaceBid: %w", err)
	}

	routes := s.store.Routes()
	ri := findRoute(routes, input.RouteId)
	if ri < 0 {
		return nil, ErrRouteNotFound
	}

	bid := entity.Bid{
		Id:                "bid-" + uuid.NewString(),
		RouteId:           input.RouteId,
		TransporterId:     input.TransporterId,
		VehicleId:         vehicle.Id,
		Amount:            input.Amount,
		Currency:          common.CurrencyINR,
		EstimatedDuration: routes[ri].EstimatedDuration,
		Status:            common.BidPending,
		Notes:             strings.TrimSpace(input.Notes),
		CreatedAt:         s.now().UTC(),
	}

	s.store.ReplaceBids(func(bids []entity.Bid) []entity.Bid {
		return append(bids, bid)
	})

	s.logger.Info("bid placed",
		slog.String("bid_id", bid.Id),
		slog.String("route_id", bid.RouteId),
		slog.String("user_id", bid.TransporterId),
		slog.Float64("amount", bid.Amount))
	s.publish(ctx, events.New(events.BidPlaced, bid.RouteId, bid))

	return mapBid(&bid), nil
}

// WithdrawBid has no state transition behind it yet.
func (s *BidService) WithdrawBid(ctx context.Context, bidId string) error {
	return ErrNotImplemented
}

func (s *BidService) GetUserBids(ctx context.Context, transporterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	return entity.Paginate(mapBids(bidsByTransporter(s.store.Bids(), transporterId)), pg), nil
}

func (s *BidService) GetAssignedRoutes(ctx context.Context, transporterId string) ([]entity.RouteOutputModel, error) {
	snap := s.store.Snapshot()
	return mapRoutes(routesWonBy(snap.Routes, snap.Bids, transporterId, common.RouteAssigned), snap.Bids), nil
}

func (s *BidService) GetCompletedRoutes(ctx context.Context, transporterId string) ([]entity.RouteOutputModel, error) {
	snap := s.store.Snapshot()
	return mapRoutes(routesWonBy(snap.Routes, snap.Bids, transporterId, common.RouteCompleted), snap.Bids), nil
}
