package service

import (
	"context"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/state"
	"time"
)

type DashboardService struct {
	store StateStore
	now   func() time.Time
}

func NewDashboardService(deps Dependencies) *DashboardService {
	deps.withDefaults()

	return &DashboardService{store: deps.Store, now: deps.Now}
}

func computeStats(snap state.Snapshot, now time.Time) entity.DashboardStats {
	var stats entity.DashboardStats
	year, month, _ := now.Date()

	for _, r := range snap.Routes {
		switch r.Status {
		case common.RouteOpen:
			stats.OpenRoutes++
		case common.RouteAssigned:
			stats.ActiveShipments++
		case common.RouteCompleted:
			y, m, _ := r.CreatedAt.In(now.Location()).Date()
			if y == year && m == month {
				stats.CompletedThisMonth++
			}
		}
	}
	for _, b := range snap.Bids {
		if b.Status == common.BidPending || b.Status == common.BidAccepted {
			stats.ActiveBids++
		}
	}

	return stats
}

// Overview returns the shared stats plus the workspace selected by role.
func (s *DashboardService) Overview(ctx context.Context, role common.Role, userId string) (*entity.DashboardOutputModel, error) {
	snap := s.store.Snapshot()
	out := &entity.DashboardOutputModel{
		Role:   string(role),
		UserId: userId,
		Stats:  computeStats(snap, s.now()),
	}

	switch role {
	case common.Transport:
		out.Transport = transportWorkspace(snap, userId)
	case common.Factory:
		out.Factory = factoryWorkspace(snap, userId)
	default:
		return nil, ErrInvalidRole
	}

	return out, nil
}

func transportWorkspace(snap state.Snapshot, userId string) *entity.TransportWorkspace {
	return &entity.TransportWorkspace{
		OpenRoutes:      mapRoutes(routesByStatus(snap.Routes, common.RouteOpen), snap.Bids),
		MyBids:          mapBids(bidsByTransporter(snap.Bids, userId)),
		AssignedRoutes:  mapRoutes(routesWonBy(snap.Routes, snap.Bids, userId, common.RouteAssigned), snap.Bids),
		CompletedRoutes: mapRoutes(routesWonBy(snap.Routes, snap.Bids, userId, common.RouteCompleted), snap.Bids),
	}
}

func factoryWorkspace(snap state.Snapshot, userId string) *entity.FactoryWorkspace {
	mine := make([]entity.Route, 0)
	owned := make(map[string]bool)
	for _, r := range snap.Routes {
		if r.CreatedBy == userId {
			mine = append(mine, r)
			owned[r.Id] = true
		}
	}

	pending := make([]entity.Bid, 0)
	for _, b := range snap.Bids {
		if owned[b.RouteId] && b.Status == common.BidPending {
			pending = append(pending, b)
		}
	}

	return &entity.FactoryWorkspace{
		MyRoutes:    mapRoutes(mine, snap.Bids),
		PendingBids: mapBids(pending),
	}
}
