package service

import (
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"strings"

	"golang.org/x/text/cases"
)

func containsFold(s, substr string) bool {
	// a Caser keeps state, so each call gets its own
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

func matchesRouteFilter(r *entity.Route, f *entity.RouteFilter) bool {
	if f == nil {
		return true
	}
	if f.Location != "" && !containsFold(r.Source.City, f.Location) && !containsFold(r.Destination.City, f.Location) {
		return false
	}
	if f.LoadType != "" && !containsFold(r.LoadType, f.LoadType) {
		return false
	}
	if f.MinWeight > 0 && r.Weight < f.MinWeight {
		return false
	}

	return true
}

func findRoute(routes []entity.Route, id string) int {
	for i := range routes {
		if routes[i].Id == id {
			return i
		}
	}

	return -1
}

func findBid(bids []entity.Bid, id string) int {
	for i := range bids {
		if bids[i].Id == id {
			return i
		}
	}

	return -1
}

func findShipment(shipments []entity.Shipment, id string) int {
	for i := range shipments {
		if shipments[i].Id == id {
			return i
		}
	}

	return -1
}

func routesByStatus(routes []entity.Route, status string) []entity.Route {
	out := make([]entity.Route, 0)
	for _, r := range routes {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}

	return out
}

func bidsByRoute(bids []entity.Bid, routeId string) []entity.Bid {
	out := make([]entity.Bid, 0)
	for _, b := range bids {
		if b.RouteId == routeId {
			out = append(out, b)
		}
	}

	return out
}

func bidsByTransporter(bids []entity.Bid, transporterId string) []entity.Bid {
	out := make([]entity.Bid, 0)
	for _, b := range bids {
		if b.TransporterId == transporterId {
			out = append(out, b)
		}
	}

	return out
}

func assignedBid(bids []entity.Bid, routeId string) (entity.Bid, bool) {
	for _, b := range bids {
		if b.RouteId == routeId && b.Status == common.BidAccepted {
			return b, true
		}
	}

	return entity.Bid{}, false
}

// routesWonBy returns routes in the given status whose accepted bid belongs to transporterId.
func routesWonBy(routes []entity.Route, bids []entity.Bid, transporterId string, status string) []entity.Route {
	out := make([]entity.Route, 0)
	for _, r := range routes {
		if r.Status != status {
			continue
		}
		if b, ok := assignedBid(bids, r.Id); ok && b.TransporterId == transporterId {
			out = append(out, r)
		}
	}

	return out
}

func shipmentsFor(shipments []entity.Shipment, role common.Role, userId string) []entity.Shipment {
	out := make([]entity.Shipment, 0)
	for _, sh := range shipments {
		switch role {
		case common.Transport:
			if sh.TransporterId == userId {
				out = append(out, sh)
			}
		case common.Factory:
			if sh.FactoryOwnerId == userId {
				out = append(out, sh)
			}
		}
	}

	return out
}

func shipmentsByStatus(shipments []entity.Shipment, status string) []entity.Shipment {
	if status == "" || status == common.ShipmentAll {
		return shipments
	}
	out := make([]entity.Shipment, 0)
	for _, sh := range shipments {
		if sh.Status == status {
			out = append(out, sh)
		}
	}

	return out
}

func validShipmentFilter(status string) bool {
	return status == "" || status == common.ShipmentAll || common.IsShipmentStatus(status)
}

// SplitRequirements turns free-form requirement entries into tags. Entries may
// themselves be comma separated; blanks are dropped.
func SplitRequirements(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		for _, part := range strings.Split(e, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}

	return out
}
