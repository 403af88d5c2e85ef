package service

import (
	"shiplyne/internal/entity"
	"time"
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func mapRoute(r *entity.Route, bidCount int) *entity.RouteOutputModel {
	requirements := r.SpecialRequirements
	if requirements == nil {
		requirements = []string{}
	}

	return &entity.RouteOutputModel{
		Id:                   r.Id,
		CreatedBy:            r.CreatedBy,
		Source:               r.Source,
		Destination:          r.Destination,
		Distance:             r.Distance,
		EstimatedDuration:    r.EstimatedDuration,
		Status:               r.Status,
		LoadType:             r.LoadType,
		Weight:               r.Weight,
		SpecialRequirements:  requirements,
		CreatedAt:            formatTimestamp(r.CreatedAt),
		CreatedAtDisplay:     entity.FormatDate(formatTimestamp(r.CreatedAt)),
		DepartureDate:        r.DepartureDate,
		DepartureDateDisplay: entity.FormatDate(r.DepartureDate),
		AssignedBidId:        r.AssignedBidId,
		BidCount:             bidCount,
	}
}

// mapRoutes counts bids per route from the given bid collection.
func mapRoutes(routes []entity.Route, bids []entity.Bid) []entity.RouteOutputModel {
	counts := make(map[string]int)
	for _, b := range bids {
		counts[b.RouteId]++
	}

	s := make([]entity.RouteOutputModel, 0, len(routes))
	for _, route := range routes {
		s = append(s, *mapRoute(&route, counts[route.Id]))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:                b.Id,
		RouteId:           b.RouteId,
		TransporterId:     b.TransporterId,
		VehicleId:         b.VehicleId,
		Amount:            b.Amount,
		Currency:          b.Currency,
		EstimatedDuration: b.EstimatedDuration,
		Status:            b.Status,
		Notes:             b.Notes,
		CreatedAt:         formatTimestamp(b.CreatedAt),
		CreatedAtDisplay:  entity.FormatDate(formatTimestamp(b.CreatedAt)),
	}
}

func mapBids(b []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0, len(b))
	for _, bid := range b {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapShipment(sh *entity.Shipment) *entity.ShipmentOutputModel {
	rating := 0
	if sh.Rating != nil {
		rating = sh.Rating.Transport
	}

	return &entity.ShipmentOutputModel{
		Id:                   sh.Id,
		RouteId:              sh.RouteId,
		BidId:                sh.BidId,
		TransporterId:        sh.TransporterId,
		FactoryOwnerId:       sh.FactoryOwnerId,
		VehicleId:            sh.VehicleId,
		Status:               sh.Status,
		DepartureTime:        sh.DepartureTime,
		DepartureTimeDisplay: entity.FormatDateTime(sh.DepartureTime),
		ArrivalTime:          sh.ArrivalTime,
		ArrivalTimeDisplay:   entity.FormatDateTime(sh.ArrivalTime),
		CurrentLocation:      sh.CurrentLocation,
		Tracking:             sh.Tracking,
		PaymentStatus:        sh.PaymentStatus,
		Documents:            sh.Documents,
		Rating:               rating,
		CreatedAt:            formatTimestamp(sh.CreatedAt),
	}
}

func mapShipments(shipments []entity.Shipment) []entity.ShipmentOutputModel {
	s := make([]entity.ShipmentOutputModel, 0, len(shipments))
	for _, sh := range shipments {
		s = append(s, *mapShipment(&sh))
	}

	return s
}
