package common

import "fmt"

type Role string

const (
	Transport Role = "transport"
	Factory   Role = "factory"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Transport, Factory:
		return Role(s), nil
	}

	return "", fmt.Errorf("unknown role %q", s)
}

// route statuses
const (
	RouteOpen      = "open"
	RouteAssigned  = "assigned"
	RouteCompleted = "completed"
	RouteCancelled = "cancelled"
)

// bid statuses
const (
	BidPending   = "pending"
	BidAccepted  = "accepted"
	BidRejected  = "rejected"
	BidWithdrawn = "withdrawn"
)

// shipment statuses
const (
	ShipmentScheduled = "scheduled"
	ShipmentInTransit = "in_transit"
	ShipmentDelivered = "delivered"
	ShipmentCancelled = "cancelled"

	// ShipmentAll disables status filtering in shipment listings.
	ShipmentAll = "all"
)

// payment statuses
const (
	PaymentPending   = "pending"
	PaymentPartial   = "partial"
	PaymentCompleted = "completed"
)

const CurrencyINR = "INR"

func IsRouteStatus(s string) bool {
	switch s {
	case RouteOpen, RouteAssigned, RouteCompleted, RouteCancelled:
		return true
	}

	return false
}

func IsShipmentStatus(s string) bool {
	switch s {
	case ShipmentScheduled, ShipmentInTransit, ShipmentDelivered, ShipmentCancelled:
		return true
	}

	return false
}
