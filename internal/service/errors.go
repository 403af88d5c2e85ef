package service

import "errors"

var (
	ErrRouteNotFound    = errors.New("route not found")
	ErrBidNotFound      = errors.New("bid not found")
	ErrLocationNotFound = errors.New("invalid source or destination")
	ErrSameLocation     = errors.New("source and destination must differ")
	ErrUserNotFound     = errors.New("user not found")
	ErrShipmentNotFound = errors.New("shipment not found")

	ErrVehicleRequired = errors.New("a vehicle must be selected")
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrInvalidStatus     = errors.New("unknown status")
	ErrInvalidRole       = errors.New("unknown role")
	ErrInvalidTransition = errors.New("shipment status can't move in that direction")

	ErrViewNotFound         = errors.New("shipment view not found")
	ErrViewForbidden        = errors.New("action not available for this viewer")
	ErrShipmentNotDelivered = errors.New("shipment isn't delivered yet")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")

	ErrNotImplemented = errors.New("not implemented")
)
