package entity

import "time"

type Bid struct {
	Id                string    `json:"id" db:"id"`
	RouteId           string    `json:"routeId" db:"route_id"`
	TransporterId     string    `json:"transporterId" db:"transporter_id"`
	VehicleId         string    `json:"vehicleId" db:"vehicle_id"`
	Amount            float64   `json:"amount" db:"amount"`
	Currency          string    `json:"currency" db:"currency"`
	EstimatedDuration int       `json:"estimatedDuration" db:"estimated_duration"` // hours
	Status            string    `json:"status" db:"status"`
	Notes             string    `json:"notes,omitempty" db:"notes"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// service input model
type CreateBidInput struct {
	RouteId       string  // given
	TransporterId string  // given
	VehicleId     string  // given, required
	Amount        float64 // given
	Notes         string  // given
	// Id, Currency, EstimatedDuration, Status and CreatedAt are set by the service
}

// controller model
type BidOutputModel struct {
	Id                string  `json:"id"`
	RouteId           string  `json:"routeId"`
	TransporterId     string  `json:"transporterId"`
	VehicleId         string  `json:"vehicleId"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	EstimatedDuration int     `json:"estimatedDuration"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	CreatedAtDisplay  string  `json:"createdAtDisplay"`
}

type AcceptBidOutputModel struct {
	Route    RouteOutputModel     `json:"route"`
	Bid      BidOutputModel       `json:"bid"`
	Rejected []BidOutputModel     `json:"rejected"`
	Shipment *ShipmentOutputModel `json:"shipment"`
}
