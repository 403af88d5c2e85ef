package entity

import "time"

type Tracking struct {
	LastUpdated time.Time `json:"lastUpdated"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
}

type Documents struct {
	Invoice string `json:"invoice,omitempty"`
	Lading  string `json:"lading,omitempty"`
	Receipt string `json:"receipt,omitempty"`
}

type Rating struct {
	Transport int `json:"transport,omitempty"`
	Factory   int `json:"factory,omitempty"`
}

type Shipment struct {
	Id              string    `json:"id"`
	RouteId         string    `json:"routeId"`
	BidId           string    `json:"bidId"`
	TransporterId   string    `json:"transporterId"`
	FactoryOwnerId  string    `json:"factoryOwnerId"`
	VehicleId       string    `json:"vehicleId"`
	Status          string    `json:"status"`
	DepartureTime   string    `json:"departureTime,omitempty"`
	ArrivalTime     string    `json:"arrivalTime,omitempty"`
	CurrentLocation *Location `json:"currentLocation,omitempty"`
	Tracking        *Tracking `json:"tracking,omitempty"`
	PaymentStatus   string    `json:"paymentStatus"`
	Documents       Documents `json:"documents"`
	Rating          *Rating   `json:"rating,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s Shipment) Clone() Shipment {
	if s.CurrentLocation != nil {
		loc := s.CurrentLocation.Clone()
		s.CurrentLocation = &loc
	}
	if s.Tracking != nil {
		tr := *s.Tracking
		s.Tracking = &tr
	}
	if s.Rating != nil {
		r := *s.Rating
		s.Rating = &r
	}

	return s
}

// service input model
type TrackingInput struct {
	Lat   float64
	Lng   float64
	Place string // optional display name for the reported position
}

// controller model
type ShipmentOutputModel struct {
	Id                   string    `json:"id"`
	RouteId              string    `json:"routeId"`
	BidId                string    `json:"bidId"`
	TransporterId        string    `json:"transporterId"`
	FactoryOwnerId       string    `json:"factoryOwnerId"`
	VehicleId            string    `json:"vehicleId"`
	Status               string    `json:"status"`
	DepartureTime        string    `json:"departureTime,omitempty"`
	DepartureTimeDisplay string    `json:"departureTimeDisplay"`
	ArrivalTime          string    `json:"arrivalTime,omitempty"`
	ArrivalTimeDisplay   string    `json:"arrivalTimeDisplay"`
	CurrentLocation      *Location `json:"currentLocation,omitempty"`
	Tracking             *Tracking `json:"tracking,omitempty"`
	PaymentStatus        string    `json:"paymentStatus"`
	Documents            Documents `json:"documents"`
	Rating               int       `json:"rating"`
	CreatedAt            string    `json:"createdAt"`
}

type ShipmentViewOutputModel struct {
	Id        string                `json:"id"`
	Role      string                `json:"role"`
	UserId    string                `json:"userId"`
	Shipments []ShipmentOutputModel `json:"shipments"`
}
