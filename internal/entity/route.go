package entity

import (
	"slices"
	"time"
)

type Route struct {
	Id                  string    `json:"id" db:"id"`
	CreatedBy           string    `json:"createdBy" db:"created_by"`
	Source              Location  `json:"source"`
	Destination         Location  `json:"destination"`
	Distance            int       `json:"distance" db:"distance"`                     // km
	EstimatedDuration   int       `json:"estimatedDuration" db:"estimated_duration"` // hours
	Status              string    `json:"status" db:"status"`
	LoadType            string    `json:"loadType" db:"load_type"`
	Weight              float64   `json:"weight" db:"weight"` // tons
	SpecialRequirements []string  `json:"specialRequirements,omitempty"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	DepartureDate       string    `json:"departureDate" db:"departure_date"`
	AssignedBidId       string    `json:"assignedBidId,omitempty" db:"assigned_bid_id"`
}

func (r Route) Clone() Route {
	r.Source = r.Source.Clone()
	r.Destination = r.Destination.Clone()
	r.SpecialRequirements = slices.Clone(r.SpecialRequirements)

	return r
}

// service input model
type CreateRouteInput struct {
	SourceId            string   // given
	DestinationId       string   // given
	DepartureDate       string   // given, defaults to three days from now
	LoadType            string   // given
	Weight              float64  // given
	SpecialRequirements []string // given, trimmed
	CreatedBy           string   // given
	// Id, Status, Distance, EstimatedDuration and CreatedAt are set by the service
}

type RouteFilter struct {
	Location  string
	LoadType  string
	MinWeight float64
}

// controller model
type RouteOutputModel struct {
	Id                   string   `json:"id"`
	CreatedBy            string   `json:"createdBy"`
	Source               Location `json:"source"`
	Destination          Location `json:"destination"`
	Distance             int      `json:"distance"`
	EstimatedDuration    int      `json:"estimatedDuration"`
	Status               string   `json:"status"`
	LoadType             string   `json:"loadType"`
	Weight               float64  `json:"weight"`
	SpecialRequirements  []string `json:"specialRequirements"`
	CreatedAt            string   `json:"createdAt"`
	CreatedAtDisplay     string   `json:"createdAtDisplay"`
	DepartureDate        string   `json:"departureDate"`
	DepartureDateDisplay string   `json:"departureDateDisplay"`
	AssignedBidId        string   `json:"assignedBidId,omitempty"`
	BidCount             int      `json:"bidCount"`
}
