// Package fixtures holds the seed data the service starts from: the immutable
// reference records (locations, users, vehicles) and the initial routes, bids
// and shipments handed to the state store.
package fixtures

import (
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

type Data struct {
	Locations []entity.Location
	Users     []entity.User
	Vehicles  []entity.Vehicle
	Routes    []entity.Route
	Bids      []entity.Bid
	Shipments []entity.Shipment
}

func coord(v float64) *float64 { return &v }

func Locations() []entity.Location {
	return []entity.Location{
		{Id: "loc1", Name: "Delhi Warehouse", Address: "123 Industrial Area, Phase 1", City: "Delhi", State: "Delhi", Pincode: "110001", Lat: coord(28.6139), Lng: coord(77.2090)},
		{Id: "loc2", Name: "Mumbai Port", Address: "456 Dock Yard Road", City: "Mumbai", State: "Maharashtra", Pincode: "400001", Lat: coord(19.0760), Lng: coord(72.8777)},
		{Id: "loc3", Name: "Bangalore Tech Park", Address: "789 Electronic City", City: "Bangalore", State: "Karnataka", Pincode: "560100", Lat: coord(12.9716), Lng: coord(77.5946)},
		{Id: "loc4", Name: "Chennai Manufacturing Hub", Address: "321 Industrial Estate", City: "Chennai", State: "Tamil Nadu", Pincode: "600001", Lat: coord(13.0827), Lng: coord(80.2707)},
		{Id: "loc5", Name: "Hyderabad Distribution Center", Address: "654 Hitech City", City: "Hyderabad", State: "Telangana", Pincode: "500001", Lat: coord(17.3850), Lng: coord(78.4867)},
		{Id: "loc6", Name: "Kolkata Depot", Address: "987 Salt Lake", City: "Kolkata", State: "West Bengal", Pincode: "700001", Lat: coord(22.5726), Lng: coord(88.3639)},
	}
}

func joined(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func Users() []entity.User {
	return []entity.User{
		{Id: "user1", Name: "Raj Transport Services", Email: "raj@transport.com", Phone: "+91 9876543210", UserType: common.Transport, Company: "Raj Transport Pvt Ltd", Address: "123 Truck Terminal", City: "Delhi", State: "Delhi", Pincode: "110001", ProfileImage: "https://randomuser.me/api/portraits/men/1.jpg", Verified: true, Rating: 4.8, CreatedAt: joined("2023-01-10T10:00:00Z")},
		{Id: "user2", Name: "Singh Logistics", Email: "singh@logistics.com", Phone: "+91 9876543211", UserType: common.Transport, Company: "Singh Logistics Solutions", Address: "456 Transport Nagar", City: "Mumbai", State: "Maharashtra", Pincode: "400001", ProfileImage: "https://randomuser.me/api/portraits/men/2.jpg", Verified: true, Rating: 4.5, CreatedAt: joined("2023-02-15T11:00:00Z")},
		{Id: "user3", Name: "Star Manufacturing", Email: "info@starmanufacturing.com", Phone: "+91 9876543212", UserType: common.Factory, Company: "Star Manufacturing Industries", Address: "789 Industrial Area", City: "Bangalore", State: "Karnataka", Pincode: "560100", ProfileImage: "https://randomuser.me/api/portraits/women/1.jpg", Verified: true, Rating: 4.7, CreatedAt: joined("2023-03-20T12:00:00Z")},
		{Id: "user4", Name: "Tech Products Ltd", Email: "contact@techproducts.com", Phone: "+91 9876543213", UserType: common.Factory, Company: "Tech Products Limited", Address: "321 Tech Park", City: "Chennai", State: "Tamil Nadu", Pincode: "600001", ProfileImage: "https://randomuser.me/api/portraits/women/2.jpg", Verified: true, Rating: 4.6, CreatedAt: joined("2023-04-25T13:00:00Z")},
		{Id: "user5", Name: "Speedy Freight Carriers", Email: "info@speedyfreight.com", Phone: "+91 9876543214", UserType: common.Transport, Company: "Speedy Freight Carriers Pvt Ltd", Address: "654 Transport Hub", City: "Hyderabad", State: "Telangana", Pincode: "500001", ProfileImage: "https://randomuser.me/api/portraits/men/3.jpg", Verified: true, Rating: 4.4, CreatedAt: joined("2023-05-30T14:00:00Z")},
	}
}

func Vehicles() []entity.Vehicle {
	return []entity.Vehicle{
		{Id: "veh1", OwnerId: "user1", RegistrationNumber: "DL01AB1234", Type: entity.VehicleTruck, Capacity: 20, Dimensions: entity.Dimensions{Length: 24, Width: 8, Height: 8}, Make: "Tata", Model: "LPT 3118", YearOfManufacture: 2020, Available: true},
		{Id: "veh2", OwnerId: "user1", RegistrationNumber: "DL01CD5678", Type: entity.VehicleContainer, Capacity: 30, Dimensions: entity.Dimensions{Length: 40, Width: 8, Height: 8.5}, Make: "Ashok Leyland", Model: "U-3518", YearOfManufacture: 2021, Available: true},
		{Id: "veh3", OwnerId: "user2", RegistrationNumber: "MH02EF9012", Type: entity.VehicleTrailer, Capacity: 40, Dimensions: entity.Dimensions{Length: 48, Width: 8.5, Height: 9}, Make: "BharatBenz", Model: "HDT 4928", YearOfManufacture: 2022, Available: true},
		{Id: "veh4", OwnerId: "user2", RegistrationNumber: "MH02GH3456", Type: entity.VehicleTruck, Capacity: 15, Dimensions: entity.Dimensions{Length: 20, Width: 7.5, Height: 7.5}, Make: "Eicher", Model: "Pro 5016", YearOfManufacture: 2019, Available: true},
		{Id: "veh5", OwnerId: "user5", RegistrationNumber: "TG03IJ7890", Type: entity.VehicleContainer, Capacity: 25, Dimensions: entity.Dimensions{Length: 32, Width: 8, Height: 8}, Make: "Mahindra", Model: "Blazo X 28", YearOfManufacture: 2020, Available: true},
	}
}

// Seed builds the full fixture set with routes, bids and shipments dated relative to now.
func Seed(now time.Time) Data {
	now = now.UTC()
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	inDays := func(n int) string { return now.AddDate(0, 0, n).Format(timestampLayout) }

	locs := Locations()
	delhi, mumbai, bangalore, chennai, hyderabad, kolkata := locs[0], locs[1], locs[2], locs[3], locs[4], locs[5]

	routes := []entity.Route{
		{Id: "route1", CreatedBy: "user3", Source: delhi, Destination: mumbai, Distance: 1400, EstimatedDuration: 24, Status: common.RouteOpen, LoadType: "Electronics", Weight: 15, SpecialRequirements: []string{"Fragile", "Temperature Controlled"}, CreatedAt: daysAgo(5), DepartureDate: inDays(7)},
		{Id: "route2", CreatedBy: "user3", Source: bangalore, Destination: chennai, Distance: 350, EstimatedDuration: 6, Status: common.RouteOpen, LoadType: "Machinery", Weight: 25, SpecialRequirements: []string{"Heavy Equipment"}, CreatedAt: daysAgo(3), DepartureDate: inDays(5)},
		{Id: "route3", CreatedBy: "user4", Source: mumbai.Clone(), Destination: hyderabad, Distance: 700, EstimatedDuration: 12, Status: common.RouteAssigned, LoadType: "Pharmaceuticals", Weight: 10, SpecialRequirements: []string{"Temperature Controlled", "Security"}, CreatedAt: daysAgo(10), DepartureDate: inDays(2), AssignedBidId: "bid4"},
		{Id: "route4", CreatedBy: "user4", Source: chennai.Clone(), Destination: kolkata, Distance: 1700, EstimatedDuration: 30, Status: common.RouteOpen, LoadType: "Textiles", Weight: 18, CreatedAt: daysAgo(2), DepartureDate: inDays(10)},
		{Id: "route5", CreatedBy: "user3", Source: hyderabad.Clone(), Destination: delhi.Clone(), Distance: 1500, EstimatedDuration: 26, Status: common.RouteOpen, LoadType: "Automotive Parts", Weight: 22, CreatedAt: daysAgo(1), DepartureDate: inDays(8)},
	}

	bids := []entity.Bid{
		{Id: "bid1", RouteId: "route1", TransporterId: "user1", VehicleId: "veh1", Amount: 75000, Currency: common.CurrencyINR, EstimatedDuration: 24, Status: common.BidPending, Notes: "Can provide real-time tracking", CreatedAt: daysAgo(4)},
		{Id: "bid2", RouteId: "route1", TransporterId: "user2", VehicleId: "veh3", Amount: 82000, Currency: common.CurrencyINR, EstimatedDuration: 22, Status: common.BidPending, Notes: "Premium service with expedited delivery", CreatedAt: daysAgo(3)},
		{Id: "bid3", RouteId: "route2", TransporterId: "user5", VehicleId: "veh5", Amount: 25000, Currency: common.CurrencyINR, EstimatedDuration: 6, Status: common.BidPending, CreatedAt: daysAgo(2)},
		{Id: "bid4", RouteId: "route3", TransporterId: "user1", VehicleId: "veh2", Amount: 45000, Currency: common.CurrencyINR, EstimatedDuration: 12, Status: common.BidAccepted, Notes: "Temperature-controlled container available", CreatedAt: daysAgo(8)},
		{Id: "bid5", RouteId: "route3", TransporterId: "user2", VehicleId: "veh4", Amount: 50000, Currency: common.CurrencyINR, EstimatedDuration: 11, Status: common.BidRejected, CreatedAt: daysAgo(7)},
		{Id: "bid6", RouteId: "route4", TransporterId: "user5", VehicleId: "veh5", Amount: 95000, Currency: common.CurrencyINR, EstimatedDuration: 28, Status: common.BidPending, Notes: "Long-haul specialist with experienced drivers", CreatedAt: daysAgo(1)},
	}

	shipments := []entity.Shipment{
		{
			Id: "ship1", RouteId: "route3", BidId: "bid4", TransporterId: "user1", FactoryOwnerId: "user4", VehicleId: "veh2",
			Status:        common.ShipmentInTransit,
			DepartureTime: daysAgo(1).Format(timestampLayout),
			CurrentLocation: &entity.Location{
				Id: "current1", Name: "Highway NH8", Address: "Halfway between Mumbai and Hyderabad",
				City: "Solapur", State: "Maharashtra", Pincode: "413001", Lat: coord(17.6599), Lng: coord(75.9064),
			},
			Tracking:      &entity.Tracking{LastUpdated: now, Lat: 17.6599, Lng: 75.9064},
			PaymentStatus: common.PaymentPartial,
			Documents:     entity.Documents{Invoice: "invoice_ship1.pdf", Lading: "lading_ship1.pdf"},
			CreatedAt:     daysAgo(5),
		},
	}

	return Data{
		Locations: locs,
		Users:     Users(),
		Vehicles:  Vehicles(),
		Routes:    routes,
		Bids:      bids,
		Shipments: shipments,
	}
}
