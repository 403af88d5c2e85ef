package entity

const (
	VehicleTruck     = "truck"
	VehicleTrailer   = "trailer"
	VehicleContainer = "container"
)

type Dimensions struct {
	Length float64 `json:"length" db:"length"`
	Width  float64 `json:"width" db:"width"`
	Height float64 `json:"height" db:"height"`
}

type Vehicle struct {
	Id                 string     `json:"id" db:"id"`
	OwnerId            string     `json:"ownerId" db:"owner_id"`
	RegistrationNumber string     `json:"registrationNumber" db:"registration_number"`
	Type               string     `json:"type" db:"type"`
	Capacity           float64    `json:"capacity" db:"capacity"` // tons
	Dimensions         Dimensions `json:"dimensions"`
	Make               string     `json:"make" db:"make"`
	Model              string     `json:"model" db:"model"`
	YearOfManufacture  int        `json:"yearOfManufacture" db:"year_of_manufacture"`
	Available          bool       `json:"available" db:"available"`
}
