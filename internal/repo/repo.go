package repo

import (
	"context"
	"shiplyne/internal/entity"
	"shiplyne/internal/fixtures"
	"shiplyne/internal/repo/memory"
	"shiplyne/internal/repo/pgdb"
	"shiplyne/pkg/postgres"
)

type Diagnostics interface {
	Ping() error
}

type Location interface {
	GetLocations(ctx context.Context) ([]entity.Location, error)
	GetLocationById(ctx context.Context, id string) (*entity.Location, error)
}

type User interface {
	// GetUsers returns every user of the given type, or all users when userType is empty.
	GetUsers(ctx context.Context, userType string) ([]entity.User, error)
	GetUserById(ctx context.Context, id string) (*entity.User, error)
}

type Vehicle interface {
	GetVehicleById(ctx context.Context, id string) (*entity.Vehicle, error)
	GetVehiclesByOwner(ctx context.Context, ownerId string) ([]entity.Vehicle, error)
}

// Repositories groups the read-only reference data. Routes, bids and shipments
// live in the state store instead.
type Repositories struct {
	Diagnostics
	Location
	User
	Vehicle
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Location:    pgdb.NewLocationRepo(p),
		User:        pgdb.NewUserRepo(p),
		Vehicle:     pgdb.NewVehicleRepo(p),
	}
}

func NewFixtureRepositories(data fixtures.Data) *Repositories {
	return &Repositories{
		Diagnostics: memory.NewDiagnosticsRepo(),
		Location:    memory.NewLocationRepo(data.Locations),
		User:        memory.NewUserRepo(data.Users),
		Vehicle:     memory.NewVehicleRepo(data.Vehicles),
	}
}
