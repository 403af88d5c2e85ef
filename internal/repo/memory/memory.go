// Package memory serves reference data from in-process fixtures.
package memory

import (
	"context"
	"shiplyne/internal/entity"
	"shiplyne/internal/repo/repo_errors"
)

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

type DiagnosticsRepo struct{}

func NewDiagnosticsRepo() *DiagnosticsRepo {
	return &DiagnosticsRepo{}
}

func (r *DiagnosticsRepo) Ping() error {
	return nil
}

type LocationRepo struct {
	locations []entity.Location
}

func NewLocationRepo(locations []entity.Location) *LocationRepo {
	r := &LocationRepo{locations: make([]entity.Location, len(locations))}
	for i, l := range locations {
		r.locations[i] = l.Clone()
	}

	return r
}

func (r *LocationRepo) GetLocations(ctx context.Context) ([]entity.Location, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.Location, len(r.locations))
	for i, l := range r.locations {
		out[i] = l.Clone()
	}

	return out, nil
}

func (r *LocationRepo) GetLocationById(ctx context.Context, id string) (*entity.Location, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, l := range r.locations {
		if l.Id == id {
			loc := l.Clone()
			return &loc, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

type UserRepo struct {
	users []entity.User
}

func NewUserRepo(users []entity.User) *UserRepo {
	return &UserRepo{users: append([]entity.User(nil), users...)}
}

func (r *UserRepo) GetUsers(ctx context.Context, userType string) ([]entity.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		if userType == "" || string(u.UserType) == userType {
			out = append(out, u)
		}
	}

	return out, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Id == id {
			user := u
			return &user, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

type VehicleRepo struct {
	vehicles []entity.Vehicle
}

func NewVehicleRepo(vehicles []entity.Vehicle) *VehicleRepo {
	return &VehicleRepo{vehicles: append([]entity.Vehicle(nil), vehicles...)}
}

func (r *VehicleRepo) GetVehicleById(ctx context.Context, id string) (*entity.Vehicle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	for _, v := range r.vehicles {
		if v.Id == id {
			vehicle := v
			return &vehicle, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *VehicleRepo) GetVehiclesByOwner(ctx context.Context, ownerId string) ([]entity.Vehicle, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	out := make([]entity.Vehicle, 0)
	for _, v := range r.vehicles {
		if v.OwnerId == ownerId {
			out = append(out, v)
		}
	}

	return out, nil
}
