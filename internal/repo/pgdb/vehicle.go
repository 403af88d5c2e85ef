package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"shiplyne/internal/entity"
	"shiplyne/internal/repo/repo_errors"
	"shiplyne/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

var vehicleColumns = []string{
	"id", "owner_id", "registration_number", "type", "capacity", "length", "width", "height",
	"make", "model", "year_of_manufacture", "available",
}

type VehicleRepo struct {
	*postgres.Postgres
}

func NewVehicleRepo(pgdb *postgres.Postgres) *VehicleRepo {
	return &VehicleRepo{pgdb}
}

func scanVehicle(row rowScanner) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(&v.Id, &v.OwnerId, &v.RegistrationNumber, &v.Type, &v.Capacity,
		&v.Dimensions.Length, &v.Dimensions.Width, &v.Dimensions.Height,
		&v.Make, &v.Model, &v.YearOfManufacture, &v.Available)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *VehicleRepo) GetVehicleById(ctx context.Context, id string) (*entity.Vehicle, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(vehicleColumns...).
		From("vehicle").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	v, err := scanVehicle(r.Database.QueryRowContext(ctx, sqlReq, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return v, nil
}

func (r *VehicleRepo) GetVehiclesByOwner(ctx context.Context, ownerId string) ([]entity.Vehicle, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(vehicleColumns...).
		From("vehicle").
		Where(squirrel.Eq{"owner_id": ownerId}).
		OrderBy("id").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]entity.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}

	return vehicles, rows.Err()
}
