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

var locationColumns = []string{"id", "name", "address", "city", "state", "pincode", "lat", "lng"}

type LocationRepo struct {
	*postgres.Postgres
}

func NewLocationRepo(pgdb *postgres.Postgres) *LocationRepo {
	return &LocationRepo{pgdb}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (*entity.Location, error) {
	var (
		l        entity.Location
		lat, lng sql.NullFloat64
	)
	if err := row.Scan(&l.Id, &l.Name, &l.Address, &l.City, &l.State, &l.Pincode, &lat, &lng); err != nil {
		return nil, err
	}
	if lat.Valid {
		l.Lat = &lat.Float64
	}
	if lng.Valid {
		l.Lng = &lng.Float64
	}

	return &l, nil
}

func (r *LocationRepo) GetLocations(ctx context.Context) ([]entity.Location, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(locationColumns...).
		From("location").
		OrderBy("id").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]entity.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *l)
	}

	return locations, rows.Err()
}

func (r *LocationRepo) GetLocationById(ctx context.Context, id string) (*entity.Location, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(locationColumns...).
		From("location").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	l, err := scanLocation(r.Database.QueryRowContext(ctx, sqlReq, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return l, nil
}
