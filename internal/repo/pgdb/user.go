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

var userColumns = []string{
	"id", "name", "email", "phone", "user_type", "company", "address",
	"city", "state", "pincode", "profile_image", "verified", "rating", "created_at",
}

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.Id, &u.Name, &u.Email, &u.Phone, &u.UserType, &u.Company, &u.Address,
		&u.City, &u.State, &u.Pincode, &u.ProfileImage, &u.Verified, &u.Rating, &u.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepo) GetUsers(ctx context.Context, userType string) ([]entity.User, error) {
	query := r.SqlBuilder.
		Select(userColumns...).
		From("app_user").
		OrderBy("id")
	if userType != "" {
		query = query.Where(squirrel.Eq{"user_type": userType})
	}
	sqlReq, args, _ := query.ToSql()

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}

	return users, rows.Err()
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select(userColumns...).
		From("app_user").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	u, err := scanUser(r.Database.QueryRowContext(ctx, sqlReq, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return u, nil
}
