package postgres

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const driverName = "postgres"

type Postgres struct {
	Database   *sql.DB
	SqlBuilder squirrel.StatementBuilderType
}

func NewDB(url string) (*Postgres, error) {
	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s`. %w", driverName, err)
	}

	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened handle, e.g. a sqlmock connection.
func NewWithDB(db *sql.DB) *Postgres {
	return &Postgres{
		Database:   db,
		SqlBuilder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Postgres) Close() error {
	if p.Database == nil {
		return nil
	}

	return p.Database.Close()
}
