package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPersonRepository stores persons in Postgres through pgx.
type PostgresPersonRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPersonRepository(pool *pgxpool.Pool) *PostgresPersonRepository {
	return &PostgresPersonRepository{pool: pool}
}

func (r *PostgresPersonRepository) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM persons ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	persons, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		return nil, fmt.Errorf("failed to collect persons: %w", err)
	}

	if persons == nil {
		persons = []model.Person{}
	}
	return persons, nil
}

func (r *PostgresPersonRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	return r.queryOne(ctx, `SELECT id, name FROM persons WHERE id = @id`, pgx.NamedArgs{"id": id})
}

func (r *PostgresPersonRepository) GetByName(ctx context.Context, name string) (*model.Person, error) {
	return r.queryOne(ctx, `SELECT id, name FROM persons WHERE name = @name`, pgx.NamedArgs{"name": name})
}

func (r *PostgresPersonRepository) Create(ctx context.Context, name string) (*model.Person, error) {
	return r.queryOne(ctx, `
		INSERT INTO persons (name)
		VALUES (@name)
		RETURNING id, name`,
		pgx.NamedArgs{"name": name},
	)
}

func (r *PostgresPersonRepository) UpdateName(ctx context.Context, id int64, name string) (*model.Person, error) {
	return r.queryOne(ctx, `
		UPDATE persons
		SET name = @name
		WHERE id = @id
		RETURNING id, name`,
		pgx.NamedArgs{"id": id, "name": name},
	)
}

func (r *PostgresPersonRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete person id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (r *PostgresPersonRepository) queryOne(ctx context.Context, query string, args pgx.NamedArgs) (*model.Person, error) {
	rows, err := r.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("failed to query person: %w", err)
	}

	person, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Person])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to collect person: %w", err)
	}

	return &person, nil
}
