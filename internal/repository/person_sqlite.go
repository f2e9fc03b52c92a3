package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/person-api/internal/model"
)

// SQLitePersonRepository stores persons in SQLite through database/sql.
type SQLitePersonRepository struct {
	db *sql.DB
}

func NewSQLitePersonRepository(db *sql.DB) *SQLitePersonRepository {
	return &SQLitePersonRepository{db: db}
}

func (r *SQLitePersonRepository) List(ctx context.Context) ([]model.Person, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM persons ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	persons := []model.Person{}
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return persons, nil
}

func (r *SQLitePersonRepository) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `SELECT id, name FROM persons WHERE id = ?`, id))
}

func (r *SQLitePersonRepository) GetByName(ctx context.Context, name string) (*model.Person, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `SELECT id, name FROM persons WHERE name = ?`, name))
}

func (r *SQLitePersonRepository) Create(ctx context.Context, name string) (*model.Person, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`INSERT INTO persons (name) VALUES (?) RETURNING id, name`, name))
}

func (r *SQLitePersonRepository) UpdateName(ctx context.Context, id int64, name string) (*model.Person, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`UPDATE persons SET name = ? WHERE id = ? RETURNING id, name`, name, id))
}

func (r *SQLitePersonRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person id=%d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete person id=%d: %w", id, err)
	}
	if affected == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (r *SQLitePersonRepository) scanOne(row *sql.Row) (*model.Person, error) {
	var p model.Person
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to scan person: %w", err)
	}
	return &p, nil
}
