// Package sqlite implements the variable repository on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"quickentry/internal/model"
	"quickentry/internal/variable/repository"
)

//go:embed schema.sql
var schema string

// Store handles variable persistence.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and initializes the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Create(ctx context.Context, sc model.Scope, v model.Variable) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO variables (id, user_id, name, kind, calories, grams, amount, currency, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, sc.UserID, v.Name, string(v.Kind), v.Calories, v.Grams, v.Amount, v.Currency, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert variable: %w", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, sc model.Scope, v model.Variable) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE variables SET name = ?, calories = ?, grams = ?, amount = ?, currency = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		v.Name, v.Calories, v.Grams, v.Amount, v.Currency, v.UpdatedAt, v.ID, sc.UserID,
	)
	if err != nil {
		return fmt.Errorf("update variable: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, sc model.Scope, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM variables WHERE id = ? AND user_id = ?", id, sc.UserID)
	if err != nil {
		return fmt.Errorf("delete variable: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, sc model.Scope, id string) (model.Variable, error) {
	return s.get(ctx, "id = ? AND user_id = ?", id, sc.UserID)
}

func (s *Store) GetByName(ctx context.Context, sc model.Scope, name string) (model.Variable, error) {
	return s.get(ctx, "name = ? AND user_id = ?", name, sc.UserID)
}

func (s *Store) get(ctx context.Context, where string, args ...any) (model.Variable, error) {
	var v model.Variable
	var kind string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, calories, grams, amount, currency, created_at, updated_at
		 FROM variables WHERE `+where, args...,
	).Scan(&v.ID, &v.Name, &kind, &v.Calories, &v.Grams, &v.Amount, &v.Currency, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Variable{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Variable{}, fmt.Errorf("get variable: %w", err)
	}
	v.Kind = model.VariableKind(kind)
	return v, nil
}

func (s *Store) List(ctx context.Context, sc model.Scope, kind model.VariableKind, limit, offset int) ([]model.Variable, int, error) {
	where := "user_id = ?"
	args := []any{sc.UserID}
	if kind != "" {
		where += " AND kind = ?"
		args = append(args, string(kind))
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM variables WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count variables: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, calories, grams, amount, currency, created_at, updated_at
		 FROM variables WHERE `+where+" ORDER BY name LIMIT ? OFFSET ?",
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list variables: %w", err)
	}
	defer rows.Close()

	var vars []model.Variable
	for rows.Next() {
		var v model.Variable
		var k string
		if err := rows.Scan(&v.ID, &v.Name, &k, &v.Calories, &v.Grams, &v.Amount, &v.Currency, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan variable: %w", err)
		}
		v.Kind = model.VariableKind(k)
		vars = append(vars, v)
	}
	return vars, total, rows.Err()
}
