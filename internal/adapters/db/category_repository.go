package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CategoryRepository implements the category repository interface
type CategoryRepository struct {
	conn *Connection
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(conn *Connection) *CategoryRepository {
	return &CategoryRepository{conn: conn}
}

// GetOrCreate finds a category by name, case-insensitively, creating it
// when absent. A concurrent insert of the same name loses the unique
// index race and falls back to reading the winner's row.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*shared.Category, error) {
	category, err := r.GetByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, shared.ErrCategoryNotFound) {
		return nil, err
	}

	query := `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
	`

	category = &shared.Category{
		ID:   uuid.New(),
		Name: name,
	}

	_, err = r.conn.GetDB().ExecContext(ctx, query, category.ID, category.Name)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return r.GetByName(ctx, name)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*shared.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	var category shared.Category
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}

// GetByName finds a category by name, case-insensitively
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*shared.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE LOWER(name) = LOWER($1)
	`

	var category shared.Category
	err := r.conn.GetDB().QueryRowContext(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &category, nil
}
