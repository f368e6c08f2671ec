package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/blakestevenson/mediacatalog/internal/media"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const itemColumns = "id, user_id, title, kind, year, description, status, rating, created_at"

// Ensure MediaStore implements media.Store
var _ media.Store = (*MediaStore)(nil)

// MediaStore is the PostgreSQL implementation of media.Store
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a store over db
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*media.Item, error) {
	var item media.Item
	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Title,
		&item.Kind,
		&item.Year,
		&item.Description,
		&item.Status,
		&item.Rating,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns the owner's items matching filter, ordered by id
func (s *MediaStore) List(ctx context.Context, ownerID int64, filter media.Filter) ([]*media.Item, error) {
	where := []string{"user_id = $1"}
	args := []any{ownerID}
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		where = append(where, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := "SELECT " + itemColumns + " FROM media WHERE " + strings.Join(where, " AND ") + " ORDER BY id"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query media: %w", err)
	}
	defer rows.Close()

	items := make([]*media.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate media rows: %w", err)
	}
	return items, nil
}

// Get returns one of the owner's items
func (s *MediaStore) Get(ctx context.Context, ownerID, id int64) (*media.Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM media WHERE id = $1 AND user_id = $2",
		id, ownerID,
	)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, media.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get media item: %w", err)
	}
	return item, nil
}

// Exists reports whether the owner already has an equivalent item
func (s *MediaStore) Exists(ctx context.Context, ownerID int64, title string, year int, kind media.Kind) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM media WHERE user_id = $1 AND lower(title) = lower($2) AND year = $3 AND kind = $4)",
		ownerID, title, year, string(kind),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check media item: %w", err)
	}
	return exists, nil
}

// Insert stores item and fills in its id and creation time
func (s *MediaStore) Insert(ctx context.Context, item *media.Item) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO media (user_id, title, kind, year, description, status, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		item.OwnerID, item.Title, string(item.Kind), item.Year, item.Description, string(item.Status), item.Rating,
	).Scan(&item.ID, &item.CreatedAt)
	if isUniqueViolation(err) {
		return media.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert media item: %w", err)
	}
	return nil
}

// Update replaces every mutable column of the stored item
func (s *MediaStore) Update(ctx context.Context, item *media.Item) error {
	err := s.db.QueryRowContext(ctx,
		`UPDATE media
		SET title = $1, kind = $2, year = $3, description = $4, status = $5, rating = $6
		WHERE id = $7 AND user_id = $8
		RETURNING created_at`,
		item.Title, string(item.Kind), item.Year, item.Description, string(item.Status), item.Rating, item.ID, item.OwnerID,
	).Scan(&item.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return media.ErrNotFound
	case isUniqueViolation(err):
		return media.ErrAlreadyExists
	case err != nil:
		return fmt.Errorf("failed to update media item: %w", err)
	}
	return nil
}

// Delete removes one of the owner's items
func (s *MediaStore) Delete(ctx context.Context, ownerID, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM media WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}
	if affected == 0 {
		return media.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
