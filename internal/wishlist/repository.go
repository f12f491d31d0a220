package wishlist

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	CreateEntry(ctx context.Context, entry *Entry) (*Entry, error)
	ListEntries(ctx context.Context, userID uint) ([]Entry, error)
	DeleteEntry(ctx context.Context, userID uint, id string) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateEntry(ctx context.Context, entry *Entry) (*Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO wishlist_items
			(id, user_id, product_id, name, image, price, selected_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, product_id, name, image, price, selected_color, created_at
	`,
		entry.ID, entry.UserID, entry.ProductID, entry.Name,
		entry.Image, entry.Price, entry.SelectedColor,
	)

	var created Entry
	err := row.Scan(
		&created.ID, &created.UserID, &created.ProductID, &created.Name,
		&created.Image, &created.Price, &created.SelectedColor, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateEntry, err)
	}
	return &created, nil
}

func (r *repository) ListEntries(ctx context.Context, userID uint) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, product_id, name, image, price, selected_color, created_at
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListEntries, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ProductID, &e.Name,
			&e.Image, &e.Price, &e.SelectedColor, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListEntries, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListEntries, err)
	}

	return entries, nil
}

func (r *repository) DeleteEntry(ctx context.Context, userID uint, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedRemoveEntry, err)
	}

	return res.RowsAffected()
}
