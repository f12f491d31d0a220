package cart

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	CreateLine(ctx context.Context, line *Line) (*Line, error)
	GetLineByProductAndColor(
		ctx context.Context,
		userID uint,
		productID string,
		color *string,
	) (*Line, error)
	ListLines(ctx context.Context, userID uint) ([]Line, error)
	UpdateQuantity(ctx context.Context, userID uint, cartID string, quantity int) (int64, error)
	DeleteLine(ctx context.Context, userID uint, cartID string) (int64, error)
	SumQuantities(ctx context.Context, userID uint) (int, error)
	Clear(ctx context.Context, userID uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const lineColumns = `id, user_id, product_id, name, image, price, original_price, quantity, selected_color, created_at, updated_at`

func (r *repository) CreateLine(ctx context.Context, line *Line) (*Line, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cart_lines
			(id, user_id, product_id, name, image, price, original_price, quantity, selected_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+lineColumns,
		line.CartID, line.UserID, line.ProductID, line.Name, line.Image,
		line.Price, line.OriginalPrice, line.Quantity, line.SelectedColor,
	)

	created, err := scanLine(row)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateLine, err)
	}
	return created, nil
}

func (r *repository) GetLineByProductAndColor(
	ctx context.Context,
	userID uint,
	productID string,
	color *string,
) (*Line, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+lineColumns+`
		FROM cart_lines
		WHERE user_id = $1
		  AND product_id = $2
		  AND selected_color IS NOT DISTINCT FROM $3
	`, userID, productID, color)

	line, err := scanLine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *repository) ListLines(ctx context.Context, userID uint) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lineColumns+`
		FROM cart_lines
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListLines, err)
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.CartID, &l.UserID, &l.ProductID, &l.Name, &l.Image,
			&l.Price, &l.OriginalPrice, &l.Quantity, &l.SelectedColor,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListLines, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListLines, err)
	}

	return lines, nil
}

func (r *repository) UpdateQuantity(
	ctx context.Context,
	userID uint,
	cartID string,
	quantity int,
) (int64, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_lines
		SET quantity = $1, updated_at = NOW()
		WHERE user_id = $2 AND id = $3
	`, quantity, userID, cartID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedUpdateLine, err)
	}

	return res.RowsAffected()
}

func (r *repository) DeleteLine(ctx context.Context, userID uint, cartID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_lines
		WHERE user_id = $1 AND id = $2
	`, userID, cartID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedRemoveLine, err)
	}

	return res.RowsAffected()
}

func (r *repository) SumQuantities(ctx context.Context, userID uint) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart_lines
		WHERE user_id = $1
	`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedListLines, err)
	}
	return total, nil
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_lines
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedClearCart, err)
	}
	return nil
}

func scanLine(row *sql.Row) (*Line, error) {
	var l Line
	err := row.Scan(
		&l.CartID, &l.UserID, &l.ProductID, &l.Name, &l.Image,
		&l.Price, &l.OriginalPrice, &l.Quantity, &l.SelectedColor,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
