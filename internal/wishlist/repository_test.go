package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	entry := &Entry{
		ID:        "wish-1",
		UserID:    1,
		ProductID: "prod-1",
		Name:      "Gold Ring",
		Price:     1299,
	}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "product_id", "name", "image", "price", "selected_color", "created_at",
		}).AddRow("wish-1", 1, "prod-1", "Gold Ring", "", 1299.0, nil, time.Now())

		mock.ExpectQuery("INSERT INTO wishlist_items").
			WithArgs(entry.ID, entry.UserID, entry.ProductID, entry.Name, entry.Image, entry.Price, entry.SelectedColor).
			WillReturnRows(rows)

		res, err := repo.CreateEntry(context.Background(), entry)
		assert.NoError(t, err)
		assert.Equal(t, "wish-1", res.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO wishlist_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.CreateEntry(context.Background(), entry)
		assert.ErrorIs(t, err, ErrFailedCreateEntry)
	})
}

func TestRepository_ListEntries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "product_id", "name", "image", "price", "selected_color", "created_at",
		}).
			AddRow("wish-1", 1, "prod-1", "Gold Ring", "", 1299.0, nil, time.Now()).
			AddRow("wish-2", 1, "prod-2", "Silver Chain", "", 499.0, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM wishlist_items").
			WithArgs(uint(1)).
			WillReturnRows(rows)

		entries, err := repo.ListEntries(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM wishlist_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListEntries(context.Background(), 1)
		assert.ErrorIs(t, err, ErrFailedListEntries)
	})
}

func TestRepository_DeleteEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wishlist_items").
			WithArgs(uint(1), "wish-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.DeleteEntry(context.Background(), 1, "wish-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wishlist_items").
			WithArgs(uint(1), "gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.DeleteEntry(context.Background(), 1, "gone")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestService_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))

	t.Run("RejectsMissingProduct", func(t *testing.T) {
		_, err := svc.Add(context.Background(), 1, AddParams{})
		assert.ErrorIs(t, err, ErrMissingProduct)
	})

	t.Run("GeneratesID", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "product_id", "name", "image", "price", "selected_color", "created_at",
		}).AddRow("generated", 1, "prod-1", "Gold Ring", "", 1299.0, nil, time.Now())

		mock.ExpectQuery("INSERT INTO wishlist_items").
			WillReturnRows(rows)

		entry, err := svc.Add(context.Background(), 1, AddParams{ProductID: "prod-1", Name: "Gold Ring", Price: 1299})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	})
}

func TestService_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))

	t.Run("MissingEntry", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM wishlist_items").
			WithArgs(uint(1), "gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := svc.Remove(context.Background(), 1, "gone")
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}
