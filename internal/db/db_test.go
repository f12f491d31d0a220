package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS cart_lines").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS wishlist_items").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, EnsureSchema(db))
	})

	t.Run("CartTableError", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS cart_lines").
			WillReturnError(errors.New("db error"))

		assert.Error(t, EnsureSchema(db))
	})

	t.Run("WishlistTableError", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS cart_lines").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS wishlist_items").
			WillReturnError(errors.New("db error"))

		assert.Error(t, EnsureSchema(db))
	})
}
