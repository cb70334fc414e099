package queries_test

import (
	"testing"

	"orderadmin/internal/adapters/out/database/catalogrepo"
	"orderadmin/internal/core/application/usecases/queries"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getQuery(t *testing.T, id int64) queries.GetOrderQuery {
	t.Helper()
	query, err := queries.NewGetOrderQuery(kernel.MustNewID(id))
	require.NoError(t, err)
	return query
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	db := newCatalogDB(t)
	handler := queries.NewGetOrderQueryHandler(db, catalogrepo.NewGormUserDirectory(db))

	t.Run("returns the order with its lines", func(t *testing.T) {
		response, err := handler.Handle(t.Context(), getQuery(t, 42))

		require.NoError(t, err)
		assert.Equal(t, int64(42), response.ID)
		assert.Equal(t, "Alice", response.UserName)
		assert.Equal(t, "199.00", response.Total)
		assert.Equal(t, "PAY000042", response.PayNo)
		assert.Equal(t, "Li Lei", response.ConsigneeName)
		require.Len(t, response.Details, 3)

		assert.Equal(t, queries.OrderLine{
			ID:          420,
			ProductID:   1,
			ProductName: "Keyboard",
			Price:       "99.00",
			Number:      1,
			IsCommented: false,
			Commented:   "No",
			Subtotal:    "99.00",
		}, response.Details[0])
		assert.Equal(t, int64(421), response.Details[1].ID)
		assert.Equal(t, "Mouse", response.Details[1].ProductName)
	})

	t.Run("lines of missing products have no name", func(t *testing.T) {
		response, err := handler.Handle(t.Context(), getQuery(t, 42))

		require.NoError(t, err)
		third := response.Details[2]
		assert.Equal(t, int64(3), third.ProductID)
		assert.Empty(t, third.ProductName)
		assert.Equal(t, "25.00", third.Price)
		assert.Equal(t, 2, third.Number)
		assert.Equal(t, "50.00", third.Subtotal)
	})

	t.Run("returns soft-deleted orders", func(t *testing.T) {
		response, err := handler.Handle(t.Context(), getQuery(t, 43))

		require.NoError(t, err)
		assert.True(t, response.Deleted)
		assert.Equal(t, "Deleted", response.Lifecycle)
		assert.Equal(t, "Bob", response.UserName)
		require.Len(t, response.Details, 1)
	})

	t.Run("order without lines", func(t *testing.T) {
		response, err := handler.Handle(t.Context(), getQuery(t, 44))

		require.NoError(t, err)
		assert.NotNil(t, response.Details)
		assert.Empty(t, response.Details)
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), getQuery(t, 999))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "object not found: 999", err.Error())
	})
}

func TestGetOrderQueryHandler_Handle_InvalidQuery(t *testing.T) {
	db := newCatalogDB(t)
	handler := queries.NewGetOrderQueryHandler(db, catalogrepo.NewGormUserDirectory(db))

	_, err := handler.Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle_DirectoryError(t *testing.T) {
	handler := queries.NewGetOrderQueryHandler(newCatalogDB(t), failingDirectory{})

	_, err := handler.Handle(t.Context(), getQuery(t, 42))

	require.ErrorIs(t, err, errDirectoryDown)
}
