package detailrepo_test

import (
	"context"
	"testing"

	"orderadmin/internal/adapters/out/database/dbtest"
	"orderadmin/internal/adapters/out/database/detailrepo"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormOrderDetailRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	repo := detailrepo.NewGormOrderDetailRepository(db)

	require.NoError(t, repo.AddAll(ctx, dbtest.NewDetails(t, 42, 420,
		dbtest.Line{ProductID: 1, Price: "99.00", Number: 1},
		dbtest.Line{ProductID: 2, Price: "50.00", Number: 1},
		dbtest.Line{ProductID: 3, Price: "25.00", Number: 2},
	)))
	require.NoError(t, repo.AddAll(ctx, dbtest.NewDetails(t, 43, 430,
		dbtest.Line{ProductID: 1, Price: "10.00", Number: 1},
	)))

	t.Run("ListByOrder returns lines in id order", func(t *testing.T) {
		details, err := repo.ListByOrder(ctx, kernel.MustNewID(42))

		require.NoError(t, err)
		require.Len(t, details, 3)
		assert.Equal(t, int64(420), details[0].ID().Int64())
		assert.Equal(t, "50.00", details[2].Total().String())
		for _, d := range details {
			assert.True(t, d.BelongsTo(kernel.MustNewID(42)))
		}
	})

	t.Run("CountByOrder", func(t *testing.T) {
		count, err := repo.CountByOrder(ctx, kernel.MustNewID(42))

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("DeleteByOrder removes only that order's lines", func(t *testing.T) {
		removed, err := repo.DeleteByOrder(ctx, kernel.MustNewID(42))

		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		assert.Equal(t, int64(1), dbtest.CountRows(t, db, "order_details"))
	})

	t.Run("DeleteByOrder on an order without lines removes nothing", func(t *testing.T) {
		removed, err := repo.DeleteByOrder(ctx, kernel.MustNewID(42))

		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestGormOrderDetailRepository_AddAllEmptyIsNoop(t *testing.T) {
	db := dbtest.NewSQLite(t)

	err := detailrepo.NewGormOrderDetailRepository(db).AddAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Zero(t, dbtest.CountRows(t, db, "order_details"))
}

func TestGormOrderDetailRepository_RejectsUnconstructedDetail(t *testing.T) {
	db := dbtest.NewSQLite(t)

	err := detailrepo.NewGormOrderDetailRepository(db).AddAll(context.Background(), []*order.Detail{{}})

	require.ErrorIs(t, err, order.ErrDetailIsNotConstructed)
}
