package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderadmin/internal/adapters/out/database/catalogrepo"
	"orderadmin/internal/adapters/out/database/dbtest"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errDirectoryDown = errors.New("directory unavailable")

// failingDirectory stands in for a user directory whose backend is down.
type failingDirectory struct{}

func (failingDirectory) NamesByIDs(context.Context, []int64) (map[int64]string, error) {
	return nil, errDirectoryDown
}

func (failingDirectory) IDsByNameLike(context.Context, string) ([]int64, error) {
	return nil, errDirectoryDown
}

// newCatalogDB returns a database holding the example order 42 of user 7 plus
// orders 43 (user 8, soft-deleted) and 44 (user 7).
func newCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	db := dbtest.NewSQLite(t)
	require.NoError(t, catalogrepo.AddUsers(ctx, db,
		catalogrepo.UserDTO{ID: 7, Name: "Alice"},
		catalogrepo.UserDTO{ID: 8, Name: "Bob"},
	))
	require.NoError(t, catalogrepo.AddProducts(ctx, db,
		catalogrepo.ProductDTO{ID: 1, Name: "Keyboard"},
		catalogrepo.ProductDTO{ID: 2, Name: "Mouse"},
	))

	dbtest.SeedExample(t, db, nil)

	deletedAt := dbtest.CreatedAt.Add(24 * time.Hour)
	dbtest.Seed(t, db, dbtest.NewOrder(t, 43, 8, "10.00", &deletedAt),
		dbtest.NewDetails(t, 43, 430, dbtest.Line{ProductID: 2, Price: "10.00", Number: 1})...)
	dbtest.Seed(t, db, dbtest.NewOrder(t, 44, 7, "5.50", nil))

	return db
}
