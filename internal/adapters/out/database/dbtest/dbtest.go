// Package dbtest provides an in-memory SQLite database and order fixtures for tests
// of the persistence layer and of anything built on top of it.
package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"orderadmin/internal/adapters/out/database"
	"orderadmin/internal/adapters/out/database/detailrepo"
	"orderadmin/internal/adapters/out/database/orderrepo"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreatedAt is the creation time of every fixture order.
var CreatedAt = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

// NewSQLite opens a migrated in-memory database that is closed when the test ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(context.Background(), database.Config{
		Driver: database.DriverSQLite,
		Path:   ":memory:",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// Line describes one fixture detail line.
type Line struct {
	ProductID int64
	Price     string
	Number    int
}

// NewOrder builds a paid order owned by userID. A non-nil deletedAt makes it soft-deleted.
func NewOrder(t testing.TB, id, userID int64, total string, deletedAt *time.Time) *order.Order {
	t.Helper()

	paidAt := CreatedAt.Add(time.Minute)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:     kernel.MustNewID(id),
		No:     fmt.Sprintf("20240101%06d", id),
		UserID: kernel.MustNewID(userID),
		Total:  kernel.MustMoney(total),
		Status: order.Paid,
		Type:   order.Normal,
		Payment: order.Payment{
			No:     fmt.Sprintf("PAY%06d", id),
			PaidAt: &paidAt,
		},
		Consignee: order.Consignee{
			Name:    "Li Lei",
			Phone:   "13800000000",
			Address: "1 Main St",
		},
		CreatedAt: CreatedAt.Add(time.Duration(id) * time.Second),
		UpdatedAt: CreatedAt.Add(time.Duration(id) * time.Second),
		DeletedAt: deletedAt,
	})
	require.NoError(t, err)
	return o
}

// NewDetails builds lines for orderID with consecutive ids starting at firstID.
func NewDetails(t testing.TB, orderID, firstID int64, lines ...Line) []*order.Detail {
	t.Helper()

	details := make([]*order.Detail, 0, len(lines))
	for i, l := range lines {
		d, err := order.NewDetail(
			kernel.MustNewID(firstID+int64(i)),
			kernel.MustNewID(orderID),
			kernel.MustNewID(l.ProductID),
			kernel.MustMoney(l.Price),
			l.Number,
			false,
		)
		require.NoError(t, err)
		details = append(details, d)
	}
	return details
}

// Seed stores an order and its lines outside of any unit of work.
func Seed(t testing.TB, db *gorm.DB, o *order.Order, details ...*order.Detail) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, orderrepo.NewGormOrderRepository(db).Add(ctx, o))
	require.NoError(t, detailrepo.NewGormOrderDetailRepository(db).AddAll(ctx, details))
}

// SeedExample stores order 42 of user 7 with three lines totalling 199.00.
func SeedExample(t testing.TB, db *gorm.DB, deletedAt *time.Time) *order.Order {
	t.Helper()

	o := NewOrder(t, 42, 7, "199.00", deletedAt)
	Seed(t, db, o, NewDetails(t, 42, 420,
		Line{ProductID: 1, Price: "99.00", Number: 1},
		Line{ProductID: 2, Price: "50.00", Number: 1},
		Line{ProductID: 3, Price: "25.00", Number: 2},
	)...)
	return o
}

// FailDeletesOn makes every DELETE against table fail with err for the rest of the test.
func FailDeletesOn(t testing.TB, db *gorm.DB, table string, err error) {
	t.Helper()

	name := "dbtest:fail_delete_" + table
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}))
	t.Cleanup(func() {
		_ = db.Callback().Delete().Remove(name)
	})
}

// CountRows counts every row of table, soft-deleted ones included.
func CountRows(t testing.TB, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}
