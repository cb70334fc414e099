package commands_test

import (
	"context"
	"testing"
	"time"

	"orderadmin/internal/core/application/usecases/commands"
	"orderadmin/internal/core/domain/model/kernel"
	"orderadmin/internal/core/domain/model/order"
	"orderadmin/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error) {
	args := m.Called(ctx, id, scope)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID, scope order.Scope) (*order.Order, error) {
	args := m.Called(ctx, id, scope)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) LockForDelete(ctx context.Context, id kernel.ID, scope order.Scope) (order.Ref, error) {
	args := m.Called(ctx, id, scope)
	ref, _ := args.Get(0).(order.Ref)
	return ref, args.Error(1)
}

func (m *MockOrderRepository) SoftDelete(ctx context.Context, id kernel.ID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockOrderRepository) ForceDelete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, scope order.Scope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListSoftDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]kernel.ID, error) {
	args := m.Called(ctx, cutoff, limit)
	ids, _ := args.Get(0).([]kernel.ID)
	return ids, args.Error(1)
}

func orderOrNil(v any) *order.Order {
	o, _ := v.(*order.Order)
	return o
}

type MockOrderDetailRepository struct{ mock.Mock }

func (m *MockOrderDetailRepository) AddAll(ctx context.Context, details []*order.Detail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) ListByOrder(ctx context.Context, orderID kernel.ID) ([]*order.Detail, error) {
	args := m.Called(ctx, orderID)
	details, _ := args.Get(0).([]*order.Detail)
	return details, args.Error(1)
}

func (m *MockOrderDetailRepository) DeleteByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderDetailRepository) CountByOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OrderDetailRepository() ports.OrderDetailRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderDetailRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderDeleted(ctx context.Context, event order.DeletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var createdAt = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T, id int64, deletedAt *time.Time) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(order.Snapshot{
		ID:        kernel.MustNewID(id),
		No:        "20240101000042",
		UserID:    kernel.MustNewID(7),
		Total:     kernel.MustMoney("199.00"),
		Status:    order.Paid,
		Type:      order.Normal,
		Consignee: order.Consignee{Name: "Li Lei", Phone: "13800000000", Address: "1 Main St"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		DeletedAt: deletedAt,
	})
	require.NoError(t, err)
	return o
}
