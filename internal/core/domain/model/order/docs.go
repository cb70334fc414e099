// Package order provides the Order aggregate and its OrderDetail lines as seen by
// the administration side of the shop.
//
// The package includes:
//   - Order: the aggregate root holding identity, totals, payment, consignee and lifecycle
//   - Detail: a line item exclusively owned by one Order
//   - Status and Type: the business state and kind of an order, with display labels
//   - Lifecycle: whether the order row is Active or SoftDeleted
//   - Scope: the lookup parameter choosing whether soft-deleted orders are visible
//
// Key business rules:
//   - An order and its details are created by the purchasing flow; administration never creates them
//   - A soft-deleted order is still stored and is visible to lookups using IncludeSoftDeleted
//   - Hard deletion removes the order together with all of its details, or nothing at all
package order
