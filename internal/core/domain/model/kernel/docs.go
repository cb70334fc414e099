// Package kernel provides the shared value objects of the order domain.
//
// The package includes:
//   - ID: the positive integer identity assigned by storage to orders, details, users and products
//   - Money: a non-negative amount rounded to cents, backed by shopspring/decimal
//
// Both are immutable and safe for concurrent use.
package kernel
