package kernel

import (
	"fmt"

	"orderadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places kept for amounts.
const moneyScale = 2

// Money is a non-negative monetary amount rounded to cents.
// The zero value is a valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates and rounds amount to two decimal places.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money", fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// MoneyFromString parses amounts like "199.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals; it panics on invalid input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimals, e.g. "199.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
