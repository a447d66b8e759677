package kernel

import (
	"errors"
	"fmt"

	"cafe/internal/pkg/errs"
	"cafe/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits prices and totals are kept at.
const MoneyScale int32 = 2

// ErrMoneyIsNotConstructed is returned when a Money value was not created through a constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount rounded to MoneyScale digits.
//
// Amounts are exact decimals, so repeated sums never drift the way float
// prices do:
//
//	latte, _ := kernel.MoneyFromString("4.50")
//	bagel, _ := kernel.MoneyFromString("3.00")
//	latte.Add(bagel).String() // "7.50"
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates amount and rounds it to MoneyScale digits.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromString parses a decimal string such as "4.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	if err := m.guard.Validate(ErrMoneyIsNotConstructed); err != nil {
		return err
	}
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", m.amount))
	}
	return nil
}

// Add returns the sum of both amounts. The sum of two valid amounts is always valid.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with exactly MoneyScale fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("money", amount.String(), "0", "unbounded")
	}
	m.amount = amount.Round(MoneyScale)
	return nil
}

// SumMoney adds every amount, returning zero for an empty slice.
func SumMoney(amounts ...Money) (Money, error) {
	total := ZeroMoney()
	var validationErr error
	for _, a := range amounts {
		if err := a.Validate(); err != nil {
			validationErr = errors.Join(validationErr, err)
			continue
		}
		total = total.Add(a)
	}
	if validationErr != nil {
		return Money{}, validationErr
	}
	return total, nil
}
