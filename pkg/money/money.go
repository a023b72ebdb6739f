package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. All amounts entering the system are
// converted to Money once at the boundary; comparisons are done at two
// decimal places.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount
var Zero = Money{amount: decimal.Zero}

// FromString parses a decimal string ("150.00") into Money
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid monetary amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// FromFloat converts a float64 into Money
func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// FromDecimal wraps an existing decimal value
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Round2 returns the amount rounded to two decimal places
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// Equals reports whether two amounts are equal after rounding to two
// decimal places
func (m Money) Equals(other Money) bool {
	return m.amount.Round(2).Equal(other.amount.Round(2))
}

// IsPositive reports whether the amount is strictly greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Decimal returns the underlying decimal value
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as float64, for display only
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with two decimal places
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON encodes the amount as a fixed two-decimal string
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid monetary amount %s: %w", data, err)
	}
	m.amount = d
	return nil
}

// Value implements driver.Valuer so Money persists as a numeric column
func (m Money) Value() (driver.Value, error) {
	return m.amount.StringFixed(2), nil
}

// Scan implements sql.Scanner
func (m *Money) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %v into Money: %w", value, err)
	}
	m.amount = d
	return nil
}

// GormDataType tells GORM which column type to migrate Money to
func (Money) GormDataType() string {
	return "numeric(10,2)"
}
