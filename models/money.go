package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount with 2 fractional digits. It round-trips
// through the database as numeric and serializes to JSON as a string like
// "12.50". Inputs may be JSON numbers or strings.
type Money struct {
	decimal.Decimal
}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q", s)
	}
	return Money{d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money amount %q", s)
	}
	m.Decimal = d
	return nil
}

// UnmarshalText lets form/multipart bodies carry money fields.
func (m *Money) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		m.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money amount %q", s)
	}
	m.Decimal = d
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(2), nil
}

func (m *Money) Scan(v interface{}) error {
	return m.Decimal.Scan(v)
}

// GormDataType pins the column type so AutoMigrate doesn't guess.
func (Money) GormDataType() string {
	return "numeric(10,2)"
}

func (m Money) Equal(o Money) bool {
	return m.Decimal.Equal(o.Decimal)
}
