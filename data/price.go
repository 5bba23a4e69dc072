package data

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price holds a monetary amount as an exact number of cents. Amounts are
// fixed-point with 2 fractional digits internally; conversion to a floating
// representation only happens at the output boundary.
type Price struct {
	cents   int64
	invalid bool
}

// PriceFromCents returns a Price for a given number of cents.
func PriceFromCents(cents int64) Price {
	return Price{cents: cents}
}

// ParsePrice converts a decimal string such as "25000.00" into a Price.
// At most 2 fractional digits are accepted.
func ParsePrice(s string) (Price, error) {
	cents, err := parseCents(s)
	if err != nil {
		return Price{}, err
	}
	return Price{cents: cents}, nil
}

func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("amount %q has more than 2 decimal places", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	digits := intPart + fracPart
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	if neg {
		n = -n
	}
	return n, nil
}

// Cents returns the amount as a number of cents.
func (p Price) Cents() int64 {
	return p.cents
}

// Valid reports whether the amount was parsed successfully. The zero
// value of Price is a valid 0.00 amount.
func (p Price) Valid() bool {
	return !p.invalid
}

// String renders the amount as a fixed 2-decimal string, e.g. "25000.00".
func (p Price) String() string {
	sign := ""
	c := p.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MarshalJSON renders the amount as a JSON number with 2 decimal places.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. A value that
// cannot be parsed as a 2-decimal fixed-point amount marks the Price
// invalid instead of failing the whole decode, so the validation layer
// can report it as a field-level error alongside any others.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			p.invalid = true
			return nil
		}
	}
	cents, err := parseCents(s)
	if err != nil {
		p.invalid = true
		return nil
	}
	p.cents = cents
	p.invalid = false
	return nil
}

// Value implements the driver.Valuer interface, rendering the amount
// as a fixed 2-decimal string for a numeric(12,2) column.
func (p Price) Value() (driver.Value, error) {
	if p.invalid {
		return nil, errors.New("cannot store an invalid price")
	}
	return p.String(), nil
}

// Scan implements the sql.Scanner interface.
func (p *Price) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		cents, err := parseCents(string(v))
		if err != nil {
			return err
		}
		p.cents = cents
	case string:
		cents, err := parseCents(v)
		if err != nil {
			return err
		}
		p.cents = cents
	case int64:
		p.cents = v * 100
	case float64:
		p.cents = int64(math.Round(v * 100))
	default:
		return fmt.Errorf("unsupported Scan source type %T for Price", src)
	}
	p.invalid = false
	return nil
}
