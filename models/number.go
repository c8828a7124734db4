package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber is returned when a FlexNumber does not hold a finite number.
	ErrNotANumber = errors.New("value is not a finite number")

	// ErrNotAnInteger is returned when a FlexNumber holds a fractional or
	// out-of-range value where an integer is required.
	ErrNotAnInteger = errors.New("value is not an integer")
)

// FlexNumber is a request field that clients may send either as a JSON
// number (5) or as a numeric string ("5"). The raw text is kept as is and
// only interpreted by Float or Int, so that malformed input surfaces as a
// validation error rather than a decoding failure.
type FlexNumber string

// UnmarshalJSON stores the literal text of a number, the content of a
// string, or the raw bytes of any other JSON value.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexNumber(strings.TrimSpace(s))
		return nil
	}

	*n = FlexNumber(b)
	return nil
}

// MarshalJSON writes the value back as a bare number when it parses as one.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if _, err := n.Float(); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// Present reports whether the field was sent with a non-empty value.
func (n *FlexNumber) Present() bool {
	return n != nil && *n != ""
}

// Float parses the value as a finite float64.
func (n FlexNumber) Float() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotANumber
	}
	return f, nil
}

// Int parses the value as a whole number that fits into int64.
// "5" and "5.0" are accepted, "5.5" is not.
func (n FlexNumber) Int() (int64, error) {
	f, err := n.Float()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, ErrNotAnInteger
	}
	return int64(f), nil
}
