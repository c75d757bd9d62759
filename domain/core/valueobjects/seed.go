package valueobjects

import (
	"errors"
	"strconv"
)

// Seed is the integer that deterministically parameterizes every random draw
// in a generation call. A genome without a seed is non-reproducible, so the
// absence is modeled explicitly rather than as a zero value.
type Seed struct {
	value   int64
	present bool
}

// NewSeed creates a present seed.
func NewSeed(v int64) Seed {
	return Seed{value: v, present: true}
}

// NoSeed returns the absent seed.
func NoSeed() Seed {
	return Seed{}
}

// Value returns the seed integer; only meaningful when IsPresent is true.
func (s Seed) Value() int64 {
	return s.value
}

// IsPresent reports whether a seed was recorded.
func (s Seed) IsPresent() bool {
	return s.present
}

// Equals checks if two seeds are equal.
func (s Seed) Equals(other Seed) bool {
	return s.present == other.present && s.value == other.value
}

// MarshalJSON implements json.Marshaler; absent seeds serialize as null.
func (s Seed) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(s.value, 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Seed) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Seed{}
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return errors.New("seed must be a 64-bit integer or null")
	}
	*s = NewSeed(v)
	return nil
}
