package valueobjects

import (
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
)

// genomeNamespace scopes deterministic genome IDs so they never collide with
// IDs minted for other entity kinds.
var genomeNamespace = uuid.MustParse("9b1dceb0-6d6b-4c1a-9e65-1d1fb4a2e7a3")

// GenomeID is a value object representing a unique genome identifier
// Value objects are immutable and have no identity beyond their value
type GenomeID struct {
	value string
}

// NewGenomeID creates a new random GenomeID
func NewGenomeID() GenomeID {
	return GenomeID{value: uuid.New().String()}
}

// DeriveGenomeID mints a deterministic GenomeID from a seed and name, so a
// reproducible generation yields the same ID on every run.
func DeriveGenomeID(seed int64, name string) GenomeID {
	buf := make([]byte, 8, 8+len(name))
	binary.BigEndian.PutUint64(buf, uint64(seed))
	buf = append(buf, name...)
	return GenomeID{value: uuid.NewSHA1(genomeNamespace, buf).String()}
}

// NewGenomeIDFromString creates a GenomeID from an existing string
func NewGenomeIDFromString(id string) (GenomeID, error) {
	if id == "" {
		return GenomeID{}, errors.New("genome ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return GenomeID{}, errors.New("genome ID must be a valid UUID")
	}
	return GenomeID{value: id}, nil
}

// String returns the string representation of the GenomeID
func (id GenomeID) String() string {
	return id.value
}

// Equals checks if two GenomeIDs are equal
func (id GenomeID) Equals(other GenomeID) bool {
	return id.value == other.value
}

// IsZero checks if the GenomeID is the zero value
func (id GenomeID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id GenomeID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *GenomeID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("GenomeID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
