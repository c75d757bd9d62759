package valueobjects

import (
	"fmt"
	"strings"
)

// RelationshipType classifies the bond between two characters for lore
// synthesis.
type RelationshipType string

const (
	RelationshipAlly   RelationshipType = "ALLY"
	RelationshipEnemy  RelationshipType = "ENEMY"
	RelationshipMentor RelationshipType = "MENTOR"
	RelationshipFamily RelationshipType = "FAMILY"
	RelationshipRival  RelationshipType = "RIVAL"
	RelationshipFriend RelationshipType = "FRIEND"
	RelationshipLover  RelationshipType = "LOVER"
	RelationshipCustom RelationshipType = "CUSTOM"
)

// AllRelationshipTypes lists the types in canonical order.
func AllRelationshipTypes() []RelationshipType {
	return []RelationshipType{
		RelationshipAlly,
		RelationshipEnemy,
		RelationshipMentor,
		RelationshipFamily,
		RelationshipRival,
		RelationshipFriend,
		RelationshipLover,
		RelationshipCustom,
	}
}

// IsValid reports whether the value is a member of the closed enumeration.
func (r RelationshipType) IsValid() bool {
	switch r {
	case RelationshipAlly, RelationshipEnemy, RelationshipMentor,
		RelationshipFamily, RelationshipRival, RelationshipFriend,
		RelationshipLover, RelationshipCustom:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (r RelationshipType) String() string {
	return string(r)
}

// ParseRelationshipType converts a string (case-insensitive) to a
// RelationshipType, rejecting values outside the enumeration.
func ParseRelationshipType(v string) (RelationshipType, error) {
	r := RelationshipType(strings.ToUpper(v))
	if !r.IsValid() {
		return "", fmt.Errorf("unknown relationship type %q", v)
	}
	return r, nil
}
