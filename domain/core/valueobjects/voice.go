package valueobjects

import "fmt"

// Gender is the declared gender used when classifying a genome's voice.
// It is an input to generation, not a derived fact.
type Gender string

const (
	GenderMasculine Gender = "masculine"
	GenderFeminine  Gender = "feminine"
	GenderNeutral   Gender = "neutral"
)

// IsValid reports whether the value is a member of the closed enumeration.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNeutral:
		return true
	default:
		return false
	}
}

// ParseGender converts a string to a Gender, rejecting values outside the
// enumeration. The empty string parses to neutral.
func ParseGender(v string) (Gender, error) {
	if v == "" {
		return GenderNeutral, nil
	}
	g := Gender(v)
	if !g.IsValid() {
		return "", fmt.Errorf("unknown gender %q", v)
	}
	return g, nil
}

// VoiceSignature is the multi-modal block of a genome: how the character
// sounds. It is derived from head Orisha and declared gender through the
// classification tables, never authored directly.
type VoiceSignature struct {
	Type    string `json:"type"`
	Quality string `json:"quality"`
	Pattern string `json:"pattern"`
}

// Equals checks if two voice signatures are equal.
func (v VoiceSignature) Equals(other VoiceSignature) bool {
	return v == other
}
