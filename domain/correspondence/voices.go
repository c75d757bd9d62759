package correspondence

import (
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// voiceKey indexes the classification table: declared gender crossed with the
// head Orisha's energy class.
type voiceKey struct {
	Gender valueobjects.Gender
	Class  valueobjects.EnergyClass
}

// voiceTypes is the fixed classification table. A cell with more than one
// entry is a tie; the generator breaks ties with its seeded RNG, never with
// insertion order.
var voiceTypes = map[voiceKey][]string{
	{valueobjects.GenderMasculine, valueobjects.EnergyHot}: {
		"thunderous baritone", "smoldering growl", "brass-edged tenor",
	},
	{valueobjects.GenderMasculine, valueobjects.EnergyCool}: {
		"still bass", "river-smooth baritone",
	},
	{valueobjects.GenderMasculine, valueobjects.EnergyCrossroads}: {
		"shifting tenor", "gravel-and-silk drawl",
	},
	{valueobjects.GenderFeminine, valueobjects.EnergyHot}: {
		"blazing contralto", "storm-bright mezzo", "ember-warm alto",
	},
	{valueobjects.GenderFeminine, valueobjects.EnergyCool}: {
		"tidal contralto", "moonlit soprano",
	},
	{valueobjects.GenderFeminine, valueobjects.EnergyCrossroads}: {
		"quicksilver mezzo", "smoke-curl alto",
	},
	{valueobjects.GenderNeutral, valueobjects.EnergyHot}: {
		"forge-bright timbre", "crackling mid-register",
	},
	{valueobjects.GenderNeutral, valueobjects.EnergyCool}: {
		"glass-calm timbre", "deepwater hum",
	},
	{valueobjects.GenderNeutral, valueobjects.EnergyCrossroads}: {
		"threshold whisper", "doubled voice, near and far",
	},
}

// VoiceTypesFor returns the candidate voice types for a gender and energy
// class. An empty cell is a table defect, surfaced as a configuration error.
func VoiceTypesFor(g valueobjects.Gender, c valueobjects.EnergyClass) ([]string, error) {
	if !g.IsValid() {
		return nil, pkgerrors.NewLookupError("gender", string(g))
	}
	if !c.IsValid() {
		return nil, pkgerrors.NewLookupError("energy class", string(c))
	}
	types, ok := voiceTypes[voiceKey{g, c}]
	if !ok || len(types) == 0 {
		return nil, pkgerrors.NewConfigurationError(
			"voice table has no entry for " + string(g) + " x " + string(c))
	}
	out := make([]string, len(types))
	copy(out, types)
	return out, nil
}

func verifyVoiceTables() error {
	genders := []valueobjects.Gender{
		valueobjects.GenderMasculine, valueobjects.GenderFeminine, valueobjects.GenderNeutral,
	}
	classes := []valueobjects.EnergyClass{
		valueobjects.EnergyHot, valueobjects.EnergyCool, valueobjects.EnergyCrossroads,
	}
	for _, g := range genders {
		for _, c := range classes {
			if _, err := VoiceTypesFor(g, c); err != nil {
				return err
			}
		}
	}
	return nil
}
