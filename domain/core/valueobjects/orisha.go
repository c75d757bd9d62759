package valueobjects

import "fmt"

// Orisha identifies one of the closed set of archetype identities a genome
// can carry as its primary energy signature.
type Orisha string

const (
	OrishaObatala   Orisha = "Ọbàtálá"
	OrishaEleggua   Orisha = "Elegguá"
	OrishaYemaya    Orisha = "Yemayá"
	OrishaOshun     Orisha = "Ọ̀ṣun"
	OrishaShango    Orisha = "Ṣàngó"
	OrishaOya       Orisha = "Ọya"
	OrishaOgun      Orisha = "Ògún"
	OrishaOchosi    Orisha = "Ochosi"
	OrishaOrunmila  Orisha = "Ọ̀rúnmìlà"
	OrishaAganju    Orisha = "Aganjú"
	OrishaBabaluAye Orisha = "Babalú-Ayé"
)

// AllOrishas lists every Orisha in canonical order. The order is fixed and
// load-bearing: seeded draws index into it.
func AllOrishas() []Orisha {
	return []Orisha{
		OrishaObatala,
		OrishaEleggua,
		OrishaYemaya,
		OrishaOshun,
		OrishaShango,
		OrishaOya,
		OrishaOgun,
		OrishaOchosi,
		OrishaOrunmila,
		OrishaAganju,
		OrishaBabaluAye,
	}
}

// IsValid reports whether the value is a member of the closed enumeration.
func (o Orisha) IsValid() bool {
	switch o {
	case OrishaObatala, OrishaEleggua, OrishaYemaya, OrishaOshun,
		OrishaShango, OrishaOya, OrishaOgun, OrishaOchosi,
		OrishaOrunmila, OrishaAganju, OrishaBabaluAye:
		return true
	default:
		return false
	}
}

// String returns the canonical display name.
func (o Orisha) String() string {
	return string(o)
}

// ParseOrisha converts a string to an Orisha, rejecting names outside the
// enumeration.
func ParseOrisha(s string) (Orisha, error) {
	o := Orisha(s)
	if !o.IsValid() {
		return "", fmt.Errorf("unknown orisha %q", s)
	}
	return o, nil
}

// EnergyClass partitions the Orisha pantheon by temperament.
type EnergyClass string

const (
	EnergyHot        EnergyClass = "hot"
	EnergyCool       EnergyClass = "cool"
	EnergyCrossroads EnergyClass = "crossroads"
)

// IsValid reports whether the value is a member of the closed enumeration.
func (e EnergyClass) IsValid() bool {
	switch e {
	case EnergyHot, EnergyCool, EnergyCrossroads:
		return true
	default:
		return false
	}
}

// SecondaryInfluence is an ordered blend entry: an Orisha plus the strength
// with which it colors the head Orisha. Strength never reaches head-Orisha
// dominance; the generator draws it inside a bounded sub-range.
type SecondaryInfluence struct {
	Orisha   Orisha  `json:"orisha"`
	Strength float64 `json:"strength"`
}
