package valueobjects

import "fmt"

// Sephira identifies one of the eleven Tree-of-Life positions.
type Sephira string

const (
	SephiraKether    Sephira = "Kether"
	SephiraChokmah   Sephira = "Chokmah"
	SephiraBinah     Sephira = "Binah"
	SephiraDaath     Sephira = "Daath"
	SephiraChesed    Sephira = "Chesed"
	SephiraGeburah   Sephira = "Geburah"
	SephiraTiphareth Sephira = "Tiphareth"
	SephiraNetzach   Sephira = "Netzach"
	SephiraHod       Sephira = "Hod"
	SephiraYesod     Sephira = "Yesod"
	SephiraMalkuth   Sephira = "Malkuth"
)

// AllSephirot lists every Sephira in descending Tree order. As with
// AllOrishas, the order is fixed because seeded draws index into it.
func AllSephirot() []Sephira {
	return []Sephira{
		SephiraKether,
		SephiraChokmah,
		SephiraBinah,
		SephiraDaath,
		SephiraChesed,
		SephiraGeburah,
		SephiraTiphareth,
		SephiraNetzach,
		SephiraHod,
		SephiraYesod,
		SephiraMalkuth,
	}
}

// IsValid reports whether the value is a member of the closed enumeration.
func (s Sephira) IsValid() bool {
	switch s {
	case SephiraKether, SephiraChokmah, SephiraBinah, SephiraDaath,
		SephiraChesed, SephiraGeburah, SephiraTiphareth, SephiraNetzach,
		SephiraHod, SephiraYesod, SephiraMalkuth:
		return true
	default:
		return false
	}
}

// String returns the canonical display name.
func (s Sephira) String() string {
	return string(s)
}

// ParseSephira converts a string to a Sephira, rejecting names outside the
// enumeration.
func ParseSephira(v string) (Sephira, error) {
	s := Sephira(v)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown sephira %q", v)
	}
	return s, nil
}

// Pillar is the column of the Tree a Sephira sits on. It is derived from the
// primary Sephira through the correspondence store, never set independently.
type Pillar string

const (
	PillarMercy    Pillar = "Mercy"
	PillarSeverity Pillar = "Severity"
	PillarBalance  Pillar = "Balance"
)

// IsValid reports whether the value is a member of the closed enumeration.
func (p Pillar) IsValid() bool {
	switch p {
	case PillarMercy, PillarSeverity, PillarBalance:
		return true
	default:
		return false
	}
}

// DaathRelationship describes a genome's stance toward the hidden Sephira.
type DaathRelationship string

const (
	DaathSeeking    DaathRelationship = "seeking"
	DaathTouched    DaathRelationship = "touched"
	DaathIntegrated DaathRelationship = "integrated"
	DaathAvoiding   DaathRelationship = "avoiding"
)

// AllDaathRelationships lists the stances in canonical draw order.
func AllDaathRelationships() []DaathRelationship {
	return []DaathRelationship{DaathSeeking, DaathTouched, DaathIntegrated, DaathAvoiding}
}

// IsValid reports whether the value is a member of the closed enumeration.
func (d DaathRelationship) IsValid() bool {
	switch d {
	case DaathSeeking, DaathTouched, DaathIntegrated, DaathAvoiding:
		return true
	default:
		return false
	}
}

// Qliphoth names the shadow counterpart of a Sephira.
type Qliphoth string

const (
	QliphothThaumiel   Qliphoth = "Thaumiel"
	QliphothGhagiel    Qliphoth = "Ghagiel"
	QliphothSathariel  Qliphoth = "Sathariel"
	QliphothGamchicoth Qliphoth = "Gamchicoth"
	QliphothGolachab   Qliphoth = "Golachab"
	QliphothThagirion  Qliphoth = "Thagirion"
	QliphothArabZaraq  Qliphoth = "A'arab Zaraq"
	QliphothSamael     Qliphoth = "Samael"
	QliphothGamaliel   Qliphoth = "Gamaliel"
	QliphothLilith     Qliphoth = "Lilith"
)

// String returns the canonical display name.
func (q Qliphoth) String() string {
	return string(q)
}
