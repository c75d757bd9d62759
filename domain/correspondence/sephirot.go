package correspondence

import "github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"

// SephiraRecord is the reference row for one Tree-of-Life position.
type SephiraRecord struct {
	Name    valueobjects.Sephira
	Code    string
	Number  int
	Pillar  valueobjects.Pillar
	Title   string
	Meaning string
}

var sephiraRecords = map[valueobjects.Sephira]SephiraRecord{
	valueobjects.SephiraKether: {
		Name: valueobjects.SephiraKether, Code: "kether", Number: 1,
		Pillar: valueobjects.PillarBalance,
		Title:  "The Crown", Meaning: "undivided source, will before form",
	},
	valueobjects.SephiraChokmah: {
		Name: valueobjects.SephiraChokmah, Code: "chokmah", Number: 2,
		Pillar: valueobjects.PillarMercy,
		Title:  "Wisdom", Meaning: "raw generative force, the flash before thought",
	},
	valueobjects.SephiraBinah: {
		Name: valueobjects.SephiraBinah, Code: "binah", Number: 3,
		Pillar: valueobjects.PillarSeverity,
		Title:  "Understanding", Meaning: "the womb of form, limitation that makes meaning",
	},
	valueobjects.SephiraDaath: {
		Name: valueobjects.SephiraDaath, Code: "daath", Number: 0,
		Pillar: valueobjects.PillarBalance,
		Title:  "Knowledge", Meaning: "the hidden crossing, knowledge bought with vertigo",
	},
	valueobjects.SephiraChesed: {
		Name: valueobjects.SephiraChesed, Code: "chesed", Number: 4,
		Pillar: valueobjects.PillarMercy,
		Title:  "Mercy", Meaning: "expansive generosity, the open hand",
	},
	valueobjects.SephiraGeburah: {
		Name: valueobjects.SephiraGeburah, Code: "geburah", Number: 5,
		Pillar: valueobjects.PillarSeverity,
		Title:  "Strength", Meaning: "severity in service of justice, the cutting away",
	},
	valueobjects.SephiraTiphareth: {
		Name: valueobjects.SephiraTiphareth, Code: "tiphareth", Number: 6,
		Pillar: valueobjects.PillarBalance,
		Title:  "Beauty", Meaning: "the reconciling center, sacrifice that harmonizes",
	},
	valueobjects.SephiraNetzach: {
		Name: valueobjects.SephiraNetzach, Code: "netzach", Number: 7,
		Pillar: valueobjects.PillarMercy,
		Title:  "Victory", Meaning: "endurance of desire, instinct and art",
	},
	valueobjects.SephiraHod: {
		Name: valueobjects.SephiraHod, Code: "hod", Number: 8,
		Pillar: valueobjects.PillarSeverity,
		Title:  "Splendor", Meaning: "intellect's glitter, language and craft",
	},
	valueobjects.SephiraYesod: {
		Name: valueobjects.SephiraYesod, Code: "yesod", Number: 9,
		Pillar: valueobjects.PillarBalance,
		Title:  "Foundation", Meaning: "the dreaming engine, image beneath the world",
	},
	valueobjects.SephiraMalkuth: {
		Name: valueobjects.SephiraMalkuth, Code: "malkuth", Number: 10,
		Pillar: valueobjects.PillarBalance,
		Title:  "Kingdom", Meaning: "embodiment, the world as it is",
	},
}

// orishaToSephira and sephiraToOrisha are exact inverses over every pair
// that exists. Ògún has no Tree position; Malkuth has no Orisha.
var orishaToSephira = map[valueobjects.Orisha]valueobjects.Sephira{
	valueobjects.OrishaObatala:   valueobjects.SephiraKether,
	valueobjects.OrishaOrunmila:  valueobjects.SephiraChokmah,
	valueobjects.OrishaYemaya:    valueobjects.SephiraBinah,
	valueobjects.OrishaOya:       valueobjects.SephiraDaath,
	valueobjects.OrishaAganju:    valueobjects.SephiraChesed,
	valueobjects.OrishaShango:    valueobjects.SephiraGeburah,
	valueobjects.OrishaBabaluAye: valueobjects.SephiraTiphareth,
	valueobjects.OrishaOshun:     valueobjects.SephiraNetzach,
	valueobjects.OrishaEleggua:   valueobjects.SephiraHod,
	valueobjects.OrishaOchosi:    valueobjects.SephiraYesod,
}

var sephiraToOrisha = map[valueobjects.Sephira]valueobjects.Orisha{
	valueobjects.SephiraKether:    valueobjects.OrishaObatala,
	valueobjects.SephiraChokmah:   valueobjects.OrishaOrunmila,
	valueobjects.SephiraBinah:     valueobjects.OrishaYemaya,
	valueobjects.SephiraDaath:     valueobjects.OrishaOya,
	valueobjects.SephiraChesed:    valueobjects.OrishaAganju,
	valueobjects.SephiraGeburah:   valueobjects.OrishaShango,
	valueobjects.SephiraTiphareth: valueobjects.OrishaBabaluAye,
	valueobjects.SephiraNetzach:   valueobjects.OrishaOshun,
	valueobjects.SephiraHod:       valueobjects.OrishaEleggua,
	valueobjects.SephiraYesod:     valueobjects.OrishaOchosi,
}

// compatibilityGraph lists, per Orisha, the ordered set of Orishas that can
// appear as its secondary influences. The lists are not symmetric and never
// contain the key itself.
var compatibilityGraph = map[valueobjects.Orisha][]valueobjects.Orisha{
	valueobjects.OrishaObatala: {
		valueobjects.OrishaOrunmila, valueobjects.OrishaYemaya, valueobjects.OrishaOchosi,
	},
	valueobjects.OrishaEleggua: {
		valueobjects.OrishaOgun, valueobjects.OrishaOchosi, valueobjects.OrishaShango,
		valueobjects.OrishaOya,
	},
	valueobjects.OrishaYemaya: {
		valueobjects.OrishaOshun, valueobjects.OrishaObatala, valueobjects.OrishaOchosi,
	},
	valueobjects.OrishaOshun: {
		valueobjects.OrishaYemaya, valueobjects.OrishaShango, valueobjects.OrishaEleggua,
	},
	valueobjects.OrishaShango: {
		valueobjects.OrishaOya, valueobjects.OrishaOshun, valueobjects.OrishaAganju,
		valueobjects.OrishaEleggua,
	},
	valueobjects.OrishaOya: {
		valueobjects.OrishaShango, valueobjects.OrishaEleggua, valueobjects.OrishaYemaya,
	},
	valueobjects.OrishaOgun: {
		valueobjects.OrishaEleggua, valueobjects.OrishaOchosi, valueobjects.OrishaOya,
	},
	valueobjects.OrishaOchosi: {
		valueobjects.OrishaOgun, valueobjects.OrishaEleggua, valueobjects.OrishaObatala,
	},
	valueobjects.OrishaOrunmila: {
		valueobjects.OrishaObatala, valueobjects.OrishaEleggua, valueobjects.OrishaBabaluAye,
	},
	valueobjects.OrishaAganju: {
		valueobjects.OrishaShango, valueobjects.OrishaOya, valueobjects.OrishaYemaya,
	},
	valueobjects.OrishaBabaluAye: {
		valueobjects.OrishaObatala, valueobjects.OrishaOrunmila, valueobjects.OrishaEleggua,
	},
}
