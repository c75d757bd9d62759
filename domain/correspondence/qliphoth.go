package correspondence

import "github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"

// sephiraToQliphoth maps each Sephira to its shadow. Daath has none: the
// abyss is its own shadow.
var sephiraToQliphoth = map[valueobjects.Sephira]valueobjects.Qliphoth{
	valueobjects.SephiraKether:    valueobjects.QliphothThaumiel,
	valueobjects.SephiraChokmah:   valueobjects.QliphothGhagiel,
	valueobjects.SephiraBinah:     valueobjects.QliphothSathariel,
	valueobjects.SephiraChesed:    valueobjects.QliphothGamchicoth,
	valueobjects.SephiraGeburah:   valueobjects.QliphothGolachab,
	valueobjects.SephiraTiphareth: valueobjects.QliphothThagirion,
	valueobjects.SephiraNetzach:   valueobjects.QliphothArabZaraq,
	valueobjects.SephiraHod:       valueobjects.QliphothSamael,
	valueobjects.SephiraYesod:     valueobjects.QliphothGamaliel,
	valueobjects.SephiraMalkuth:   valueobjects.QliphothLilith,
}
