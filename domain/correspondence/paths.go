package correspondence

import "github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"

// PathRecord is one of the twenty-two Tree-of-Life paths.
type PathRecord struct {
	Number int
	From   valueobjects.Sephira
	To     valueobjects.Sephira
	Letter string
	Title  string
}

// treePaths follows the standard 11..32 numbering. Daath, being hidden,
// appears on no path.
var treePaths = []PathRecord{
	{11, valueobjects.SephiraKether, valueobjects.SephiraChokmah, "Aleph", "the Fool's breath"},
	{12, valueobjects.SephiraKether, valueobjects.SephiraBinah, "Beth", "the Magician's house"},
	{13, valueobjects.SephiraKether, valueobjects.SephiraTiphareth, "Gimel", "the Priestess's crossing"},
	{14, valueobjects.SephiraChokmah, valueobjects.SephiraBinah, "Daleth", "the Empress's door"},
	{15, valueobjects.SephiraChokmah, valueobjects.SephiraTiphareth, "Heh", "the window of dawn"},
	{16, valueobjects.SephiraChokmah, valueobjects.SephiraChesed, "Vav", "the nail of devotion"},
	{17, valueobjects.SephiraBinah, valueobjects.SephiraTiphareth, "Zayin", "the dividing sword"},
	{18, valueobjects.SephiraBinah, valueobjects.SephiraGeburah, "Cheth", "the fenced field"},
	{19, valueobjects.SephiraChesed, valueobjects.SephiraGeburah, "Teth", "the serpent's coil"},
	{20, valueobjects.SephiraChesed, valueobjects.SephiraTiphareth, "Yod", "the hermit's hand"},
	{21, valueobjects.SephiraChesed, valueobjects.SephiraNetzach, "Kaph", "the turning wheel"},
	{22, valueobjects.SephiraGeburah, valueobjects.SephiraTiphareth, "Lamed", "the ox-goad of justice"},
	{23, valueobjects.SephiraGeburah, valueobjects.SephiraHod, "Mem", "the hanged reflection"},
	{24, valueobjects.SephiraTiphareth, valueobjects.SephiraNetzach, "Nun", "the water of change"},
	{25, valueobjects.SephiraTiphareth, valueobjects.SephiraYesod, "Samekh", "the tempering prop"},
	{26, valueobjects.SephiraTiphareth, valueobjects.SephiraHod, "Ayin", "the laughing eye"},
	{27, valueobjects.SephiraNetzach, valueobjects.SephiraHod, "Peh", "the struck tower"},
	{28, valueobjects.SephiraNetzach, valueobjects.SephiraYesod, "Tzaddi", "the fish-hook of stars"},
	{29, valueobjects.SephiraNetzach, valueobjects.SephiraMalkuth, "Qoph", "the moonlit road"},
	{30, valueobjects.SephiraHod, valueobjects.SephiraYesod, "Resh", "the collected sun"},
	{31, valueobjects.SephiraHod, valueobjects.SephiraMalkuth, "Shin", "the perpetual fire"},
	{32, valueobjects.SephiraYesod, valueobjects.SephiraMalkuth, "Tav", "the completed mark"},
}
