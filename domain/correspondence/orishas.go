package correspondence

import "github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"

// OrishaRecord is the full reference row for one Orisha: display data,
// canonical energy and trajectory, gateway correspondences, voice coloring,
// caminos, and default archetypes.
type OrishaRecord struct {
	Name       valueobjects.Orisha
	Code       string
	Glyph      string
	Label      string
	Energy     float64
	Class      valueobjects.EnergyClass
	Trajectory valueobjects.Trajectory

	// Gateway correspondences
	Element string
	Day     string
	Number  int
	Colors  []string
	Hint    string
	Insight string

	// Voice coloring
	VoiceQuality string
	VoicePattern string

	Caminos    []string
	Archetypes []string
}

var orishaRecords = map[valueobjects.Orisha]OrishaRecord{
	valueobjects.OrishaObatala: {
		Name:         valueobjects.OrishaObatala,
		Code:         "obatala",
		Glyph:        "☁",
		Label:        "King of the White Cloth",
		Energy:       -0.8,
		Class:        valueobjects.EnergyCool,
		Trajectory:   valueobjects.TrajectoryTranscendence,
		Element:      "air",
		Day:          "Sunday",
		Number:       8,
		Colors:       []string{"white"},
		Hint:         "A stillness that existed before the first argument.",
		Insight:      "Clarity comes when you stop defending the shape of your own patience.",
		VoiceQuality: "measured and unhurried",
		VoicePattern: "long pauses that land like verdicts",
		Caminos:      []string{"Ayáguna", "Ochanlá", "Obamoro"},
		Archetypes:   []string{"Elder", "Judge", "Peacemaker"},
	},
	valueobjects.OrishaEleggua: {
		Name:         valueobjects.OrishaEleggua,
		Code:         "eleggua",
		Glyph:        "⛭",
		Label:        "Opener of the Ways",
		Energy:       0.0,
		Class:        valueobjects.EnergyCrossroads,
		Trajectory:   valueobjects.TrajectoryEmergence,
		Element:      "crossroads",
		Day:          "Monday",
		Number:       3,
		Colors:       []string{"red", "black"},
		Hint:         "Every locked door remembers who built it.",
		Insight:      "The joke you refuse to laugh at is the door you refuse to open.",
		VoiceQuality: "quick and needling",
		VoicePattern: "questions answered with better questions",
		Caminos:      []string{"Eshu Laroye", "Eshu Alabwanna", "Eshu Añagui"},
		Archetypes:   []string{"Trickster", "Messenger", "Gatekeeper"},
	},
	valueobjects.OrishaYemaya: {
		Name:         valueobjects.OrishaYemaya,
		Code:         "yemaya",
		Glyph:        "☾",
		Label:        "Mother of the Living Waters",
		Energy:       -0.5,
		Class:        valueobjects.EnergyCool,
		Trajectory:   valueobjects.TrajectoryIntegration,
		Element:      "ocean",
		Day:          "Saturday",
		Number:       7,
		Colors:       []string{"blue", "white"},
		Hint:         "The tide that raised you still counts your breaths.",
		Insight:      "What you carry for others is heaviest when you pretend it floats.",
		VoiceQuality: "deep and enveloping",
		VoicePattern: "sentences that swell and recede like surf",
		Caminos:      []string{"Okuti", "Asesu", "Mayelewo"},
		Archetypes:   []string{"Great Mother", "Guardian", "Keeper of Secrets"},
	},
	valueobjects.OrishaOshun: {
		Name:         valueobjects.OrishaOshun,
		Code:         "oshun",
		Glyph:        "❂",
		Label:        "Lady of the Sweet River",
		Energy:       0.45,
		Class:        valueobjects.EnergyHot,
		Trajectory:   valueobjects.TrajectoryEmergence,
		Element:      "river",
		Day:          "Saturday",
		Number:       5,
		Colors:       []string{"yellow", "gold", "amber"},
		Hint:         "Honey remembers every hand that stirred it.",
		Insight:      "Being adored and being known are different rivers; choose where you bathe.",
		VoiceQuality: "warm and honeyed",
		VoicePattern: "laughter folded into the middle of serious things",
		Caminos:      []string{"Ibu Kole", "Ibu Añá", "Yeye Moro"},
		Archetypes:   []string{"Lover", "Artist", "Diplomat"},
	},
	valueobjects.OrishaShango: {
		Name:         valueobjects.OrishaShango,
		Code:         "shango",
		Glyph:        "⚡",
		Label:        "Lord of Thunder and Justice",
		Energy:       0.9,
		Class:        valueobjects.EnergyHot,
		Trajectory:   valueobjects.TrajectoryAscent,
		Element:      "fire",
		Day:          "Friday",
		Number:       6,
		Colors:       []string{"red", "white"},
		Hint:         "The drum was a heartbeat before it was a weapon.",
		Insight:      "Your anger is precise; aim it at the injustice, not the mirror.",
		VoiceQuality: "thunderous and commanding",
		VoicePattern: "percussive cadence that builds to a strike",
		Caminos:      []string{"Obakoso", "Alafin", "Obbará"},
		Archetypes:   []string{"Sovereign", "Warrior", "Judge of Fire"},
	},
	valueobjects.OrishaOya: {
		Name:         valueobjects.OrishaOya,
		Code:         "oya",
		Glyph:        "🜁",
		Label:        "Bearer of Nine Winds",
		Energy:       0.7,
		Class:        valueobjects.EnergyHot,
		Trajectory:   valueobjects.TrajectoryCrisis,
		Element:      "storm",
		Day:          "Wednesday",
		Number:       9,
		Colors:       []string{"maroon", "copper", "nine shades"},
		Hint:         "The wind that strips the tree is the wind that plants the seed.",
		Insight:      "You grieve by rearranging the world; let something stay broken long enough to teach you.",
		VoiceQuality: "fierce and gusting",
		VoicePattern: "sudden shifts of register, whisper to gale",
		Caminos:      []string{"Yansa Bi", "Oya Funke", "Oya De"},
		Archetypes:   []string{"Storm-Bringer", "Psychopomp", "Revolutionary"},
	},
	valueobjects.OrishaOgun: {
		Name:         valueobjects.OrishaOgun,
		Code:         "ogun",
		Glyph:        "⚒",
		Label:        "Master of Iron",
		Energy:       0.6,
		Class:        valueobjects.EnergyHot,
		Trajectory:   valueobjects.TrajectoryDescent,
		Element:      "iron",
		Day:          "Tuesday",
		Number:       7,
		Colors:       []string{"green", "black"},
		Hint:         "The forge does not apologize to the ore.",
		Insight:      "Work is your prayer; remember to look up from the anvil before the path grows over.",
		VoiceQuality: "low and abraded",
		VoicePattern: "short declaratives, hammer-blow spacing",
		Caminos:      []string{"Arere", "Alagbede", "Onile"},
		Archetypes:   []string{"Smith", "Pioneer", "Solitary Laborer"},
	},
	valueobjects.OrishaOchosi: {
		Name:         valueobjects.OrishaOchosi,
		Code:         "ochosi",
		Glyph:        "➶",
		Label:        "The Unerring Arrow",
		Energy:       -0.3,
		Class:        valueobjects.EnergyCool,
		Trajectory:   valueobjects.TrajectoryAscent,
		Element:      "forest",
		Day:          "Thursday",
		Number:       4,
		Colors:       []string{"blue", "amber"},
		Hint:         "An arrow loosed in justice never lands in silence.",
		Insight:      "You see the target clearly; the harder skill is choosing not to shoot.",
		VoiceQuality: "quiet and exact",
		VoicePattern: "economy of words, nothing wasted",
		Caminos:      []string{},
		Archetypes:   []string{"Hunter", "Tracker", "Witness"},
	},
	valueobjects.OrishaOrunmila: {
		Name:         valueobjects.OrishaOrunmila,
		Code:         "orunmila",
		Glyph:        "𓂀",
		Label:        "Witness of Destiny",
		Energy:       -0.6,
		Class:        valueobjects.EnergyCool,
		Trajectory:   valueobjects.TrajectoryIntegration,
		Element:      "divination",
		Day:          "Sunday",
		Number:       16,
		Colors:       []string{"green", "yellow"},
		Hint:         "The future is a text already written in a language you are still learning.",
		Insight:      "Knowing the pattern does not excuse you from living it.",
		VoiceQuality: "dry and oracular",
		VoicePattern: "proverbs offered instead of answers",
		Caminos:      []string{},
		Archetypes:   []string{"Sage", "Diviner", "Record-Keeper"},
	},
	valueobjects.OrishaAganju: {
		Name:         valueobjects.OrishaAganju,
		Code:         "aganju",
		Glyph:        "▲",
		Label:        "Heart of the Volcano",
		Energy:       0.8,
		Class:        valueobjects.EnergyHot,
		Trajectory:   valueobjects.TrajectoryAscent,
		Element:      "volcano",
		Day:          "Wednesday",
		Number:       9,
		Colors:       []string{"burgundy", "red", "brown"},
		Hint:         "Mountains are patience wearing the mask of rage.",
		Insight:      "Your strength frightens you more than it frightens anyone else; carry someone across the river anyway.",
		VoiceQuality: "vast and rumbling",
		VoicePattern: "slow build, seismic emphasis",
		Caminos:      []string{},
		Archetypes:   []string{"Titan", "Ferryman", "Wilderness Father"},
	},
	valueobjects.OrishaBabaluAye: {
		Name:         valueobjects.OrishaBabaluAye,
		Code:         "babalu-aye",
		Glyph:        "🜍",
		Label:        "Father of the Earth's Wounds",
		Energy:       -0.2,
		Class:        valueobjects.EnergyCrossroads,
		Trajectory:   valueobjects.TrajectoryDescent,
		Element:      "earth",
		Day:          "Friday",
		Number:       17,
		Colors:       []string{"purple", "burlap"},
		Hint:         "The scar is the body's way of writing history.",
		Insight:      "What you survived is not a debt; stop paying interest on it.",
		VoiceQuality: "rasped and compassionate",
		VoicePattern: "halting starts that end in unexpected tenderness",
		Caminos:      []string{"Asojano", "Ayanó"},
		Archetypes:   []string{"Wounded Healer", "Penitent", "Survivor"},
	},
}
