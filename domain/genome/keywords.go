package genome

import (
	"strings"
	"unicode"

	"github.com/coregx/ahocorasick"
	"github.com/orsinium-labs/stopwords"
)

// archetypeTriggers maps canonicalized trigger phrases found in a character
// bio to the archetype they evidence. Multiple phrases may point at the same
// archetype.
var archetypeTriggers = []struct {
	Phrase    string
	Archetype string
}{
	{"warrior", "Warrior"},
	{"battle", "Warrior"},
	{"soldier", "Warrior"},
	{"blade", "Warrior"},
	{"king", "Sovereign"},
	{"queen", "Sovereign"},
	{"crown", "Sovereign"},
	{"throne", "Sovereign"},
	{"healer", "Wounded Healer"},
	{"medicine", "Wounded Healer"},
	{"wound", "Wounded Healer"},
	{"plague", "Wounded Healer"},
	{"trickster", "Trickster"},
	{"riddle", "Trickster"},
	{"jester", "Trickster"},
	{"crossroads", "Trickster"},
	{"mother", "Great Mother"},
	{"nurture", "Great Mother"},
	{"midwife", "Great Mother"},
	{"sage", "Sage"},
	{"scholar", "Sage"},
	{"wisdom", "Sage"},
	{"oracle", "Sage"},
	{"lover", "Lover"},
	{"artist", "Lover"},
	{"poet", "Lover"},
	{"dancer", "Lover"},
	{"hunter", "Hunter"},
	{"tracker", "Hunter"},
	{"archer", "Hunter"},
	{"storm", "Revolutionary"},
	{"rebel", "Revolutionary"},
	{"revolution", "Revolutionary"},
	{"smith", "Smith"},
	{"forge", "Smith"},
	{"iron", "Smith"},
	{"builder", "Smith"},
}

// archetypeAutomaton scans bios for trigger phrases in one pass.
var archetypeAutomaton = func() *ahocorasick.Automaton {
	patterns := make([]string, len(archetypeTriggers))
	for i, t := range archetypeTriggers {
		patterns[i] = t.Phrase
	}
	ac, err := ahocorasick.NewBuilder().
		AddStrings(patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		panic("genome: building archetype automaton: " + err.Error())
	}
	return ac
}()

var englishStopwords = stopwords.MustGet("en")

// ArchetypesInBio returns the archetypes evidenced by trigger phrases in the
// bio, in first-appearance order, deduplicated.
func ArchetypesInBio(bio string) []string {
	if bio == "" {
		return nil
	}
	matches := archetypeAutomaton.FindAllOverlapping([]byte(canonicalize(bio)))
	seen := make(map[string]bool)
	var out []string
	for _, m := range matches {
		arch := archetypeTriggers[m.PatternID].Archetype
		if !seen[arch] {
			seen[arch] = true
			out = append(out, arch)
		}
	}
	return out
}

// ExtractKeywords pulls significant words from free text for narrative
// identity assembly: lowercased, stopwords dropped, short words dropped,
// first-appearance order, capped at max.
func ExtractKeywords(text string, max int) []string {
	if text == "" || max <= 0 {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, word := range strings.Fields(canonicalize(text)) {
		if len(word) <= 3 || seen[word] {
			continue
		}
		if englishStopwords.Contains(word) {
			continue
		}
		seen[word] = true
		out = append(out, word)
		if len(out) == max {
			break
		}
	}
	return out
}

// canonicalize lowercases and strips everything but letters, digits, and
// intra-word joiners, collapsing runs of separators to single spaces. The
// same form is used for pattern compilation and scanning.
func canonicalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '-':
			b.WriteRune(r)
			lastSpace = false
		case r > 127 && unicode.IsLetter(r):
			// Keep non-ASCII letters (orisha names carry diacritics).
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}
