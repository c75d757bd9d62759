package genome

import (
	"strings"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	"github.com/bomac1193/ophelian-os-sub001/domain/rng"
)

var fallbackArchetypes = []string{
	"Wanderer", "Orphan", "Seeker", "Keeper of Thresholds", "Unnamed Flame",
}

// valuePools feed core-value assembly when the bio offers no signal, keyed
// by the head orisha's energy class.
var valuePools = map[valueobjects.EnergyClass][]string{
	valueobjects.EnergyHot: {
		"justice", "courage", "momentum", "loyalty tested in fire", "honest anger",
	},
	valueobjects.EnergyCool: {
		"patience", "depth", "memory", "quiet endurance", "discernment",
	},
	valueobjects.EnergyCrossroads: {
		"possibility", "wit", "balance of debts", "open doors", "truth told sideways",
	},
}

// conflictPools are drawn against the trajectory rather than the orisha;
// what a character is moving through shapes what they wrestle with.
var conflictPools = map[valueobjects.Trajectory][]string{
	valueobjects.TrajectoryEmergence: {
		"the fear of being seen before being ready",
		"an inheritance not yet accepted",
	},
	valueobjects.TrajectoryIntegration: {
		"two loyalties that cannot both be kept",
		"the cost of making peace with an old self",
	},
	valueobjects.TrajectoryTranscendence: {
		"attachment to a world already outgrown",
		"compassion that looks like distance",
	},
	valueobjects.TrajectoryAscent: {
		"ambition mistaken for destiny",
		"allies left on the lower slopes",
	},
	valueobjects.TrajectoryDescent: {
		"pride that will not ask for help",
		"work used as a place to hide",
	},
	valueobjects.TrajectoryCrisis: {
		"a storm that must finish before anything can be rebuilt",
		"grief wearing the mask of fury",
	},
}

var themePool = []string{
	"debts repaid in unexpected coin",
	"the door that only opens once",
	"names that change what they name",
	"water remembering its course",
	"fire as teacher, not destroyer",
	"the price of second sight",
	"iron sharpened against iron",
	"a crown heavier than it looks",
}

// telosTemplates produce the one-line purpose statement. Placeholders are
// resolved inline here rather than through the synthesis engine; the telos
// belongs to generation, not presentation.
var telosTemplates = []string{
	"To carry the %s of %s until it becomes %s.",
	"To stand where %s meets %s and hold the line of %s.",
	"To turn %s into %s in the house of %s.",
}

// assembleNarrative builds the narrative identity block from character hints
// where present and seeded draws where not.
func (g *Generator) assembleNarrative(
	r *rng.RNG,
	opts Options,
	orec correspondence.OrishaRecord,
	primary valueobjects.Sephira,
	trajectory valueobjects.Trajectory,
) entities.NarrativeIdentity {
	// Core values: persona tags first, bio keywords next, class pool to
	// fill the remainder.
	var values []string
	seen := make(map[string]bool)
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v != "" && !seen[v] && len(values) < 4 {
			seen[v] = true
			values = append(values, v)
		}
	}
	for _, t := range opts.PersonaTags {
		add(t)
	}
	for _, k := range ExtractKeywords(opts.Bio, g.cfg.MaxKeywordsFromBio) {
		add(k)
	}
	pool := valuePools[orec.Class]
	for len(values) < 2 {
		add(rng.Pick(r, pool))
	}

	conflicts := make([]string, 0, 2)
	conflictPool := conflictPools[trajectory]
	conflicts = append(conflicts, rng.Pick(r, conflictPool))

	themes := rng.Sample(r, themePool, 2)

	srec, err := correspondence.GetSephira(primary)
	title := "the hidden place"
	if err == nil {
		title = srec.Title
	}

	template := rng.Pick(r, telosTemplates)
	telos := sprintfTelos(template, orec.Label, title, rng.Pick(r, themePool))

	return entities.NarrativeIdentity{
		CoreValues:       values,
		CentralConflicts: conflicts,
		NarrativeThemes:  themes,
		Telos:            telos,
	}
}

func sprintfTelos(template, a, b, c string) string {
	out := template
	for _, arg := range []string{a, b, c} {
		out = strings.Replace(out, "%s", arg, 1)
	}
	return out
}

// Influence is the compact triple content-generation collaborators consume
// for display and prompt construction.
type Influence struct {
	Orisha  string `json:"orisha"`
	Sephira string `json:"sephira"`
	LClass  string `json:"lClass"`
}

// InfluenceOf projects a genome to its influence triple. The lineage class
// is the head orisha's energy class.
func InfluenceOf(g *entities.Genome) Influence {
	head := g.OrishaConfiguration().HeadOrisha
	class := valueobjects.EnergyCrossroads
	if rec, err := correspondence.GetOrisha(head); err == nil {
		class = rec.Class
	}
	return Influence{
		Orisha:  head.String(),
		Sephira: g.KabbalisticPosition().PrimarySephira.String(),
		LClass:  string(class),
	}
}
