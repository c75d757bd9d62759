// Package genome derives complete character genomes from optional
// constraints and a seed. Given the same seed and the same options the
// generator produces the same genome on every run and every platform: all
// stochastic choices route through one seeded source, draws happen in a
// fixed documented order, and nothing reads the clock, the environment, or a
// map in iteration order.
package genome

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"sort"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	"github.com/bomac1193/ophelian-os-sub001/domain/rng"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// Generator derives genomes. It is stateless and safe for concurrent use;
// each call owns its own RNG.
type Generator struct {
	cfg *config.DomainConfig
}

// NewGenerator creates a generator with the given domain rules.
func NewGenerator(cfg *config.DomainConfig) *Generator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &Generator{cfg: cfg}
}

// Generate derives a complete genome from the options.
//
// The draw order below is fixed and is part of the determinism contract:
// head orisha, camino, sephira, daath relationship, qliphothic shadow,
// trajectory, individuation, shadow integration, secondaries, voice,
// narrative identity. Reordering draws changes every genome ever generated.
func (g *Generator) Generate(opts Options) (*entities.Genome, error) {
	res, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	// Step 1: resolve the seed. An absent seed is drawn from a
	// non-deterministic source and recorded so the result can be
	// reproduced later.
	var seedValue int64
	if opts.Seed != nil {
		seedValue = *opts.Seed
	} else {
		seedValue = drawEntropySeed()
	}
	seed := valueobjects.NewSeed(seedValue)

	// Step 2: one RNG per call.
	r := rng.New(seedValue)

	// Step 3: head orisha.
	head := res.forceOrisha
	if !res.hasOrisha {
		head = drawOrisha(r, opts.Weights)
	}
	orec, err := correspondence.GetOrisha(head)
	if err != nil {
		return nil, err
	}

	// Camino, when the orisha has named sub-aspects.
	camino := ""
	if len(orec.Caminos) > 0 && r.Chance(g.cfg.CaminoChance) {
		camino = rng.Pick(r, orec.Caminos)
	}

	// Step 4: primary sephira. Prefer the orisha's Tree position; fall
	// back to a uniform draw only when the orisha stands outside the Tree.
	var primary valueobjects.Sephira
	switch {
	case res.hasSephira:
		primary = res.forceSephira
	default:
		if mapped, ok := correspondence.SephiraForOrisha(head); ok {
			primary = mapped
		} else {
			primary = rng.Pick(r, valueobjects.AllSephirot())
		}
	}

	// Step 5: pillar is derived, never drawn.
	pillar, err := correspondence.PillarOf(primary)
	if err != nil {
		return nil, err
	}

	daath := rng.Pick(r, valueobjects.AllDaathRelationships())

	var shadow valueobjects.Qliphoth
	if r.Chance(g.cfg.QliphothicShadowChance) {
		if q, ok := correspondence.QliphothFor(primary); ok {
			shadow = q
		}
	}

	// Step 6: hot/cool axis. Caller bias blends into the canonical
	// energy; the orisha's character is never fully erased.
	axisValue := orec.Energy
	if opts.HotCoolBias != nil {
		w := g.cfg.BiasBlendWeight
		axisValue = (1-w)*orec.Energy + w*(*opts.HotCoolBias)
	}
	axis := valueobjects.ClampedHotCoolAxis(axisValue)

	// Step 7: trajectory. A preferred trajectory is honored only when it
	// is valid for the resolved pairing; otherwise the canonical one.
	trajectory := orec.Trajectory
	if res.hasTraj && trajectoryAllowed(res.trajectory, orec) {
		trajectory = res.trajectory
	}

	individuation, err := valueobjects.NewUnitInterval(r.InRange(0.1, 0.9))
	if err != nil {
		return nil, pkgerrors.NewInternalError("individuation draw out of range").WithCause(err)
	}
	shadowInt, err := valueobjects.NewUnitInterval(r.InRange(0.1, 0.9))
	if err != nil {
		return nil, pkgerrors.NewInternalError("shadow integration draw out of range").WithCause(err)
	}

	// Step 8: secondaries, drawn without replacement from the
	// compatibility list, strengths inside the bounded sub-range so no
	// secondary approaches head-orisha dominance.
	secondaries, err := g.drawSecondaries(r, head)
	if err != nil {
		return nil, err
	}

	// Step 9: voice from orisha energy class crossed with declared
	// gender; ties inside a cell break by RNG, not insertion order.
	voiceCandidates, err := correspondence.VoiceTypesFor(res.gender, orec.Class)
	if err != nil {
		return nil, err
	}
	voice := valueobjects.VoiceSignature{
		Type:    rng.Pick(r, voiceCandidates),
		Quality: orec.VoiceQuality,
		Pattern: orec.VoicePattern,
	}

	// Step 10: narrative identity from character-derived signal, with
	// RNG-driven fallback when no signal is present.
	archetypes := g.assembleArchetypes(r, opts, orec)
	narrative := g.assembleNarrative(r, opts, orec, primary, trajectory)

	psyche := entities.PsychologicalState{
		HotCoolAxis:        axis,
		Trajectory:         trajectory,
		IndividuationLevel: individuation,
		ShadowIntegration:  shadowInt,
		ActiveArchetypes:   archetypes,
	}

	// Step 11: identity stamp.
	var id valueobjects.GenomeID
	if opts.ID != "" {
		id, err = valueobjects.NewGenomeIDFromString(opts.ID)
		if err != nil {
			return nil, pkgerrors.NewValidationError("id", err.Error())
		}
	} else {
		id = valueobjects.DeriveGenomeID(seedValue, opts.Name)
	}

	return entities.NewGenome(
		id,
		opts.Name,
		seed,
		opts.Tags,
		entities.OrishaConfiguration{
			HeadOrisha:          head,
			Camino:              camino,
			SecondaryInfluences: secondaries,
		},
		entities.KabbalisticPosition{
			PrimarySephira:    primary,
			Pillar:            pillar,
			DaathRelationship: daath,
			QliphothicShadow:  shadow,
		},
		psyche,
		voice,
		narrative,
	)
}

// Reroll re-runs the algorithm with an explicit seed and fresh overrides.
// Two rerolls with identical seed and options match each other and match
// Generate with the same inputs.
func (g *Generator) Reroll(seed int64, opts Options) (*entities.Genome, error) {
	opts.Seed = &seed
	return g.Generate(opts)
}

// drawEntropySeed pulls a seed from the operating system entropy source.
// This is the single non-deterministic draw in the package, and only for
// callers that declined to supply a seed.
func drawEntropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// Entropy exhaustion is not survivable in any useful way.
		panic("genome: reading entropy source: " + err.Error())
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}

// drawOrisha picks a head orisha, uniformly or by the configured weighting
// policy. Weights iterate over the canonical slice, never the map, so the
// draw stays deterministic.
func drawOrisha(r *rng.RNG, weights map[string]float64) valueobjects.Orisha {
	all := valueobjects.AllOrishas()
	if len(weights) == 0 {
		return rng.Pick(r, all)
	}
	total := 0.0
	cumulative := make([]float64, len(all))
	for i, o := range all {
		w, ok := weights[o.String()]
		if !ok || w < 0 {
			w = 1
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return rng.Pick(r, all)
	}
	target := r.Float64() * total
	for i, c := range cumulative {
		if target < c {
			return all[i]
		}
	}
	return all[len(all)-1]
}

// trajectoryAllowed reports whether a preferred trajectory fits the resolved
// orisha: its canonical arc always fits, and beyond that the orisha's energy
// class bounds which arcs are plausible.
func trajectoryAllowed(t valueobjects.Trajectory, orec correspondence.OrishaRecord) bool {
	if t == orec.Trajectory {
		return true
	}
	switch orec.Class {
	case valueobjects.EnergyHot:
		return t == valueobjects.TrajectoryEmergence ||
			t == valueobjects.TrajectoryAscent ||
			t == valueobjects.TrajectoryDescent ||
			t == valueobjects.TrajectoryCrisis
	case valueobjects.EnergyCool:
		return t == valueobjects.TrajectoryEmergence ||
			t == valueobjects.TrajectoryIntegration ||
			t == valueobjects.TrajectoryTranscendence ||
			t == valueobjects.TrajectoryDescent
	default:
		// Crossroads energy accommodates every arc.
		return true
	}
}

// drawSecondaries samples 1-2 compatible orishas without replacement and
// assigns each a bounded strength, returned strongest first.
func (g *Generator) drawSecondaries(r *rng.RNG, head valueobjects.Orisha) ([]valueobjects.SecondaryInfluence, error) {
	compat, err := correspondence.CompatibleOrishas(head)
	if err != nil {
		return nil, err
	}
	if len(compat) == 0 {
		return []valueobjects.SecondaryInfluence{}, nil
	}

	span := g.cfg.SecondaryInfluenceMax - g.cfg.SecondaryInfluenceMin + 1
	count := g.cfg.SecondaryInfluenceMin + r.Intn(span)
	picked := rng.Sample(r, compat, count)

	out := make([]valueobjects.SecondaryInfluence, len(picked))
	for i, o := range picked {
		out[i] = valueobjects.SecondaryInfluence{
			Orisha:   o,
			Strength: r.InRange(g.cfg.SecondaryStrengthFloor, g.cfg.SecondaryStrengthCeil),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	return out, nil
}

// assembleArchetypes merges bio-evidenced archetypes, the prior archetype
// hint, and the orisha's defaults, capped by configuration. The RNG fallback
// fires only when nothing else produced a candidate.
func (g *Generator) assembleArchetypes(r *rng.RNG, opts Options, orec correspondence.OrishaRecord) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(a string) {
		if a != "" && !seen[a] && len(out) < g.cfg.MaxArchetypesPerGenome {
			seen[a] = true
			out = append(out, a)
		}
	}

	add(opts.PriorArchetype)
	for _, a := range ArchetypesInBio(opts.Bio) {
		add(a)
	}
	for _, a := range orec.Archetypes {
		add(a)
	}
	if len(out) == 0 {
		add(rng.Pick(r, fallbackArchetypes))
	}
	return out
}
