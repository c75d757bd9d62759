package entities

import (
	"time"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	"github.com/bomac1193/ophelian-os-sub001/domain/events"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// SchemaVersion stamps every genome this core produces.
const SchemaVersion = "2.0"

// OrishaConfiguration is the primary energy block: head Orisha, optional
// camino, and the ordered secondary influences.
type OrishaConfiguration struct {
	HeadOrisha          valueobjects.Orisha               `json:"headOrisha"`
	Camino              string                            `json:"camino,omitempty"`
	SecondaryInfluences []valueobjects.SecondaryInfluence `json:"secondaryInfluences"`
}

// KabbalisticPosition locates the genome on the Tree. Pillar is derived from
// the primary Sephira through the correspondence store, never set on its own.
type KabbalisticPosition struct {
	PrimarySephira    valueobjects.Sephira           `json:"primarySephira"`
	Pillar            valueobjects.Pillar            `json:"pillar"`
	DaathRelationship valueobjects.DaathRelationship `json:"daathRelationship"`
	QliphothicShadow  valueobjects.Qliphoth          `json:"qliphothicShadow,omitempty"`
}

// PsychologicalState is the axes-and-arc block.
type PsychologicalState struct {
	HotCoolAxis        valueobjects.HotCoolAxis  `json:"hotCoolAxis"`
	Trajectory         valueobjects.Trajectory   `json:"trajectory"`
	IndividuationLevel valueobjects.UnitInterval `json:"individuationLevel"`
	ShadowIntegration  valueobjects.UnitInterval `json:"shadowIntegration"`
	ActiveArchetypes   []string                  `json:"activeArchetypes"`
}

// NarrativeIdentity carries the prose-facing identity material.
type NarrativeIdentity struct {
	CoreValues       []string `json:"coreValues"`
	CentralConflicts []string `json:"centralConflicts"`
	NarrativeThemes  []string `json:"narrativeThemes"`
	Telos            string   `json:"telos"`
}

// Genome is the central artifact: a character's full symbolic and
// psychological identity. It is a rich domain model with encapsulated
// business logic; downstream consumers mutate it only through ApplyPatch.
type Genome struct {
	id            valueobjects.GenomeID
	name          string
	schemaVersion string
	seed          valueobjects.Seed
	tags          []string

	orishaConfiguration OrishaConfiguration
	kabbalisticPosition KabbalisticPosition
	psychologicalState  PsychologicalState
	multiModalSignature valueobjects.VoiceSignature
	narrativeIdentity   NarrativeIdentity

	// Free-form auxiliary blocks downstream consumers may rewrite without
	// re-deriving the rest of the genome.
	invariantMarkers map[string]interface{}
	evolutionRules   map[string]interface{}

	createdAt time.Time
	updatedAt time.Time
	version   int

	// Domain events that occurred during this aggregate's lifetime
	events []events.DomainEvent
}

// NewGenome creates a freshly generated genome with full invariant checks.
func NewGenome(
	id valueobjects.GenomeID,
	name string,
	seed valueobjects.Seed,
	tags []string,
	orishaCfg OrishaConfiguration,
	position KabbalisticPosition,
	psyche PsychologicalState,
	voice valueobjects.VoiceSignature,
	narrative NarrativeIdentity,
) (*Genome, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("id", "genome ID cannot be empty")
	}
	if err := checkBlocks(orishaCfg, position, psyche); err != nil {
		return nil, err
	}

	// Pillar is derived, never trusted from the caller.
	pillar, err := correspondence.PillarOf(position.PrimarySephira)
	if err != nil {
		return nil, err
	}
	position.Pillar = pillar

	now := time.Now()
	g := &Genome{
		id:                  id,
		name:                name,
		schemaVersion:       SchemaVersion,
		seed:                seed,
		tags:                copyStrings(tags),
		orishaConfiguration: orishaCfg,
		kabbalisticPosition: position,
		psychologicalState:  psyche,
		multiModalSignature: voice,
		narrativeIdentity:   narrative,
		invariantMarkers:    map[string]interface{}{},
		evolutionRules:      map[string]interface{}{},
		createdAt:           now,
		updatedAt:           now,
		version:             1,
		events:              []events.DomainEvent{},
	}

	g.addEvent(events.NewGenomeGenerated(id, name, orishaCfg.HeadOrisha, position.PrimarySephira, seed, now))

	return g, nil
}

// ReconstructGenome rebuilds a genome from persisted fields. The pillar is
// re-derived from the current correspondence table: when the table has been
// revised since the row was written, the table wins for derived designations
// while the stored Sephira code is left untouched.
func ReconstructGenome(
	id valueobjects.GenomeID,
	name string,
	schemaVersion string,
	seed valueobjects.Seed,
	tags []string,
	orishaCfg OrishaConfiguration,
	position KabbalisticPosition,
	psyche PsychologicalState,
	voice valueobjects.VoiceSignature,
	narrative NarrativeIdentity,
	invariantMarkers map[string]interface{},
	evolutionRules map[string]interface{},
	createdAt, updatedAt time.Time,
	version int,
) (*Genome, error) {
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("id", "genome ID cannot be empty")
	}
	if err := checkBlocks(orishaCfg, position, psyche); err != nil {
		return nil, err
	}

	pillar, err := correspondence.PillarOf(position.PrimarySephira)
	if err != nil {
		return nil, err
	}
	position.Pillar = pillar

	if schemaVersion == "" {
		schemaVersion = SchemaVersion
	}
	if invariantMarkers == nil {
		invariantMarkers = map[string]interface{}{}
	}
	if evolutionRules == nil {
		evolutionRules = map[string]interface{}{}
	}
	if version < 1 {
		version = 1
	}

	return &Genome{
		id:                  id,
		name:                name,
		schemaVersion:       schemaVersion,
		seed:                seed,
		tags:                copyStrings(tags),
		orishaConfiguration: orishaCfg,
		kabbalisticPosition: position,
		psychologicalState:  psyche,
		multiModalSignature: voice,
		narrativeIdentity:   narrative,
		invariantMarkers:    invariantMarkers,
		evolutionRules:      evolutionRules,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		version:             version,
		events:              []events.DomainEvent{},
	}, nil
}

// checkBlocks enforces the cross-field invariants shared by both
// constructors.
func checkBlocks(orishaCfg OrishaConfiguration, position KabbalisticPosition, psyche PsychologicalState) error {
	if !orishaCfg.HeadOrisha.IsValid() {
		return pkgerrors.NewValidationError("orishaConfiguration.headOrisha",
			"unknown orisha "+orishaCfg.HeadOrisha.String())
	}
	for _, inf := range orishaCfg.SecondaryInfluences {
		if !inf.Orisha.IsValid() {
			return pkgerrors.NewValidationError("orishaConfiguration.secondaryInfluences",
				"unknown orisha "+inf.Orisha.String())
		}
		if inf.Orisha == orishaCfg.HeadOrisha {
			return pkgerrors.NewValidationError("orishaConfiguration.secondaryInfluences",
				"secondary influences cannot contain the head orisha")
		}
		if inf.Strength <= 0 || inf.Strength >= 1 {
			return pkgerrors.NewValidationError("orishaConfiguration.secondaryInfluences",
				"secondary strength must lie strictly inside (0,1)")
		}
	}
	if !position.PrimarySephira.IsValid() {
		return pkgerrors.NewValidationError("kabbalisticPosition.primarySephira",
			"unknown sephira "+position.PrimarySephira.String())
	}
	if !position.DaathRelationship.IsValid() {
		return pkgerrors.NewValidationError("kabbalisticPosition.daathRelationship",
			"unknown daath relationship "+string(position.DaathRelationship))
	}
	if !psyche.Trajectory.IsValid() {
		return pkgerrors.NewValidationError("psychologicalState.trajectory",
			"unknown trajectory "+psyche.Trajectory.String())
	}
	return nil
}

// ID returns the genome's unique identifier
func (g *Genome) ID() valueobjects.GenomeID {
	return g.id
}

// Name returns the genome's display name
func (g *Genome) Name() string {
	return g.name
}

// SchemaVersion returns the schema the genome was written against
func (g *Genome) SchemaVersion() string {
	return g.schemaVersion
}

// Seed returns the seed the genome was derived from, if recorded
func (g *Genome) Seed() valueobjects.Seed {
	return g.seed
}

// Tags returns the genome's tags in display order
func (g *Genome) Tags() []string {
	return copyStrings(g.tags)
}

// OrishaConfiguration returns the primary energy block
func (g *Genome) OrishaConfiguration() OrishaConfiguration {
	cfg := g.orishaConfiguration
	cfg.SecondaryInfluences = append([]valueobjects.SecondaryInfluence(nil), cfg.SecondaryInfluences...)
	return cfg
}

// KabbalisticPosition returns the Tree position block
func (g *Genome) KabbalisticPosition() KabbalisticPosition {
	return g.kabbalisticPosition
}

// PsychologicalState returns the axes-and-arc block
func (g *Genome) PsychologicalState() PsychologicalState {
	st := g.psychologicalState
	st.ActiveArchetypes = copyStrings(st.ActiveArchetypes)
	return st
}

// MultiModalSignature returns the derived voice block
func (g *Genome) MultiModalSignature() valueobjects.VoiceSignature {
	return g.multiModalSignature
}

// NarrativeIdentity returns the prose-facing identity block
func (g *Genome) NarrativeIdentity() NarrativeIdentity {
	n := g.narrativeIdentity
	n.CoreValues = copyStrings(n.CoreValues)
	n.CentralConflicts = copyStrings(n.CentralConflicts)
	n.NarrativeThemes = copyStrings(n.NarrativeThemes)
	return n
}

// InvariantMarkers returns the free-form marker block
func (g *Genome) InvariantMarkers() map[string]interface{} {
	return copyAnyMap(g.invariantMarkers)
}

// EvolutionRules returns the free-form evolution block
func (g *Genome) EvolutionRules() map[string]interface{} {
	return copyAnyMap(g.evolutionRules)
}

// CreatedAt returns when the genome was created
func (g *Genome) CreatedAt() time.Time {
	return g.createdAt
}

// UpdatedAt returns when the genome was last updated
func (g *Genome) UpdatedAt() time.Time {
	return g.updatedAt
}

// Version returns the genome's version for optimistic locking
func (g *Genome) Version() int {
	return g.version
}

// GenomePatch names exactly the externally mutable fields. A nil pointer
// leaves the field untouched; anything not on this struct is immutable from
// outside the generator.
type GenomePatch struct {
	Name                *string
	Tags                *[]string
	OrishaConfiguration *OrishaConfiguration
	KabbalisticPosition *KabbalisticPosition
	PsychologicalState  *PsychologicalState
	MultiModalSignature *valueobjects.VoiceSignature
	NarrativeIdentity   *NarrativeIdentity
	InvariantMarkers    *map[string]interface{}
	EvolutionRules      *map[string]interface{}
}

// IsEmpty reports whether the patch touches nothing.
func (p GenomePatch) IsEmpty() bool {
	return p.Name == nil && p.Tags == nil &&
		p.OrishaConfiguration == nil && p.KabbalisticPosition == nil &&
		p.PsychologicalState == nil && p.MultiModalSignature == nil &&
		p.NarrativeIdentity == nil && p.InvariantMarkers == nil &&
		p.EvolutionRules == nil
}

// ApplyPatch updates the mutable fields named by the patch. Structured
// blocks are revalidated as a whole; the pillar is re-derived whenever the
// kabbalistic block changes.
func (g *Genome) ApplyPatch(patch GenomePatch, cfg *config.DomainConfig) error {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if patch.IsEmpty() {
		return nil
	}

	// Validate against a scratch copy first so a failed patch leaves the
	// genome untouched.
	orishaCfg := g.orishaConfiguration
	position := g.kabbalisticPosition
	psyche := g.psychologicalState
	if patch.OrishaConfiguration != nil {
		orishaCfg = *patch.OrishaConfiguration
	}
	if patch.KabbalisticPosition != nil {
		position = *patch.KabbalisticPosition
	}
	if patch.PsychologicalState != nil {
		psyche = *patch.PsychologicalState
	}
	if err := checkBlocks(orishaCfg, position, psyche); err != nil {
		return err
	}
	pillar, err := correspondence.PillarOf(position.PrimarySephira)
	if err != nil {
		return err
	}
	position.Pillar = pillar

	if patch.Name != nil {
		name := *patch.Name
		if len(name) > cfg.MaxNameLength {
			return pkgerrors.NewValidationError("name", "name exceeds maximum length")
		}
		if name == "" && !cfg.AllowEmptyName {
			return pkgerrors.NewValidationError("name", "name cannot be empty")
		}
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if len(tags) > cfg.MaxTagsPerGenome {
			return pkgerrors.NewValidationError("tags", "too many tags")
		}
		for _, t := range tags {
			if t == "" || len(t) > cfg.MaxTagLength {
				return pkgerrors.NewValidationError("tags", "tag length out of bounds")
			}
		}
	}

	// All checks passed; apply the whole patch.
	var touched []string
	if patch.Name != nil {
		g.name = *patch.Name
		touched = append(touched, "name")
	}
	if patch.Tags != nil {
		g.tags = copyStrings(*patch.Tags)
		touched = append(touched, "tags")
	}
	if patch.OrishaConfiguration != nil {
		g.orishaConfiguration = orishaCfg
		touched = append(touched, "orishaConfiguration")
	}
	if patch.KabbalisticPosition != nil {
		g.kabbalisticPosition = position
		touched = append(touched, "kabbalisticPosition")
	}
	if patch.PsychologicalState != nil {
		g.psychologicalState = psyche
		touched = append(touched, "psychologicalState")
	}
	if patch.MultiModalSignature != nil {
		g.multiModalSignature = *patch.MultiModalSignature
		touched = append(touched, "multiModalSignature")
	}
	if patch.NarrativeIdentity != nil {
		g.narrativeIdentity = *patch.NarrativeIdentity
		touched = append(touched, "narrativeIdentity")
	}
	if patch.InvariantMarkers != nil {
		g.invariantMarkers = copyAnyMap(*patch.InvariantMarkers)
		touched = append(touched, "invariantMarkers")
	}
	if patch.EvolutionRules != nil {
		g.evolutionRules = copyAnyMap(*patch.EvolutionRules)
		touched = append(touched, "evolutionRules")
	}

	g.updatedAt = time.Now()
	g.version++

	g.addEvent(events.NewGenomePatched(g.id, touched, g.updatedAt))

	return nil
}

// GetUncommittedEvents returns all uncommitted domain events
func (g *Genome) GetUncommittedEvents() []events.DomainEvent {
	return g.events
}

// MarkEventsAsCommitted clears the uncommitted events
func (g *Genome) MarkEventsAsCommitted() {
	g.events = []events.DomainEvent{}
}

// addEvent adds a domain event to the uncommitted list
func (g *Genome) addEvent(event events.DomainEvent) {
	g.events = append(g.events, event)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyAnyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
