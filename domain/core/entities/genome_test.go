package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
)

func validBlocks(t *testing.T) (OrishaConfiguration, KabbalisticPosition, PsychologicalState) {
	t.Helper()
	ind, err := valueobjects.NewUnitInterval(0.5)
	require.NoError(t, err)

	return OrishaConfiguration{
			HeadOrisha: valueobjects.OrishaShango,
			SecondaryInfluences: []valueobjects.SecondaryInfluence{
				{Orisha: valueobjects.OrishaOya, Strength: 0.4},
			},
		},
		KabbalisticPosition{
			PrimarySephira:    valueobjects.SephiraGeburah,
			DaathRelationship: valueobjects.DaathSeeking,
		},
		PsychologicalState{
			HotCoolAxis:        valueobjects.ClampedHotCoolAxis(0.9),
			Trajectory:         valueobjects.TrajectoryAscent,
			IndividuationLevel: ind,
			ShadowIntegration:  ind,
		}
}

func newTestGenome(t *testing.T) *Genome {
	t.Helper()
	orishaCfg, position, psyche := validBlocks(t)
	g, err := NewGenome(
		valueobjects.DeriveGenomeID(42, "Ada"),
		"Ada",
		valueobjects.NewSeed(42),
		[]string{"pilot"},
		orishaCfg, position, psyche,
		valueobjects.VoiceSignature{Type: "storm-bright mezzo"},
		NarrativeIdentity{Telos: "To burn clean."},
	)
	require.NoError(t, err)
	return g
}

func TestNewGenomeDerivesPillar(t *testing.T) {
	g := newTestGenome(t)

	assert.Equal(t, valueobjects.PillarSeverity, g.KabbalisticPosition().Pillar)
	assert.Equal(t, SchemaVersion, g.SchemaVersion())
	assert.Equal(t, 1, g.Version())
	assert.Len(t, g.GetUncommittedEvents(), 1)
}

func TestNewGenomeRejectsZeroID(t *testing.T) {
	orishaCfg, position, psyche := validBlocks(t)
	_, err := NewGenome(valueobjects.GenomeID{}, "Ada", valueobjects.NewSeed(1), nil,
		orishaCfg, position, psyche, valueobjects.VoiceSignature{}, NarrativeIdentity{})
	assert.Error(t, err)
}

func TestNewGenomeRejectsHeadAsSecondary(t *testing.T) {
	orishaCfg, position, psyche := validBlocks(t)
	orishaCfg.SecondaryInfluences = []valueobjects.SecondaryInfluence{
		{Orisha: valueobjects.OrishaShango, Strength: 0.4},
	}
	_, err := NewGenome(valueobjects.DeriveGenomeID(1, ""), "", valueobjects.NewSeed(1), nil,
		orishaCfg, position, psyche, valueobjects.VoiceSignature{}, NarrativeIdentity{})
	assert.Error(t, err)
}

func TestNewGenomeRejectsOutOfRangeStrength(t *testing.T) {
	for _, strength := range []float64{0, 1, -0.2, 1.5} {
		orishaCfg, position, psyche := validBlocks(t)
		orishaCfg.SecondaryInfluences = []valueobjects.SecondaryInfluence{
			{Orisha: valueobjects.OrishaOya, Strength: strength},
		}
		_, err := NewGenome(valueobjects.DeriveGenomeID(1, ""), "", valueobjects.NewSeed(1), nil,
			orishaCfg, position, psyche, valueobjects.VoiceSignature{}, NarrativeIdentity{})
		assert.Error(t, err, "strength %v", strength)
	}
}

func TestNewGenomeRejectsInvalidEnums(t *testing.T) {
	orishaCfg, position, psyche := validBlocks(t)
	position.DaathRelationship = "orbiting"
	_, err := NewGenome(valueobjects.DeriveGenomeID(1, ""), "", valueobjects.NewSeed(1), nil,
		orishaCfg, position, psyche, valueobjects.VoiceSignature{}, NarrativeIdentity{})
	assert.Error(t, err)

	orishaCfg, position, psyche = validBlocks(t)
	psyche.Trajectory = "sideways"
	_, err = NewGenome(valueobjects.DeriveGenomeID(1, ""), "", valueobjects.NewSeed(1), nil,
		orishaCfg, position, psyche, valueobjects.VoiceSignature{}, NarrativeIdentity{})
	assert.Error(t, err)
}

func TestApplyPatchBumpsVersion(t *testing.T) {
	g := newTestGenome(t)
	g.MarkEventsAsCommitted()

	name := "Ada Prime"
	tags := []string{"pilot", "veteran"}
	err := g.ApplyPatch(GenomePatch{Name: &name, Tags: &tags}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ada Prime", g.Name())
	assert.Equal(t, tags, g.Tags())
	assert.Equal(t, 2, g.Version())
	assert.Len(t, g.GetUncommittedEvents(), 1)
}

func TestApplyPatchEmptyIsNoOp(t *testing.T) {
	g := newTestGenome(t)
	g.MarkEventsAsCommitted()

	require.NoError(t, g.ApplyPatch(GenomePatch{}, nil))
	assert.Equal(t, 1, g.Version())
	assert.Empty(t, g.GetUncommittedEvents())
}

func TestApplyPatchRederivesPillar(t *testing.T) {
	g := newTestGenome(t)

	position := g.KabbalisticPosition()
	position.PrimarySephira = valueobjects.SephiraChesed
	position.Pillar = "" // callers never control the pillar
	err := g.ApplyPatch(GenomePatch{KabbalisticPosition: &position}, nil)
	require.NoError(t, err)

	assert.Equal(t, valueobjects.SephiraChesed, g.KabbalisticPosition().PrimarySephira)
	assert.Equal(t, valueobjects.PillarMercy, g.KabbalisticPosition().Pillar)
}

func TestApplyPatchRejectionLeavesGenomeUntouched(t *testing.T) {
	g := newTestGenome(t)
	before := g.OrishaConfiguration()
	beforeVersion := g.Version()

	bad := OrishaConfiguration{HeadOrisha: "Zeus"}
	err := g.ApplyPatch(GenomePatch{OrishaConfiguration: &bad}, nil)
	require.Error(t, err)

	assert.Equal(t, before, g.OrishaConfiguration())
	assert.Equal(t, beforeVersion, g.Version())
}

func TestApplyPatchPartialFailureIsAtomic(t *testing.T) {
	g := newTestGenome(t)
	beforeVersion := g.Version()

	// A valid name paired with an invalid tag must not land the rename.
	name := "Renamed"
	badTags := []string{""}
	err := g.ApplyPatch(GenomePatch{Name: &name, Tags: &badTags}, nil)
	require.Error(t, err)

	assert.Equal(t, "Ada", g.Name())
	assert.Equal(t, []string{"pilot"}, g.Tags())
	assert.Equal(t, beforeVersion, g.Version())

	// Same for valid tags paired with an invalid name.
	tags := []string{"rebel"}
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	tooLong := string(long)
	err = g.ApplyPatch(GenomePatch{Name: &tooLong, Tags: &tags}, nil)
	require.Error(t, err)

	assert.Equal(t, []string{"pilot"}, g.Tags())
	assert.Equal(t, beforeVersion, g.Version())
}

func TestApplyPatchValidatesNameAndTags(t *testing.T) {
	g := newTestGenome(t)

	empty := ""
	assert.Error(t, g.ApplyPatch(GenomePatch{Name: &empty}, config.ProductionDomainConfig()))

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	tooLong := string(long)
	assert.Error(t, g.ApplyPatch(GenomePatch{Name: &tooLong}, nil))

	badTags := []string{""}
	assert.Error(t, g.ApplyPatch(GenomePatch{Tags: &badTags}, nil))
}

func TestTagsReturnsCopy(t *testing.T) {
	g := newTestGenome(t)

	tags := g.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{"pilot"}, g.Tags())
}

func TestReconstructGenomeDefaults(t *testing.T) {
	orishaCfg, position, psyche := validBlocks(t)
	g, err := ReconstructGenome(
		valueobjects.DeriveGenomeID(7, "Obi"),
		"Obi", "", valueobjects.NewSeed(7), nil,
		orishaCfg, position, psyche,
		valueobjects.VoiceSignature{}, NarrativeIdentity{},
		nil, nil,
		time.Now(), time.Now(), 0,
	)
	require.NoError(t, err)

	assert.Equal(t, SchemaVersion, g.SchemaVersion())
	assert.Equal(t, 1, g.Version())
	assert.NotNil(t, g.InvariantMarkers())
	assert.Empty(t, g.GetUncommittedEvents())
}
