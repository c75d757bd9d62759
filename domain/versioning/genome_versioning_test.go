package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func generate(t *testing.T, seed int64, name string) *entities.Genome {
	t.Helper()
	g, err := genome.NewGenerator(nil).Generate(genome.Options{Name: name, Seed: &seed})
	require.NoError(t, err)
	return g
}

func TestSnapshotChecksumIsStable(t *testing.T) {
	svc := NewVersioningService()
	g := generate(t, 42, "Ada")

	first, err := svc.Snapshot(g, "initial")
	require.NoError(t, err)
	second, err := svc.Snapshot(g, "again")
	require.NoError(t, err)

	assert.Equal(t, g.ID().String(), first.GenomeID)
	assert.Equal(t, 1, first.Version)
	assert.Equal(t, first.Checksum, second.Checksum)

	other, err := svc.Snapshot(generate(t, 43, "Ada"), "other")
	require.NoError(t, err)
	assert.NotEqual(t, first.Checksum, other.Checksum)
}

func TestSnapshotNilGenome(t *testing.T) {
	_, err := NewVersioningService().Snapshot(nil, "x")
	assert.Error(t, err)
}

func TestDiffIdenticalGenomes(t *testing.T) {
	svc := NewVersioningService()
	g := generate(t, 42, "Ada")

	assert.Empty(t, svc.Diff(g, generate(t, 42, "Ada")))
}

func TestDiffNameChange(t *testing.T) {
	svc := NewVersioningService()
	old := generate(t, 42, "Ada")
	updated := generate(t, 42, "Ada")

	name := "Ada Prime"
	require.NoError(t, updated.ApplyPatch(entities.GenomePatch{Name: &name}, nil))

	changes := svc.Diff(old, updated)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeTypeIdentity, changes[0].Type)
	assert.Equal(t, "name", changes[0].Field)
}

func TestDiffReroll(t *testing.T) {
	svc := NewVersioningService()
	old := generate(t, 42, "Ada")
	rerolled := generate(t, 43, "Ada")

	changes := svc.Diff(old, rerolled)
	assert.NotEmpty(t, changes)
}

func TestDiffNilOperands(t *testing.T) {
	svc := NewVersioningService()
	assert.Nil(t, svc.Diff(nil, generate(t, 1, "Ada")))
	assert.Nil(t, svc.Diff(generate(t, 1, "Ada"), nil))
}
