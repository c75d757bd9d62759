package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func makeGenome(t *testing.T, seed int64, name string, tags ...string) *entities.Genome {
	t.Helper()
	g, err := genome.NewGenerator(nil).Generate(genome.Options{
		Name: name, Seed: &seed, Tags: tags,
	})
	require.NoError(t, err)
	return g
}

func TestNewGenomeRepositoryRequiresDir(t *testing.T) {
	_, err := NewGenomeRepository("")
	assert.Error(t, err)
}

func TestSaveRoundTripsThroughDisk(t *testing.T) {
	repo, err := NewGenomeRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	g := makeGenome(t, 1, "Ada", "pilot")

	require.NoError(t, repo.Save(ctx, "alice", g))

	got, err := repo.GetByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, g.ID(), got.ID())
	assert.Equal(t, "Ada", got.Name())
	assert.Equal(t, g.Tags(), got.Tags())
	assert.Equal(t, g.OrishaConfiguration(), got.OrishaConfiguration())
	assert.Equal(t, g.KabbalisticPosition(), got.KabbalisticPosition())
}

func TestSaveSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	g := makeGenome(t, 1, "Ada")

	repo, err := NewGenomeRepository(dir)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "alice", g))

	reopened, err := NewGenomeRepository(dir)
	require.NoError(t, err)
	got, err := reopened.GetByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, g.ID(), got.ID())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, err := NewGenomeRepository(t.TempDir())
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), makeGenome(t, 1, "Ada").ID())
	assert.Error(t, err)
}

func TestDeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewGenomeRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()
	g := makeGenome(t, 1, "Ada")

	require.NoError(t, repo.Save(ctx, "alice", g))
	require.NoError(t, repo.Delete(ctx, g.ID()))

	_, statErr := os.Stat(filepath.Join(dir, g.ID().String()+".json"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Error(t, repo.Delete(ctx, g.ID()))
}

func TestListFiltersAndOrders(t *testing.T) {
	repo, err := NewGenomeRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	first := makeGenome(t, 1, "Ada", "pilot")
	second := makeGenome(t, 2, "Asha")
	require.NoError(t, repo.Save(ctx, "alice", first))
	require.NoError(t, repo.Save(ctx, "alice", second))
	require.NoError(t, repo.Save(ctx, "bob", makeGenome(t, 3, "Obi")))

	mine, err := repo.List(ctx, ports.ListCriteria{OwnerID: "alice"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID(), mine[0].ID())
	assert.Equal(t, second.ID(), mine[1].ID())

	tagged, err := repo.List(ctx, ports.ListCriteria{OwnerID: "alice", Tags: []string{"pilot"}})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, first.ID(), tagged[0].ID())

	owned, err := repo.GetByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestReadUpgradesLegacyDocuments(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewGenomeRepository(dir)
	require.NoError(t, err)

	// A flat document written before the block layout existed.
	legacy := `{
  "ownerId": "alice",
  "savedAt": "2024-01-01T00:00:00Z",
  "genome": {
    "id": "c7f2f1f0-9d5a-5c1e-8f2a-111111111111",
    "name": "Ada",
    "schemaVersion": "1.0",
    "seed": 42,
    "headOrisha": "Ṣàngó",
    "sephira": "Geburah",
    "pillar": "Severity",
    "hotCoolAxis": 0.9
  }
}`
	path := filepath.Join(dir, "c7f2f1f0-9d5a-5c1e-8f2a-111111111111.json")
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	all, err := repo.List(context.Background(), ports.ListCriteria{OwnerID: "alice"})
	require.NoError(t, err)
	require.Len(t, all, 1)

	g := all[0]
	assert.Equal(t, "Ada", g.Name())
	assert.Equal(t, "Ṣàngó", g.OrishaConfiguration().HeadOrisha.String())
	assert.Equal(t, "Geburah", g.KabbalisticPosition().PrimarySephira.String())
	assert.InDelta(t, 0.9, g.PsychologicalState().HotCoolAxis.Value(), 1e-9)
}
