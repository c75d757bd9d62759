package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/memory"
)

func newGenerateHandler() (*GenerateGenomeHandler, *memory.GenomeRepository) {
	repo := memory.NewGenomeRepository()
	bus := memory.NewEventBus(zap.NewNop())
	h := NewGenerateGenomeHandler(genome.NewGenerator(nil), repo, bus, zap.NewNop())
	return h, repo
}

func TestGenerateGenomeHandlerSaves(t *testing.T) {
	h, repo := newGenerateHandler()
	ctx := context.Background()
	seed := int64(42)

	g, err := h.Handle(ctx, GenerateGenomeCommand{
		OwnerID: "alice",
		Name:    "Ada",
		Seed:    &seed,
		Tags:    []string{"pilot"},
	})
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Empty(t, g.GetUncommittedEvents())

	stored, err := repo.GetByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name())

	owned, err := repo.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestGenerateGenomeCommandValidate(t *testing.T) {
	assert.Error(t, GenerateGenomeCommand{}.Validate())
	assert.NoError(t, GenerateGenomeCommand{OwnerID: "alice"}.Validate())

	bad := 2.0
	assert.Error(t, GenerateGenomeCommand{OwnerID: "alice", HotCoolBias: &bad}.Validate())
}

func TestGenerateGenomeHandlerPropagatesDomainErrors(t *testing.T) {
	h, _ := newGenerateHandler()
	seed := int64(1)

	_, err := h.Handle(context.Background(), GenerateGenomeCommand{
		OwnerID:     "alice",
		Seed:        &seed,
		ForceOrisha: "Zeus",
	})
	assert.Error(t, err)
}

func TestRerollGenomeHandlerKeepsIdentity(t *testing.T) {
	repo := memory.NewGenomeRepository()
	bus := memory.NewEventBus(zap.NewNop())
	gen := genome.NewGenerator(nil)
	ctx := context.Background()
	seed := int64(42)

	original, err := NewGenerateGenomeHandler(gen, repo, bus, zap.NewNop()).
		Handle(ctx, GenerateGenomeCommand{OwnerID: "alice", Name: "Ada", Seed: &seed, Tags: []string{"pilot"}})
	require.NoError(t, err)

	h := NewRerollGenomeHandler(gen, repo, bus, zap.NewNop())
	rerolled, err := h.Handle(ctx, RerollGenomeCommand{
		GenomeID: original.ID().String(),
		OwnerID:  "alice",
		Seed:     99,
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID(), rerolled.ID())
	assert.Equal(t, "Ada", rerolled.Name())
	assert.Equal(t, []string{"pilot"}, rerolled.Tags())
	assert.Equal(t, int64(99), rerolled.Seed().Value())

	stored, err := repo.GetByID(ctx, original.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(99), stored.Seed().Value())
}

func TestRerollGenomeHandlerUnknownGenome(t *testing.T) {
	repo := memory.NewGenomeRepository()
	h := NewRerollGenomeHandler(genome.NewGenerator(nil), repo, memory.NewEventBus(zap.NewNop()), zap.NewNop())

	_, err := h.Handle(context.Background(), RerollGenomeCommand{
		GenomeID: "c7f2f1f0-9d5a-5c1e-8f2a-111111111111",
		OwnerID:  "alice",
		Seed:     1,
	})
	assert.Error(t, err)
}
