package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/memory"
)

func TestPatchGenomeHandlerUpdatesStoredGenome(t *testing.T) {
	h, repo := newGenerateHandler()
	ctx := context.Background()
	seed := int64(42)

	g, err := h.Handle(ctx, GenerateGenomeCommand{OwnerID: "alice", Name: "Ada", Seed: &seed})
	require.NoError(t, err)

	patcher := NewPatchGenomeHandler(repo, memory.NewEventBus(zap.NewNop()), nil, zap.NewNop())
	name := "Ada Prime"
	patched, err := patcher.Handle(ctx, PatchGenomeCommand{
		GenomeID: g.ID().String(),
		OwnerID:  "alice",
		Patch:    entities.GenomePatch{Name: &name},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Prime", patched.Name())
	assert.Equal(t, 2, patched.Version())

	stored, err := repo.GetByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ada Prime", stored.Name())
	assert.Equal(t, 2, stored.Version())
}

func TestPatchGenomeHandlerRejectsInvalidPatch(t *testing.T) {
	h, repo := newGenerateHandler()
	ctx := context.Background()
	seed := int64(42)

	g, err := h.Handle(ctx, GenerateGenomeCommand{OwnerID: "alice", Name: "Ada", Seed: &seed})
	require.NoError(t, err)

	patcher := NewPatchGenomeHandler(repo, memory.NewEventBus(zap.NewNop()), nil, zap.NewNop())
	bad := entities.OrishaConfiguration{HeadOrisha: "Zeus"}
	_, err = patcher.Handle(ctx, PatchGenomeCommand{
		GenomeID: g.ID().String(),
		OwnerID:  "alice",
		Patch:    entities.GenomePatch{OrishaConfiguration: &bad},
	})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name())
	assert.Equal(t, 1, stored.Version())
}

func TestPatchGenomeCommandValidate(t *testing.T) {
	name := "Ada"
	assert.Error(t, PatchGenomeCommand{OwnerID: "alice", Patch: entities.GenomePatch{Name: &name}}.Validate())
	assert.Error(t, PatchGenomeCommand{GenomeID: "x", OwnerID: "alice"}.Validate())
	assert.NoError(t, PatchGenomeCommand{
		GenomeID: "x", OwnerID: "alice", Patch: entities.GenomePatch{Name: &name},
	}.Validate())
}
