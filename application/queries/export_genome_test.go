package queries

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/memory"
)

func seededGenome(t *testing.T, repo *memory.GenomeRepository, seed int64, name string, tags ...string) *entities.Genome {
	t.Helper()
	g, err := genome.NewGenerator(nil).Generate(genome.Options{Name: name, Seed: &seed, Tags: tags})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), "alice", g))
	return g
}

func TestExportGenomeHandlerFormats(t *testing.T) {
	repo := memory.NewGenomeRepository()
	g := seededGenome(t, repo, 42, "Ada")
	h := NewExportGenomeHandler(repo)
	ctx := context.Background()

	out, err := h.Handle(ctx, ExportGenomeQuery{GenomeID: g.ID().String(), Format: "json"})
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Ada", doc["name"])

	out, err = h.Handle(ctx, ExportGenomeQuery{GenomeID: g.ID().String(), Format: "markdown"})
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")

	out, err = h.Handle(ctx, ExportGenomeQuery{GenomeID: g.ID().String(), Format: "system-prompt"})
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
}

func TestExportGenomeQueryValidate(t *testing.T) {
	assert.Error(t, ExportGenomeQuery{Format: "json"}.Validate())
	assert.Error(t, ExportGenomeQuery{GenomeID: "x", Format: "xml"}.Validate())
	assert.NoError(t, ExportGenomeQuery{GenomeID: "x", Format: "markdown"}.Validate())
}

func TestListGenomesHandler(t *testing.T) {
	repo := memory.NewGenomeRepository()
	seededGenome(t, repo, 1, "Ada", "pilot")
	seededGenome(t, repo, 2, "Asha")
	h := NewListGenomesHandler(repo)

	got, err := h.Handle(context.Background(), ListGenomesQuery{OwnerID: "alice"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = h.Handle(context.Background(), ListGenomesQuery{OwnerID: "alice", Tags: []string{"pilot"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].Name())

	assert.Error(t, ListGenomesQuery{}.Validate())
	assert.Error(t, ListGenomesQuery{OwnerID: "alice", Limit: -1}.Validate())
}

func TestSynthesizeLoreHandler(t *testing.T) {
	h := NewSynthesizeLoreHandler(synthesis.NewEngine(nil), memory.NewEventBus(zap.NewNop()), zap.NewNop())

	result, err := h.Handle(context.Background(), SynthesizeLoreQuery{
		Source:       "Ada",
		Target:       "Obi",
		Relationship: "ALLY",
		Seed:         7,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Lore, "Ada")
	assert.Contains(t, result.Lore, "Obi")

	_, err = h.Handle(context.Background(), SynthesizeLoreQuery{
		Source: "Ada", Target: "Obi", Relationship: "NEMESIS",
	})
	assert.Error(t, err)
}

func TestSynthesizePromptHandler(t *testing.T) {
	repo := memory.NewGenomeRepository()
	g := seededGenome(t, repo, 42, "Ada")
	h := NewSynthesizePromptHandler(repo, synthesis.NewEngine(nil))
	ctx := context.Background()

	out, err := h.Handle(ctx, SynthesizePromptQuery{GenomeID: g.ID().String(), Style: "oracular", Seed: 3})
	require.NoError(t, err)
	assert.Contains(t, out.Prompt, "Ada")
	assert.Empty(t, out.Post)
	assert.NotEmpty(t, out.Orisha)

	out, err = h.Handle(ctx, SynthesizePromptQuery{GenomeID: g.ID().String(), Beat: "omen", Seed: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Post)
	assert.Empty(t, out.Prompt)
}
