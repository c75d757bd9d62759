package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func projectorGenome(t *testing.T) *entities.Genome {
	t.Helper()
	seed := int64(42)
	g, err := genome.NewGenerator(nil).Generate(genome.Options{
		Name: "Ada", Seed: &seed, ForceOrisha: "Ṣàngó",
	})
	require.NoError(t, err)
	return g
}

func TestSurfaceExposesOnlyPublicFields(t *testing.T) {
	g := projectorGenome(t)

	view, err := NewProjector().Surface(g)
	require.NoError(t, err)

	assert.Equal(t, "shango", view.Code)
	assert.NotEmpty(t, view.Glyph)
	assert.NotEmpty(t, view.Label)
}

func TestGatewayAddsCorrespondences(t *testing.T) {
	g := projectorGenome(t)

	view, err := NewProjector().Gateway(g)
	require.NoError(t, err)

	assert.Equal(t, "shango", view.Code)
	assert.NotEmpty(t, view.Hint)
	assert.NotEmpty(t, view.Insight)
	assert.NotEmpty(t, view.Correspondences.Element)
	assert.NotEmpty(t, view.Correspondences.Colors)
	assert.NotZero(t, view.Correspondences.Number)
}

func TestDepthsAddsTreeContext(t *testing.T) {
	g := projectorGenome(t)

	view, err := NewProjector().Depths(g)
	require.NoError(t, err)

	assert.Equal(t, "Ada", view.Name)
	assert.Equal(t, g.OrishaConfiguration(), view.OrishaConfiguration)
	assert.Equal(t, g.KabbalisticPosition(), view.KabbalisticPosition)
	assert.NotEmpty(t, view.SephiraTitle)
	assert.NotEmpty(t, view.SephiraMeaning)
	require.NotEmpty(t, view.TreePaths)
	for _, p := range view.TreePaths {
		assert.True(t, p.From == "Geburah" || p.To == "Geburah")
	}
}
