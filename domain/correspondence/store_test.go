package correspondence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
)

func TestVerifyPasses(t *testing.T) {
	assert.NoError(t, Verify())
}

func TestOrishaSephiraMapsAreInverses(t *testing.T) {
	for _, o := range valueobjects.AllOrishas() {
		s, ok := SephiraForOrisha(o)
		if !ok {
			continue
		}
		back, ok := OrishaForSephira(s)
		require.True(t, ok, "sephira %s has no orisha counterpart", s)
		assert.Equal(t, o, back)
	}
}

func TestOgunStandsOutsideTheTree(t *testing.T) {
	_, ok := SephiraForOrisha(valueobjects.OrishaOgun)
	assert.False(t, ok)
}

func TestMalkuthHasNoOrisha(t *testing.T) {
	_, ok := OrishaForSephira(valueobjects.SephiraMalkuth)
	assert.False(t, ok)
}

func TestGetOrishaUnknown(t *testing.T) {
	_, err := GetOrisha(valueobjects.Orisha("Zeus"))
	assert.Error(t, err)
}

func TestLookupOrishaByName(t *testing.T) {
	rec, err := LookupOrisha("Ṣàngó")
	require.NoError(t, err)
	assert.Equal(t, valueobjects.OrishaShango, rec.Name)
	assert.Equal(t, valueobjects.EnergyHot, rec.Class)

	_, err = LookupOrisha("unknown")
	assert.Error(t, err)
}

func TestPillarOf(t *testing.T) {
	p, err := PillarOf(valueobjects.SephiraGeburah)
	require.NoError(t, err)
	assert.Equal(t, valueobjects.PillarSeverity, p)

	_, err = PillarOf(valueobjects.Sephira("Atlantis"))
	assert.Error(t, err)
}

func TestQliphothForDaathAbsent(t *testing.T) {
	_, ok := QliphothFor(valueobjects.SephiraDaath)
	assert.False(t, ok)

	q, ok := QliphothFor(valueobjects.SephiraKether)
	require.True(t, ok)
	assert.NotEmpty(t, q)
}

func TestPathsTouching(t *testing.T) {
	paths := PathsTouching(valueobjects.SephiraKether)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		assert.True(t, p.From == valueobjects.SephiraKether || p.To == valueobjects.SephiraKether)
	}

	assert.Empty(t, PathsTouching(valueobjects.SephiraDaath))
}

func TestVoiceTypesFor(t *testing.T) {
	types, err := VoiceTypesFor(valueobjects.GenderFeminine, valueobjects.EnergyCool)
	require.NoError(t, err)
	assert.NotEmpty(t, types)

	_, err = VoiceTypesFor(valueobjects.Gender("plural"), valueobjects.EnergyCool)
	assert.Error(t, err)

	_, err = VoiceTypesFor(valueobjects.GenderNeutral, valueobjects.EnergyClass("tepid"))
	assert.Error(t, err)
}

func TestCompatibleOrishasReturnsCopy(t *testing.T) {
	first, err := CompatibleOrishas(valueobjects.OrishaShango)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0] = valueobjects.Orisha("mutated")

	second, err := CompatibleOrishas(valueobjects.OrishaShango)
	require.NoError(t, err)
	assert.NotEqual(t, first[0], second[0])
}
