package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

func TestValidateName(t *testing.T) {
	v := NewGenomeValidator(nil)

	assert.NoError(t, v.ValidateName("Ada"))
	assert.NoError(t, v.ValidateName(""))
	assert.Error(t, v.ValidateName(strings.Repeat("a", 121)))

	strict := NewGenomeValidator(config.ProductionDomainConfig())
	assert.Error(t, strict.ValidateName(""))
	assert.Error(t, strict.ValidateName("   "))
}

func TestValidateTags(t *testing.T) {
	v := NewGenomeValidator(nil)

	assert.NoError(t, v.ValidateTags(nil))
	assert.NoError(t, v.ValidateTags([]string{"pilot", "veteran"}))
	assert.Error(t, v.ValidateTags([]string{"  "}))
	assert.Error(t, v.ValidateTags([]string{strings.Repeat("t", 41)}))

	many := make([]string, 21)
	for i := range many {
		many[i] = "t"
	}
	assert.Error(t, v.ValidateTags(many))
}

func TestValidateConsistency(t *testing.T) {
	v := NewGenomeValidator(nil)
	seed := int64(42)

	g, err := genome.NewGenerator(nil).Generate(genome.Options{Name: "Ada", Seed: &seed})
	require.NoError(t, err)

	assert.NoError(t, v.ValidateConsistency(g))
}
