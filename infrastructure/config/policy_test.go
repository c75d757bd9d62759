package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaincfg "github.com/bomac1193/ophelian-os-sub001/domain/config"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicyEmptyPath(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLoadPolicyParsesYAML(t *testing.T) {
	path := writePolicy(t, `
weights:
  "Ṣàngó": 3.0
  "Ọya": 0.5
gate:
  min_characters: 5
  min_account_age_days: 14
generation:
  camino_chance: 0.7
`)

	p, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Weights["Ṣàngó"])
	assert.Equal(t, 5, p.Gate.MinCharacters)
	require.NotNil(t, p.Generation.CaminoChance)
	assert.Equal(t, 0.7, *p.Generation.CaminoChance)
	assert.Nil(t, p.Generation.ShadowChance)
}

func TestLoadPolicyRejectsUnknownOrisha(t *testing.T) {
	path := writePolicy(t, "weights:\n  Zeus: 2.0\n")
	_, err := LoadPolicy(path)
	assert.Error(t, err)
}

func TestLoadPolicyRejectsNegativeWeight(t *testing.T) {
	path := writePolicy(t, "weights:\n  \"Ọya\": -1.0\n")
	_, err := LoadPolicy(path)
	assert.Error(t, err)
}

func TestLoadPolicyMissingFile(t *testing.T) {
	_, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestPolicyApplyOverlays(t *testing.T) {
	path := writePolicy(t, `
gate:
  min_characters: 10
  min_account_age_days: 30
generation:
  shadow_chance: 0.1
  blend_weight: 0.5
`)
	p, err := LoadPolicy(path)
	require.NoError(t, err)

	cfg := p.Apply(domaincfg.DefaultDomainConfig())
	assert.Equal(t, 10, cfg.GateMinCharacters)
	assert.Equal(t, 30*24*time.Hour, cfg.GateMinAccountAge)
	assert.Equal(t, 0.1, cfg.QliphothicShadowChance)
	assert.Equal(t, 0.5, cfg.BiasBlendWeight)

	// Fields the policy does not name keep their defaults.
	assert.Equal(t, domaincfg.DefaultDomainConfig().CaminoChance, cfg.CaminoChance)
}

func TestPolicyApplyNilIsNoOp(t *testing.T) {
	var p *Policy
	cfg := domaincfg.DefaultDomainConfig()
	assert.Same(t, cfg, p.Apply(cfg))
}
