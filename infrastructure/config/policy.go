package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	domaincfg "github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// Policy is the operator-editable tuning file. It carries the head-orisha
// weighting table and the disclosure gate thresholds.
type Policy struct {
	// Weights are keyed by canonical orisha name; missing names weigh 1
	Weights map[string]float64 `yaml:"weights"`

	Gate struct {
		MinCharacters     int `yaml:"min_characters"`
		MinAccountAgeDays int `yaml:"min_account_age_days"`
	} `yaml:"gate"`

	Generation struct {
		CaminoChance *float64 `yaml:"camino_chance"`
		ShadowChance *float64 `yaml:"shadow_chance"`
		BlendWeight  *float64 `yaml:"blend_weight"`
	} `yaml:"generation"`
}

// LoadPolicy reads and validates a YAML policy file. An empty path returns
// a nil policy, which callers treat as "no overrides".
func LoadPolicy(path string) (*Policy, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.NewConfigurationError("reading policy file").WithCause(err)
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, pkgerrors.NewConfigurationError("parsing policy file").WithCause(err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate rejects weights for unknown orishas and negative values.
func (p *Policy) Validate() error {
	for name, weight := range p.Weights {
		if _, err := valueobjects.ParseOrisha(name); err != nil {
			return pkgerrors.NewConfigurationError("unknown orisha in weights: " + name)
		}
		if weight < 0 {
			return pkgerrors.NewConfigurationError("negative weight for " + name)
		}
	}
	if p.Gate.MinCharacters < 0 || p.Gate.MinAccountAgeDays < 0 {
		return pkgerrors.NewConfigurationError("gate thresholds must be non-negative")
	}
	return nil
}

// Apply overlays the policy onto a domain configuration, returning the same
// pointer for chaining. A nil policy is a no-op.
func (p *Policy) Apply(cfg *domaincfg.DomainConfig) *domaincfg.DomainConfig {
	if p == nil {
		return cfg
	}
	if p.Gate.MinCharacters > 0 {
		cfg.GateMinCharacters = p.Gate.MinCharacters
	}
	if p.Gate.MinAccountAgeDays > 0 {
		cfg.GateMinAccountAge = time.Duration(p.Gate.MinAccountAgeDays) * 24 * time.Hour
	}
	if p.Generation.CaminoChance != nil {
		cfg.CaminoChance = *p.Generation.CaminoChance
	}
	if p.Generation.ShadowChance != nil {
		cfg.QliphothicShadowChance = *p.Generation.ShadowChance
	}
	if p.Generation.BlendWeight != nil {
		cfg.BiasBlendWeight = *p.Generation.BlendWeight
	}
	return cfg
}
