package config

import "time"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Genome generation
	SecondaryInfluenceMin   int
	SecondaryInfluenceMax   int
	SecondaryStrengthFloor  float64
	SecondaryStrengthCeil   float64
	BiasBlendWeight         float64
	CaminoChance            float64
	QliphothicShadowChance  float64
	MaxArchetypesPerGenome  int
	MaxKeywordsFromBio      int

	// Genome constraints
	MaxNameLength    int
	MaxTagsPerGenome int
	MaxTagLength     int

	// Template synthesis
	MaxSubstitutionDepth int

	// Access gate
	GateMinCharacters int
	GateMinAccountAge time.Duration

	// Validation settings
	AllowEmptyName     bool
	AllowCustomCaminos bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		// Genome generation
		SecondaryInfluenceMin:  1,
		SecondaryInfluenceMax:  2,
		SecondaryStrengthFloor: 0.2,
		SecondaryStrengthCeil:  0.6,
		BiasBlendWeight:        0.35,
		CaminoChance:           0.4,
		QliphothicShadowChance: 0.35,
		MaxArchetypesPerGenome: 5,
		MaxKeywordsFromBio:     12,

		// Genome constraints
		MaxNameLength:    120,
		MaxTagsPerGenome: 20,
		MaxTagLength:     40,

		// Template synthesis
		MaxSubstitutionDepth: 8,

		// Access gate
		GateMinCharacters: 3,
		GateMinAccountAge: 7 * 24 * time.Hour,

		// Validation settings
		AllowEmptyName:     true,
		AllowCustomCaminos: false,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Stricter validation
	config.AllowEmptyName = false
	config.MaxTagsPerGenome = 12

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.AllowEmptyName = true
	config.AllowCustomCaminos = true
	config.MaxTagsPerGenome = 50

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.SecondaryStrengthFloor < 0 || c.SecondaryStrengthCeil > 1 ||
		c.SecondaryStrengthFloor >= c.SecondaryStrengthCeil {
		return ErrInvalidStrengthBounds
	}
	if c.BiasBlendWeight < 0 || c.BiasBlendWeight > 1 {
		return ErrInvalidBlendWeight
	}
	if c.MaxSubstitutionDepth < 1 {
		return ErrInvalidSubstitutionDepth
	}
	return nil
}
