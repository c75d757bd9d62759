package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// GenomeValidator validates genome-related domain rules at the application
// boundary, before data reaches the entity constructors.
type GenomeValidator struct {
	cfg *config.DomainConfig
}

// NewGenomeValidator creates a validator with the given rules.
func NewGenomeValidator(cfg *config.DomainConfig) *GenomeValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &GenomeValidator{cfg: cfg}
}

// ValidateName checks a display name against length rules.
func (v *GenomeValidator) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" && !v.cfg.AllowEmptyName {
		return pkgerrors.NewValidationError("name", "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > v.cfg.MaxNameLength {
		return pkgerrors.NewValidationError("name", "name exceeds maximum length")
	}
	return nil
}

// ValidateTags checks a tag list against count and length rules.
func (v *GenomeValidator) ValidateTags(tags []string) error {
	if len(tags) > v.cfg.MaxTagsPerGenome {
		return pkgerrors.NewValidationError("tags", "too many tags")
	}
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return pkgerrors.NewValidationError("tags", "tags cannot be blank")
		}
		if utf8.RuneCountInString(t) > v.cfg.MaxTagLength {
			return pkgerrors.NewValidationError("tags", "tag exceeds maximum length")
		}
	}
	return nil
}

// ValidateConsistency cross-checks a reconstructed genome against the
// correspondence tables: the pillar must agree with the stored primary
// Sephira. Cross-field drift is surfaced, never coerced.
func (v *GenomeValidator) ValidateConsistency(g *entities.Genome) error {
	position := g.KabbalisticPosition()
	pillar, err := correspondence.PillarOf(position.PrimarySephira)
	if err != nil {
		return err
	}
	if position.Pillar != pillar {
		return pkgerrors.NewValidationError("kabbalisticPosition.pillar",
			"pillar disagrees with the correspondence table for "+position.PrimarySephira.String())
	}
	return nil
}
