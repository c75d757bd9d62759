// Package versioning snapshots genomes so that edits and rerolls leave an
// auditable trail. A snapshot carries a checksum over the serialized record
// and the field-level changes since the previous state.
package versioning

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
)

// GenomeVersion represents a specific version of a genome
type GenomeVersion struct {
	GenomeID    string    `json:"genome_id"`
	Version     int       `json:"version"`
	Checksum    string    `json:"checksum"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	Changes     []Change  `json:"changes,omitempty"`
}

// Change represents one field-level change between versions
type Change struct {
	Type        ChangeType `json:"type"`
	Field       string     `json:"field"`
	Description string     `json:"description"`
}

// ChangeType represents the type of change
type ChangeType string

const (
	ChangeTypeIdentity  ChangeType = "identity"
	ChangeTypeOrisha    ChangeType = "orisha"
	ChangeTypePosition  ChangeType = "position"
	ChangeTypePsyche    ChangeType = "psyche"
	ChangeTypeVoice     ChangeType = "voice"
	ChangeTypeNarrative ChangeType = "narrative"
)

// VersioningService builds genome version snapshots
type VersioningService struct{}

// NewVersioningService creates a new versioning service
func NewVersioningService() *VersioningService {
	return &VersioningService{}
}

// Snapshot captures the current state of a genome
func (s *VersioningService) Snapshot(g *entities.Genome, description string) (*GenomeVersion, error) {
	if g == nil {
		return nil, fmt.Errorf("genome cannot be nil")
	}
	checksum, err := s.checksum(g)
	if err != nil {
		return nil, err
	}
	return &GenomeVersion{
		GenomeID:    g.ID().String(),
		Version:     g.Version(),
		Checksum:    checksum,
		CreatedAt:   time.Now(),
		Description: description,
	}, nil
}

// Diff lists the blocks that changed between two states of a genome
func (s *VersioningService) Diff(old, updated *entities.Genome) []Change {
	if old == nil || updated == nil {
		return nil
	}
	var changes []Change

	if old.Name() != updated.Name() {
		changes = append(changes, Change{
			Type:        ChangeTypeIdentity,
			Field:       "name",
			Description: fmt.Sprintf("%q to %q", old.Name(), updated.Name()),
		})
	}
	if !reflect.DeepEqual(old.Tags(), updated.Tags()) {
		changes = append(changes, Change{Type: ChangeTypeIdentity, Field: "tags", Description: "tag set changed"})
	}
	if !reflect.DeepEqual(old.OrishaConfiguration(), updated.OrishaConfiguration()) {
		changes = append(changes, Change{
			Type:  ChangeTypeOrisha,
			Field: "orishaConfiguration",
			Description: fmt.Sprintf("head %s to %s",
				old.OrishaConfiguration().HeadOrisha, updated.OrishaConfiguration().HeadOrisha),
		})
	}
	if !reflect.DeepEqual(old.KabbalisticPosition(), updated.KabbalisticPosition()) {
		changes = append(changes, Change{
			Type:  ChangeTypePosition,
			Field: "kabbalisticPosition",
			Description: fmt.Sprintf("sephira %s to %s",
				old.KabbalisticPosition().PrimarySephira, updated.KabbalisticPosition().PrimarySephira),
		})
	}
	if !reflect.DeepEqual(old.PsychologicalState(), updated.PsychologicalState()) {
		changes = append(changes, Change{Type: ChangeTypePsyche, Field: "psychologicalState", Description: "psyche redrawn"})
	}
	if old.MultiModalSignature() != updated.MultiModalSignature() {
		changes = append(changes, Change{Type: ChangeTypeVoice, Field: "multiModalSignature", Description: "voice redrawn"})
	}
	if !reflect.DeepEqual(old.NarrativeIdentity(), updated.NarrativeIdentity()) {
		changes = append(changes, Change{Type: ChangeTypeNarrative, Field: "narrativeIdentity", Description: "narrative identity changed"})
	}

	return changes
}

// checksum hashes the canonical serialized form of the genome's blocks
func (s *VersioningService) checksum(g *entities.Genome) (string, error) {
	payload := struct {
		Name      string      `json:"name"`
		Orisha    interface{} `json:"orisha"`
		Position  interface{} `json:"position"`
		Psyche    interface{} `json:"psyche"`
		Voice     interface{} `json:"voice"`
		Narrative interface{} `json:"narrative"`
	}{
		Name:      g.Name(),
		Orisha:    g.OrishaConfiguration(),
		Position:  g.KabbalisticPosition(),
		Psyche:    g.PsychologicalState(),
		Voice:     g.MultiModalSignature(),
		Narrative: g.NarrativeIdentity(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serializing genome for checksum: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
