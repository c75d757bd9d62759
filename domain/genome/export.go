package genome

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// ExportFormat enumerates the export renderings.
type ExportFormat string

const (
	FormatJSON         ExportFormat = "json"
	FormatMarkdown     ExportFormat = "markdown"
	FormatSystemPrompt ExportFormat = "system-prompt"
)

// ExportOptions selects the rendering and, for system prompts, the style.
type ExportOptions struct {
	Format      ExportFormat
	PromptStyle string
}

// genomeDocument is the serialized shape of a genome. JSON exports
// round-trip losslessly through ParseGenome, modulo the volatile timestamp
// fields.
type genomeDocument struct {
	ID                  string                       `json:"id"`
	Name                string                       `json:"name"`
	SchemaVersion       string                       `json:"schemaVersion"`
	Seed                valueobjects.Seed            `json:"seed"`
	Tags                []string                     `json:"tags"`
	OrishaConfiguration entities.OrishaConfiguration `json:"orishaConfiguration"`
	KabbalisticPosition entities.KabbalisticPosition `json:"kabbalisticPosition"`
	PsychologicalState  entities.PsychologicalState  `json:"psychologicalState"`
	MultiModalSignature valueobjects.VoiceSignature  `json:"multiModalSignature"`
	NarrativeIdentity   entities.NarrativeIdentity   `json:"narrativeIdentity"`
	InvariantMarkers    map[string]interface{}       `json:"invariantMarkers"`
	EvolutionRules      map[string]interface{}       `json:"evolutionRules"`
	CreatedAt           time.Time                    `json:"createdAt"`
	UpdatedAt           time.Time                    `json:"updatedAt"`
	Version             int                          `json:"version"`
}

func documentOf(g *entities.Genome) genomeDocument {
	return genomeDocument{
		ID:                  g.ID().String(),
		Name:                g.Name(),
		SchemaVersion:       g.SchemaVersion(),
		Seed:                g.Seed(),
		Tags:                g.Tags(),
		OrishaConfiguration: g.OrishaConfiguration(),
		KabbalisticPosition: g.KabbalisticPosition(),
		PsychologicalState:  g.PsychologicalState(),
		MultiModalSignature: g.MultiModalSignature(),
		NarrativeIdentity:   g.NarrativeIdentity(),
		InvariantMarkers:    g.InvariantMarkers(),
		EvolutionRules:      g.EvolutionRules(),
		CreatedAt:           g.CreatedAt(),
		UpdatedAt:           g.UpdatedAt(),
		Version:             g.Version(),
	}
}

// Export renders a genome in the requested format.
func Export(g *entities.Genome, opts ExportOptions) (string, error) {
	if g == nil {
		return "", pkgerrors.NewValidationError("genome", "genome is required")
	}
	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(documentOf(g), "", "  ")
		if err != nil {
			return "", pkgerrors.NewInternalError("marshaling genome").WithCause(err)
		}
		return string(data), nil
	case FormatMarkdown:
		return exportMarkdown(g)
	case FormatSystemPrompt:
		engine := synthesis.NewEngine(nil)
		seed := int64(0)
		if g.Seed().IsPresent() {
			seed = g.Seed().Value()
		}
		result, err := engine.SystemPrompt(g, opts.PromptStyle, seed)
		if err != nil {
			return "", err
		}
		return result.Prompt, nil
	default:
		return "", pkgerrors.NewValidationError("format", "unknown export format "+string(opts.Format))
	}
}

// ParseGenome reconstructs a genome from a JSON export.
func ParseGenome(data string) (*entities.Genome, error) {
	var doc genomeDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, pkgerrors.NewValidationError("json", "malformed genome document").WithCause(err)
	}
	id, err := valueobjects.NewGenomeIDFromString(doc.ID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("id", err.Error())
	}
	return entities.ReconstructGenome(
		id,
		doc.Name,
		doc.SchemaVersion,
		doc.Seed,
		doc.Tags,
		doc.OrishaConfiguration,
		doc.KabbalisticPosition,
		doc.PsychologicalState,
		doc.MultiModalSignature,
		doc.NarrativeIdentity,
		doc.InvariantMarkers,
		doc.EvolutionRules,
		doc.CreatedAt,
		doc.UpdatedAt,
		doc.Version,
	)
}

func exportMarkdown(g *entities.Genome) (string, error) {
	position := g.KabbalisticPosition()
	orishaCfg := g.OrishaConfiguration()
	psyche := g.PsychologicalState()
	narrative := g.NarrativeIdentity()
	voice := g.MultiModalSignature()

	orec, err := correspondence.GetOrisha(orishaCfg.HeadOrisha)
	if err != nil {
		return "", err
	}
	srec, err := correspondence.GetSephira(position.PrimarySephira)
	if err != nil {
		return "", err
	}

	name := g.Name()
	if name == "" {
		name = "Unnamed Genome"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "%s %s — *%s*\n\n", orec.Glyph, orishaCfg.HeadOrisha, orec.Label)
	if g.Seed().IsPresent() {
		fmt.Fprintf(&b, "Seed: `%d` · Schema: `%s`\n\n", g.Seed().Value(), g.SchemaVersion())
	} else {
		fmt.Fprintf(&b, "Seed: *(unrecorded — not reproducible)* · Schema: `%s`\n\n", g.SchemaVersion())
	}

	b.WriteString("## Orisha Configuration\n\n")
	if orishaCfg.Camino != "" {
		fmt.Fprintf(&b, "- Camino: %s\n", orishaCfg.Camino)
	}
	for _, inf := range orishaCfg.SecondaryInfluences {
		fmt.Fprintf(&b, "- Secondary: %s (%.2f)\n", inf.Orisha, inf.Strength)
	}

	b.WriteString("\n## Kabbalistic Position\n\n")
	fmt.Fprintf(&b, "- Sephira: %s (%s) — pillar of %s\n", position.PrimarySephira, srec.Title, position.Pillar)
	fmt.Fprintf(&b, "- Daath relationship: %s\n", position.DaathRelationship)
	if position.QliphothicShadow != "" {
		fmt.Fprintf(&b, "- Qliphothic shadow: %s\n", position.QliphothicShadow)
	}

	b.WriteString("\n## Psyche\n\n")
	fmt.Fprintf(&b, "- Hot/cool axis: %+.2f\n", psyche.HotCoolAxis.Value())
	fmt.Fprintf(&b, "- Trajectory: %s\n", psyche.Trajectory)
	fmt.Fprintf(&b, "- Individuation: %.2f · Shadow integration: %.2f\n",
		psyche.IndividuationLevel.Value(), psyche.ShadowIntegration.Value())
	if len(psyche.ActiveArchetypes) > 0 {
		fmt.Fprintf(&b, "- Archetypes: %s\n", strings.Join(psyche.ActiveArchetypes, ", "))
	}

	b.WriteString("\n## Voice\n\n")
	fmt.Fprintf(&b, "%s; %s; %s\n", voice.Type, voice.Quality, voice.Pattern)

	b.WriteString("\n## Narrative Identity\n\n")
	if len(narrative.CoreValues) > 0 {
		fmt.Fprintf(&b, "- Values: %s\n", strings.Join(narrative.CoreValues, ", "))
	}
	if len(narrative.CentralConflicts) > 0 {
		fmt.Fprintf(&b, "- Conflicts: %s\n", strings.Join(narrative.CentralConflicts, "; "))
	}
	if len(narrative.NarrativeThemes) > 0 {
		fmt.Fprintf(&b, "- Themes: %s\n", strings.Join(narrative.NarrativeThemes, "; "))
	}
	if narrative.Telos != "" {
		fmt.Fprintf(&b, "- Telos: %s\n", narrative.Telos)
	}

	if tags := g.Tags(); len(tags) > 0 {
		fmt.Fprintf(&b, "\nTags: %s\n", strings.Join(tags, ", "))
	}

	return b.String(), nil
}
