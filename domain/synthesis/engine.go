// Package synthesis turns genomes and character pairs into prose through
// recursive placeholder substitution over the template catalogs. Every call
// is pure: the same category, context, and seed always produce the same
// string.
package synthesis

import (
	"regexp"
	"strings"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
	"github.com/bomac1193/ophelian-os-sub001/domain/rng"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

// Context carries the named entities available to a synthesis call.
type Context struct {
	Source string
	Target string

	// Vars supplies additional direct-substitution entities, e.g. the
	// genome-derived fields of a system prompt.
	Vars map[string]string
}

// Engine fills templates. It is stateless and safe for concurrent use; each
// call owns its own RNG.
type Engine struct {
	cfg *config.DomainConfig
}

// NewEngine creates an engine with the given domain rules.
func NewEngine(cfg *config.DomainConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &Engine{cfg: cfg}
}

// Synthesize draws one template from the category's family and resolves
// every placeholder. No placeholder token survives in the returned string;
// an unknown category or unregistered placeholder is a configuration error.
func (e *Engine) Synthesize(category string, ctx Context, seed int64) (string, error) {
	r := rng.New(seed)
	return e.synthesizeWith(r, category, ctx)
}

func (e *Engine) synthesizeWith(r *rng.RNG, category string, ctx Context) (string, error) {
	family, ok := templateFamilies[category]
	if !ok || len(family) == 0 {
		return "", pkgerrors.NewConfigurationError("no template family registered for category " + category)
	}
	template := rng.Pick(r, family)
	return e.substitute(r, template, ctx, 0)
}

// substitute resolves placeholders recursively. Fill-list entries may carry
// nested {source}/{target} tokens, so each substitution pass re-scans its
// own output until the string is stable or the depth cap trips.
func (e *Engine) substitute(r *rng.RNG, text string, ctx Context, depth int) (string, error) {
	if depth >= e.cfg.MaxSubstitutionDepth {
		return "", pkgerrors.NewConfigurationError("placeholder recursion exceeded depth cap; cyclic fill list suspected")
	}

	var resolveErr error
	out := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		if resolveErr != nil {
			return token
		}
		name := token[1 : len(token)-1]
		value, err := e.resolve(r, name, ctx)
		if err != nil {
			resolveErr = err
			return token
		}
		return value
	})
	if resolveErr != nil {
		return "", resolveErr
	}

	// Drawn fills may have introduced fresh tokens.
	if placeholderPattern.MatchString(out) {
		return e.substitute(r, out, ctx, depth+1)
	}
	return out, nil
}

func (e *Engine) resolve(r *rng.RNG, name string, ctx Context) (string, error) {
	switch name {
	case "source":
		return ctx.Source, nil
	case "target":
		return ctx.Target, nil
	}
	if v, ok := ctx.Vars[name]; ok {
		return v, nil
	}
	if list, ok := fillLists[name]; ok && len(list) > 0 {
		return rng.Pick(r, list), nil
	}
	return "", pkgerrors.NewConfigurationError("no fill list registered for placeholder {" + name + "}")
}

// LoreResult is the outcome of relationship lore synthesis.
type LoreResult struct {
	Lore       string `json:"lore"`
	SourceRole string `json:"sourceRole,omitempty"`
	TargetRole string `json:"targetRole,omitempty"`
}

// RelationshipLore synthesizes lore for a character pair. The role pair is
// drawn on an independent stream so the role choice never couples to which
// lore variant was picked.
func (e *Engine) RelationshipLore(rel valueobjects.RelationshipType, ctx Context, seed int64) (LoreResult, error) {
	if !rel.IsValid() {
		return LoreResult{}, pkgerrors.NewValidationError("relationshipType", "unknown relationship type "+rel.String())
	}
	if strings.TrimSpace(ctx.Source) == "" {
		return LoreResult{}, pkgerrors.NewValidationError("source", "source name is required")
	}
	if strings.TrimSpace(ctx.Target) == "" {
		return LoreResult{}, pkgerrors.NewValidationError("target", "target name is required")
	}

	r := rng.New(seed)
	lore, err := e.synthesizeWith(r, rel.String(), ctx)
	if err != nil {
		return LoreResult{}, err
	}

	pairs, ok := rolePairs[rel.String()]
	if !ok || len(pairs) == 0 {
		return LoreResult{}, pkgerrors.NewConfigurationError("no role table registered for relationship " + rel.String())
	}
	pair := rng.Pick(r.Fork("roles"), pairs)

	return LoreResult{
		Lore:       lore,
		SourceRole: pair[0],
		TargetRole: pair[1],
	}, nil
}

// PromptResult bundles a synthesized system prompt with the influence triple
// downstream consumers display alongside it.
type PromptResult struct {
	Prompt  string `json:"prompt"`
	Orisha  string `json:"orisha"`
	Sephira string `json:"sephira"`
	LClass  string `json:"lClass"`
}

// SystemPrompt renders a genome as an in-character system prompt in the
// given style (oracular, plain, ornate).
func (e *Engine) SystemPrompt(g *entities.Genome, style string, seed int64) (PromptResult, error) {
	if style == "" {
		style = "plain"
	}
	category := "prompt:" + style
	if _, ok := templateFamilies[category]; !ok {
		return PromptResult{}, pkgerrors.NewValidationError("promptStyle", "unknown prompt style "+style)
	}

	ctx, err := genomeContext(g)
	if err != nil {
		return PromptResult{}, err
	}
	prompt, err := e.Synthesize(category, ctx, seed)
	if err != nil {
		return PromptResult{}, err
	}

	head := g.OrishaConfiguration().HeadOrisha
	rec, err := correspondence.GetOrisha(head)
	if err != nil {
		return PromptResult{}, err
	}
	return PromptResult{
		Prompt:  prompt,
		Orisha:  head.String(),
		Sephira: g.KabbalisticPosition().PrimarySephira.String(),
		LClass:  string(rec.Class),
	}, nil
}

// SocialDraft renders a short social post for a genome in the given beat
// (proclamation, lament, omen).
func (e *Engine) SocialDraft(g *entities.Genome, beat string, seed int64) (string, error) {
	category := "post:" + beat
	if _, ok := templateFamilies[category]; !ok {
		return "", pkgerrors.NewValidationError("beat", "unknown post beat "+beat)
	}
	ctx, err := genomeContext(g)
	if err != nil {
		return "", err
	}
	return e.Synthesize(category, ctx, seed)
}

// genomeContext flattens a genome into direct-substitution variables.
func genomeContext(g *entities.Genome) (Context, error) {
	if g == nil {
		return Context{}, pkgerrors.NewValidationError("genome", "genome is required")
	}
	position := g.KabbalisticPosition()
	psyche := g.PsychologicalState()
	narrative := g.NarrativeIdentity()
	voice := g.MultiModalSignature()
	head := g.OrishaConfiguration().HeadOrisha

	name := g.Name()
	if name == "" {
		name = "the Unnamed"
	}

	rec, err := correspondence.GetOrisha(head)
	if err != nil {
		return Context{}, err
	}

	return Context{
		Vars: map[string]string{
			"name":             name,
			"orisha":           head.String(),
			"sephira":          position.PrimarySephira.String(),
			"pillar":           string(position.Pillar),
			"element":          rec.Element,
			"voiceQuality":     voice.Quality,
			"voicePattern":     voice.Pattern,
			"coreValues":       joinOr(narrative.CoreValues, "what endures"),
			"centralConflicts": joinOr(narrative.CentralConflicts, "the unnamed struggle"),
			"narrativeThemes":  joinOr(narrative.NarrativeThemes, "the long road"),
			"telos":            narrative.Telos,
			"trajectory":       psyche.Trajectory.String(),
		},
	}, nil
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
