package queries

import (
	"context"
	"errors"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
)

// SynthesizePromptQuery renders a stored genome as an in-character system
// prompt, or as a social post draft when Beat is set.
type SynthesizePromptQuery struct {
	GenomeID string `json:"genome_id" validate:"required"`
	Style    string `json:"style,omitempty"`
	Beat     string `json:"beat,omitempty"`
	Seed     int64  `json:"seed"`
}

// Validate validates the query
func (q SynthesizePromptQuery) Validate() error {
	if q.GenomeID == "" {
		return errors.New("genome ID is required")
	}
	return nil
}

// PromptOutput carries either a system prompt or a post draft
type PromptOutput struct {
	Prompt  string `json:"prompt,omitempty"`
	Post    string `json:"post,omitempty"`
	Orisha  string `json:"orisha,omitempty"`
	Sephira string `json:"sephira,omitempty"`
	LClass  string `json:"lClass,omitempty"`
}

// SynthesizePromptHandler handles the SynthesizePromptQuery
type SynthesizePromptHandler struct {
	genomeRepo ports.GenomeRepository
	engine     *synthesis.Engine
}

// NewSynthesizePromptHandler creates a new handler instance
func NewSynthesizePromptHandler(
	genomeRepo ports.GenomeRepository,
	engine *synthesis.Engine,
) *SynthesizePromptHandler {
	return &SynthesizePromptHandler{
		genomeRepo: genomeRepo,
		engine:     engine,
	}
}

// Handle executes the prompt synthesis query
func (h *SynthesizePromptHandler) Handle(ctx context.Context, q SynthesizePromptQuery) (*PromptOutput, error) {
	id, err := valueobjects.NewGenomeIDFromString(q.GenomeID)
	if err != nil {
		return nil, err
	}
	g, err := h.genomeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if q.Beat != "" {
		post, err := h.engine.SocialDraft(g, q.Beat, q.Seed)
		if err != nil {
			return nil, err
		}
		return &PromptOutput{Post: post}, nil
	}

	result, err := h.engine.SystemPrompt(g, q.Style, q.Seed)
	if err != nil {
		return nil, err
	}
	return &PromptOutput{
		Prompt:  result.Prompt,
		Orisha:  result.Orisha,
		Sephira: result.Sephira,
		LClass:  result.LClass,
	}, nil
}
