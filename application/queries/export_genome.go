package queries

import (
	"context"
	"errors"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

// ExportGenomeQuery renders a stored genome in one of the export formats
type ExportGenomeQuery struct {
	GenomeID    string `json:"genome_id" validate:"required"`
	Format      string `json:"format" validate:"oneof=json markdown system-prompt"`
	PromptStyle string `json:"prompt_style,omitempty"`
}

// Validate validates the query
func (q ExportGenomeQuery) Validate() error {
	if q.GenomeID == "" {
		return errors.New("genome ID is required")
	}
	switch genome.ExportFormat(q.Format) {
	case genome.FormatJSON, genome.FormatMarkdown, genome.FormatSystemPrompt:
		return nil
	}
	return errors.New("unknown export format")
}

// ExportGenomeHandler handles the ExportGenomeQuery
type ExportGenomeHandler struct {
	genomeRepo ports.GenomeRepository
}

// NewExportGenomeHandler creates a new handler instance
func NewExportGenomeHandler(genomeRepo ports.GenomeRepository) *ExportGenomeHandler {
	return &ExportGenomeHandler{genomeRepo: genomeRepo}
}

// Handle executes the export query
func (h *ExportGenomeHandler) Handle(ctx context.Context, q ExportGenomeQuery) (string, error) {
	id, err := valueobjects.NewGenomeIDFromString(q.GenomeID)
	if err != nil {
		return "", err
	}
	g, err := h.genomeRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return genome.Export(g, genome.ExportOptions{
		Format:      genome.ExportFormat(q.Format),
		PromptStyle: q.PromptStyle,
	})
}
