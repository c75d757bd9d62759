package queries

import (
	"context"
	"errors"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
)

// ListGenomesQuery lists stored genomes, optionally filtered
type ListGenomesQuery struct {
	OwnerID string   `json:"owner_id" validate:"required"`
	Tags    []string `json:"tags,omitempty"`
	Orisha  string   `json:"orisha,omitempty"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// Validate validates the query
func (q ListGenomesQuery) Validate() error {
	if q.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if q.Limit < 0 || q.Offset < 0 {
		return errors.New("limit and offset must be non-negative")
	}
	return nil
}

// ListGenomesHandler handles the ListGenomesQuery
type ListGenomesHandler struct {
	genomeRepo ports.GenomeRepository
}

// NewListGenomesHandler creates a new handler instance
func NewListGenomesHandler(genomeRepo ports.GenomeRepository) *ListGenomesHandler {
	return &ListGenomesHandler{genomeRepo: genomeRepo}
}

// Handle executes the list query
func (h *ListGenomesHandler) Handle(ctx context.Context, q ListGenomesQuery) ([]*entities.Genome, error) {
	return h.genomeRepo.List(ctx, ports.ListCriteria{
		OwnerID: q.OwnerID,
		Tags:    q.Tags,
		Orisha:  q.Orisha,
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
}
