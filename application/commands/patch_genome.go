package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/config"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
)

// PatchGenomeCommand applies a partial edit to a stored genome. Only the
// non-nil fields of the patch are touched.
type PatchGenomeCommand struct {
	GenomeID string               `json:"genome_id" validate:"required"`
	OwnerID  string               `json:"owner_id" validate:"required"`
	Patch    entities.GenomePatch `json:"patch"`
}

// Validate validates the command
func (cmd PatchGenomeCommand) Validate() error {
	if cmd.GenomeID == "" {
		return errors.New("genome ID is required")
	}
	if cmd.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if cmd.Patch.IsEmpty() {
		return errors.New("patch touches no fields")
	}
	return nil
}

// PatchGenomeHandler handles the PatchGenomeCommand
type PatchGenomeHandler struct {
	genomeRepo ports.GenomeRepository
	eventBus   ports.EventPublisher
	cfg        *config.DomainConfig
	logger     *zap.Logger
}

// NewPatchGenomeHandler creates a new handler instance
func NewPatchGenomeHandler(
	genomeRepo ports.GenomeRepository,
	eventBus ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *PatchGenomeHandler {
	return &PatchGenomeHandler{
		genomeRepo: genomeRepo,
		eventBus:   eventBus,
		cfg:        cfg,
		logger:     logger,
	}
}

// Handle executes the patch genome command. The patch is validated against
// the domain rules before anything is written; an invalid patch leaves the
// stored genome untouched.
func (h *PatchGenomeHandler) Handle(ctx context.Context, cmd PatchGenomeCommand) (*entities.Genome, error) {
	id, err := valueobjects.NewGenomeIDFromString(cmd.GenomeID)
	if err != nil {
		return nil, err
	}

	g, err := h.genomeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := g.ApplyPatch(cmd.Patch, h.cfg); err != nil {
		return nil, err
	}

	if err := h.genomeRepo.Save(ctx, cmd.OwnerID, g); err != nil {
		return nil, err
	}

	if err := h.eventBus.PublishBatch(ctx, g.GetUncommittedEvents()); err != nil {
		h.logger.Warn("failed to publish patch events",
			zap.String("genomeID", g.ID().String()),
			zap.Error(err),
		)
	}
	g.MarkEventsAsCommitted()

	h.logger.Info("genome patched",
		zap.String("genomeID", g.ID().String()),
		zap.Int("version", g.Version()),
	)

	return g, nil
}
