package commands

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/events"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/domain/versioning"
)

// RerollGenomeCommand regenerates an existing genome under a new seed while
// keeping its identity and caller constraints.
type RerollGenomeCommand struct {
	GenomeID string `json:"genome_id" validate:"required"`
	OwnerID  string `json:"owner_id" validate:"required"`
	Seed     int64  `json:"seed"`

	// Constraints carried over into the regeneration
	ForceOrisha         string             `json:"force_orisha,omitempty"`
	ForceSephira        string             `json:"force_sephira,omitempty"`
	HotCoolBias         *float64           `json:"hot_cool_bias,omitempty"`
	PreferredTrajectory string             `json:"preferred_trajectory,omitempty"`
	Gender              string             `json:"gender,omitempty"`
	Weights             map[string]float64 `json:"weights,omitempty"`
}

// Validate validates the command
func (cmd RerollGenomeCommand) Validate() error {
	if cmd.GenomeID == "" {
		return errors.New("genome ID is required")
	}
	if cmd.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// RerollGenomeHandler handles the RerollGenomeCommand
type RerollGenomeHandler struct {
	generator  *genome.Generator
	genomeRepo ports.GenomeRepository
	eventBus   ports.EventPublisher
	versions   *versioning.VersioningService
	logger     *zap.Logger
}

// NewRerollGenomeHandler creates a new handler instance
func NewRerollGenomeHandler(
	generator *genome.Generator,
	genomeRepo ports.GenomeRepository,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *RerollGenomeHandler {
	return &RerollGenomeHandler{
		generator:  generator,
		genomeRepo: genomeRepo,
		eventBus:   eventBus,
		versions:   versioning.NewVersioningService(),
		logger:     logger,
	}
}

// Handle executes the reroll genome command. The stored genome's ID, name
// and tags survive the reroll; everything drawn from the RNG is redrawn.
func (h *RerollGenomeHandler) Handle(ctx context.Context, cmd RerollGenomeCommand) (*entities.Genome, error) {
	id, err := valueobjects.NewGenomeIDFromString(cmd.GenomeID)
	if err != nil {
		return nil, err
	}

	existing, err := h.genomeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	opts := genome.Options{
		ID:                  existing.ID().String(),
		Name:                existing.Name(),
		Tags:                existing.Tags(),
		ForceOrisha:         cmd.ForceOrisha,
		ForceSephira:        cmd.ForceSephira,
		HotCoolBias:         cmd.HotCoolBias,
		PreferredTrajectory: cmd.PreferredTrajectory,
		Gender:              cmd.Gender,
		Weights:             cmd.Weights,
	}

	rerolled, err := h.generator.Reroll(cmd.Seed, opts)
	if err != nil {
		return nil, err
	}

	if err := h.genomeRepo.Save(ctx, cmd.OwnerID, rerolled); err != nil {
		return nil, err
	}

	rerollEvent := events.NewGenomeRerolled(
		rerolled.ID(),
		rerolled.OrishaConfiguration().HeadOrisha,
		rerolled.Seed(),
		time.Now(),
	)
	batch := append(rerolled.GetUncommittedEvents(), rerollEvent)
	if err := h.eventBus.PublishBatch(ctx, batch); err != nil {
		h.logger.Warn("failed to publish reroll events",
			zap.String("genomeID", rerolled.ID().String()),
			zap.Error(err),
		)
	}
	rerolled.MarkEventsAsCommitted()

	changes := h.versions.Diff(existing, rerolled)
	snapshot, err := h.versions.Snapshot(rerolled, "reroll")
	if err != nil {
		return nil, err
	}
	snapshot.Changes = changes
	h.logger.Info("genome rerolled",
		zap.String("genomeID", rerolled.ID().String()),
		zap.Int64("seed", cmd.Seed),
		zap.Int("changedBlocks", len(changes)),
		zap.String("checksum", snapshot.Checksum),
	)

	return rerolled, nil
}
