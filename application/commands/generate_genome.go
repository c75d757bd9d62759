package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/validators"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/pkg/utils"
)

// GenerateGenomeCommand represents the command to generate a new genome
type GenerateGenomeCommand struct {
	OwnerID             string             `json:"owner_id" validate:"required"`
	Name                string             `json:"name" validate:"max=120"`
	Seed                *int64             `json:"seed,omitempty"`
	ForceOrisha         string             `json:"force_orisha,omitempty"`
	ForceSephira        string             `json:"force_sephira,omitempty"`
	HotCoolBias         *float64           `json:"hot_cool_bias,omitempty"`
	PreferredTrajectory string             `json:"preferred_trajectory,omitempty"`
	Gender              string             `json:"gender,omitempty"`
	Tags                []string           `json:"tags,omitempty"`
	Bio                 string             `json:"bio,omitempty"`
	PersonaTags         []string           `json:"persona_tags,omitempty"`
	PriorArchetype      string             `json:"prior_archetype,omitempty"`
	Weights             map[string]float64 `json:"weights,omitempty"`
}

// Validate validates the command
func (cmd GenerateGenomeCommand) Validate() error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}
	if cmd.HotCoolBias != nil && (*cmd.HotCoolBias < -1 || *cmd.HotCoolBias > 1) {
		return errors.New("hot/cool bias must lie in [-1,1]")
	}
	return nil
}

const MaxNameLength = 120

// GenerateGenomeHandler handles the GenerateGenomeCommand
type GenerateGenomeHandler struct {
	generator  *genome.Generator
	genomeRepo ports.GenomeRepository
	eventBus   ports.EventPublisher
	validator  *validators.GenomeValidator
	logger     *zap.Logger
}

// NewGenerateGenomeHandler creates a new handler instance
func NewGenerateGenomeHandler(
	generator *genome.Generator,
	genomeRepo ports.GenomeRepository,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *GenerateGenomeHandler {
	return &GenerateGenomeHandler{
		generator:  generator,
		genomeRepo: genomeRepo,
		eventBus:   eventBus,
		validator:  validators.NewGenomeValidator(nil),
		logger:     logger,
	}
}

// Handle executes the generate genome command
func (h *GenerateGenomeHandler) Handle(ctx context.Context, cmd GenerateGenomeCommand) (*entities.Genome, error) {
	if err := h.validator.ValidateName(cmd.Name); err != nil {
		return nil, err
	}
	if err := h.validator.ValidateTags(cmd.Tags); err != nil {
		return nil, err
	}

	opts := genome.Options{
		Name:                cmd.Name,
		Seed:                cmd.Seed,
		ForceOrisha:         cmd.ForceOrisha,
		ForceSephira:        cmd.ForceSephira,
		HotCoolBias:         cmd.HotCoolBias,
		PreferredTrajectory: cmd.PreferredTrajectory,
		Gender:              cmd.Gender,
		Tags:                cmd.Tags,
		Bio:                 cmd.Bio,
		PersonaTags:         cmd.PersonaTags,
		PriorArchetype:      cmd.PriorArchetype,
		Weights:             cmd.Weights,
	}

	g, err := h.generator.Generate(opts)
	if err != nil {
		return nil, err
	}

	if err := h.genomeRepo.Save(ctx, cmd.OwnerID, g); err != nil {
		return nil, err
	}

	if err := h.eventBus.PublishBatch(ctx, g.GetUncommittedEvents()); err != nil {
		// Events can be retried; the genome itself is already persisted
		h.logger.Warn("failed to publish genome events",
			zap.String("genomeID", g.ID().String()),
			zap.Error(err),
		)
	}
	g.MarkEventsAsCommitted()

	h.logger.Info("genome generated",
		zap.String("genomeID", g.ID().String()),
		zap.String("ownerID", cmd.OwnerID),
		zap.String("headOrisha", string(g.OrishaConfiguration().HeadOrisha)),
	)

	return g, nil
}
