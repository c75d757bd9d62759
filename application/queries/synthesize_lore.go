package queries

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/events"
	"github.com/bomac1193/ophelian-os-sub001/domain/synthesis"
)

// SynthesizeLoreQuery produces relationship lore for a character pair
type SynthesizeLoreQuery struct {
	Source       string            `json:"source" validate:"required"`
	Target       string            `json:"target" validate:"required"`
	Relationship string            `json:"relationship" validate:"required"`
	Seed         int64             `json:"seed"`
	Vars         map[string]string `json:"vars,omitempty"`
}

// Validate validates the query
func (q SynthesizeLoreQuery) Validate() error {
	if q.Source == "" {
		return errors.New("source name is required")
	}
	if q.Target == "" {
		return errors.New("target name is required")
	}
	if q.Relationship == "" {
		return errors.New("relationship type is required")
	}
	return nil
}

// SynthesizeLoreHandler handles the SynthesizeLoreQuery
type SynthesizeLoreHandler struct {
	engine   *synthesis.Engine
	eventBus ports.EventPublisher
	logger   *zap.Logger
}

// NewSynthesizeLoreHandler creates a new handler instance
func NewSynthesizeLoreHandler(
	engine *synthesis.Engine,
	eventBus ports.EventPublisher,
	logger *zap.Logger,
) *SynthesizeLoreHandler {
	return &SynthesizeLoreHandler{
		engine:   engine,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle executes the lore synthesis query
func (h *SynthesizeLoreHandler) Handle(ctx context.Context, q SynthesizeLoreQuery) (*synthesis.LoreResult, error) {
	rel, err := valueobjects.ParseRelationshipType(q.Relationship)
	if err != nil {
		return nil, err
	}

	result, err := h.engine.RelationshipLore(rel, synthesis.Context{
		Source: q.Source,
		Target: q.Target,
		Vars:   q.Vars,
	}, q.Seed)
	if err != nil {
		return nil, err
	}

	event := events.NewLoreSynthesized(q.Source, q.Target, rel, time.Now())
	if err := h.eventBus.Publish(ctx, event); err != nil {
		h.logger.Warn("failed to publish lore event", zap.Error(err))
	}

	return &result, nil
}
