package queries

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/disclosure"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// GetDisclosureQuery asks for a genome projected at a disclosure tier.
// When Tier is empty the highest tier the viewer may see is used.
type GetDisclosureQuery struct {
	GenomeID string `json:"genome_id" validate:"required"`
	ViewerID string `json:"viewer_id" validate:"required"`
	Tier     string `json:"tier,omitempty"`
}

// Validate validates the query
func (q GetDisclosureQuery) Validate() error {
	if q.GenomeID == "" {
		return errors.New("genome ID is required")
	}
	if q.ViewerID == "" {
		return errors.New("viewer ID is required")
	}
	switch disclosure.Tier(q.Tier) {
	case "", disclosure.TierSurface, disclosure.TierGateway, disclosure.TierDepths:
		return nil
	}
	return errors.New("unknown disclosure tier")
}

// DisclosureResult carries the projected view and the tier it was cut at
type DisclosureResult struct {
	Tier disclosure.Tier `json:"tier"`
	View interface{}     `json:"view"`
}

// GetDisclosureHandler handles the GetDisclosureQuery
type GetDisclosureHandler struct {
	genomeRepo ports.GenomeRepository
	accounts   ports.AccountReader
	projector  *disclosure.Projector
	gate       *disclosure.AccessGate
	logger     *zap.Logger
}

// NewGetDisclosureHandler creates a new handler instance
func NewGetDisclosureHandler(
	genomeRepo ports.GenomeRepository,
	accounts ports.AccountReader,
	projector *disclosure.Projector,
	gate *disclosure.AccessGate,
	logger *zap.Logger,
) *GetDisclosureHandler {
	return &GetDisclosureHandler{
		genomeRepo: genomeRepo,
		accounts:   accounts,
		projector:  projector,
		gate:       gate,
		logger:     logger,
	}
}

// Handle executes the disclosure query. Requesting the depths tier without
// advanced access is a validation error, not a silent downgrade.
func (h *GetDisclosureHandler) Handle(ctx context.Context, q GetDisclosureQuery) (*DisclosureResult, error) {
	id, err := valueobjects.NewGenomeIDFromString(q.GenomeID)
	if err != nil {
		return nil, err
	}
	g, err := h.genomeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facts, err := h.accountFacts(ctx, q.ViewerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	tier := disclosure.Tier(q.Tier)
	if tier == "" {
		tier = h.gate.TierFor(facts, now)
	} else if tier == disclosure.TierDepths && !h.gate.HasAdvancedAccess(facts, now) {
		return nil, pkgerrors.NewValidationError("tier", "viewer lacks access to the depths tier")
	}

	var view interface{}
	switch tier {
	case disclosure.TierSurface:
		view, err = h.projector.Surface(g)
	case disclosure.TierGateway:
		view, err = h.projector.Gateway(g)
	case disclosure.TierDepths:
		view, err = h.projector.Depths(g)
	}
	if err != nil {
		return nil, err
	}

	return &DisclosureResult{Tier: tier, View: view}, nil
}

func (h *GetDisclosureHandler) accountFacts(ctx context.Context, viewerID string) (disclosure.AccountFacts, error) {
	isAdmin, err := h.accounts.IsAdmin(ctx, viewerID)
	if err != nil {
		return disclosure.AccountFacts{}, err
	}
	count, err := h.accounts.CharacterCount(ctx, viewerID)
	if err != nil {
		return disclosure.AccountFacts{}, err
	}
	createdAt, err := h.accounts.CreatedAt(ctx, viewerID)
	if err != nil {
		return disclosure.AccountFacts{}, err
	}
	return disclosure.AccountFacts{
		IsAdmin:        isAdmin,
		CharacterCount: count,
		CreatedAt:      createdAt,
	}, nil
}
