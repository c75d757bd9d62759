package genome

import (
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
	"github.com/bomac1193/ophelian-os-sub001/pkg/utils"
)

// Options constrains a generation call. Every field is optional; an empty
// Options produces a fully random (but seed-recorded) genome.
type Options struct {
	// ID is the caller/store-provided identifier. When empty, a
	// deterministic ID is derived from the seed and name.
	ID string `json:"id,omitempty"`

	Name string `json:"name,omitempty" validate:"max=120"`

	// Seed makes the generation reproducible. When nil, a seed is drawn
	// from a non-deterministic source and recorded in the output.
	Seed *int64 `json:"seed,omitempty"`

	ForceOrisha  string `json:"forceOrisha,omitempty"`
	ForceSephira string `json:"forceSephira,omitempty"`

	// HotCoolBias blends into the Orisha's canonical energy; it never
	// overwrites it.
	HotCoolBias *float64 `json:"hotCoolBias,omitempty" validate:"omitempty,gte=-1,lte=1"`

	PreferredTrajectory string `json:"preferredTrajectory,omitempty"`

	Gender string   `json:"gender,omitempty" validate:"omitempty,oneof=masculine feminine neutral"`
	Tags   []string `json:"tags,omitempty" validate:"max=20,dive,min=1,max=40"`

	// Character-derived hints consumed by narrative identity assembly.
	Bio            string   `json:"bio,omitempty"`
	PersonaTags    []string `json:"personaTags,omitempty"`
	PriorArchetype string   `json:"priorArchetype,omitempty"`

	// Weights is the optional head-Orisha weighting policy, keyed by
	// canonical Orisha name. Missing names weigh 1.
	Weights map[string]float64 `json:"weights,omitempty"`
}

// resolved carries the validated, typed form of Options.
type resolved struct {
	forceOrisha  valueobjects.Orisha
	hasOrisha    bool
	forceSephira valueobjects.Sephira
	hasSephira   bool
	trajectory   valueobjects.Trajectory
	hasTraj      bool
	gender       valueobjects.Gender
}

// resolve validates the enumeration-typed options, naming the offending
// field on failure.
func (o Options) resolve() (resolved, error) {
	var r resolved

	if err := utils.ValidateStruct(o); err != nil {
		return r, pkgerrors.NewValidationError("options", err.Error())
	}

	if o.ForceOrisha != "" {
		orisha, err := valueobjects.ParseOrisha(o.ForceOrisha)
		if err != nil {
			return r, pkgerrors.NewValidationError("forceOrisha", err.Error())
		}
		r.forceOrisha, r.hasOrisha = orisha, true
	}
	if o.ForceSephira != "" {
		sephira, err := valueobjects.ParseSephira(o.ForceSephira)
		if err != nil {
			return r, pkgerrors.NewValidationError("forceSephira", err.Error())
		}
		r.forceSephira, r.hasSephira = sephira, true
	}
	if o.PreferredTrajectory != "" {
		traj, err := valueobjects.ParseTrajectory(o.PreferredTrajectory)
		if err != nil {
			return r, pkgerrors.NewValidationError("preferredTrajectory", err.Error())
		}
		r.trajectory, r.hasTraj = traj, true
	}
	if o.HotCoolBias != nil && (*o.HotCoolBias < -1 || *o.HotCoolBias > 1) {
		return r, pkgerrors.NewValidationError("hotCoolBias", "bias must lie in [-1,1]")
	}
	for name := range o.Weights {
		if _, err := valueobjects.ParseOrisha(name); err != nil {
			return r, pkgerrors.NewValidationError("weights", err.Error())
		}
	}

	gender, err := valueobjects.ParseGender(o.Gender)
	if err != nil {
		return r, pkgerrors.NewValidationError("gender", err.Error())
	}
	r.gender = gender

	return r, nil
}
