package disclosure

import (
	"time"

	"github.com/bomac1193/ophelian-os-sub001/domain/config"
)

// AccountFacts are the facts the access gate rules over. They come from
// whatever account system hosts the genomes; the gate itself holds no state.
type AccountFacts struct {
	IsAdmin        bool
	CharacterCount int
	CreatedAt      time.Time
}

// AccessGate decides who may see the depths tier.
type AccessGate struct {
	cfg *config.DomainConfig
}

// NewAccessGate creates a gate with the given thresholds.
func NewAccessGate(cfg *config.DomainConfig) *AccessGate {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &AccessGate{cfg: cfg}
}

// HasAdvancedAccess reports whether the account may view the depths tier.
// Admins always pass. Otherwise either enough characters or enough account
// age suffices; the paths are independent.
func (a *AccessGate) HasAdvancedAccess(facts AccountFacts, now time.Time) bool {
	if facts.IsAdmin {
		return true
	}
	if facts.CharacterCount >= a.cfg.GateMinCharacters {
		return true
	}
	if !facts.CreatedAt.IsZero() && now.Sub(facts.CreatedAt) >= a.cfg.GateMinAccountAge {
		return true
	}
	return false
}

// TierFor resolves the highest tier the account may view.
func (a *AccessGate) TierFor(facts AccountFacts, now time.Time) Tier {
	if a.HasAdvancedAccess(facts, now) {
		return TierDepths
	}
	if facts.CharacterCount > 0 {
		return TierGateway
	}
	return TierSurface
}
