package disclosure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasAdvancedAccessAdmin(t *testing.T) {
	gate := NewAccessGate(nil)
	now := time.Now()

	assert.True(t, gate.HasAdvancedAccess(AccountFacts{IsAdmin: true}, now))
}

func TestHasAdvancedAccessCharacterCount(t *testing.T) {
	gate := NewAccessGate(nil)
	now := time.Now()

	assert.False(t, gate.HasAdvancedAccess(AccountFacts{CharacterCount: 2}, now))
	assert.True(t, gate.HasAdvancedAccess(AccountFacts{CharacterCount: 3}, now))
}

func TestHasAdvancedAccessAccountAge(t *testing.T) {
	gate := NewAccessGate(nil)
	now := time.Now()

	young := AccountFacts{CreatedAt: now.Add(-6 * 24 * time.Hour)}
	assert.False(t, gate.HasAdvancedAccess(young, now))

	old := AccountFacts{CreatedAt: now.Add(-7 * 24 * time.Hour)}
	assert.True(t, gate.HasAdvancedAccess(old, now))
}

func TestHasAdvancedAccessZeroCreatedAtNeverAges(t *testing.T) {
	gate := NewAccessGate(nil)

	// An unknown creation time must not read as an ancient account.
	assert.False(t, gate.HasAdvancedAccess(AccountFacts{}, time.Now()))
}

func TestTierFor(t *testing.T) {
	gate := NewAccessGate(nil)
	now := time.Now()

	assert.Equal(t, TierSurface, gate.TierFor(AccountFacts{}, now))
	assert.Equal(t, TierGateway, gate.TierFor(AccountFacts{CharacterCount: 1}, now))
	assert.Equal(t, TierDepths, gate.TierFor(AccountFacts{CharacterCount: 3}, now))
	assert.Equal(t, TierDepths, gate.TierFor(AccountFacts{IsAdmin: true}, now))
}
