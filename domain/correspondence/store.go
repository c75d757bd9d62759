// Package correspondence holds the immutable mythological reference tables:
// the Orisha and Sephira records, their bidirectional mapping, the Orisha
// compatibility graph, Tree-of-Life paths, Qliphoth shadows, and the voice
// classification tables. The tables are versioned as a whole; a change here
// is a deploy-time event, never a runtime one.
//
// Every lookup is total over its closed enumeration and fails with a lookup
// error for anything outside it. Defaulting is caller policy, not store
// policy.
package correspondence

import (
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// GetOrisha returns the full record for an Orisha.
func GetOrisha(o valueobjects.Orisha) (OrishaRecord, error) {
	rec, ok := orishaRecords[o]
	if !ok {
		return OrishaRecord{}, pkgerrors.NewLookupError("orisha", o.String())
	}
	return rec, nil
}

// LookupOrisha resolves a display name to its record.
func LookupOrisha(name string) (OrishaRecord, error) {
	o, err := valueobjects.ParseOrisha(name)
	if err != nil {
		return OrishaRecord{}, pkgerrors.NewLookupError("orisha", name)
	}
	return GetOrisha(o)
}

// GetSephira returns the full record for a Sephira.
func GetSephira(s valueobjects.Sephira) (SephiraRecord, error) {
	rec, ok := sephiraRecords[s]
	if !ok {
		return SephiraRecord{}, pkgerrors.NewLookupError("sephira", s.String())
	}
	return rec, nil
}

// LookupSephira resolves a display name to its record.
func LookupSephira(name string) (SephiraRecord, error) {
	s, err := valueobjects.ParseSephira(name)
	if err != nil {
		return SephiraRecord{}, pkgerrors.NewLookupError("sephira", name)
	}
	return GetSephira(s)
}

// SephiraForOrisha returns the Tree position an Orisha corresponds to.
// Not every Orisha has one: Ògún stands outside the Tree, and callers fall
// back to their own draw policy when ok is false.
func SephiraForOrisha(o valueobjects.Orisha) (valueobjects.Sephira, bool) {
	s, ok := orishaToSephira[o]
	return s, ok
}

// OrishaForSephira returns the Orisha corresponding to a Tree position.
// Malkuth has none.
func OrishaForSephira(s valueobjects.Sephira) (valueobjects.Orisha, bool) {
	o, ok := sephiraToOrisha[s]
	return o, ok
}

// PillarOf returns the pillar a Sephira sits on.
func PillarOf(s valueobjects.Sephira) (valueobjects.Pillar, error) {
	rec, err := GetSephira(s)
	if err != nil {
		return "", err
	}
	return rec.Pillar, nil
}

// CompatibleOrishas returns the ordered list of Orishas that blend well with
// the given one. The order is canonical and stable; secondary-influence
// draws sample from it.
func CompatibleOrishas(o valueobjects.Orisha) ([]valueobjects.Orisha, error) {
	if !o.IsValid() {
		return nil, pkgerrors.NewLookupError("orisha", o.String())
	}
	compat := compatibilityGraph[o]
	out := make([]valueobjects.Orisha, len(compat))
	copy(out, compat)
	return out, nil
}

// QliphothFor returns the shadow counterpart of a Sephira. Daath, the hidden
// Sephira, has none.
func QliphothFor(s valueobjects.Sephira) (valueobjects.Qliphoth, bool) {
	q, ok := sephiraToQliphoth[s]
	return q, ok
}

// PathsTouching returns every Tree-of-Life path incident to a Sephira, in
// path-number order. Daath sits on no path.
func PathsTouching(s valueobjects.Sephira) []PathRecord {
	var out []PathRecord
	for _, p := range treePaths {
		if p.From == s || p.To == s {
			out = append(out, p)
		}
	}
	return out
}

// AllPaths returns the full path table in path-number order.
func AllPaths() []PathRecord {
	out := make([]PathRecord, len(treePaths))
	copy(out, treePaths)
	return out
}

// Verify cross-checks the tables: bidirectional maps must be exact inverses,
// every record must reference valid enumeration members, and every path must
// join two valid Sephirot. It runs in tests and at container wiring; a
// failure is a defect in the tables themselves.
func Verify() error {
	for o, s := range orishaToSephira {
		back, ok := sephiraToOrisha[s]
		if !ok || back != o {
			return pkgerrors.NewConfigurationError(
				"orisha/sephira maps are not exact inverses at " + o.String())
		}
	}
	for s, o := range sephiraToOrisha {
		fwd, ok := orishaToSephira[o]
		if !ok || fwd != s {
			return pkgerrors.NewConfigurationError(
				"sephira/orisha maps are not exact inverses at " + s.String())
		}
	}
	for _, o := range valueobjects.AllOrishas() {
		rec, ok := orishaRecords[o]
		if !ok {
			return pkgerrors.NewConfigurationError("missing orisha record for " + o.String())
		}
		if !rec.Class.IsValid() || !rec.Trajectory.IsValid() {
			return pkgerrors.NewConfigurationError("invalid class or trajectory for " + o.String())
		}
		if rec.Energy < -1 || rec.Energy > 1 {
			return pkgerrors.NewConfigurationError("canonical energy outside [-1,1] for " + o.String())
		}
		for _, c := range compatibilityGraph[o] {
			if c == o {
				return pkgerrors.NewConfigurationError("compatibility graph contains self-edge at " + o.String())
			}
			if !c.IsValid() {
				return pkgerrors.NewConfigurationError("compatibility graph references unknown orisha at " + o.String())
			}
		}
	}
	for _, s := range valueobjects.AllSephirot() {
		rec, ok := sephiraRecords[s]
		if !ok {
			return pkgerrors.NewConfigurationError("missing sephira record for " + s.String())
		}
		if !rec.Pillar.IsValid() {
			return pkgerrors.NewConfigurationError("invalid pillar for " + s.String())
		}
	}
	for _, p := range treePaths {
		if !p.From.IsValid() || !p.To.IsValid() {
			return pkgerrors.NewConfigurationError("path references unknown sephira")
		}
	}
	return verifyVoiceTables()
}
