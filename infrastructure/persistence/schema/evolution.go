// Package schema upgrades stored genome documents across schema versions.
// Documents carry their schemaVersion inline; reads pass through the
// migrator so old store files keep loading after the format moves on.
package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// CurrentVersion is the schema version written by the current code.
const CurrentVersion = "2.0"

// MigrationFunc transforms a decoded document in place between two
// adjacent schema versions.
type MigrationFunc func(doc map[string]interface{}) error

// Migration describes one schema step
type Migration struct {
	FromVersion string
	ToVersion   string
	Description string
	Up          MigrationFunc
}

// AppliedMigration records a migration that ran on some document
type AppliedMigration struct {
	FromVersion string    `json:"from_version"`
	ToVersion   string    `json:"to_version"`
	Description string    `json:"description"`
	AppliedAt   time.Time `json:"applied_at"`
}

// Migrator upgrades genome documents to the current schema version
type Migrator struct {
	migrations []Migration
	history    []AppliedMigration
}

// NewMigrator creates a migrator carrying the built-in migrations
func NewMigrator() *Migrator {
	m := &Migrator{}
	m.migrations = append(m.migrations, Migration{
		FromVersion: "1.0",
		ToVersion:   "2.0",
		Description: "fold flat orisha/sephira fields into configuration blocks",
		Up:          upgradeV1,
	})
	return m
}

// Register adds a migration step
func (m *Migrator) Register(migration Migration) error {
	if migration.FromVersion == migration.ToVersion {
		return fmt.Errorf("migration cannot target its own version %s", migration.FromVersion)
	}
	for _, existing := range m.migrations {
		if existing.FromVersion == migration.FromVersion {
			return fmt.Errorf("migration from %s already registered", migration.FromVersion)
		}
	}
	m.migrations = append(m.migrations, migration)
	return nil
}

// Upgrade brings a serialized genome document to the current schema
// version. Documents already current pass through untouched.
func (m *Migrator) Upgrade(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	version, _ := doc["schemaVersion"].(string)
	if version == "" {
		version = "1.0"
	}

	for version != CurrentVersion {
		migration := m.find(version)
		if migration == nil {
			return nil, fmt.Errorf("no migration path from schema %s", version)
		}
		if err := migration.Up(doc); err != nil {
			return nil, fmt.Errorf("migrating %s to %s: %w", migration.FromVersion, migration.ToVersion, err)
		}
		doc["schemaVersion"] = migration.ToVersion
		m.history = append(m.history, AppliedMigration{
			FromVersion: migration.FromVersion,
			ToVersion:   migration.ToVersion,
			Description: migration.Description,
			AppliedAt:   time.Now(),
		})
		version = migration.ToVersion
	}

	return json.Marshal(doc)
}

// History returns the migrations applied by this migrator instance
func (m *Migrator) History() []AppliedMigration {
	return append([]AppliedMigration(nil), m.history...)
}

func (m *Migrator) find(from string) *Migration {
	for i := range m.migrations {
		if m.migrations[i].FromVersion == from {
			return &m.migrations[i]
		}
	}
	return nil
}

// upgradeV1 lifts the flat 1.0 layout into the 2.0 block layout. Version
// 1.0 kept headOrisha, camino, sephira and daath at the top level and had
// no psychological state beyond the axis.
func upgradeV1(doc map[string]interface{}) error {
	if _, ok := doc["orishaConfiguration"]; !ok {
		orishaCfg := map[string]interface{}{
			"headOrisha":          doc["headOrisha"],
			"secondaryInfluences": []interface{}{},
		}
		if camino, ok := doc["camino"]; ok {
			orishaCfg["camino"] = camino
		}
		doc["orishaConfiguration"] = orishaCfg
		delete(doc, "headOrisha")
		delete(doc, "camino")
	}

	if _, ok := doc["kabbalisticPosition"]; !ok {
		position := map[string]interface{}{
			"primarySephira":    doc["sephira"],
			"pillar":            doc["pillar"],
			"daathRelationship": doc["daathRelationship"],
		}
		if position["daathRelationship"] == nil {
			position["daathRelationship"] = "seeking"
		}
		doc["kabbalisticPosition"] = position
		delete(doc, "sephira")
		delete(doc, "pillar")
		delete(doc, "daathRelationship")
	}

	if _, ok := doc["psychologicalState"]; !ok {
		axis := doc["hotCoolAxis"]
		if axis == nil {
			axis = 0.0
		}
		doc["psychologicalState"] = map[string]interface{}{
			"hotCoolAxis":        axis,
			"trajectory":         "emergence",
			"individuationLevel": 0.5,
			"shadowIntegration":  0.5,
			"activeArchetypes":   []interface{}{},
		}
		delete(doc, "hotCoolAxis")
	}

	return nil
}
