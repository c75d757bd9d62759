package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeLiftsFlatLayout(t *testing.T) {
	m := NewMigrator()
	legacy := []byte(`{
		"id": "abc",
		"schemaVersion": "1.0",
		"headOrisha": "Ṣàngó",
		"camino": "Alafin",
		"sephira": "Geburah",
		"pillar": "Severity",
		"hotCoolAxis": 0.9
	}`)

	upgraded, err := m.Upgrade(legacy)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(upgraded, &doc))

	assert.Equal(t, CurrentVersion, doc["schemaVersion"])
	assert.NotContains(t, doc, "headOrisha")
	assert.NotContains(t, doc, "sephira")
	assert.NotContains(t, doc, "hotCoolAxis")

	orishaCfg := doc["orishaConfiguration"].(map[string]interface{})
	assert.Equal(t, "Ṣàngó", orishaCfg["headOrisha"])
	assert.Equal(t, "Alafin", orishaCfg["camino"])

	position := doc["kabbalisticPosition"].(map[string]interface{})
	assert.Equal(t, "Geburah", position["primarySephira"])
	assert.Equal(t, "seeking", position["daathRelationship"])

	psyche := doc["psychologicalState"].(map[string]interface{})
	assert.Equal(t, 0.9, psyche["hotCoolAxis"])
	assert.Equal(t, "emergence", psyche["trajectory"])

	history := m.History()
	require.Len(t, history, 1)
	assert.Equal(t, "1.0", history[0].FromVersion)
	assert.Equal(t, CurrentVersion, history[0].ToVersion)
}

func TestUpgradeMissingVersionReadsAsV1(t *testing.T) {
	m := NewMigrator()

	upgraded, err := m.Upgrade([]byte(`{"headOrisha": "Ọya", "sephira": "Daath"}`))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(upgraded, &doc))
	assert.Equal(t, CurrentVersion, doc["schemaVersion"])
}

func TestUpgradeCurrentPassesThrough(t *testing.T) {
	m := NewMigrator()
	current := []byte(`{"schemaVersion": "` + CurrentVersion + `", "name": "Ada"}`)

	upgraded, err := m.Upgrade(current)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(upgraded, &doc))
	assert.Equal(t, "Ada", doc["name"])
	assert.Empty(t, m.History())
}

func TestUpgradeUnknownVersionFails(t *testing.T) {
	m := NewMigrator()
	_, err := m.Upgrade([]byte(`{"schemaVersion": "0.4"}`))
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	m := NewMigrator()

	err := m.Register(Migration{
		FromVersion: "1.0",
		ToVersion:   CurrentVersion,
		Up:          func(doc map[string]interface{}) error { return nil },
	})
	assert.Error(t, err)

	err = m.Register(Migration{
		FromVersion: "1.5",
		ToVersion:   "1.5",
		Up:          func(doc map[string]interface{}) error { return nil },
	})
	assert.Error(t, err)
}
