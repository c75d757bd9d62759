package events

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
)

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetEventID() string      { return e.EventID }
func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// newEventID mints a sortable event identifier. Event IDs are bookkeeping,
// not genome content, so they sit outside the determinism contract.
func newEventID(ts time.Time) string {
	entropy := rand.New(rand.NewSource(ts.UnixNano()))
	return ulid.MustNew(ulid.Timestamp(ts), entropy).String()
}

func newBase(aggregateID, eventType string, ts time.Time) BaseEvent {
	return BaseEvent{
		EventID:     newEventID(ts),
		AggregateID: aggregateID,
		EventType:   eventType,
		Timestamp:   ts,
		Version:     1,
	}
}

// Genome Events

// GenomeGenerated is raised when a fresh genome is derived
type GenomeGenerated struct {
	BaseEvent
	GenomeID   valueobjects.GenomeID `json:"genome_id"`
	Name       string                `json:"name"`
	HeadOrisha valueobjects.Orisha   `json:"head_orisha"`
	Sephira    valueobjects.Sephira  `json:"sephira"`
	Seed       valueobjects.Seed     `json:"seed"`
}

// NewGenomeGenerated creates a GenomeGenerated event
func NewGenomeGenerated(id valueobjects.GenomeID, name string, head valueobjects.Orisha, sephira valueobjects.Sephira, seed valueobjects.Seed, ts time.Time) GenomeGenerated {
	return GenomeGenerated{
		BaseEvent:  newBase(id.String(), "genome.generated", ts),
		GenomeID:   id,
		Name:       name,
		HeadOrisha: head,
		Sephira:    sephira,
		Seed:       seed,
	}
}

// GenomeRerolled is raised when a genome is re-derived from its seed with
// different overrides
type GenomeRerolled struct {
	BaseEvent
	GenomeID   valueobjects.GenomeID `json:"genome_id"`
	HeadOrisha valueobjects.Orisha   `json:"head_orisha"`
	Seed       valueobjects.Seed     `json:"seed"`
}

// NewGenomeRerolled creates a GenomeRerolled event
func NewGenomeRerolled(id valueobjects.GenomeID, head valueobjects.Orisha, seed valueobjects.Seed, ts time.Time) GenomeRerolled {
	return GenomeRerolled{
		BaseEvent:  newBase(id.String(), "genome.rerolled", ts),
		GenomeID:   id,
		HeadOrisha: head,
		Seed:       seed,
	}
}

// GenomePatched is raised when mutable genome fields are updated
type GenomePatched struct {
	BaseEvent
	GenomeID valueobjects.GenomeID `json:"genome_id"`
	Fields   []string              `json:"fields"`
}

// NewGenomePatched creates a GenomePatched event
func NewGenomePatched(id valueobjects.GenomeID, fields []string, ts time.Time) GenomePatched {
	return GenomePatched{
		BaseEvent: newBase(id.String(), "genome.patched", ts),
		GenomeID:  id,
		Fields:    fields,
	}
}

// LoreSynthesized is raised when relationship lore is produced for a pair
type LoreSynthesized struct {
	BaseEvent
	Source       string                         `json:"source"`
	Target       string                         `json:"target"`
	Relationship valueobjects.RelationshipType  `json:"relationship"`
}

// NewLoreSynthesized creates a LoreSynthesized event
func NewLoreSynthesized(source, target string, rel valueobjects.RelationshipType, ts time.Time) LoreSynthesized {
	return LoreSynthesized{
		BaseEvent:    newBase(source+"/"+target, "lore.synthesized", ts),
		Source:       source,
		Target:       target,
		Relationship: rel,
	}
}
