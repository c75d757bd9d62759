package ports

import (
	"context"
	"time"

	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/events"
)

// GenomeRepository defines the interface for genome persistence.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation.
type GenomeRepository interface {
	// Save persists a genome (create or update) under an owner
	Save(ctx context.Context, ownerID string, genome *entities.Genome) error

	// GetByID retrieves a genome by its ID
	GetByID(ctx context.Context, id valueobjects.GenomeID) (*entities.Genome, error)

	// GetByOwner retrieves all genomes belonging to an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.Genome, error)

	// Delete removes a genome
	Delete(ctx context.Context, id valueobjects.GenomeID) error

	// List retrieves genomes matching the given criteria
	List(ctx context.Context, criteria ListCriteria) ([]*entities.Genome, error)
}

// ListCriteria defines listing parameters
type ListCriteria struct {
	OwnerID string
	Tags    []string
	Orisha  string
	Limit   int
	Offset  int
}

// AccountReader exposes the account facts the disclosure gate rules over.
type AccountReader interface {
	// CharacterCount returns how many characters the account owns
	CharacterCount(ctx context.Context, ownerID string) (int, error)

	// CreatedAt returns when the account was created
	CreatedAt(ctx context.Context, ownerID string) (time.Time, error)

	// IsAdmin reports whether the account has admin privileges
	IsAdmin(ctx context.Context, ownerID string) (bool, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// EventBus defines the interface for publishing and subscribing to domain events
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for an event type
	Subscribe(eventType string, handler EventHandler) error
}

// EventHandler defines the interface for handling domain events
type EventHandler interface {
	// Handle processes an event
	Handle(ctx context.Context, event events.DomainEvent) error

	// CanHandle checks if this handler can process the event
	CanHandle(eventType string) bool
}

// Cache defines the interface for caching
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache
	Clear(ctx context.Context) error
}
