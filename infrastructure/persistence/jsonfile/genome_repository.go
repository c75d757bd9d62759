// Package jsonfile persists genomes as one JSON document per file under a
// store directory. It backs the CLI so generated characters survive between
// invocations without a database.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	"github.com/bomac1193/ophelian-os-sub001/infrastructure/persistence/schema"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

// envelope wraps a genome document with its ownership metadata
type envelope struct {
	OwnerID string          `json:"ownerId"`
	SavedAt time.Time       `json:"savedAt"`
	Genome  json.RawMessage `json:"genome"`
}

// GenomeRepository is a file-backed implementation of ports.GenomeRepository
type GenomeRepository struct {
	mu       sync.Mutex
	dir      string
	migrator *schema.Migrator
}

// NewGenomeRepository creates a repository rooted at dir, creating the
// directory if needed.
func NewGenomeRepository(dir string) (*GenomeRepository, error) {
	if dir == "" {
		return nil, pkgerrors.NewConfigurationError("store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.NewConfigurationError("creating store directory").WithCause(err)
	}
	return &GenomeRepository{dir: dir, migrator: schema.NewMigrator()}, nil
}

func (r *GenomeRepository) pathFor(id string) string {
	return filepath.Join(r.dir, id+".json")
}

// Save persists a genome under an owner
func (r *GenomeRepository) Save(ctx context.Context, ownerID string, g *entities.Genome) error {
	doc, err := genome.Export(g, genome.ExportOptions{Format: genome.FormatJSON})
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(envelope{
		OwnerID: ownerID,
		SavedAt: time.Now().UTC(),
		Genome:  json.RawMessage(doc),
	}, "", "  ")
	if err != nil {
		return pkgerrors.NewInternalError("marshaling genome envelope").WithCause(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.pathFor(g.ID().String())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return pkgerrors.NewInternalError("writing genome file").WithCause(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return pkgerrors.NewInternalError("committing genome file").WithCause(err)
	}
	return nil
}

func (r *GenomeRepository) read(path string) (envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return envelope{}, pkgerrors.NewNotFoundError("genome " + strings.TrimSuffix(filepath.Base(path), ".json"))
		}
		return envelope{}, pkgerrors.NewInternalError("reading genome file").WithCause(err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, pkgerrors.NewInternalError("parsing genome envelope").WithCause(err)
	}
	return env, nil
}

// parse upgrades a stored document to the current schema and decodes it
func (r *GenomeRepository) parse(raw json.RawMessage) (*entities.Genome, error) {
	upgraded, err := r.migrator.Upgrade(raw)
	if err != nil {
		return nil, pkgerrors.NewInternalError("upgrading genome document").WithCause(err)
	}
	return genome.ParseGenome(string(upgraded))
}

// GetByID retrieves a genome by its ID
func (r *GenomeRepository) GetByID(ctx context.Context, id valueobjects.GenomeID) (*entities.Genome, error) {
	r.mu.Lock()
	env, err := r.read(r.pathFor(id.String()))
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.parse(env.Genome)
}

// GetByOwner retrieves all genomes belonging to an owner, oldest save first
func (r *GenomeRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Genome, error) {
	return r.List(ctx, ports.ListCriteria{OwnerID: ownerID})
}

// Delete removes a genome
func (r *GenomeRepository) Delete(ctx context.Context, id valueobjects.GenomeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.pathFor(id.String()))
	if os.IsNotExist(err) {
		return pkgerrors.NewNotFoundError("genome " + id.String())
	}
	if err != nil {
		return pkgerrors.NewInternalError("deleting genome file").WithCause(err)
	}
	return nil
}

// List retrieves genomes matching the given criteria
func (r *GenomeRepository) List(ctx context.Context, criteria ports.ListCriteria) ([]*entities.Genome, error) {
	r.mu.Lock()
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.mu.Unlock()
		return nil, pkgerrors.NewInternalError("listing store directory").WithCause(err)
	}

	type loaded struct {
		env envelope
	}
	var envelopes []loaded
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		env, err := r.read(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			r.mu.Unlock()
			return nil, err
		}
		if criteria.OwnerID != "" && env.OwnerID != criteria.OwnerID {
			continue
		}
		envelopes = append(envelopes, loaded{env: env})
	}
	r.mu.Unlock()

	sort.Slice(envelopes, func(i, j int) bool {
		return envelopes[i].env.SavedAt.Before(envelopes[j].env.SavedAt)
	})

	var results []*entities.Genome
	for _, l := range envelopes {
		g, err := r.parse(l.env.Genome)
		if err != nil {
			return nil, err
		}
		if !matches(g, criteria) {
			continue
		}
		results = append(results, g)
	}

	if criteria.Offset > 0 {
		if criteria.Offset >= len(results) {
			return nil, nil
		}
		results = results[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(results) {
		results = results[:criteria.Limit]
	}
	return results, nil
}

func matches(g *entities.Genome, criteria ports.ListCriteria) bool {
	if criteria.Orisha != "" && string(g.OrishaConfiguration().HeadOrisha) != criteria.Orisha {
		return false
	}
	if len(criteria.Tags) > 0 {
		tagSet := make(map[string]bool, len(g.Tags()))
		for _, tag := range g.Tags() {
			tagSet[tag] = true
		}
		for _, want := range criteria.Tags {
			if !tagSet[want] {
				return false
			}
		}
	}
	return true
}
