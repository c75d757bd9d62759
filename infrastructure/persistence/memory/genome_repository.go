// Package memory provides in-memory adapters for the application ports.
// Genomes are stored serialized so that readers get isolated copies and the
// JSON round-trip stays exercised on every access.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
	pkgerrors "github.com/bomac1193/ophelian-os-sub001/pkg/errors"
)

type storedGenome struct {
	ownerID string
	doc     string
	seq     int
}

// GenomeRepository is an in-memory implementation of ports.GenomeRepository
type GenomeRepository struct {
	mu      sync.RWMutex
	genomes map[string]storedGenome
	nextSeq int
}

// NewGenomeRepository creates an empty in-memory repository
func NewGenomeRepository() *GenomeRepository {
	return &GenomeRepository{
		genomes: make(map[string]storedGenome),
	}
}

// Save persists a genome under an owner
func (r *GenomeRepository) Save(ctx context.Context, ownerID string, g *entities.Genome) error {
	doc, err := genome.Export(g, genome.ExportOptions{Format: genome.FormatJSON})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := g.ID().String()
	seq := r.nextSeq
	if existing, ok := r.genomes[key]; ok {
		seq = existing.seq
	} else {
		r.nextSeq++
	}
	r.genomes[key] = storedGenome{ownerID: ownerID, doc: doc, seq: seq}
	return nil
}

// GetByID retrieves a genome by its ID
func (r *GenomeRepository) GetByID(ctx context.Context, id valueobjects.GenomeID) (*entities.Genome, error) {
	r.mu.RLock()
	stored, ok := r.genomes[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, pkgerrors.NewNotFoundError("genome " + id.String())
	}
	return genome.ParseGenome(stored.doc)
}

// GetByOwner retrieves all genomes belonging to an owner, oldest first
func (r *GenomeRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Genome, error) {
	return r.List(ctx, ports.ListCriteria{OwnerID: ownerID})
}

// Delete removes a genome
func (r *GenomeRepository) Delete(ctx context.Context, id valueobjects.GenomeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.genomes[key]; !ok {
		return pkgerrors.NewNotFoundError("genome " + key)
	}
	delete(r.genomes, key)
	return nil
}

// List retrieves genomes matching the given criteria, in insertion order
func (r *GenomeRepository) List(ctx context.Context, criteria ports.ListCriteria) ([]*entities.Genome, error) {
	r.mu.RLock()
	matched := make([]storedGenome, 0, len(r.genomes))
	for _, stored := range r.genomes {
		if criteria.OwnerID != "" && stored.ownerID != criteria.OwnerID {
			continue
		}
		matched = append(matched, stored)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	results := make([]*entities.Genome, 0, len(matched))
	for _, stored := range matched {
		g, err := genome.ParseGenome(stored.doc)
		if err != nil {
			return nil, err
		}
		if !matchesCriteria(g, criteria) {
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

func matchesCriteria(g *entities.Genome, criteria ports.ListCriteria) bool {
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
