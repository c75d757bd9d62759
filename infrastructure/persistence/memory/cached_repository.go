package memory

import (
	"context"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/core/valueobjects"
	"github.com/bomac1193/ophelian-os-sub001/domain/genome"
)

const cachedDocTTL = 300 // seconds

// CachedGenomeRepository decorates a GenomeRepository with a read-through
// cache on GetByID. Documents are cached serialized, so cache hits still
// hand out isolated entities.
type CachedGenomeRepository struct {
	inner ports.GenomeRepository
	cache ports.Cache
}

// NewCachedGenomeRepository wraps a repository with the given cache
func NewCachedGenomeRepository(inner ports.GenomeRepository, cache ports.Cache) *CachedGenomeRepository {
	return &CachedGenomeRepository{inner: inner, cache: cache}
}

// Save persists a genome and refreshes the cached document
func (r *CachedGenomeRepository) Save(ctx context.Context, ownerID string, g *entities.Genome) error {
	if err := r.inner.Save(ctx, ownerID, g); err != nil {
		return err
	}
	if doc, err := genome.Export(g, genome.ExportOptions{Format: genome.FormatJSON}); err == nil {
		_ = r.cache.Set(ctx, g.ID().String(), doc, cachedDocTTL)
	}
	return nil
}

// GetByID retrieves a genome, serving repeated reads from cache
func (r *CachedGenomeRepository) GetByID(ctx context.Context, id valueobjects.GenomeID) (*entities.Genome, error) {
	if cached, ok := r.cache.Get(ctx, id.String()); ok {
		if doc, ok := cached.(string); ok {
			if g, err := genome.ParseGenome(doc); err == nil {
				return g, nil
			}
		}
	}

	g, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc, err := genome.Export(g, genome.ExportOptions{Format: genome.FormatJSON}); err == nil {
		_ = r.cache.Set(ctx, id.String(), doc, cachedDocTTL)
	}
	return g, nil
}

// GetByOwner retrieves all genomes belonging to an owner
func (r *CachedGenomeRepository) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Genome, error) {
	return r.inner.GetByOwner(ctx, ownerID)
}

// Delete removes a genome and evicts its cached document
func (r *CachedGenomeRepository) Delete(ctx context.Context, id valueobjects.GenomeID) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	return r.cache.Delete(ctx, id.String())
}

// List retrieves genomes matching the given criteria
func (r *CachedGenomeRepository) List(ctx context.Context, criteria ports.ListCriteria) ([]*entities.Genome, error) {
	return r.inner.List(ctx, criteria)
}
