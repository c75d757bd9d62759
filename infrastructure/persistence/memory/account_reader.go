package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bomac1193/ophelian-os-sub001/application/ports"
)

type accountRecord struct {
	createdAt time.Time
	isAdmin   bool
}

// AccountReader is an in-memory implementation of ports.AccountReader.
// Character counts come straight from the genome repository; admin flags
// and creation times are registered explicitly.
type AccountReader struct {
	mu       sync.RWMutex
	accounts map[string]accountRecord
	genomes  ports.GenomeRepository
}

// NewAccountReader creates a reader backed by the given repository
func NewAccountReader(genomes ports.GenomeRepository) *AccountReader {
	return &AccountReader{
		accounts: make(map[string]accountRecord),
		genomes:  genomes,
	}
}

// Register records an account's creation time and admin flag. Unregistered
// accounts read as freshly created non-admins.
func (a *AccountReader) Register(ownerID string, createdAt time.Time, isAdmin bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts[ownerID] = accountRecord{createdAt: createdAt, isAdmin: isAdmin}
}

// CharacterCount returns how many genomes the account owns
func (a *AccountReader) CharacterCount(ctx context.Context, ownerID string) (int, error) {
	owned, err := a.genomes.GetByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(owned), nil
}

// CreatedAt returns when the account was created
func (a *AccountReader) CreatedAt(ctx context.Context, ownerID string) (time.Time, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if record, ok := a.accounts[ownerID]; ok {
		return record.createdAt, nil
	}
	return time.Time{}, nil
}

// IsAdmin reports whether the account has admin privileges
func (a *AccountReader) IsAdmin(ctx context.Context, ownerID string) (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.accounts[ownerID].isAdmin, nil
}
