// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/go-fin/fin-api/internal/domain"
)

// RepoMem holds every account in process memory for the process lifetime.
// One coarse lock guards the whole collection; every access is short-lived.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string // tax ids in insertion order
}

// NewRepoMem returns an empty account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{accounts: make(map[string]*domain.Account)}
}

// Create stores a new account with a fresh id and an empty statement.
func (r *RepoMem) Create(ctx context.Context, taxID, name string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[taxID]; ok {
		return domain.Account{}, domain.ErrCustomerAlreadyExists
	}

	a := &domain.Account{
		ID:        uuid.NewString(),
		TaxID:     taxID,
		Name:      name,
		Statement: []domain.Transaction{},
	}

	r.accounts[taxID] = a
	r.order = append(r.order, taxID)

	return clone(a), nil
}

// Get returns the account with the given taxpayer id.
func (r *RepoMem) Get(ctx context.Context, taxID string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[taxID]
	if !ok {
		return domain.Account{}, domain.ErrCustomerNotFound
	}

	return clone(a), nil
}

// List returns all accounts in insertion order.
func (r *RepoMem) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.Account{}

	for _, taxID := range r.order {
		items = append(items, clone(r.accounts[taxID]))
	}

	return items, nil
}

// UpdateName changes the account's display name and returns the changed account.
func (r *RepoMem) UpdateName(ctx context.Context, taxID, name string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[taxID]
	if !ok {
		return domain.Account{}, domain.ErrCustomerNotFound
	}

	a.Name = name

	return clone(a), nil
}

// Delete removes the account and its statement by taxpayer id.
func (r *RepoMem) Delete(ctx context.Context, taxID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[taxID]; !ok {
		return domain.ErrCustomerNotFound
	}

	delete(r.accounts, taxID)

	for i, id := range r.order {
		if id == taxID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// Append adds a transaction to the account's statement. Debits that would
// drive the balance negative are rejected; the check and the append run
// under the same lock so the balance invariant holds under parallel requests.
func (r *RepoMem) Append(ctx context.Context, taxID string, tx domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[taxID]
	if !ok {
		return domain.Transaction{}, domain.ErrCustomerNotFound
	}

	if tx.Type == domain.TypeDebit && domain.Balance(a.Statement).LessThan(tx.Amount) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}

	a.Statement = append(a.Statement, tx)

	return tx, nil
}

// clone copies the account so callers never share the stored statement slice.
func clone(a *domain.Account) domain.Account {
	c := *a
	c.Statement = make([]domain.Transaction, len(a.Statement))
	copy(c.Statement, a.Statement)

	return c
}
