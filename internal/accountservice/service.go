// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/go-fin/fin-api/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(ctx context.Context, taxID, name string) (domain.Account, error)
	Get(ctx context.Context, taxID string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateName(ctx context.Context, taxID, name string) (domain.Account, error)
	Delete(ctx context.Context, taxID string) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns an account for the given taxpayer id and name.
func (s *Service) Create(ctx context.Context, taxID, name string) (domain.Account, error) {
	account, err := s.repo.Create(ctx, taxID, name)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns the account for the given taxpayer id.
func (s *Service) Get(ctx context.Context, taxID string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, taxID)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Update changes the account's display name.
func (s *Service) Update(ctx context.Context, taxID, name string) (domain.Account, error) {
	account, err := s.repo.UpdateName(ctx, taxID, name)
	if err != nil {
		return account, err
	}

	return account, nil
}

// Delete removes the account and returns the remaining accounts.
func (s *Service) Delete(ctx context.Context, taxID string) ([]domain.Account, error) {
	if err := s.repo.Delete(ctx, taxID); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}
