// Package statementservice manages business logic layer of statements.
package statementservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-fin/fin-api/internal/domain"
)

const dateLayout = "2006-01-02"

// Repo provides data access layer interface needed by statement service layer.
type Repo interface {
	Get(ctx context.Context, taxID string) (domain.Account, error)
	Append(ctx context.Context, taxID string, tx domain.Transaction) (domain.Transaction, error)
}

// Service facilitates statement service layer logic.
type Service struct {
	repo Repo
}

// New returns statement service struct to manage statement bussines logic.
func New(sr Repo) *Service {
	return &Service{repo: sr}
}

func validAmount(ctx context.Context, amount decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if amount.IsNegative() {
		l.Info().Str("amount", amount.String()).Msg("rejected negative amount")
		return domain.ErrNegativeAmount
	}

	if amount.IsZero() {
		return domain.ErrInvalidAmount
	}

	return nil
}

// Deposit appends a credit transaction with a server-assigned timestamp.
func (s *Service) Deposit(ctx context.Context, taxID string, amount decimal.Decimal, description string) (domain.Transaction, error) {
	if err := validAmount(ctx, amount); err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		Type:        domain.TypeCredit,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}

	return s.repo.Append(ctx, taxID, tx)
}

// Withdraw appends a debit transaction. The store rejects it when the
// balance is insufficient. Debits carry no description.
func (s *Service) Withdraw(ctx context.Context, taxID string, amount decimal.Decimal) (domain.Transaction, error) {
	if err := validAmount(ctx, amount); err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		Type:      domain.TypeDebit,
		Amount:    amount,
		CreatedAt: time.Now(),
	}

	return s.repo.Append(ctx, taxID, tx)
}

// Statement returns the account's full ordered transaction list.
func (s *Service) Statement(ctx context.Context, taxID string) ([]domain.Transaction, error) {
	account, err := s.repo.Get(ctx, taxID)
	if err != nil {
		return nil, err
	}

	return account.Statement, nil
}

// StatementByDate returns the transactions created on the given calendar
// day. Time-of-day is ignored on both sides of the comparison.
func (s *Service) StatementByDate(ctx context.Context, taxID string, date time.Time) ([]domain.Transaction, error) {
	account, err := s.repo.Get(ctx, taxID)
	if err != nil {
		return nil, err
	}

	day := date.Format(dateLayout)
	filtered := []domain.Transaction{}

	for _, tx := range account.Statement {
		if tx.CreatedAt.Format(dateLayout) == day {
			filtered = append(filtered, tx)
		}
	}

	return filtered, nil
}

// Balance computes the account's net balance from its statement.
func (s *Service) Balance(ctx context.Context, taxID string) (decimal.Decimal, error) {
	account, err := s.repo.Get(ctx, taxID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return domain.Balance(account.Statement), nil
}
