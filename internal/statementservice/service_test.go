package statementservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-fin/fin-api/internal/accountrepo"
	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/randompkg"
)

func newServiceWithAccount(t *testing.T) (*Service, *accountrepo.RepoMem, string) {
	t.Helper()

	repo := accountrepo.NewRepoMem()

	account, err := repo.Create(context.Background(), randompkg.TaxID(), randompkg.Name())
	require.NoError(t, err)

	return New(repo), repo, account.TaxID
}

func TestDeposit(t *testing.T) {
	s, _, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	tx, err := s.Deposit(ctx, taxID, decimal.NewFromInt(100), "init")
	require.NoError(t, err)
	require.Equal(t, domain.TypeCredit, tx.Type)
	require.Equal(t, "init", tx.Description)
	require.WithinDuration(t, time.Now(), tx.CreatedAt, time.Second)

	statement, err := s.Statement(ctx, taxID)
	require.NoError(t, err)
	require.Len(t, statement, 1)
}

func TestDepositRejectsBadAmounts(t *testing.T) {
	s, _, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	_, err := s.Deposit(ctx, taxID, decimal.NewFromInt(-5), "init")
	require.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = s.Deposit(ctx, taxID, decimal.Zero, "init")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	statement, err := s.Statement(ctx, taxID)
	require.NoError(t, err)
	require.Empty(t, statement)
}

func TestDepositUnknownCustomer(t *testing.T) {
	s := New(accountrepo.NewRepoMem())

	_, err := s.Deposit(context.Background(), randompkg.TaxID(), decimal.NewFromInt(10), "init")
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestWithdraw(t *testing.T) {
	s, _, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	_, err := s.Deposit(ctx, taxID, decimal.NewFromInt(100), "init")
	require.NoError(t, err)

	_, err = s.Withdraw(ctx, taxID, decimal.NewFromInt(150))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	statement, err := s.Statement(ctx, taxID)
	require.NoError(t, err)
	require.Len(t, statement, 1)

	tx, err := s.Withdraw(ctx, taxID, decimal.NewFromInt(50))
	require.NoError(t, err)
	require.Equal(t, domain.TypeDebit, tx.Type)
	require.Empty(t, tx.Description)

	balance, err := s.Balance(ctx, taxID)
	require.NoError(t, err)
	require.True(t, balance.Equal(decimal.NewFromInt(50)))
}

func TestWithdrawRejectsBadAmounts(t *testing.T) {
	s, _, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	_, err := s.Withdraw(ctx, taxID, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = s.Withdraw(ctx, taxID, decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestBalanceFoldsAllOperations(t *testing.T) {
	s, _, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	want := decimal.Zero

	for i := 0; i < 10; i++ {
		amount := randompkg.AmountBetween(1, 100)

		_, err := s.Deposit(ctx, taxID, amount, "deposit")
		require.NoError(t, err)

		want = want.Add(amount)
	}

	for i := 0; i < 5; i++ {
		amount := randompkg.AmountBetween(0.01, 1)

		_, err := s.Withdraw(ctx, taxID, amount)
		require.NoError(t, err)

		want = want.Sub(amount)
	}

	balance, err := s.Balance(ctx, taxID)
	require.NoError(t, err)
	require.True(t, balance.Equal(want), "balance %s, want %s", balance, want)
}

func TestStatementByDate(t *testing.T) {
	s, repo, taxID := newServiceWithAccount(t)
	ctx := context.Background()

	today := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	// Seed the store directly so the timestamps are controlled.
	seed := []domain.Transaction{
		{Type: domain.TypeCredit, Amount: decimal.NewFromInt(100), Description: "morning", CreatedAt: today.Add(8 * time.Hour)},
		{Type: domain.TypeCredit, Amount: decimal.NewFromInt(20), Description: "night", CreatedAt: today.Add(23*time.Hour + 59*time.Minute)},
		{Type: domain.TypeCredit, Amount: decimal.NewFromInt(30), Description: "day before", CreatedAt: today.Add(-time.Minute)},
		{Type: domain.TypeCredit, Amount: decimal.NewFromInt(40), Description: "day after", CreatedAt: today.Add(25 * time.Hour)},
	}

	for _, tx := range seed {
		_, err := repo.Append(ctx, taxID, tx)
		require.NoError(t, err)
	}

	testCases := []struct {
		name             string
		date             time.Time
		wantDescriptions []string
	}{
		{
			name:             "MatchesCalendarDayIgnoringTime",
			date:             today,
			wantDescriptions: []string{"morning", "night"},
		},
		{
			name:             "DayBefore",
			date:             today.AddDate(0, 0, -1),
			wantDescriptions: []string{"day before"},
		},
		{
			name:             "NoMatches",
			date:             today.AddDate(0, 1, 0),
			wantDescriptions: []string{},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			statement, err := s.StatementByDate(ctx, taxID, tc.date)
			require.NoError(t, err)

			descriptions := []string{}
			for _, tx := range statement {
				descriptions = append(descriptions, tx.Description)
			}

			require.Equal(t, tc.wantDescriptions, descriptions)
		})
	}
}

func TestStatementUnknownCustomer(t *testing.T) {
	s := New(accountrepo.NewRepoMem())
	ctx := context.Background()

	_, err := s.Statement(ctx, randompkg.TaxID())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = s.StatementByDate(ctx, randompkg.TaxID(), time.Now())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = s.Balance(ctx, randompkg.TaxID())
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
