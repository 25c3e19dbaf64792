package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
)

// ── Mock AccountRepository ────────────────────────────────────────────────────

// mockAccountRepository implements store.AccountRepository for unit tests.
// Each method field can be overridden per test case.
type mockAccountRepository struct {
	createFn  func(ctx context.Context, account models.Account) (models.Account, error)
	findFn    func(ctx context.Context, id int64) (models.Account, error)
	findAllFn func(ctx context.Context, filter store.AccountFilter) ([]models.Account, error)
	updateFn  func(ctx context.Context, account models.Account) (models.Account, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	return m.createFn(ctx, account)
}

func (m *mockAccountRepository) FindAccount(ctx context.Context, id int64) (models.Account, error) {
	return m.findFn(ctx, id)
}

func (m *mockAccountRepository) FindAllAccounts(ctx context.Context, filter store.AccountFilter) ([]models.Account, error) {
	return m.findAllFn(ctx, filter)
}

func (m *mockAccountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	return m.updateFn(ctx, account)
}

func (m *mockAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// validAccount is a convenience fixture used across multiple tests.
func validAccount() models.Account {
	return models.Account{
		Name:        "John Doe",
		Email:       "john@doe.com",
		Address:     "123 Main St.",
		PhoneNumber: "555-1212",
	}
}

func newService(repo store.AccountRepository) AccountService {
	return NewAccountService(repo, logger.Nop())
}

// ── CreateAccount ─────────────────────────────────────────────────────────────

func TestCreateAccount_AssignsServerFields(t *testing.T) {
	repo := &mockAccountRepository{
		createFn: func(_ context.Context, account models.Account) (models.Account, error) {
			account.ID = 1
			account.DateJoined = models.Today()
			return account, nil
		},
	}

	created, err := newService(repo).CreateAccount(context.Background(), validAccount())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.False(t, created.DateJoined.IsZero())
}

func TestCreateAccount_ValidationFailureSkipsRepository(t *testing.T) {
	repoCalled := false
	repo := &mockAccountRepository{
		createFn: func(_ context.Context, account models.Account) (models.Account, error) {
			repoCalled = true
			return account, nil
		},
	}

	account := validAccount()
	account.Email = ""

	_, err := newService(repo).CreateAccount(context.Background(), account)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrEmptyEmail)
	assert.False(t, repoCalled, "repository must not be reached for invalid payloads")
}

func TestCreateAccount_RepositoryError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockAccountRepository{
		createFn: func(_ context.Context, _ models.Account) (models.Account, error) {
			return models.Account{}, wantErr
		},
	}

	_, err := newService(repo).CreateAccount(context.Background(), validAccount())
	require.ErrorIs(t, err, wantErr)
}

// ── GetAccount / ListAccounts ─────────────────────────────────────────────────

func TestGetAccount_NotFoundPassesThrough(t *testing.T) {
	repo := &mockAccountRepository{
		findFn: func(_ context.Context, _ int64) (models.Account, error) {
			return models.Account{}, store.ErrAccountNotFound
		},
	}

	_, err := newService(repo).GetAccount(context.Background(), 99)
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestListAccounts_ForwardsFilter(t *testing.T) {
	var gotFilter store.AccountFilter
	repo := &mockAccountRepository{
		findAllFn: func(_ context.Context, filter store.AccountFilter) ([]models.Account, error) {
			gotFilter = filter
			return []models.Account{}, nil
		},
	}

	accounts, err := newService(repo).ListAccounts(context.Background(), store.AccountFilter{Name: "John Doe"})
	require.NoError(t, err)
	assert.Empty(t, accounts)
	assert.Equal(t, "John Doe", gotFilter.Name)
}

// ── UpdateAccount ─────────────────────────────────────────────────────────────

func TestUpdateAccount_RequiresID(t *testing.T) {
	repoCalled := false
	repo := &mockAccountRepository{
		updateFn: func(_ context.Context, account models.Account) (models.Account, error) {
			repoCalled = true
			return account, nil
		},
	}

	_, err := newService(repo).UpdateAccount(context.Background(), validAccount())
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrInvalidAccountID)
	assert.False(t, repoCalled)
}

func TestUpdateAccount_NotFoundPassesThrough(t *testing.T) {
	repo := &mockAccountRepository{
		updateFn: func(_ context.Context, _ models.Account) (models.Account, error) {
			return models.Account{}, store.ErrAccountNotFound
		},
	}

	account := validAccount()
	account.ID = 99

	_, err := newService(repo).UpdateAccount(context.Background(), account)
	require.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestUpdateAccount_Success(t *testing.T) {
	repo := &mockAccountRepository{
		updateFn: func(_ context.Context, account models.Account) (models.Account, error) {
			return account, nil
		},
	}

	account := validAccount()
	account.ID = 1
	account.Name = "John Updated"

	updated, err := newService(repo).UpdateAccount(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, "John Updated", updated.Name)
}

// ── DeleteAccount ─────────────────────────────────────────────────────────────

func TestDeleteAccount_Success(t *testing.T) {
	var gotID int64
	repo := &mockAccountRepository{
		deleteFn: func(_ context.Context, id int64) error {
			gotID = id
			return nil
		},
	}

	require.NoError(t, newService(repo).DeleteAccount(context.Background(), 7))
	assert.Equal(t, int64(7), gotID)
}

func TestDeleteAccount_RepositoryError(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockAccountRepository{
		deleteFn: func(_ context.Context, _ int64) error {
			return wantErr
		},
	}

	err := newService(repo).DeleteAccount(context.Background(), 7)
	require.ErrorIs(t, err, wantErr)
}
