package store

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// AccountRepository is the persistence contract for Account records.
// Implementations own all SQL; callers never see driver-level errors
// directly, only the package's sentinel errors or wrapped causes.
type AccountRepository interface {
	// CreateAccount persists a new account and returns it with the
	// server-assigned ID and DateJoined populated.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccount returns the account with the given id,
	// or ErrAccountNotFound.
	FindAccount(ctx context.Context, id int64) (models.Account, error)

	// FindAllAccounts returns every persisted account in insertion order.
	// When filter.Name is non-empty only accounts with that exact name
	// are returned. An empty result is a nil-error empty slice.
	FindAllAccounts(ctx context.Context, filter AccountFilter) ([]models.Account, error)

	// UpdateAccount replaces the mutable fields of the account identified
	// by account.ID and returns the stored row. ID and DateJoined are
	// never modified. Returns ErrAccountNotFound if no such record exists.
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// DeleteAccount removes the account with the given id.
	// Deleting a non-existent id is a successful no-op.
	DeleteAccount(ctx context.Context, id int64) error
}

// AccountFilter narrows FindAllAccounts results. The zero value matches
// every account.
type AccountFilter struct {
	// Name, when non-empty, restricts the result to accounts whose name
	// equals it exactly.
	Name string
}
