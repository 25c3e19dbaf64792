package service

import (
	"context"

	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/models"
)

// AccountService is the business-logic contract for Account records.
// It validates inbound entities before any repository call, so a rejected
// request never reaches the database.
type AccountService interface {
	// CreateAccount validates the client-supplied fields and persists a new
	// account. ID and DateJoined are assigned by the store.
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// GetAccount returns the account with the given id,
	// or store.ErrAccountNotFound.
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// ListAccounts returns all persisted accounts matching the filter.
	ListAccounts(ctx context.Context, filter store.AccountFilter) ([]models.Account, error)

	// UpdateAccount validates the payload and replaces the mutable fields
	// of an existing account. Returns store.ErrAccountNotFound when the id
	// references no record.
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// DeleteAccount removes an account; deleting a missing id is a no-op.
	DeleteAccount(ctx context.Context, id int64) error
}
