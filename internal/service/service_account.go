package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
	"github.com/MKhiriev/go-account-service/internal/validators"
	"github.com/MKhiriev/go-account-service/models"
)

type accountService struct {
	repository store.AccountRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewAccountService constructs the [AccountService] backed by the given
// repository. Validation runs before every write so invalid payloads never
// produce a database round-trip.
func NewAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	logger.Debug().Msg("creating account service")
	return &accountService{
		repository: repository,
		validator:  validators.NewAccountValidator(),
		logger:     logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, account); err != nil {
		log.Debug().Err(err).Msg("account payload rejected by validation")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.repository.CreateAccount(ctx, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("error creating account: %w", err)
	}

	log.Debug().Int64("id", created.ID).Msg("account created")

	return created, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	found, err := s.repository.FindAccount(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("error finding account %d: %w", id, err)
	}

	return found, nil
}

func (s *accountService) ListAccounts(ctx context.Context, filter store.AccountFilter) ([]models.Account, error) {
	accounts, err := s.repository.FindAllAccounts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}

	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	// the id is validated alongside the client fields: updates must
	// reference an existing record
	if err := s.validator.Validate(ctx, account,
		validators.FieldAccountID,
		validators.FieldName,
		validators.FieldEmail,
		validators.FieldAddress,
		validators.FieldPhoneNumber,
	); err != nil {
		log.Debug().Err(err).Msg("account payload rejected by validation")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.repository.UpdateAccount(ctx, account)
	if err != nil {
		return models.Account{}, fmt.Errorf("error updating account %d: %w", account.ID, err)
	}

	log.Debug().Int64("id", updated.ID).Msg("account updated")

	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.repository.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("error deleting account %d: %w", id, err)
	}

	return nil
}
