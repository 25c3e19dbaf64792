package validators

import (
	"context"

	"github.com/MKhiriev/go-account-service/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the account holder's display name.
	FieldName = "name"

	// FieldEmail targets the contact e-mail address. Presence only;
	// format is not checked.
	FieldEmail = "email"

	// FieldAddress targets the postal address.
	FieldAddress = "address"

	// FieldPhoneNumber targets the contact phone number.
	FieldPhoneNumber = "phone_number"

	// FieldAccountID targets the server-assigned account identifier.
	// It is validated only for operations that reference an existing
	// record (update), never for creation.
	FieldAccountID = "id"
)

// AccountValidator implements the Validator interface for the Account model.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
// Both value and pointer forms of models.Account are accepted.
//
// Returns ErrUnsupportedType if obj is not an Account.
// Optional fields restrict validation to the named subset; when omitted,
// all client-supplied fields are validated.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateAccount validates a single Account model.
//
// Default validated fields (when none specified):
// Name, Email, Address, PhoneNumber (the client-supplied attributes).
// ID and DateJoined are server-assigned and never validated by default.
//
// Returns the first encountered validation error or nil.
func (v *AccountValidator) validateAccount(ctx context.Context, account models.Account, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAddress, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if account.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if account.Email == "" {
				return ErrEmptyEmail
			}
		case FieldAddress:
			if account.Address == "" {
				return ErrEmptyAddress
			}
		case FieldPhoneNumber:
			if account.PhoneNumber == "" {
				return ErrEmptyPhoneNumber
			}
		case FieldAccountID:
			if account.ID <= 0 {
				return ErrInvalidAccountID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
