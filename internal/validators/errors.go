package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyAddress     = errors.New("address is required")
	ErrEmptyPhoneNumber = errors.New("phone_number is required")
	ErrInvalidAccountID = errors.New("invalid account ID")
)
