package models

// Account represents a single customer account record managed by the service.
// It is the only persisted resource type and flows unchanged between the
// HTTP layer, the service layer, and the repository.
type Account struct {
	// ID is the internal unique identifier of the account.
	// It is assigned by the database on creation and never reused
	// after deletion.
	ID int64 `json:"id"`

	// Name is the display name of the account holder. Required.
	Name string `json:"name"`

	// Email is the contact e-mail address. Required; checked for
	// presence only, not for format.
	Email string `json:"email"`

	// Address is the postal address of the account holder. Required.
	Address string `json:"address"`

	// PhoneNumber is the contact phone number. Required.
	PhoneNumber string `json:"phone_number"`

	// DateJoined is the calendar date the account was created.
	// Assigned by the database on creation and never altered by updates.
	DateJoined Date `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
