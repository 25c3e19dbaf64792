package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/models"
)

// accountColumns is the canonical column order shared by every query that
// reads account rows. scanAccount must stay in sync with it.
var accountColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

const accountsTable = "accounts"

const returningAccountColumns = "RETURNING id, name, email, address, phone_number, date_joined"

// buildCreateAccountQuery builds the INSERT for a new account. DateJoined is
// supplied by the caller (today's date); the id comes back via RETURNING.
func (db *DB) buildCreateAccountQuery(account models.Account) (string, []any, error) {
	return db.builder.
		Insert(accountsTable).
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix(returningAccountColumns).
		ToSql()
}

// buildFindAccountQuery builds the SELECT for a single account by id.
func (db *DB) buildFindAccountQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildFindAllAccountsQuery builds the SELECT for the full listing, with an
// optional exact-name filter, ordered by id for stable output.
func (db *DB) buildFindAllAccountsQuery(filter AccountFilter) (string, []any, error) {
	query := db.builder.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("id")

	if filter.Name != "" {
		query = query.Where(sq.Eq{"name": filter.Name})
	}

	return query.ToSql()
}

// buildUpdateAccountQuery builds the UPDATE replacing all mutable fields.
// id and date_joined are deliberately absent from the SET clause.
func (db *DB) buildUpdateAccountQuery(account models.Account) (string, []any, error) {
	return db.builder.
		Update(accountsTable).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Where(sq.Eq{"id": account.ID}).
		Suffix(returningAccountColumns).
		ToSql()
}

// buildDeleteAccountQuery builds the DELETE for a single account by id.
func (db *DB) buildDeleteAccountQuery(id int64) (string, []any, error) {
	return db.builder.
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
