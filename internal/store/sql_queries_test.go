package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-service/models"
)

func dollarDB() *DB {
	return &DB{builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), dialect: DialectPostgres}
}

func questionDB() *DB {
	return &DB{builder: sq.StatementBuilder.PlaceholderFormat(sq.Question), dialect: DialectSQLite}
}

func TestBuildCreateAccountQuery(t *testing.T) {
	account := models.Account{
		Name:        "John Doe",
		Email:       "john@doe.com",
		Address:     "123 Main St.",
		PhoneNumber: "555-1212",
		DateJoined:  models.Today(),
	}

	query, args, err := dollarDB().buildCreateAccountQuery(account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "INSERT INTO accounts") {
		t.Errorf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "RETURNING id, name, email, address, phone_number, date_joined") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	if !strings.Contains(query, "$5") {
		t.Errorf("expected dollar placeholders, got: %s", query)
	}
	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d", len(args))
	}
}

func TestBuildCreateAccountQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := questionDB().buildCreateAccountQuery(models.Account{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "$1") {
		t.Errorf("expected question placeholders for sqlite, got: %s", query)
	}
	if !strings.Contains(query, "?") {
		t.Errorf("expected question placeholders for sqlite, got: %s", query)
	}
}

func TestBuildFindAccountQuery(t *testing.T) {
	query, args, err := dollarDB().buildFindAccountQuery(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "WHERE id = $1") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildFindAllAccountsQuery_NoFilter(t *testing.T) {
	query, args, err := dollarDB().buildFindAllAccountsQuery(AccountFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "WHERE") {
		t.Errorf("expected no WHERE clause, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY id") {
		t.Errorf("expected ORDER BY id, got: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildFindAllAccountsQuery_NameFilter(t *testing.T) {
	query, args, err := dollarDB().buildFindAllAccountsQuery(AccountFilter{Name: "John Doe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "WHERE name = $1") {
		t.Errorf("expected name filter, got: %s", query)
	}
	if len(args) != 1 || args[0] != "John Doe" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateAccountQuery(t *testing.T) {
	account := models.Account{
		ID:          3,
		Name:        "John Updated",
		Email:       "john@doe.com",
		Address:     "456 Elm St.",
		PhoneNumber: "555-1111",
	}

	query, args, err := dollarDB().buildUpdateAccountQuery(account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "UPDATE accounts SET") {
		t.Errorf("unexpected query: %s", query)
	}
	// id and date_joined must never appear in the SET clause
	setClause := query[:strings.Index(query, "WHERE")]
	if strings.Contains(setClause, "date_joined") || strings.Contains(setClause, "id =") {
		t.Errorf("immutable column in SET clause: %s", setClause)
	}
	if !strings.Contains(query, "RETURNING id, name, email, address, phone_number, date_joined") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d", len(args))
	}
	if args[len(args)-1] != int64(3) {
		t.Errorf("expected id as final arg, got %v", args)
	}
}

func TestBuildDeleteAccountQuery(t *testing.T) {
	query, args, err := dollarDB().buildDeleteAccountQuery(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "DELETE FROM accounts") {
		t.Errorf("unexpected query: %s", query)
	}
	if !strings.Contains(query, "WHERE id = $1") {
		t.Errorf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(5) {
		t.Errorf("unexpected args: %v", args)
	}
}
