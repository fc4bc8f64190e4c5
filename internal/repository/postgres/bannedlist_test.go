package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ignite/spamguard/internal/service/bannedlist"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func TestIsBanned_QueriesNormalizedEmail(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("attacker@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewBannedListRepo(db)
	banned, err := repo.IsBanned(context.Background(), "  Attacker@Example.COM ")
	if err != nil {
		t.Fatalf("IsBanned() error: %v", err)
	}
	if !banned {
		t.Error("IsBanned() = false, want true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBan_InsertsWithConflictNoop(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO banned_emails").
		WithArgs(sqlmock.AnyArg(), "spammer@example.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewBannedListRepo(db)
	if err := repo.Ban(context.Background(), "Spammer@EXAMPLE.com"); err != nil {
		t.Fatalf("Ban() error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUnban_NonMemberSucceeds(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// Zero rows affected is not an error: unban is idempotent.
	mock.ExpectExec("DELETE FROM banned_emails").
		WithArgs("never.banned@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBannedListRepo(db)
	if err := repo.Unban(context.Background(), "never.banned@example.com"); err != nil {
		t.Errorf("Unban() of non-member error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAllBanned_ReturnsMembers(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT email FROM banned_emails").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).
			AddRow("a@example.com").
			AddRow("b@example.com"))

	repo := NewBannedListRepo(db)
	all, err := repo.AllBanned(context.Background())
	if err != nil {
		t.Fatalf("AllBanned() error: %v", err)
	}
	if len(all) != 2 || all[0] != "a@example.com" || all[1] != "b@example.com" {
		t.Errorf("AllBanned() = %v", all)
	}
}

func TestClear_DeletesAllRows(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM banned_emails").
		WillReturnResult(sqlmock.NewResult(0, 5))

	repo := NewBannedListRepo(db)
	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
}

func TestOperations_WrapStoreUnavailable(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	connErr := errors.New("connection refused")
	mock.ExpectQuery("SELECT EXISTS").WillReturnError(connErr)
	mock.ExpectExec("INSERT INTO banned_emails").WillReturnError(connErr)
	mock.ExpectExec("DELETE FROM banned_emails").WillReturnError(connErr)
	mock.ExpectQuery("SELECT email FROM banned_emails").WillReturnError(connErr)
	mock.ExpectExec("DELETE FROM banned_emails").WillReturnError(connErr)

	repo := NewBannedListRepo(db)
	ctx := context.Background()

	if _, err := repo.IsBanned(ctx, "x@example.com"); !errors.Is(err, bannedlist.ErrStoreUnavailable) {
		t.Errorf("IsBanned error = %v, want ErrStoreUnavailable", err)
	}
	if err := repo.Ban(ctx, "x@example.com"); !errors.Is(err, bannedlist.ErrStoreUnavailable) {
		t.Errorf("Ban error = %v, want ErrStoreUnavailable", err)
	}
	if err := repo.Unban(ctx, "x@example.com"); !errors.Is(err, bannedlist.ErrStoreUnavailable) {
		t.Errorf("Unban error = %v, want ErrStoreUnavailable", err)
	}
	if _, err := repo.AllBanned(ctx); !errors.Is(err, bannedlist.ErrStoreUnavailable) {
		t.Errorf("AllBanned error = %v, want ErrStoreUnavailable", err)
	}
	if err := repo.Clear(ctx); !errors.Is(err, bannedlist.ErrStoreUnavailable) {
		t.Errorf("Clear error = %v, want ErrStoreUnavailable", err)
	}
}
