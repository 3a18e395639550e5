package store

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"budget_ledger/internal/credential"
	"budget_ledger/internal/db"
	"budget_ledger/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "budget.db"), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestAccountStoreRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountStore(testDB(t), credential.Plain{}, testLogger())

	id, err := accounts.Register(ctx, "alice", "p1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero account id")
	}
	if _, err := accounts.Register(ctx, "alice", "p2"); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("want ErrDuplicateUsername, got %v", err)
	}

	got, err := accounts.Authenticate(ctx, "alice", "p1")
	if err != nil || got != id {
		t.Fatalf("Authenticate = %d, %v; want %d", got, err, id)
	}
	for _, tc := range []struct{ user, secret string }{
		{"alice", "wrong"},
		{"alice", "p2"},
		{"bob", "p1"},
		{"ALICE", "p1"},
	} {
		if _, err := accounts.Authenticate(ctx, tc.user, tc.secret); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q,%q): want ErrInvalidCredentials, got %v", tc.user, tc.secret, err)
		}
	}

	ok, err := accounts.Exists(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Exists(%d) = %v, %v", id, ok, err)
	}
	ok, err = accounts.Exists(ctx, id+100)
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}
}

func TestAccountStoreStoresSealedSecret(t *testing.T) {
	ctx := context.Background()
	gdb := testDB(t)
	accounts := NewAccountStore(gdb, credential.Bcrypt{Cost: 4}, testLogger())

	id, err := accounts.Register(ctx, "alice", "p1")
	if err != nil {
		t.Fatal(err)
	}
	var user domain.User
	if err := gdb.First(&user, id).Error; err != nil {
		t.Fatal(err)
	}
	if user.Password == "p1" {
		t.Fatal("secret stored verbatim under bcrypt policy")
	}
	if _, err := accounts.Authenticate(ctx, "alice", "p1"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
}

func TestAccountStoreConcurrentRegister(t *testing.T) {
	ctx := context.Background()
	gdb := testDB(t)
	accounts := NewAccountStore(gdb, credential.Plain{}, testLogger())

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := accounts.Register(ctx, "alice", "p1")
			switch {
			case err == nil:
				mu.Lock()
				successes++
				mu.Unlock()
			case !errors.Is(err, domain.ErrDuplicateUsername):
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("successes=%d want 1", successes)
	}
	var count int64
	gdb.Model(&domain.User{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Fatalf("rows=%d want 1", count)
	}
}

func TestLedgerStoreAppendAndList(t *testing.T) {
	ctx := context.Background()
	gdb := testDB(t)
	accounts := NewAccountStore(gdb, credential.Plain{}, testLogger())
	ledger := NewLedgerStore(gdb, testLogger())

	alice, _ := accounts.Register(ctx, "alice", "p1")
	bob, _ := accounts.Register(ctx, "bob", "p1")

	txs, err := ledger.ListForOwner(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	if txs == nil || len(txs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", txs)
	}

	entries := []struct {
		owner uint
		kind  domain.Kind
		amt   float64
		desc  string
	}{
		{alice, domain.Income, 100, "salary"},
		{bob, domain.Expense, 5, "coffee"},
		{alice, domain.Expense, 40, "groceries"},
		{alice, domain.Expense, 12.5, "bus"},
	}
	for _, e := range entries {
		tx, err := ledger.Append(ctx, e.owner, e.kind, e.amt, e.desc)
		if err != nil {
			t.Fatalf("Append(%s): %v", e.desc, err)
		}
		if tx.ID == 0 || tx.UserID != e.owner || tx.Kind != e.kind || tx.Amount != e.amt {
			t.Fatalf("unexpected record: %+v", tx)
		}
	}

	txs, err = ledger.ListForOwner(ctx, alice)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"salary", "groceries", "bus"}
	if len(txs) != len(want) {
		t.Fatalf("len=%d want %d", len(txs), len(want))
	}
	for i, d := range want {
		if txs[i].Description != d {
			t.Fatalf("txs[%d]=%q want %q", i, txs[i].Description, d)
		}
	}
}

func TestLedgerStoreRejectsUnknownOwnerAndKind(t *testing.T) {
	ctx := context.Background()
	gdb := testDB(t)
	ledger := NewLedgerStore(gdb, testLogger())

	if _, err := ledger.Append(ctx, 999, domain.Income, 1, "x"); !errors.Is(err, domain.ErrUnknownOwner) {
		t.Fatalf("want ErrUnknownOwner, got %v", err)
	}
	alice, _ := NewAccountStore(gdb, credential.Plain{}, testLogger()).Register(ctx, "alice", "p1")
	if _, err := ledger.Append(ctx, alice, domain.Kind("transfer"), 1, "x"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}

	var count int64
	gdb.Model(&domain.Transaction{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows=%d want 0", count)
	}
}
