package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newSeededLedger 建立 101=5000, 102=10000, 103=20000 的帳本
func newSeededLedger(t *testing.T) *Ledger {
	t.Helper()
	seeds := []struct {
		number  string
		balance string
	}{
		{"101", "5000"},
		{"102", "10000"},
		{"103", "20000"},
	}
	accounts := make([]*domain.Account, 0, len(seeds))
	for _, s := range seeds {
		a, err := domain.NewAccount("Alice", s.number, d(s.balance))
		if err != nil {
			t.Fatal(err)
		}
		accounts = append(accounts, a)
	}
	l, err := NewLedger(accounts)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func balance(t *testing.T, l *Ledger, number string) decimal.Decimal {
	t.Helper()
	s, err := l.GetAccount(context.Background(), number)
	if err != nil {
		t.Fatalf("GetAccount(%s) err=%v", number, err)
	}
	return s.Balance
}

func total(t *testing.T, l *Ledger) decimal.Decimal {
	t.Helper()
	all, err := l.ListAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	sum := decimal.Zero
	for _, s := range all {
		sum = sum.Add(s.Balance)
	}
	return sum
}

func TestNewLedgerDuplicateNumber(t *testing.T) {
	a1, _ := domain.NewAccount("Alice", "101", decimal.Zero)
	a2, _ := domain.NewAccount("Bob", "101", decimal.Zero)
	if _, err := NewLedger([]*domain.Account{a1, a2}); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("want ErrAccountAlreadyExists, got %v", err)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	l := newSeededLedger(t)
	for _, number := range []string{"999", "", "10", "1011", " 101"} {
		if _, err := l.GetAccount(context.Background(), number); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("number=%q want ErrAccountNotFound, got %v", number, err)
		}
	}
}

func TestListAccountsKeepsSeedOrder(t *testing.T) {
	l := newSeededLedger(t)
	all, err := l.ListAccounts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"101", "102", "103"}
	if len(all) != len(want) {
		t.Fatalf("len=%d want=%d", len(all), len(want))
	}
	for i, s := range all {
		if s.Number != want[i] || s.Owner != "Alice" {
			t.Fatalf("all[%d]=%+v", i, s)
		}
	}
}

func TestPostDepositAndWithdraw(t *testing.T) {
	l := newSeededLedger(t)
	ctx := context.Background()

	if err := l.PostTransaction(ctx, domain.NewDeposit("101", d("500"))); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, l, "101"); !got.Equal(d("5500")) {
		t.Fatalf("101=%s want=5500", got)
	}

	if err := l.PostTransaction(ctx, domain.NewWithdraw("103", d("2000"))); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, l, "103"); !got.Equal(d("18000")) {
		t.Fatalf("103=%s want=18000", got)
	}

	if err := l.PostTransaction(ctx, domain.NewWithdraw("103", d("18000.01"))); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if err := l.PostTransaction(ctx, domain.NewDeposit("999", d("1"))); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	if got := l.lastSequence(); got != 2 {
		t.Fatalf("sequence=%d want=2", got)
	}
}

func TestPostTransfer(t *testing.T) {
	l := newSeededLedger(t)
	ctx := context.Background()
	before := total(t, l)

	tran := domain.NewTransfer("102", "101", d("1000"))
	if err := l.PostTransaction(ctx, tran); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, l, "102"); !got.Equal(d("9000")) {
		t.Fatalf("102=%s want=9000", got)
	}
	if got := balance(t, l, "101"); !got.Equal(d("6000")) {
		t.Fatalf("101=%s want=6000", got)
	}
	if !total(t, l).Equal(before) {
		t.Fatalf("total=%s want=%s", total(t, l), before)
	}
	if tran.Sequence != 1 {
		t.Fatalf("sequence=%d want=1", tran.Sequence)
	}
}

func TestPostTransferRejectedLeavesBalances(t *testing.T) {
	l := newSeededLedger(t)
	ctx := context.Background()

	cases := []struct {
		name string
		tran *domain.Transaction
		want error
	}{
		{"insufficient", domain.NewTransfer("101", "102", d("5000.01")), domain.ErrInsufficientFunds},
		{"zero", domain.NewTransfer("101", "102", decimal.Zero), domain.ErrInvalidAmount},
		{"negative", domain.NewTransfer("101", "102", d("-10")), domain.ErrInvalidAmount},
		{"unknown source", domain.NewTransfer("999", "102", d("1")), domain.ErrAccountNotFound},
		{"unknown destination", domain.NewTransfer("101", "999", d("1")), domain.ErrAccountNotFound},
	}
	for _, c := range cases {
		if err := l.PostTransaction(ctx, c.tran); !errors.Is(err, c.want) {
			t.Fatalf("%s: want %v, got %v", c.name, c.want, err)
		}
	}
	for number, want := range map[string]string{"101": "5000", "102": "10000", "103": "20000"} {
		if got := balance(t, l, number); !got.Equal(d(want)) {
			t.Fatalf("%s=%s want=%s", number, got, want)
		}
	}
	if l.lastSequence() != 0 {
		t.Fatalf("rejected transactions should not advance the sequence")
	}
}

func TestPostTransferSameAccount(t *testing.T) {
	l := newSeededLedger(t)
	if err := l.PostTransaction(context.Background(), domain.NewTransfer("101", "101", d("5000"))); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, l, "101"); !got.Equal(d("5000")) {
		t.Fatalf("101=%s want=5000", got)
	}
}

func TestPostTransactionIdempotent(t *testing.T) {
	l := newSeededLedger(t)
	ctx := context.Background()

	tran := domain.NewDeposit("101", d("100"))
	for i := 0; i < 3; i++ {
		if err := l.PostTransaction(ctx, tran); err != nil {
			t.Fatal(err)
		}
	}
	if got := balance(t, l, "101"); !got.Equal(d("5100")) {
		t.Fatalf("101=%s want=5100", got)
	}
	if tran.Sequence != 1 || l.lastSequence() != 1 {
		t.Fatalf("sequence tran=%d ledger=%d want=1", tran.Sequence, l.lastSequence())
	}
}

func TestPostUnknownType(t *testing.T) {
	l := newSeededLedger(t)
	tran := domain.NewDeposit("101", d("1"))
	tran.Type = 0
	if err := l.PostTransaction(context.Background(), tran); !errors.Is(err, domain.ErrUnknownTransactionType) {
		t.Fatalf("want ErrUnknownTransactionType, got %v", err)
	}
}
