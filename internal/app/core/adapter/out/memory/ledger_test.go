package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// newLedger 建立含一個儲蓄帳戶 S1 與一個活期帳戶 C1 的帳本
func newLedger(t *testing.T, mode domain.TransferMode, savingsBalance string) *Ledger {
	t.Helper()
	l := NewLedger(mode)
	savings, err := domain.NewSavingsAccount("S1", "John Doe", d(savingsBalance), d("0.02"))
	if err != nil {
		t.Fatal(err)
	}
	current, err := domain.NewCurrentAccount("C1", "Jane Doe", d("2000"), d("500"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := l.OpenAccount(ctx, savings); err != nil {
		t.Fatal(err)
	}
	if err := l.OpenAccount(ctx, current); err != nil {
		t.Fatal(err)
	}
	return l
}

func balance(t *testing.T, l *Ledger, number string) string {
	t.Helper()
	b, err := l.GetAccountBalance(context.Background(), number)
	if err != nil {
		t.Fatalf("GetAccountBalance(%s) err=%v", number, err)
	}
	return b.StringFixed(2)
}

func TestOpenAccountDuplicate(t *testing.T) {
	l := newLedger(t, domain.TransferUnchecked, "1000")
	dup, _ := domain.NewAccount("S1", "Someone", d("1"))
	if err := l.OpenAccount(context.Background(), dup); !errors.Is(err, domain.ErrAccountAlreadyExists) {
		t.Fatalf("want ErrAccountAlreadyExists, got %v", err)
	}
	if err := l.OpenAccount(context.Background(), nil); !errors.Is(err, domain.ErrInvalidAccount) {
		t.Fatalf("want ErrInvalidAccount, got %v", err)
	}
}

func TestPostTransactionFlow(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, domain.TransferUnchecked, "1000")

	steps := []*domain.Transaction{
		{TransactionID: uuid.New(), Type: domain.TransactionTypeDeposit, To: "S1", Amount: d("500")},
		{TransactionID: uuid.New(), Type: domain.TransactionTypeWithdraw, From: "C1", Amount: d("1000")},
		{TransactionID: uuid.New(), Type: domain.TransactionTypeTransfer, From: "S1", To: "C1"},
	}
	for _, tran := range steps {
		if err := l.PostTransaction(ctx, tran); err != nil {
			t.Fatalf("PostTransaction(%s) err=%v", tran.Type, err)
		}
	}

	if got := balance(t, l, "S1"); got != "1200.00" {
		t.Fatalf("S1=%s want=1200.00", got)
	}
	if got := balance(t, l, "C1"); got != "1300.00" {
		t.Fatalf("C1=%s want=1300.00", got)
	}

	journal, _ := l.Journal(ctx)
	if len(journal) != 3 {
		t.Fatalf("journal len=%d want=3", len(journal))
	}
	for i, entry := range journal {
		if entry.Sequence != uint64(i+1) {
			t.Fatalf("journal[%d].Sequence=%d", i, entry.Sequence)
		}
	}
	// 轉帳金額由帳本填入
	if !journal[2].Amount.Equal(d("300")) {
		t.Fatalf("transfer amount=%s want=300", journal[2].Amount)
	}
}

func TestPostTransactionIdempotent(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, domain.TransferUnchecked, "1000")

	tran := &domain.Transaction{TransactionID: uuid.New(), Type: domain.TransactionTypeDeposit, To: "S1", Amount: d("50")}
	for i := 0; i < 3; i++ {
		if err := l.PostTransaction(ctx, tran); err != nil {
			t.Fatalf("attempt %d err=%v", i, err)
		}
	}
	if got := balance(t, l, "S1"); got != "1050.00" {
		t.Fatalf("S1=%s want=1050.00", got)
	}
	if journal, _ := l.Journal(ctx); len(journal) != 1 {
		t.Fatalf("journal len=%d want=1", len(journal))
	}
}

func TestRejectedTransactionIsNotJournaled(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, domain.TransferUnchecked, "1000")

	tran := &domain.Transaction{TransactionID: uuid.New(), Type: domain.TransactionTypeWithdraw, From: "S1", Amount: d("950")}
	if err := l.PostTransaction(ctx, tran); !errors.Is(err, domain.ErrMinimumBalance) {
		t.Fatalf("want ErrMinimumBalance, got %v", err)
	}
	if got := balance(t, l, "S1"); got != "1000.00" {
		t.Fatalf("S1=%s want=1000.00", got)
	}
	if journal, _ := l.Journal(ctx); len(journal) != 0 {
		t.Fatalf("journal len=%d want=0", len(journal))
	}

	// 被拒絕的交易沒有標記為已處理，條件滿足後可重送
	if err := l.PostTransaction(ctx, &domain.Transaction{TransactionID: uuid.New(), Type: domain.TransactionTypeDeposit, To: "S1", Amount: d("100")}); err != nil {
		t.Fatal(err)
	}
	if err := l.PostTransaction(ctx, tran); err != nil {
		t.Fatalf("retry err=%v", err)
	}
	if got := balance(t, l, "S1"); got != "150.00" {
		t.Fatalf("S1=%s want=150.00", got)
	}
}

func TestPostTransactionAccountNotFound(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, domain.TransferUnchecked, "1000")

	tests := []*domain.Transaction{
		{TransactionID: uuid.New(), Type: domain.TransactionTypeDeposit, To: "X", Amount: d("1")},
		{TransactionID: uuid.New(), Type: domain.TransactionTypeWithdraw, From: "X", Amount: d("1")},
		{TransactionID: uuid.New(), Type: domain.TransactionTypeTransfer, From: "S1", To: "X"},
	}
	for _, tran := range tests {
		if err := l.PostTransaction(ctx, tran); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("%s: want ErrAccountNotFound, got %v", tran.Type, err)
		}
	}
	if got := balance(t, l, "S1"); got != "1000.00" {
		t.Fatalf("S1=%s want=1000.00", got)
	}
	if _, err := l.GetAccount(ctx, "X"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("GetAccount: want ErrAccountNotFound, got %v", err)
	}
}

func TestTransferModes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mode        domain.TransferMode
		wantErr     error
		wantSavings string
		wantCurrent string
	}{
		{"unchecked bypasses floor", domain.TransferUnchecked, nil, "-150.00", "2300.00"},
		{"checked rejects", domain.TransferChecked, domain.ErrMinimumBalance, "150.00", "2000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(t, tt.mode, "150")
			err := l.PostTransaction(ctx, &domain.Transaction{TransactionID: uuid.New(), Type: domain.TransactionTypeTransfer, From: "S1", To: "C1"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
			if got := balance(t, l, "S1"); got != tt.wantSavings {
				t.Fatalf("S1=%s want=%s", got, tt.wantSavings)
			}
			if got := balance(t, l, "C1"); got != tt.wantCurrent {
				t.Fatalf("C1=%s want=%s", got, tt.wantCurrent)
			}
		})
	}
}

func TestGetAccountReturnsCopy(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, domain.TransferUnchecked, "1000")

	a, err := l.GetAccount(ctx, "S1")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Deposit(d("1")); err != nil {
		t.Fatal(err)
	}
	if got := balance(t, l, "S1"); got != "1000.00" {
		t.Fatalf("ledger mutated through copy: S1=%s", got)
	}
}
