package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-accounts/internal/app/core/usecase"
)

// Ledger 記憶體帳本
//
// 結構:
//
//	accounts: 帳戶資料 Map (帳號 -> 帳戶)
//	processedTransactions: 已處理過的交易 Map，用於冪等檢查
//	journal: 成功入帳的交易，依 Sequence 排序
//	transferMode: 轉帳是否套用來源帳戶的提款規則
//
// 所有操作都在單一 goroutine 內依序執行，不可併發使用。
type Ledger struct {
	accounts              map[string]*domain.Account
	processedTransactions map[uuid.UUID]time.Time
	journal               []domain.Transaction
	sequence              uint64
	transferMode          domain.TransferMode
}

// NewLedger 建立一個新的記憶體帳本
//
// 參數:
//
//	transferMode: 轉帳模式
//
// 回傳:
//
//	*Ledger: 帳本實例
func NewLedger(transferMode domain.TransferMode) *Ledger {
	return &Ledger{
		accounts:              make(map[string]*domain.Account),
		processedTransactions: make(map[uuid.UUID]time.Time),
		journal:               make([]domain.Transaction, 0),
		transferMode:          transferMode,
	}
}

// OpenAccount 開立帳戶
func (l *Ledger) OpenAccount(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return domain.ErrInvalidAccount
	}
	if _, ok := l.accounts[account.Number()]; ok {
		return domain.ErrAccountAlreadyExists
	}
	l.accounts[account.Number()] = account
	return nil
}

// GetAccount 取得帳戶的值副本，呼叫端修改副本不影響帳本
func (l *Ledger) GetAccount(ctx context.Context, number string) (domain.Account, error) {
	account, ok := l.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return *account, nil
}

// GetAccountBalance 取得指定帳戶的當前餘額
func (l *Ledger) GetAccountBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	account, ok := l.accounts[number]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance(), nil
}

// Journal 回傳交易紀錄副本
func (l *Ledger) Journal(ctx context.Context) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(l.journal))
	copy(out, l.journal)
	return out, nil
}

// PostTransaction 處理交易請求
//
// 同一個 TransactionID 重複送出時直接回傳成功，不會重複入帳。
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易請求物件
//
// 回傳:
//
//	error: 處理錯誤 (帳戶不存在、金額不合法、提款被拒絕)
func (l *Ledger) PostTransaction(ctx context.Context, tran *domain.Transaction) error {
	if _, ok := l.processedTransactions[tran.TransactionID]; ok {
		return nil
	}

	for _, number := range tran.AccountNumbers() {
		if _, ok := l.accounts[number]; !ok {
			return domain.ErrAccountNotFound
		}
	}

	var err error
	switch tran.Type {
	case domain.TransactionTypeDeposit:
		err = l.handleDeposit(tran)
	case domain.TransactionTypeWithdraw:
		err = l.handleWithdraw(tran)
	case domain.TransactionTypeTransfer:
		err = l.handleTransfer(tran)
	default:
		return nil // Unknown type, ignore
	}
	if err != nil {
		return err
	}

	l.sequence++
	entry := *tran
	entry.Sequence = l.sequence
	l.journal = append(l.journal, entry)
	l.processedTransactions[tran.TransactionID] = time.Now()
	return nil
}

// handleDeposit 處理存款邏輯
func (l *Ledger) handleDeposit(tran *domain.Transaction) error {
	return l.accounts[tran.To].Deposit(tran.Amount)
}

// handleWithdraw 處理提款邏輯，規則由帳戶種類決定
func (l *Ledger) handleWithdraw(tran *domain.Transaction) error {
	return l.accounts[tran.From].Withdraw(tran.Amount)
}

// handleTransfer 處理轉帳邏輯
//
// 來源帳戶透過指標直接扣款；目標帳戶以 domain.Transfer 回傳的新值整個替換。
// 實際轉帳金額寫回 tran.Amount。
func (l *Ledger) handleTransfer(tran *domain.Transaction) error {
	from := l.accounts[tran.From]
	to := l.accounts[tran.To]

	updated, err := domain.Transfer(*to, from, l.transferMode)
	if err != nil {
		return err
	}
	*to = updated
	tran.Amount = from.TransferAmount()
	return nil
}

var _ usecase.Ledger = (*Ledger)(nil)
