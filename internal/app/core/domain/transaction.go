package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳 (儲蓄 -> 活期，金額為來源帳戶的固定轉帳金額)
	TransactionTypeTransfer TransactionType = 3
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transaction 交易
type Transaction struct {
	// Sequence: 帳本分配的順序號 (1, 2, 3...)，只有成功入帳的交易才會取得
	Sequence uint64
	// From, To: 帳號；存款只有 To，提款只有 From
	From string
	To   string
	// Amount: 金額；轉帳時由帳本填入來源帳戶的固定轉帳金額
	Amount decimal.Decimal
	// CreatedAt: 交易時間 (UnixNano)
	CreatedAt int64
	// TransactionID: 外部追蹤號 (UUID)，用於冪等檢查
	TransactionID uuid.UUID
	Type          TransactionType
}

// AccountNumbers 回傳交易涉及的帳號
func (t *Transaction) AccountNumbers() (numbers []string) {
	numbers = make([]string, 0, 2)
	switch t.Type {
	case TransactionTypeTransfer:
		numbers = append(numbers, t.From, t.To)
	case TransactionTypeDeposit:
		numbers = append(numbers, t.To)
	case TransactionTypeWithdraw:
		numbers = append(numbers, t.From)
	}
	return numbers
}
