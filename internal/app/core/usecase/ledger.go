package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// OpenAccount 開立帳戶，帳號重複時回傳 domain.ErrAccountAlreadyExists
	OpenAccount(ctx context.Context, account *domain.Account) error
	// 不分 Deposit/Withdraw/Transfer，直接看 tran.Type 決定
	PostTransaction(ctx context.Context, tran *domain.Transaction) error
	// GetAccount 取得帳戶的值副本
	GetAccount(ctx context.Context, number string) (domain.Account, error)
	// GetAccountBalance 取得帳戶餘額
	GetAccountBalance(ctx context.Context, number string) (decimal.Decimal, error)
	// Journal 依入帳順序回傳所有成功的交易
	Journal(ctx context.Context) ([]domain.Transaction, error)
}
