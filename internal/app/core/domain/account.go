package domain

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind 帳戶種類，為封閉集合，提款規則依種類分派
type Kind uint8

const (
	// 一般帳戶：餘額不可低於提款金額
	KindBasic Kind = iota
	// 儲蓄帳戶：提款後必須保留最低餘額
	KindSavings
	// 活期帳戶：允許透支至透支額度
	KindCurrent
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindSavings:
		return "savings"
	case KindCurrent:
		return "current"
	default:
		return "unknown"
	}
}

var (
	// MinimumSavingsBalance 儲蓄帳戶提款後需保留的最低餘額 (含邊界)
	MinimumSavingsBalance = decimal.NewFromInt(100)

	// DefaultTransferAmount 每個帳戶預設的固定轉帳金額
	DefaultTransferAmount = decimal.NewFromInt(300)
)

// Account 帳戶
//
// 帳號與戶名建立後不可變更；餘額只能透過 Deposit / Withdraw / Transfer 變動。
type Account struct {
	number  string
	holder  string
	balance decimal.Decimal
	kind    Kind

	// 僅儲蓄帳戶使用，只用於顯示，不會計入餘額
	interestRate decimal.Decimal
	// 僅活期帳戶使用，非負
	overdraftLimit decimal.Decimal
	// 轉帳時移動的固定金額
	transferAmount decimal.Decimal
}

// Option 帳戶建立選項
type Option func(*Account)

// WithTransferAmount 設定固定轉帳金額 (預設 300)
func WithTransferAmount(amount decimal.Decimal) Option {
	return func(a *Account) {
		a.transferAmount = amount
	}
}

// NewAccount 建立一般帳戶
func NewAccount(number string, holder string, balance decimal.Decimal) (*Account, error) {
	return newAccount(KindBasic, number, holder, balance)
}

// NewSavingsAccount 建立儲蓄帳戶
//
// 參數:
//
//	number: 帳號
//	holder: 戶名
//	balance: 初始餘額
//	rate: 年利率 (小數，例如 0.02 代表 2%)
//	opts: 其他選項
func NewSavingsAccount(number string, holder string, balance decimal.Decimal, rate decimal.Decimal, opts ...Option) (*Account, error) {
	if rate.IsNegative() {
		return nil, ErrInvalidAmount
	}
	a, err := newAccount(KindSavings, number, holder, balance, opts...)
	if err != nil {
		return nil, err
	}
	a.interestRate = rate
	return a, nil
}

// NewCurrentAccount 建立活期帳戶
//
// 參數:
//
//	number: 帳號
//	holder: 戶名
//	balance: 初始餘額
//	limit: 透支額度 (非負)
//	opts: 其他選項
func NewCurrentAccount(number string, holder string, balance decimal.Decimal, limit decimal.Decimal, opts ...Option) (*Account, error) {
	if limit.IsNegative() {
		return nil, ErrInvalidAmount
	}
	a, err := newAccount(KindCurrent, number, holder, balance, opts...)
	if err != nil {
		return nil, err
	}
	a.overdraftLimit = limit
	return a, nil
}

func newAccount(kind Kind, number string, holder string, balance decimal.Decimal, opts ...Option) (*Account, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrInvalidAccount
	}
	a := &Account{
		number:         number,
		holder:         holder,
		balance:        balance,
		kind:           kind,
		transferAmount: DefaultTransferAmount,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.transferAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return a, nil
}

func (a *Account) Number() string                  { return a.number }
func (a *Account) Holder() string                  { return a.holder }
func (a *Account) Balance() decimal.Decimal        { return a.balance }
func (a *Account) Kind() Kind                      { return a.kind }
func (a *Account) InterestRate() decimal.Decimal   { return a.interestRate }
func (a *Account) OverdraftLimit() decimal.Decimal { return a.overdraftLimit }
func (a *Account) TransferAmount() decimal.Decimal { return a.transferAmount }

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw 提款，依帳戶種類檢查規則，被拒絕時餘額不變
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.CanWithdraw(amount); err != nil {
		return err
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// CanWithdraw 只檢查提款規則，不變更餘額
func (a *Account) CanWithdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	remaining := a.balance.Sub(amount)
	switch a.kind {
	case KindSavings:
		if remaining.LessThan(MinimumSavingsBalance) {
			return ErrMinimumBalance
		}
	case KindCurrent:
		if remaining.LessThan(a.overdraftLimit.Neg()) {
			return ErrOverdraftExceeded
		}
	default:
		if a.balance.LessThan(amount) {
			return ErrInsufficientBalance
		}
	}
	return nil
}

// NewAmount 將設定檔中的浮點數轉成金額，NaN 與無限大視為不合法
func NewAmount(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, ErrInvalidAmount
	}
	return decimal.NewFromFloat(v), nil
}
