package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount 金額不合法 (負數、NaN 或無限大)
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidAccount 帳戶資料不合法 (例如帳號為空)
	ErrInvalidAccount = errors.New("invalid account")

	// ErrWithdrawalRejected 提款被拒絕，餘額維持不變
	ErrWithdrawalRejected = errors.New("withdrawal rejected")

	// ErrInsufficientBalance 餘額不足 (一般帳戶)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrWithdrawalRejected)

	// ErrMinimumBalance 低於儲蓄帳戶最低餘額
	ErrMinimumBalance = fmt.Errorf("%w: minimum balance requirement not met", ErrWithdrawalRejected)

	// ErrOverdraftExceeded 超過活期帳戶透支額度
	ErrOverdraftExceeded = fmt.Errorf("%w: overdraft limit exceeded", ErrWithdrawalRejected)

	// ErrKindMismatch 轉帳來源必須是儲蓄帳戶，目標必須是活期帳戶
	ErrKindMismatch = errors.New("transfer requires a savings source and a current destination")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")
)
