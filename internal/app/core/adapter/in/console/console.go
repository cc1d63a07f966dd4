package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-accounts/internal/app/core/usecase"
)

// 提款結果訊息
const (
	msgWithdrawOK           = "Withdrawal successful."
	msgInsufficientFunds    = "Insufficient funds for withdrawal."
	msgMinimumBalanceNotMet = "Insufficient funds for withdrawal. Minimum balance requirement not met."
	msgOverdraftExceeded    = "Insufficient funds for withdrawal. Overdraft limit exceeded."
)

// Console 將帳戶明細與提款結果以文字輸出
//
// 提款被拒絕不是致命錯誤：訊息寫到 out 後回傳 nil；
// 只有帳戶不存在、輸出失敗等錯誤才會往上回傳。
type Console struct {
	core *usecase.CoreUseCase
	out  io.Writer
}

func NewConsole(core *usecase.CoreUseCase, out io.Writer) *Console {
	return &Console{
		core: core,
		out:  out,
	}
}

// Show 輸出帳戶明細
func (c *Console) Show(ctx context.Context, number string) error {
	account, err := c.core.Account(ctx, number)
	if err != nil {
		return err
	}
	return domain.Render(c.out, account)
}

// Heading 輸出一行標題
func (c *Console) Heading(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// Deposit 存款，成功時不輸出任何訊息
func (c *Console) Deposit(ctx context.Context, number string, amount decimal.Decimal) error {
	return c.core.Deposit(ctx, number, amount)
}

// Withdraw 提款並輸出結果
func (c *Console) Withdraw(ctx context.Context, number string, amount decimal.Decimal) error {
	err := c.core.Withdraw(ctx, number, amount)
	if err != nil && !errors.Is(err, domain.ErrWithdrawalRejected) {
		return err
	}
	return c.Heading(withdrawMessage(err))
}

// Transfer 轉帳，成功時不輸出任何訊息；TransferChecked 模式下被拒絕時輸出原因
func (c *Console) Transfer(ctx context.Context, from string, to string) error {
	err := c.core.Transfer(ctx, from, to)
	if err != nil && errors.Is(err, domain.ErrWithdrawalRejected) {
		return c.Heading(withdrawMessage(err))
	}
	return err
}

func withdrawMessage(err error) string {
	switch {
	case err == nil:
		return msgWithdrawOK
	case errors.Is(err, domain.ErrMinimumBalance):
		return msgMinimumBalanceNotMet
	case errors.Is(err, domain.ErrOverdraftExceeded):
		return msgOverdraftExceeded
	default:
		return msgInsufficientFunds
	}
}
