package console

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
)

// Script 固定的示範流程參數
type Script struct {
	Savings  *domain.Account
	Current  *domain.Account
	Deposit  decimal.Decimal // 存入儲蓄帳戶
	Withdraw decimal.Decimal // 從活期帳戶提出
}

// RunScript 依序執行示範流程：
// 開戶 -> 顯示 -> 存款/提款 -> 顯示 -> 轉帳 -> 顯示
func (c *Console) RunScript(ctx context.Context, s Script) error {
	savings := s.Savings.Number()
	current := s.Current.Number()

	if err := c.core.OpenAccount(ctx, s.Savings); err != nil {
		return err
	}
	if err := c.core.OpenAccount(ctx, s.Current); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return c.Show(ctx, savings) },
		func() error { return c.Show(ctx, current) },
		func() error { return c.Deposit(ctx, savings, s.Deposit) },
		func() error { return c.Withdraw(ctx, current, s.Withdraw) },
		func() error { return c.Heading("Account Details after deposit and withdrawal:") },
		func() error { return c.Show(ctx, savings) },
		func() error { return c.Show(ctx, current) },
		func() error { return c.Transfer(ctx, savings, current) },
		func() error { return c.Heading("Account Details after transfer:") },
		func() error { return c.Show(ctx, savings) },
		func() error { return c.Show(ctx, current) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
