package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-accounts/pkg/logging"
	"github.com/JoeShih716/go-mem-accounts/pkg/metrics"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger  Ledger
	logger  *logging.Logger
	metrics metrics.Collector
}

// Option CoreUseCase 選項
type Option func(*CoreUseCase)

// WithLogger 設定 Logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *CoreUseCase) {
		c.logger = logger
	}
}

// WithMetrics 設定指標收集器
func WithMetrics(collector metrics.Collector) Option {
	return func(c *CoreUseCase) {
		c.metrics = collector
	}
}

func NewCoreUseCase(ledger Ledger, opts ...Option) *CoreUseCase {
	c := &CoreUseCase{
		ledger:  ledger,
		logger:  logging.NewNoOpLogger(),
		metrics: metrics.NoOpCollector{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OpenAccount 開立帳戶
func (c *CoreUseCase) OpenAccount(ctx context.Context, account *domain.Account) error {
	if err := c.ledger.OpenAccount(ctx, account); err != nil {
		c.logger.Warn("open account failed",
			zap.String("account", account.Number()),
			zap.Error(err),
		)
		return fmt.Errorf("open account %s: %w", account.Number(), err)
	}

	c.logger.Info("account opened",
		zap.String("account", account.Number()),
		zap.Stringer("kind", account.Kind()),
		zap.Stringer("balance", account.Balance()),
	)
	c.metrics.RecordBalance(account.Number(), account.Balance().InexactFloat64())
	return nil
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, number string, amount decimal.Decimal) error {
	tran := c.newTransaction(domain.TransactionTypeDeposit, "", number, amount)
	if err := c.post(ctx, tran, number); err != nil {
		return fmt.Errorf("deposit %s: %w", number, err)
	}
	return nil
}

// Withdraw 提款，被帳戶規則拒絕時回傳包裝 domain.ErrWithdrawalRejected 的錯誤
func (c *CoreUseCase) Withdraw(ctx context.Context, number string, amount decimal.Decimal) error {
	tran := c.newTransaction(domain.TransactionTypeWithdraw, number, "", amount)
	if err := c.post(ctx, tran, number); err != nil {
		return fmt.Errorf("withdraw %s: %w", number, err)
	}
	return nil
}

// Transfer 從儲蓄帳戶 from 轉出其固定轉帳金額至活期帳戶 to
func (c *CoreUseCase) Transfer(ctx context.Context, from string, to string) error {
	tran := c.newTransaction(domain.TransactionTypeTransfer, from, to, decimal.Zero)
	if err := c.post(ctx, tran, from); err != nil {
		return fmt.Errorf("transfer %s -> %s: %w", from, to, err)
	}
	return nil
}

// Account 取得帳戶副本
func (c *CoreUseCase) Account(ctx context.Context, number string) (domain.Account, error) {
	return c.ledger.GetAccount(ctx, number)
}

// GetAccountBalance 取得帳戶餘額
func (c *CoreUseCase) GetAccountBalance(ctx context.Context, number string) (decimal.Decimal, error) {
	return c.ledger.GetAccountBalance(ctx, number)
}

// Journal 取得所有成功入帳的交易
func (c *CoreUseCase) Journal(ctx context.Context) ([]domain.Transaction, error) {
	return c.ledger.Journal(ctx)
}

func (c *CoreUseCase) newTransaction(txType domain.TransactionType, from string, to string, amount decimal.Decimal) *domain.Transaction {
	return &domain.Transaction{
		TransactionID: uuid.New(),
		Type:          txType,
		From:          from,
		To:            to,
		Amount:        amount,
		CreatedAt:     time.Now().UnixNano(),
	}
}

// post 送出交易並記錄日誌與指標
//
// 參數:
//
//	ctx: 上下文
//	tran: 交易
//	subject: 用來標記帳戶種類的帳號 (提款/轉帳為來源，存款為目標)
func (c *CoreUseCase) post(ctx context.Context, tran *domain.Transaction, subject string) error {
	kind := "unknown"
	if account, err := c.ledger.GetAccount(ctx, subject); err == nil {
		kind = account.Kind().String()
	}

	fields := []zap.Field{
		zap.String("tx_id", tran.TransactionID.String()),
		zap.Stringer("type", tran.Type),
		zap.String("kind", kind),
		zap.String("from", tran.From),
		zap.String("to", tran.To),
		zap.Stringer("amount", tran.Amount),
	}

	err := c.ledger.PostTransaction(ctx, tran)
	outcome := classify(err)
	c.metrics.RecordOperation(tran.Type.String(), kind, outcome)

	switch outcome {
	case metrics.OutcomeSuccess:
		c.logger.Info("transaction posted", fields...)
	case metrics.OutcomeRejected, metrics.OutcomeInvalid:
		c.logger.Warn("transaction rejected", append(fields, zap.Error(err))...)
	default:
		c.logger.Error("transaction failed", append(fields, zap.Error(err))...)
	}
	if err != nil {
		return err
	}

	for _, number := range tran.AccountNumbers() {
		if balance, err := c.ledger.GetAccountBalance(ctx, number); err == nil {
			c.metrics.RecordBalance(number, balance.InexactFloat64())
		}
	}
	return nil
}

func classify(err error) metrics.Outcome {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrWithdrawalRejected):
		return metrics.OutcomeRejected
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrKindMismatch):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
