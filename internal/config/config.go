package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/adapter/in/console"
	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
	"github.com/JoeShih716/go-mem-accounts/pkg/logging"
)

// DefaultPath 預設設定檔位置，檔案不存在時使用內建預設值
const DefaultPath = "config/config.yaml"

type Config struct {
	Log      logging.Config `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Transfer TransferConfig `yaml:"transfer"`
	Demo     DemoConfig     `yaml:"demo"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

type TransferConfig struct {
	// EnforceSourcePolicy 為 true 時轉帳扣款會套用儲蓄帳戶最低餘額規則
	EnforceSourcePolicy bool `yaml:"enforce_source_policy"`
	// Amount 每個帳戶的固定轉帳金額
	Amount float64 `yaml:"amount"`
}

type AccountConfig struct {
	Number         string  `yaml:"number"`
	Holder         string  `yaml:"holder"`
	Balance        float64 `yaml:"balance"`
	InterestRate   float64 `yaml:"interest_rate"`
	OverdraftLimit float64 `yaml:"overdraft_limit"`
}

type DemoConfig struct {
	Savings  AccountConfig `yaml:"savings"`
	Current  AccountConfig `yaml:"current"`
	Deposit  float64       `yaml:"deposit"`
	Withdraw float64       `yaml:"withdraw"`
}

// Default 回傳內建預設值 (與固定示範流程相同)
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "accounts",
		},
		Transfer: TransferConfig{
			EnforceSourcePolicy: false,
			Amount:              300,
		},
		Demo: DemoConfig{
			Savings: AccountConfig{
				Number:       "S123",
				Holder:       "John Doe",
				Balance:      1000,
				InterestRate: 0.02,
			},
			Current: AccountConfig{
				Number:         "C456",
				Holder:         "Jane Doe",
				Balance:        2000,
				OverdraftLimit: 500,
			},
			Deposit:  500,
			Withdraw: 1000,
		},
	}
}

// Load 讀取設定檔，沒寫的欄位沿用預設值
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔或解析錯誤 (檔案不存在不算錯誤)
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TransferMode 將設定轉成轉帳模式
func (c Config) TransferMode() domain.TransferMode {
	if c.Transfer.EnforceSourcePolicy {
		return domain.TransferChecked
	}
	return domain.TransferUnchecked
}

// Script 依設定建立示範流程的帳戶與金額
func (c Config) Script() (console.Script, error) {
	transferAmount, err := domain.NewAmount(c.Transfer.Amount)
	if err != nil {
		return console.Script{}, fmt.Errorf("transfer.amount: %w", err)
	}

	s := c.Demo.Savings
	values, err := amounts(s.Balance, s.InterestRate, c.Demo.Current.Balance, c.Demo.Current.OverdraftLimit, c.Demo.Deposit, c.Demo.Withdraw)
	if err != nil {
		return console.Script{}, fmt.Errorf("demo: %w", err)
	}

	savings, err := domain.NewSavingsAccount(s.Number, s.Holder, values[0], values[1], domain.WithTransferAmount(transferAmount))
	if err != nil {
		return console.Script{}, fmt.Errorf("demo.savings: %w", err)
	}
	cur := c.Demo.Current
	current, err := domain.NewCurrentAccount(cur.Number, cur.Holder, values[2], values[3], domain.WithTransferAmount(transferAmount))
	if err != nil {
		return console.Script{}, fmt.Errorf("demo.current: %w", err)
	}

	return console.Script{
		Savings:  savings,
		Current:  current,
		Deposit:  values[4],
		Withdraw: values[5],
	}, nil
}

func amounts(in ...float64) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(in))
	for _, v := range in {
		amount, err := domain.NewAmount(v)
		if err != nil {
			return nil, err
		}
		out = append(out, amount)
	}
	return out, nil
}
