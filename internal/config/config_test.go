package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JoeShih716/go-mem-accounts/internal/app/core/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	def := Default()
	if cfg.Demo.Savings.Number != def.Demo.Savings.Number || cfg.Transfer.Amount != 300 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.TransferMode() != domain.TransferUnchecked {
		t.Fatalf("default transfer mode should be unchecked")
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
transfer:
  enforce_source_policy: true
  amount: 125.5
demo:
  savings:
    holder: Alice
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Fatalf("log=%+v", cfg.Log)
	}
	if cfg.TransferMode() != domain.TransferChecked {
		t.Fatalf("transfer mode should be checked")
	}
	if cfg.Demo.Savings.Holder != "Alice" || cfg.Demo.Savings.Number != "S123" || cfg.Demo.Savings.Balance != 1000 {
		t.Fatalf("savings=%+v", cfg.Demo.Savings)
	}

	script, err := cfg.Script()
	if err != nil {
		t.Fatalf("Script err=%v", err)
	}
	if script.Savings.TransferAmount().String() != "125.5" {
		t.Fatalf("transfer amount=%s", script.Savings.TransferAmount())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "demo: [unterminated")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultScript(t *testing.T) {
	script, err := Default().Script()
	if err != nil {
		t.Fatalf("Script err=%v", err)
	}
	if script.Savings.Kind() != domain.KindSavings || script.Current.Kind() != domain.KindCurrent {
		t.Fatalf("kinds: %s %s", script.Savings.Kind(), script.Current.Kind())
	}
	if script.Savings.Balance().StringFixed(2) != "1000.00" || script.Current.Balance().StringFixed(2) != "2000.00" {
		t.Fatalf("balances: %s %s", script.Savings.Balance(), script.Current.Balance())
	}
	if script.Current.OverdraftLimit().StringFixed(2) != "500.00" || script.Savings.InterestRate().String() != "0.02" {
		t.Fatalf("variant fields: %s %s", script.Current.OverdraftLimit(), script.Savings.InterestRate())
	}
	if script.Deposit.String() != "500" || script.Withdraw.String() != "1000" {
		t.Fatalf("amounts: %s %s", script.Deposit, script.Withdraw)
	}
}

func TestScriptRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"negative overdraft", func(c *Config) { c.Demo.Current.OverdraftLimit = -1 }, domain.ErrInvalidAmount},
		{"negative transfer amount", func(c *Config) { c.Transfer.Amount = -300 }, domain.ErrInvalidAmount},
		{"empty account number", func(c *Config) { c.Demo.Savings.Number = "" }, domain.ErrInvalidAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if _, err := cfg.Script(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
		})
	}
}
