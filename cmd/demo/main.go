package main

import (
	"context"
	"log"
	"os"
	"sort"

	prom "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	console_adapter "github.com/JoeShih716/go-mem-accounts/internal/app/core/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-mem-accounts/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-accounts/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-accounts/internal/config"
	"github.com/JoeShih716/go-mem-accounts/pkg/logging"
	"github.com/JoeShih716/go-mem-accounts/pkg/metrics"
	"github.com/JoeShih716/go-mem-accounts/pkg/metrics/prometheus"
)

// 任何錯誤都只記錄，不改變結束碼
func main() {
	// 1. 載入設定 (沒有設定檔就用內建預設值)
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}

	// 2. 初始化 Logger (寫 stderr，stdout 留給帳戶明細)
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		log.Printf("Failed to init logger, using defaults: %v", err)
		if logger, err = logging.NewLogger(logging.DefaultConfig()); err != nil {
			logger = logging.NewNoOpLogger()
		}
	}
	defer logger.Sync()

	// 3. 初始化指標
	var collector metrics.Collector = metrics.NoOpCollector{}
	registry := prom.NewRegistry()
	if cfg.Metrics.Enabled {
		pc := prometheus.NewPrometheusCollector(cfg.Metrics.Namespace)
		if err := pc.Register(registry); err != nil {
			logger.Warn("Failed to register metrics", zap.Error(err))
		} else {
			collector = pc
		}
	}

	// 4. 初始化帳本與 UseCase
	ledger := memory_adapter.NewLedger(cfg.TransferMode())
	coreUseCase := usecase.NewCoreUseCase(ledger,
		usecase.WithLogger(logger.Named("core")),
		usecase.WithMetrics(collector),
	)

	// 5. 執行示範流程
	script, err := cfg.Script()
	if err != nil {
		logger.Warn("Invalid demo configuration, using defaults", zap.Error(err))
		if script, err = config.Default().Script(); err != nil {
			logger.Error("Default demo configuration is invalid", zap.Error(err))
			return
		}
	}
	ctx := context.Background()
	if err := console_adapter.NewConsole(coreUseCase, os.Stdout).RunScript(ctx, script); err != nil {
		logger.Error("Demo script failed", zap.Error(err))
	}

	logSummary(ctx, logger, coreUseCase, registry)
}

// logSummary 輸出交易筆數與指標摘要 (debug 等級)
func logSummary(ctx context.Context, logger *logging.Logger, core *usecase.CoreUseCase, registry *prom.Registry) {
	journal, err := core.Journal(ctx)
	if err != nil {
		logger.Warn("Failed to read journal", zap.Error(err))
		return
	}
	logger.Debug("Journal", zap.Int("transactions", len(journal)))

	samples, err := prometheus.Summary(registry)
	if err != nil {
		logger.Warn("Failed to gather metrics", zap.Error(err))
		return
	}
	keys := make([]string, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logger.Debug("Metric", zap.String("name", k), zap.Float64("value", samples[k]))
	}
}
