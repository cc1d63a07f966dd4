package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 包裝 zap.Logger
type Logger struct {
	*zap.Logger
}

// Config 日誌設定
//
// stdout 保留給帳戶明細輸出，因此預設寫到 stderr。
type Config struct {
	// Level: debug, info, warn, error
	Level string `yaml:"level"`
	// Format: json 或 console
	Format string `yaml:"format"`
	// OutputPaths: 輸出位置
	OutputPaths []string `yaml:"output_paths"`
	// Development: 開發模式 (含 caller 與 stacktrace)
	Development bool `yaml:"development"`
}

// DefaultConfig 回傳預設設定
func DefaultConfig() Config {
	return Config{
		Level:       "warn",
		Format:      "console",
		OutputPaths: []string{"stderr"},
		Development: false,
	}
}

// NewLogger 依設定建立 Logger
func NewLogger(cfg Config) (*Logger, error) {
	var encoderConfig zapcore.EncoderConfig
	if cfg.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	format := cfg.Format
	if format == "" {
		format = "console"
	}
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:       cfg.Development,
		DisableCaller:     !cfg.Development,
		DisableStacktrace: !cfg.Development,
		Encoding:          format,
		EncoderConfig:     encoderConfig,
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{logger}, nil
}

// NewNoOpLogger 建立不輸出任何內容的 Logger (測試用)
func NewNoOpLogger() *Logger {
	return &Logger{zap.NewNop()}
}

// With 建立帶有額外欄位的子 Logger
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

// Named 建立具名的子 Logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}

// 無法辨識的等級一律視為 info
func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
