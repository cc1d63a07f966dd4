package metrics

// Outcome 帳戶操作結果
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeRejected Outcome = "rejected"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeError    Outcome = "error"
)

// Collector 收集帳戶操作指標
type Collector interface {
	// RecordOperation 記錄一次操作 (deposit / withdraw / transfer) 及其結果
	RecordOperation(operation string, kind string, outcome Outcome)
	// RecordBalance 記錄帳戶最新餘額
	RecordBalance(account string, balance float64)
}

// NoOpCollector 不做任何事，未啟用指標時使用
type NoOpCollector struct{}

func (NoOpCollector) RecordOperation(operation string, kind string, outcome Outcome) {}

func (NoOpCollector) RecordBalance(account string, balance float64) {}
