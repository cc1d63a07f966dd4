package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JoeShih716/go-mem-accounts/pkg/metrics"
)

// PrometheusCollector 以 Prometheus 實作 metrics.Collector
type PrometheusCollector struct {
	operations *prometheus.CounterVec
	balance    *prometheus.GaugeVec
}

// NewPrometheusCollector 建立 Collector，namespace 為指標前綴
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of account operations per operation, account kind and outcome",
			},
			[]string{"operation", "kind", "outcome"},
		),
		balance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "balance",
				Help:      "Latest known balance per account",
			},
			[]string{"account"},
		),
	}
}

// Register 將所有指標註冊到 registerer
func (pc *PrometheusCollector) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{pc.operations, pc.balance} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (pc *PrometheusCollector) RecordOperation(operation string, kind string, outcome metrics.Outcome) {
	pc.operations.WithLabelValues(operation, kind, string(outcome)).Inc()
}

func (pc *PrometheusCollector) RecordBalance(account string, balance float64) {
	pc.balance.WithLabelValues(account).Set(balance)
}

// Summary 從 gatherer 取出所有樣本，key 為 "指標名{label=value,...}"
func Summary(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName() + "{"
			for i, lp := range m.GetLabel() {
				if i > 0 {
					key += ","
				}
				key += lp.GetName() + "=" + lp.GetValue()
			}
			key += "}"

			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out, nil
}

var _ metrics.Collector = (*PrometheusCollector)(nil)
