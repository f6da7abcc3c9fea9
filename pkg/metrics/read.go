package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

func counterValue(c *Collector, pick func(*Collector) prometheus.Counter) float64 {
	if c == nil {
		return 0
	}
	var m dto.Metric
	if err := pick(c).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Totals 汇总注册表中所有计数器，key 形如 payments_total{method="paypal"}
func (c *Collector) Totals() (map[string]float64, error) {
	if c == nil || c.gatherer == nil {
		return nil, nil
	}
	families, err := c.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			totals[seriesKey(mf.GetName(), m.GetLabel())] = m.GetCounter().GetValue()
		}
	}
	return totals, nil
}

// LogTotals 以 debug 级别输出计数器汇总
func (c *Collector) LogTotals(log *zap.Logger) {
	totals, err := c.Totals()
	if err != nil {
		log.Warn("gather metrics failed", zap.Error(err))
		return
	}
	if len(totals) == 0 {
		return
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Float64(k, totals[k]))
	}
	log.Debug("metrics totals", fields...)
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, 0, len(labels))
	for _, lp := range labels {
		pairs = append(pairs, lp.GetName()+`="`+lp.GetValue()+`"`)
	}
	return name + "{" + strings.Join(pairs, ",") + "}"
}
