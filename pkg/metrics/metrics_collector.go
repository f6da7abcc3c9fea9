package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector 记录支付与汇率广播的计数指标
// nil Collector 的所有方法均为空操作
type Collector struct {
	gatherer prometheus.Gatherer

	paymentsTotal      *prometheus.CounterVec
	rateUpdatesTotal   *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
}

// NewCollector 在给定的 Registerer 上注册指标
// reg 同时实现 Gatherer (如 *prometheus.Registry) 时，Totals 可读取汇总
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	c := &Collector{
		paymentsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total number of payments delegated to a payment strategy",
			},
			[]string{"method"},
		),
		rateUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_updates_total",
				Help: "Total number of exchange rate updates",
			},
			[]string{"currency"},
		),
		notificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observer_notifications_total",
				Help: "Total number of rate updates delivered to observers",
			},
			[]string{"observer"},
		),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		c.gatherer = g
	}
	return c
}

// RecordPayment 记录一次支付
func (c *Collector) RecordPayment(method string) {
	if c == nil {
		return
	}
	c.paymentsTotal.WithLabelValues(method).Inc()
}

// RecordRateUpdate 记录一次汇率更新
func (c *Collector) RecordRateUpdate(currency string) {
	if c == nil {
		return
	}
	c.rateUpdatesTotal.WithLabelValues(currency).Inc()
}

// RecordNotification 记录一次观察者通知
func (c *Collector) RecordNotification(observer string) {
	if c == nil {
		return
	}
	c.notificationsTotal.WithLabelValues(observer).Inc()
}

// Payments 返回指定支付方式的计数
func (c *Collector) Payments(method string) float64 {
	return counterValue(c, func(c *Collector) prometheus.Counter { return c.paymentsTotal.WithLabelValues(method) })
}

// Notifications 返回指定观察者收到的通知数
func (c *Collector) Notifications(observer string) float64 {
	return counterValue(c, func(c *Collector) prometheus.Counter { return c.notificationsTotal.WithLabelValues(observer) })
}
