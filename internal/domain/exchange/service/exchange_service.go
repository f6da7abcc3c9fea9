package service

import (
	"fmt"
	"io"
	"reflect"
	"pattern_demo/internal/domain/exchange/observer"
	"pattern_demo/pkg/logger"
	"pattern_demo/pkg/metrics"
	"pattern_demo/pkg/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Subject 被观察者
type Subject interface {
	AddObserver(o observer.RateObserver)
	RemoveObserver(o observer.RateObserver)
	NotifyObservers(currency string, rate float64)
}

// CurrencyExchange 汇率广播，按注册顺序同步通知订阅者
// 仅在单个 goroutine 中使用，不加锁
type CurrencyExchange struct {
	out       io.Writer
	observers []observer.RateObserver
	metrics   *metrics.Collector
}

func NewCurrencyExchange(out io.Writer, m *metrics.Collector) *CurrencyExchange {
	return &CurrencyExchange{
		out:     out,
		metrics: m,
	}
}

// AddObserver 追加到末尾，不去重
func (e *CurrencyExchange) AddObserver(o observer.RateObserver) {
	e.observers = append(e.observers, o)
	logger.Log.Debug("observer added", zap.String("observer", o.Name()), zap.Int("total", len(e.observers)))
}

// RemoveObserver 按引用移除第一次出现的订阅者，不存在时忽略
// 不可比较的值类型订阅者无法被识别，调用为空操作；订阅者应使用指针实现
func (e *CurrencyExchange) RemoveObserver(o observer.RateObserver) {
	_, idx, ok := lo.FindIndexOf(e.observers, func(item observer.RateObserver) bool {
		return sameObserver(item, o)
	})
	if !ok {
		return
	}
	e.observers = append(e.observers[:idx:idx], e.observers[idx+1:]...)
	logger.Log.Debug("observer removed", zap.String("observer", o.Name()), zap.Int("total", len(e.observers)))
}

// SetRate 输出更新公告后通知所有订阅者
func (e *CurrencyExchange) SetRate(currency string, rate float64) {
	fmt.Fprintf(e.out, "\nExchange rate updated: %s = %s\n", currency, utils.FormatNumber(rate))
	logger.Log.Debug("rate updated",
		zap.String("currency", currency),
		zap.Float64("rate", rate),
		zap.Int("observers", len(e.observers)),
	)
	e.metrics.RecordRateUpdate(currency)
	e.NotifyObservers(currency, rate)
}

func (e *CurrencyExchange) NotifyObservers(currency string, rate float64) {
	for _, o := range e.observers {
		o.Update(currency, rate)
		e.metrics.RecordNotification(o.Name())
	}
}

// sameObserver 动态类型相同且可比较时才用 == 比较，避免 panic
func sameObserver(a, b observer.RateObserver) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Observers 返回当前订阅者列表的副本
func (e *CurrencyExchange) Observers() []observer.RateObserver {
	return append([]observer.RateObserver(nil), e.observers...)
}

var _ Subject = (*CurrencyExchange)(nil)
