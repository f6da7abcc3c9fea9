package service

import (
	"errors"
	"fmt"
	"io"
	"pattern_demo/internal/domain/payment/strategy"
	"pattern_demo/pkg/logger"
	"pattern_demo/pkg/metrics"

	"go.uber.org/zap"
)

var ErrUnsupportedChannel = errors.New("unsupported payment channel")

// PaymentService 持有当前支付策略并委托执行
type PaymentService interface {
	SetStrategy(s strategy.PaymentStrategy)
	Pay(amount float64)
	RegisterStrategy(choice string, s strategy.PaymentStrategy)
	Select(choice string) error
}

type paymentService struct {
	out        io.Writer
	current    strategy.PaymentStrategy
	strategies map[string]strategy.PaymentStrategy
	metrics    *metrics.Collector
}

func NewPaymentService(out io.Writer, m *metrics.Collector) PaymentService {
	return &paymentService{
		out:        out,
		strategies: make(map[string]strategy.PaymentStrategy),
		metrics:    m,
	}
}

// SetStrategy 无条件替换当前策略
func (s *paymentService) SetStrategy(st strategy.PaymentStrategy) {
	s.current = st
}

// Pay 未选择支付方式时仅输出提示
func (s *paymentService) Pay(amount float64) {
	if s.current == nil {
		fmt.Fprintln(s.out, "Payment method not selected!")
		return
	}

	logger.Log.Debug("pay", zap.String("method", s.current.Name()), zap.Float64("amount", amount))
	s.current.Pay(amount)
	s.metrics.RecordPayment(s.current.Name())
}

// RegisterStrategy 注册菜单选项对应的支付策略
func (s *paymentService) RegisterStrategy(choice string, st strategy.PaymentStrategy) {
	s.strategies[choice] = st
}

// Select 按菜单选项精确匹配并设置策略
func (s *paymentService) Select(choice string) error {
	st, ok := s.strategies[choice]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedChannel, choice)
	}
	logger.Log.Debug("payment strategy selected", zap.String("choice", choice), zap.String("method", st.Name()))
	s.SetStrategy(st)
	return nil
}
