package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"pattern_demo/internal/domain/exchange/observer"
	exchangeService "pattern_demo/internal/domain/exchange/service"
	paymentService "pattern_demo/internal/domain/payment/service"
	"pattern_demo/internal/domain/payment/strategy"
	"pattern_demo/pkg/logger"
	"pattern_demo/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ConsoleApp 控制台演示：先执行策略模式 (支付)，再执行观察者模式 (汇率)
type ConsoleApp struct {
	metrics *metrics.Collector
}

func NewConsoleApp(m *metrics.Collector) *ConsoleApp {
	return &ConsoleApp{metrics: m}
}

// Run 从 in 读取两行输入，结果写入 out
// 无效选项输出 "Invalid choice" 后正常返回；金额无法解析时返回 ErrInvalidAmount
func (a *ConsoleApp) Run(in io.Reader, out io.Writer) error {
	log := logger.Log.With(zap.String("run_id", uuid.New().String()))
	reader := bufio.NewReader(in)
	defer a.metrics.LogTotals(log)

	// 1. 策略模式
	fmt.Fprintln(out, "=== STRATEGY PATTERN (Payment) ===")
	fmt.Fprintln(out, "Choose payment method:")
	fmt.Fprintln(out, "1 - Credit Card")
	fmt.Fprintln(out, "2 - PayPal")
	fmt.Fprintln(out, "3 - Crypto")

	choice, err := readLine(reader)
	if err != nil {
		return err
	}

	payment := paymentService.NewPaymentService(out, a.metrics)
	payment.RegisterStrategy("1", strategy.NewCreditCardStrategy(out))
	payment.RegisterStrategy("2", strategy.NewPayPalStrategy(out))
	payment.RegisterStrategy("3", strategy.NewCryptoStrategy(out))

	if err := payment.Select(choice); err != nil {
		log.Info("invalid payment choice", zap.String("choice", choice))
		fmt.Fprintln(out, "Invalid choice")
		return nil
	}

	fmt.Fprint(out, "Enter amount: ")
	raw, err := readLine(reader)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Warn("malformed amount", zap.String("input", raw), zap.Error(err))
		return fmt.Errorf("%w %q", ErrInvalidAmount, raw)
	}

	payment.Pay(amount)

	// 2. 观察者模式
	fmt.Fprintln(out, "\n=== OBSERVER PATTERN (Currency Exchange) ===")

	exchange := exchangeService.NewCurrencyExchange(out, a.metrics)

	bank := observer.NewBank(out)
	investor := observer.NewInvestor(out)
	mobileApp := observer.NewMobileApp(out)

	exchange.AddObserver(bank)
	exchange.AddObserver(investor)
	exchange.AddObserver(mobileApp)

	exchange.SetRate("USD", 480)
	exchange.SetRate("EUR", 510)

	exchange.RemoveObserver(investor)

	exchange.SetRate("BTC", 30000000)

	log.Debug("run finished")
	return nil
}

// readLine 读取一行并去掉行尾换行，EOF 视为最后一行
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
