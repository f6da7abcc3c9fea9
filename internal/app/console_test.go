package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"pattern_demo/pkg/logger"
	"pattern_demo/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

const menu = "=== STRATEGY PATTERN (Payment) ===\n" +
	"Choose payment method:\n" +
	"1 - Credit Card\n" +
	"2 - PayPal\n" +
	"3 - Crypto\n"

const observerSection = "\n=== OBSERVER PATTERN (Currency Exchange) ===\n" +
	"\nExchange rate updated: USD = 480\n" +
	"Bank received update: USD = 480\n" +
	"Investor analyzing new rate: USD = 480\n" +
	"Mobile App notification: USD = 480\n" +
	"\nExchange rate updated: EUR = 510\n" +
	"Bank received update: EUR = 510\n" +
	"Investor analyzing new rate: EUR = 510\n" +
	"Mobile App notification: EUR = 510\n" +
	"\nExchange rate updated: BTC = 30000000\n" +
	"Bank received update: BTC = 30000000\n" +
	"Mobile App notification: BTC = 30000000\n"

func run(t *testing.T, input string, m *metrics.Collector) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewConsoleApp(m).Run(strings.NewReader(input), &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	t.Run("PayPal payment then rate broadcast", func(t *testing.T) {
		out, err := run(t, "2\n19.99\n", nil)

		require.NoError(t, err)
		assert.Equal(t, menu+"Enter amount: Paid 19.99 via PayPal\n"+observerSection, out)
	})

	t.Run("Credit card with CRLF input", func(t *testing.T) {
		out, err := run(t, "1\r\n250\r\n", nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Enter amount: Paid 250 by Credit Card\n")
	})

	t.Run("Crypto with last line missing newline", func(t *testing.T) {
		out, err := run(t, "3\n-0.5", nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Paid -0.5 using Cryptocurrency\n")
		assert.True(t, strings.HasSuffix(out, observerSection))
	})

	t.Run("Amount surrounded by spaces", func(t *testing.T) {
		out, err := run(t, "2\n  7.5 \n", nil)

		require.NoError(t, err)
		assert.Contains(t, out, "Paid 7.5 via PayPal\n")
	})
}

func TestRunInvalidChoice(t *testing.T) {
	for _, input := range []string{"9\n", "\n", "", " 2\n", "PayPal\n"} {
		out, err := run(t, input, nil)

		require.NoError(t, err, input)
		assert.Equal(t, menu+"Invalid choice\n", out, input)
		assert.NotContains(t, out, "OBSERVER")
		assert.NotContains(t, out, "Exchange rate updated")
	}
}

func TestRunMalformedAmount(t *testing.T) {
	for _, input := range []string{"1\nabc\n", "2\n\n", "3\n", "1\n12,5\n"} {
		out, err := run(t, input, nil)

		assert.ErrorIs(t, err, ErrInvalidAmount, input)
		assert.Equal(t, menu+"Enter amount: ", out, input)
	}

	_, err := run(t, "1\nabc\n", nil)
	assert.EqualError(t, err, `invalid amount "abc"`)
}

func TestRunReadError(t *testing.T) {
	readErr := errors.New("broken pipe")
	var out bytes.Buffer

	err := NewConsoleApp(nil).Run(iotest.ErrReader(readErr), &out)

	assert.ErrorIs(t, err, readErr)
	assert.False(t, errors.Is(err, ErrInvalidAmount))
}

func TestRunNotificationCounts(t *testing.T) {
	m := metrics.NewCollector(prometheus.NewRegistry())

	_, err := run(t, "1\n10\n", m)

	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Payments("credit_card"))
	assert.Equal(t, 3.0, m.Notifications("bank"))
	assert.Equal(t, 2.0, m.Notifications("investor"))
	assert.Equal(t, 3.0, m.Notifications("mobile_app"))
}

func TestRunLogsMetricTotals(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	m := metrics.NewCollector(prometheus.NewRegistry())
	_, err := run(t, "2\n19.99\n", m)
	require.NoError(t, err)

	entries := logs.FilterMessage("metrics totals").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["run_id"])
	assert.Equal(t, 1.0, fields[`payments_total{method="paypal"}`])
	for _, currency := range []string{"USD", "EUR", "BTC"} {
		assert.Equal(t, 1.0, fields[`rate_updates_total{currency="`+currency+`"}`], currency)
	}
	assert.Equal(t, 3.0, fields[`observer_notifications_total{observer="bank"}`])
	assert.Equal(t, 2.0, fields[`observer_notifications_total{observer="investor"}`])
	assert.Equal(t, 3.0, fields[`observer_notifications_total{observer="mobile_app"}`])
}

func TestRunLogsTotalsOnInvalidChoice(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = prev }()

	m := metrics.NewCollector(prometheus.NewRegistry())
	_, err := run(t, "9\n", m)
	require.NoError(t, err)

	// 未产生任何计数，不输出汇总
	assert.Zero(t, logs.FilterMessage("metrics totals").Len())
	assert.Equal(t, 1, logs.FilterMessage("invalid payment choice").Len())
}
