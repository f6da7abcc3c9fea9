package strategy

import (
	"fmt"
	"io"
	"pattern_demo/pkg/utils"
)

type PayPalStrategy struct {
	base
}

func NewPayPalStrategy(out io.Writer) *PayPalStrategy {
	return &PayPalStrategy{base{out: out}}
}

func (s *PayPalStrategy) Name() string {
	return ChannelPayPal
}

func (s *PayPalStrategy) Pay(amount float64) {
	fmt.Fprintf(s.out, "Paid %s via PayPal\n", utils.FormatNumber(amount))
}

var _ PaymentStrategy = (*PayPalStrategy)(nil)
