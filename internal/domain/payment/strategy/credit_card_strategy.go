package strategy

import (
	"fmt"
	"io"
	"pattern_demo/pkg/utils"
)

type CreditCardStrategy struct {
	base
}

func NewCreditCardStrategy(out io.Writer) *CreditCardStrategy {
	return &CreditCardStrategy{base{out: out}}
}

func (s *CreditCardStrategy) Name() string {
	return ChannelCreditCard
}

// Pay 信用卡支付
func (s *CreditCardStrategy) Pay(amount float64) {
	fmt.Fprintf(s.out, "Paid %s by Credit Card\n", utils.FormatNumber(amount))
}

// 确保实现了接口
var _ PaymentStrategy = (*CreditCardStrategy)(nil)
