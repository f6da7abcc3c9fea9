package strategy

import (
	"fmt"
	"io"
	"pattern_demo/pkg/utils"
)

type CryptoStrategy struct {
	base
}

func NewCryptoStrategy(out io.Writer) *CryptoStrategy {
	return &CryptoStrategy{base{out: out}}
}

func (s *CryptoStrategy) Name() string {
	return ChannelCrypto
}

// Pay 加密货币支付
func (s *CryptoStrategy) Pay(amount float64) {
	fmt.Fprintf(s.out, "Paid %s using Cryptocurrency\n", utils.FormatNumber(amount))
}

var _ PaymentStrategy = (*CryptoStrategy)(nil)
