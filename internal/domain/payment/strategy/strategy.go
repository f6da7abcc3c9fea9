package strategy

import "io"

type PaymentStrategy interface {
	// Name 支付方式标识，用于日志与指标
	Name() string

	// Pay 执行支付，输出确认信息
	Pay(amount float64)
}

// 渠道标识
const (
	ChannelCreditCard = "credit_card"
	ChannelPayPal     = "paypal"
	ChannelCrypto     = "crypto"
)

// base 各支付方式共用的输出目标
type base struct {
	out io.Writer
}
