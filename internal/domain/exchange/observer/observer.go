package observer

import (
	"fmt"
	"io"
	"pattern_demo/pkg/utils"
)

// RateObserver 汇率更新订阅者
type RateObserver interface {
	Name() string
	Update(currency string, rate float64)
}

// Bank 银行
type Bank struct {
	out io.Writer
}

func NewBank(out io.Writer) *Bank {
	return &Bank{out: out}
}

func (b *Bank) Name() string { return "bank" }

func (b *Bank) Update(currency string, rate float64) {
	fmt.Fprintf(b.out, "Bank received update: %s = %s\n", currency, utils.FormatNumber(rate))
}

// Investor 投资者
type Investor struct {
	out io.Writer
}

func NewInvestor(out io.Writer) *Investor {
	return &Investor{out: out}
}

func (i *Investor) Name() string { return "investor" }

func (i *Investor) Update(currency string, rate float64) {
	fmt.Fprintf(i.out, "Investor analyzing new rate: %s = %s\n", currency, utils.FormatNumber(rate))
}

// MobileApp 移动端推送
type MobileApp struct {
	out io.Writer
}

func NewMobileApp(out io.Writer) *MobileApp {
	return &MobileApp{out: out}
}

func (a *MobileApp) Name() string { return "mobile_app" }

func (a *MobileApp) Update(currency string, rate float64) {
	fmt.Fprintf(a.out, "Mobile App notification: %s = %s\n", currency, utils.FormatNumber(rate))
}

var (
	_ RateObserver = (*Bank)(nil)
	_ RateObserver = (*Investor)(nil)
	_ RateObserver = (*MobileApp)(nil)
)
