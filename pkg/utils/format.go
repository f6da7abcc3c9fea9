package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// 超出该范围的数值使用指数形式，避免输出数百位数字
const (
	maxPlainMagnitude = 1e21
	minPlainMagnitude = 1e-7
)

// FormatNumber 以最短十进制形式输出数值 (480, 19.99, 30000000)
// 绝对值 >= 1e21 或 < 1e-7 时输出指数形式 (1e+300)，负零输出 "-0"
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0 && math.Signbit(v):
		return "-0"
	}

	abs := math.Abs(v)
	if v != 0 && (abs >= maxPlainMagnitude || abs < minPlainMagnitude) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).String()
}
