package xconstrained

import (
	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
)

// PassesMultiple 报告 value 是否为 multipleOf 的整数倍。
//
// multipleOf 为 0 时恒为 true（除数为 0 不能否定整除约束）。
// 对所有可表示的输入都有定义，不会 panic。
func PassesMultiple[T any](arith Arith[T], multipleOf, value T) bool {
	if arith == nil {
		return false
	}
	return arith.IsMultiple(multipleOf, value)
}

// PassesMultipleFloat64 float64 版本的 [PassesMultiple]，容差 1e-8。
func PassesMultipleFloat64(multipleOf, value float64) bool {
	return float64Arith{}.IsMultiple(multipleOf, value)
}

// PassesMultipleInt64 int64 版本的 [PassesMultiple]。
func PassesMultipleInt64(multipleOf, value int64) bool {
	return int64Arith{}.IsMultiple(multipleOf, value)
}

// PassesMultipleDecimal 十进制版本的 [PassesMultiple]，在精度上下文 c 中求余。
func PassesMultipleDecimal(c xdecimal.Context, multipleOf, value decimal.Decimal) bool {
	return decimalArith{ctx: c}.IsMultiple(multipleOf, value)
}
