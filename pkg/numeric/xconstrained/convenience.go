package xconstrained

import (
	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
)

// GenerateFloat64 使用 [Float64] 与 xprimitive.Float 生成 float64。
func GenerateFloat64(r xprimitive.Rand, c Constraints[float64], opts ...Option) (float64, error) {
	return Generate[float64](r, Float64(), xprimitive.Float, c, opts...)
}

// GenerateInt64 使用 [Int64] 与 xprimitive.Int 生成 int64。
func GenerateInt64(r xprimitive.Rand, c Constraints[int64], opts ...Option) (int64, error) {
	return Generate[int64](r, Int64(), xprimitive.Int, c, opts...)
}

// GenerateDecimal 在精度上下文 dc 中使用 [Decimal] 与 xprimitive.Decimal 生成十进制数。
func GenerateDecimal(r xprimitive.Rand, dc xdecimal.Context, c Constraints[decimal.Decimal], opts ...Option) (decimal.Decimal, error) {
	return Generate[decimal.Decimal](r, Decimal(dc), xprimitive.Decimal(dc), c, opts...)
}
