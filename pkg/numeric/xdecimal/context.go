package xdecimal

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision 默认有效数字位数。
	DefaultPrecision = 28

	// MaxPrecision 允许配置的最大有效数字位数。
	MaxPrecision = 1000

	// unlimitedQuoDigits 精度不限时除法保留的有效数字位数。
	unlimitedQuoDigits = 34

	// guardDigits 除法的保护位，降低二次舍入误差。
	guardDigits = 2
)

// Context 十进制运算的精度上下文。
//
// Precision 为有效数字位数，0 表示不限精度（结果不舍入）。
// Context 是不可变值，可在 goroutine 之间自由复制。
type Context struct {
	Precision uint32
	Rounding  Rounding
}

// New 返回默认精度与默认舍入模式的上下文。
func New() Context {
	return Context{Precision: DefaultPrecision, Rounding: RoundHalfEven}
}

// Unlimited 返回不限精度的上下文。
func Unlimited() Context {
	return Context{}
}

// Validate 校验上下文配置。
func (c Context) Validate() error {
	if !c.Rounding.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidRounding, int(c.Rounding))
	}
	if c.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidPrecision, c.Precision, MaxPrecision)
	}
	return nil
}

// String 返回上下文的可读表示，用于日志。
func (c Context) String() string {
	if c.Precision == 0 {
		return "unlimited/" + c.Rounding.String()
	}
	return fmt.Sprintf("%d/%s", c.Precision, c.Rounding)
}

// Round 按上下文把 d 舍入到 Precision 位有效数字。
func (c Context) Round(d decimal.Decimal) decimal.Decimal {
	if c.Precision == 0 || d.IsZero() {
		return d
	}
	digits := numDigits(d)
	if digits <= int(c.Precision) {
		return d
	}
	places := int32(c.Precision) - int32(digits) - d.Exponent()
	return c.roundPlaces(d, places)
}

// Add 返回 a+b，结果按上下文舍入。
func (c Context) Add(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Add(b))
}

// Sub 返回 a-b，结果按上下文舍入。
func (c Context) Sub(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Sub(b))
}

// Mul 返回 a*b，结果按上下文舍入。
func (c Context) Mul(a, b decimal.Decimal) decimal.Decimal {
	return c.Round(a.Mul(b))
}

// Quo 返回 a/b，结果按上下文舍入。b 为 0 时返回 [ErrDivisionByZero]。
func (c Context) Quo(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	if a.IsZero() {
		return decimal.Zero, nil
	}
	prec := int32(c.Precision)
	if prec == 0 {
		prec = unlimitedQuoDigits
	}
	places := prec - (adjusted(a) - adjusted(b)) + guardDigits
	if places < 0 {
		places = 0
	}
	return c.Round(a.DivRound(b, places)), nil
}

// Rem 返回截断除法的余数 a - b*trunc(a/b)，符号与 a 相同，结果按上下文舍入。
// b 为 0 时返回 [ErrDivisionByZero]。
func (c Context) Rem(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return c.Round(a.Mod(b)), nil
}

// Ceil 返回不小于 d 的最小整数（精确）。
func (c Context) Ceil(d decimal.Decimal) decimal.Decimal {
	return d.Ceil()
}

// Floor 返回不大于 d 的最大整数（精确）。
func (c Context) Floor(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}

// ULP 返回 d 按上下文表达后末位的一个单位。
//
// 不限精度时没有“末位”的概念，取 10^min(exp, -3)。
func (c Context) ULP(d decimal.Decimal) decimal.Decimal {
	d = c.Round(d)
	if c.Precision == 0 {
		return decimal.New(1, min(d.Exponent(), -3))
	}
	if d.IsZero() {
		return decimal.New(1, -int32(c.Precision))
	}
	return decimal.New(1, adjusted(d)-int32(c.Precision)+1)
}

// Next 返回按上下文可表达、严格大于 d 的下一个值。
func (c Context) Next(d decimal.Decimal) decimal.Decimal {
	d = c.Round(d)
	return c.Round(d.Add(c.ULP(d)))
}

// Prev 返回按上下文可表达、严格小于 d 的值。
func (c Context) Prev(d decimal.Decimal) decimal.Decimal {
	d = c.Round(d)
	return c.Round(d.Sub(c.ULP(d)))
}

func (c Context) roundPlaces(d decimal.Decimal, places int32) decimal.Decimal {
	switch c.Rounding {
	case RoundHalfUp:
		return d.Round(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	default:
		return d.RoundBank(places)
	}
}

// numDigits 返回系数的十进制位数（0 视为 1 位）。
func numDigits(d decimal.Decimal) int {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(coef).String())
}

// adjusted 返回最高有效位的十进制指数，即科学计数法中的指数。
func adjusted(d decimal.Decimal) int32 {
	return int32(numDigits(d)) - 1 + d.Exponent()
}
