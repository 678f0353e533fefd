package xconstrained

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
)

type decimalArith struct {
	ctx xdecimal.Context
}

// Decimal 返回十进制表示的数值能力，所有运算都在精度上下文 c 中进行。
func Decimal(c xdecimal.Context) Arith[decimal.Decimal] {
	return decimalArith{ctx: c}
}

func (a decimalArith) Normalize(v decimal.Decimal) decimal.Decimal { return a.ctx.Round(v) }

func (a decimalArith) Check(decimal.Decimal) error { return a.ctx.Validate() }

func (decimalArith) Cmp(x, y decimal.Decimal) int { return x.Cmp(y) }

func (decimalArith) Sign(v decimal.Decimal) int { return v.Sign() }

func (a decimalArith) Scale(k *big.Int, m decimal.Decimal) (decimal.Decimal, bool) {
	return a.ctx.Mul(decimal.NewFromBigInt(k, 0), m), true
}

// CeilQuo 对 x/y 做精确整数除法，不受上下文精度影响。y 为 0 时返回 0。
func (decimalArith) CeilQuo(x, y decimal.Decimal) *big.Int {
	if y.IsZero() {
		return new(big.Int)
	}
	q, r := x.QuoRem(y, 0)
	k := new(big.Int).Set(q.BigInt())
	if r.Sign() != 0 && r.Sign() == y.Sign() {
		k.Add(k, bigOne)
	}
	return k
}

// FloorQuo 对 x/y 做精确整数除法，不受上下文精度影响。y 为 0 时返回 0。
func (decimalArith) FloorQuo(x, y decimal.Decimal) *big.Int {
	if y.IsZero() {
		return new(big.Int)
	}
	q, r := x.QuoRem(y, 0)
	k := new(big.Int).Set(q.BigInt())
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		k.Sub(k, bigOne)
	}
	return k
}

func (decimalArith) FromInt(k *big.Int) (decimal.Decimal, bool) {
	return decimal.NewFromBigInt(k, 0), true
}

func (decimalArith) RoundInt(v decimal.Decimal) *big.Int {
	return new(big.Int).Set(v.RoundBank(0).BigInt())
}

func (a decimalArith) Next(v decimal.Decimal) decimal.Decimal { return a.ctx.Next(v) }

func (a decimalArith) Prev(v decimal.Decimal) decimal.Decimal { return a.ctx.Prev(v) }

// IsMultiple 先按上下文重新表达两个操作数，再在上下文中求余并与 0 比较。
func (a decimalArith) IsMultiple(multipleOf, v decimal.Decimal) bool {
	m := a.ctx.Round(multipleOf)
	if m.IsZero() {
		return true
	}
	r, err := a.ctx.Rem(a.ctx.Round(v), m)
	return err == nil && r.IsZero()
}
