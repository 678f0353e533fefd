package xconstrained

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
)

// floatTolerance float64 整除校验的容差，吸收二进制表示误差。
const floatTolerance = 1e-8

type float64Arith struct{}

// Float64 返回 float64 表示的数值能力。
func Float64() Arith[float64] {
	return float64Arith{}
}

func (float64Arith) Normalize(v float64) float64 { return v }

func (float64Arith) Check(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrNotFinite, v)
	}
	return nil
}

func (float64Arith) Cmp(a, b float64) int { return cmp.Compare(a, b) }

func (float64Arith) Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func (a float64Arith) Scale(k *big.Int, m float64) (float64, bool) {
	f, ok := a.FromInt(k)
	if !ok {
		return 0, false
	}
	p := f * m
	return p, !math.IsInf(p, 0) && !math.IsNaN(p)
}

// CeilQuo 商溢出为 ±Inf 时饱和到 ±MaxFloat64。
func (float64Arith) CeilQuo(a, b float64) *big.Int { return floatMultiplier(math.Ceil(a / b)) }

// FloorQuo 商溢出为 ±Inf 时饱和到 ±MaxFloat64。
func (float64Arith) FloorQuo(a, b float64) *big.Int { return floatMultiplier(math.Floor(a / b)) }

// FromInt 取最接近 k 的 float64，超出 float64 范围时 ok 为 false。
func (float64Arith) FromInt(k *big.Int) (float64, bool) {
	f, _ := new(big.Float).SetInt(k).Float64()
	return f, !math.IsInf(f, 0)
}

func (float64Arith) RoundInt(v float64) *big.Int { return floatMultiplier(math.RoundToEven(v)) }

func (float64Arith) Next(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }

func (float64Arith) Prev(v float64) float64 { return math.Nextafter(v, math.Inf(-1)) }

// IsMultiple 计算 v/multipleOf 的小数部分，与 0 或 1 相差不超过 1e-8 即视为整除。
func (float64Arith) IsMultiple(multipleOf, v float64) bool {
	if multipleOf == 0 {
		return true
	}
	q := v / multipleOf
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return false
	}
	frac := q - math.Floor(q)
	return frac <= floatTolerance || 1-frac <= floatTolerance
}

// floatMultiplier 把整数值 f 转为 *big.Int。NaN 视为 0，±Inf 饱和到 ±MaxFloat64。
func floatMultiplier(f float64) *big.Int {
	switch {
	case math.IsNaN(f):
		return new(big.Int)
	case math.IsInf(f, 1):
		f = math.MaxFloat64
	case math.IsInf(f, -1):
		f = -math.MaxFloat64
	}
	k, _ := new(big.Float).SetFloat64(f).Int(nil)
	return k
}
