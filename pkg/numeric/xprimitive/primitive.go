package xprimitive

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
)

const (
	// defaultSpan 只给出一侧边界时，另一侧与之相距的默认跨度。
	defaultSpan = 100

	// defaultOrigin 两侧边界均缺失时，下界在 [0, defaultOrigin] 内随机选取。
	defaultOrigin = 100
)

// Float 在闭区间 [minimum, maximum] 内均匀生成 float64。
//
// 边界缺失时：
//   - 下界：给出上界时取 maximum-100，否则取 [0,100] 内的随机整数
//   - 上界：下界非负时取 minimum+2，否则取 minimum+0.5
//
// minimum > maximum 时返回 minimum。
func Float(r Rand, minimum, maximum *float64) float64 {
	var lo, hi float64
	switch {
	case minimum != nil:
		lo = *minimum
	case maximum != nil:
		lo = *maximum - defaultSpan
	default:
		lo = float64(r.Int64N(defaultOrigin + 1))
	}
	switch {
	case maximum != nil:
		hi = *maximum
	case lo >= 0:
		hi = lo + 2
	default:
		hi = lo + 0.5
	}
	if hi <= lo {
		return lo
	}

	// 按权重组合而非 lo+(hi-lo)*u，避免跨度溢出为 Inf
	u := r.Float64()
	v := lo*(1-u) + hi*u
	return math.Min(math.Max(v, lo), hi)
}

// Int 在闭区间 [minimum, maximum] 内均匀生成 int64。
//
// 边界缺失时：下界取 maximum-100（或 0），上界取 minimum+100，均做饱和运算。
// minimum > maximum 时返回 minimum。
func Int(r Rand, minimum, maximum *int64) int64 {
	var lo, hi int64
	switch {
	case minimum != nil:
		lo = *minimum
	case maximum != nil:
		lo = saturatingAdd(*maximum, -defaultSpan)
	}
	if maximum != nil {
		hi = *maximum
	} else {
		hi = saturatingAdd(lo, defaultSpan)
	}
	if hi <= lo {
		return lo
	}

	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(r.Uint64())
	}
	n := span + 1
	if n <= math.MaxInt64 {
		return int64(uint64(lo) + uint64(r.Int64N(int64(n))))
	}
	// n > 2^63：拒绝采样，每轮接受概率大于 1/2
	for {
		if v := r.Uint64(); v < n {
			return int64(uint64(lo) + v)
		}
	}
}

// Decimal 返回按精度上下文 c 生成十进制数的原始生成器。
//
// 先按 [Float] 的规则生成 float64，再转为十进制数并按 c 舍入，
// 最后夹回 [minimum, maximum]，保证舍入不会把结果推出区间。
func Decimal(c xdecimal.Context) func(r Rand, minimum, maximum *decimal.Decimal) decimal.Decimal {
	return func(r Rand, minimum, maximum *decimal.Decimal) decimal.Decimal {
		var fmin, fmax *float64
		if minimum != nil {
			f := minimum.InexactFloat64()
			fmin = &f
		}
		if maximum != nil {
			f := maximum.InexactFloat64()
			fmax = &f
		}

		v := c.Round(decimal.NewFromFloat(Float(r, fmin, fmax)))
		if minimum != nil && v.LessThan(*minimum) {
			v = *minimum
		}
		if maximum != nil && v.GreaterThan(*maximum) {
			v = *maximum
		}
		return v
	}
}

func saturatingAdd(a, b int64) int64 {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt64
	case b < 0 && s > a:
		return math.MinInt64
	default:
		return s
	}
}
