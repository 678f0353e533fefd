package xconstrained

import (
	"fmt"
	"math/big"

	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
	"github.com/omeyang/xsynth/pkg/observability/xlog"
)

// Method 原始生成器：在闭区间 [minimum, maximum] 内返回随机值，任一边界可为 nil。
// 不感知整除约束。生成乘数时以整数值边界调用。
type Method[T any] func(r xprimitive.Rand, minimum, maximum *T) T

// Constraints 约束三元组，nil 表示该约束缺失。
type Constraints[T any] struct {
	Minimum    *T
	Maximum    *T
	MultipleOf *T
}

// Generate 返回同时满足 c 中全部约束的随机值。
//
// 约束值先经 arith.Normalize 重新表达，比较与整除校验均针对重新表达后的值。
// MultipleOf 为 nil 时直接返回 method(r, Minimum, Maximum) 的结果。
//
// 错误：
//   - [ErrInvalidRange]: Minimum > Maximum
//   - [ErrNotFinite]: 约束值不可参与运算
//   - [ErrEmptyWindow]: 区间内没有 MultipleOf 的倍数，MultipleOf 本身也不在区间内
func Generate[T any](r xprimitive.Rand, arith Arith[T], method Method[T], c Constraints[T], opts ...Option) (T, error) {
	var zero T
	switch {
	case r == nil:
		return zero, ErrNilRand
	case arith == nil:
		return zero, ErrNilArith
	case method == nil:
		return zero, ErrNilMethod
	}
	o := applyOptions(opts)

	c, err := normalize(arith, c)
	if err != nil {
		return zero, err
	}
	if c.MultipleOf == nil {
		return method(r, c.Minimum, c.Maximum), nil
	}

	lo, hi, ok := window(arith, c, o.window)
	if !ok {
		return fallback(arith, c, o, "empty multiplier window")
	}
	return pick(r, arith, method, c, lo, hi, o)
}

// MultiplierWindow 返回乘数窗口 [lo, hi]：其中任一 k 的乘积 k*MultipleOf 都满足区间约束。
//
// MultipleOf 必须给出且非 0，否则返回 [ErrEmptyWindow]；窗口为空时同样返回 [ErrEmptyWindow]。
func MultiplierWindow[T any](arith Arith[T], c Constraints[T], opts ...Option) (lo, hi *big.Int, err error) {
	if arith == nil {
		return nil, nil, ErrNilArith
	}
	o := applyOptions(opts)
	c, err = normalize(arith, c)
	if err != nil {
		return nil, nil, err
	}
	if c.MultipleOf == nil {
		return nil, nil, fmt.Errorf("%w: multiple_of not given", ErrEmptyWindow)
	}
	lo, hi, ok := window(arith, c, o.window)
	if !ok {
		return nil, nil, emptyWindowError(c)
	}
	return lo, hi, nil
}

// HasMultipleInRange 报告 [minimum, maximum] 内是否存在 multipleOf 的倍数，
// 或 multipleOf 本身落在区间内。
//
// 只检查乘数窗口是否非空；降低精度的十进制上下文中，窗口非空时
// [Generate] 仍可能因乘积舍入后不再整除而返回 [ErrEmptyWindow]。
func HasMultipleInRange[T any](arith Arith[T], minimum, maximum, multipleOf T) bool {
	if arith == nil {
		return false
	}
	c, err := normalize(arith, Constraints[T]{Minimum: &minimum, Maximum: &maximum, MultipleOf: &multipleOf})
	if err != nil {
		return false
	}
	if _, _, ok := window(arith, c, DefaultWindow); ok {
		return true
	}
	return inBounds(arith, c, *c.MultipleOf)
}

// normalize 重新表达约束值并校验区间，不修改调用方的值。
func normalize[T any](arith Arith[T], c Constraints[T]) (Constraints[T], error) {
	var out Constraints[T]
	fields := []struct {
		name string
		in   *T
		out  **T
	}{
		{"minimum", c.Minimum, &out.Minimum},
		{"maximum", c.Maximum, &out.Maximum},
		{"multiple_of", c.MultipleOf, &out.MultipleOf},
	}
	for _, f := range fields {
		if f.in == nil {
			continue
		}
		v := arith.Normalize(*f.in)
		if err := arith.Check(v); err != nil {
			return out, fmt.Errorf("xconstrained: %s: %w", f.name, err)
		}
		*f.out = &v
	}

	if out.Minimum != nil && out.Maximum != nil && arith.Cmp(*out.Minimum, *out.Maximum) > 0 {
		return out, fmt.Errorf("%w: %v > %v", ErrInvalidRange, *out.Minimum, *out.Maximum)
	}
	return out, nil
}

// window 计算并收紧乘数窗口。ok 为 false 表示窗口为空或 multiple_of 为 0。
func window[T any](arith Arith[T], c Constraints[T], width int64) (lo, hi *big.Int, ok bool) {
	m := *c.MultipleOf
	sign := arith.Sign(m)
	if sign == 0 {
		return nil, nil, false
	}

	// m < 0 时乘积随 k 递减，上界决定乘数下限
	lower, upper := c.Minimum, c.Maximum
	if sign < 0 {
		lower, upper = upper, lower
	}
	if lower != nil {
		lo = arith.CeilQuo(*lower, m)
	}
	if upper != nil {
		hi = arith.FloorQuo(*upper, m)
	}
	w := big.NewInt(width)
	switch {
	case lower == nil && upper == nil:
		lo, hi = new(big.Int).Neg(w), w
	case lower == nil:
		lo = new(big.Int).Sub(hi, w)
	case upper == nil:
		hi = new(big.Int).Add(lo, w)
	}
	if lo.Cmp(hi) > 0 {
		return nil, nil, false
	}

	valid := func(k *big.Int) bool {
		p, ok := arith.Scale(k, m)
		return ok && inBounds(arith, c, arith.Normalize(p))
	}
	return tighten(valid, lo, hi)
}

// tighten 把 [lo, hi] 收缩到其中满足 valid 的子区间，不修改 lo 与 hi。
//
// 乘积关于 k 单调，valid 在整数轴上成立的集合是一个区间，
// 因此找到任一锚点后两侧可分别二分。锚点只在端点及其相邻值、0 与中点中查找：
// 端点由 ceil/floor 得出，舍入误差至多使其偏离一位。
func tighten(valid func(*big.Int) bool, lo, hi *big.Int) (*big.Int, *big.Int, bool) {
	mid := func(l, r *big.Int) *big.Int {
		d := new(big.Int).Sub(r, l)
		return d.Add(l, d.Rsh(d, 1))
	}
	zero := new(big.Int)
	if zero.Cmp(lo) < 0 {
		zero = lo
	} else if zero.Cmp(hi) > 0 {
		zero = hi
	}

	var anchor *big.Int
	for _, k := range []*big.Int{
		hi, lo,
		new(big.Int).Sub(hi, bigOne), new(big.Int).Add(lo, bigOne),
		zero, mid(lo, hi),
	} {
		if k.Cmp(lo) >= 0 && k.Cmp(hi) <= 0 && valid(k) {
			anchor = k
			break
		}
	}
	if anchor == nil {
		return nil, nil, false
	}

	diff := new(big.Int)
	if !valid(lo) {
		l, r := lo, anchor
		for diff.Sub(r, l).Cmp(bigOne) > 0 {
			if k := mid(l, r); valid(k) {
				r = k
			} else {
				l = k
			}
		}
		lo = r
	}
	if !valid(hi) {
		l, r := anchor, hi
		for diff.Sub(r, l).Cmp(bigOne) > 0 {
			if k := mid(l, r); valid(k) {
				l = k
			} else {
				r = k
			}
		}
		hi = l
	}
	return new(big.Int).Set(lo), new(big.Int).Set(hi), true
}

// pick 由原始生成器在 [lo, hi] 内选取乘数并返回乘积。
//
// 降低精度的十进制上下文或远离 0 的 float64 乘数下，乘积可能不再通过整除校验：
// 先随机重选至多 maxAttempts 次，再从两端向内交替扫描同样次数，仍失败则回退。
// 窗口端点在该表示中不可表达时跳过随机阶段。
func pick[T any](r xprimitive.Rand, arith Arith[T], method Method[T], c Constraints[T], lo, hi *big.Int, o options) (T, error) {
	m := *c.MultipleOf

	accept := func(k *big.Int) (T, bool) {
		p, ok := arith.Scale(k, m)
		if !ok {
			return p, false
		}
		p = arith.Normalize(p)
		return p, inBounds(arith, c, p) && arith.IsMultiple(m, p)
	}

	kmin, okMin := arith.FromInt(lo)
	kmax, okMax := arith.FromInt(hi)
	if okMin && okMax {
		for range o.maxAttempts {
			k := arith.RoundInt(method(r, &kmin, &kmax))
			if k.Cmp(lo) < 0 {
				k = lo
			} else if k.Cmp(hi) > 0 {
				k = hi
			}
			if v, ok := accept(k); ok {
				return v, nil
			}
		}
	}
	o.logger.Debug("xconstrained: random multipliers rejected, scanning window",
		xlog.MultipleOf(fmt.Sprint(m)), "lo", lo.String(), "hi", hi.String(), xlog.Attempts(o.maxAttempts))

	up, down := new(big.Int).Set(lo), new(big.Int).Set(hi)
	for n := 0; n < o.maxAttempts && up.Cmp(down) <= 0; n++ {
		if v, ok := accept(up); ok {
			return v, nil
		}
		if v, ok := accept(down); ok {
			return v, nil
		}
		up.Add(up, bigOne)
		down.Sub(down, bigOne)
	}
	return fallback(arith, c, o, "no representable multiple in window")
}

// fallback multiple_of 本身满足区间时返回它，否则返回 ErrEmptyWindow。
func fallback[T any](arith Arith[T], c Constraints[T], o options, reason string) (T, error) {
	m := *c.MultipleOf
	if inBounds(arith, c, m) {
		o.logger.Debug("xconstrained: falling back to multiple_of",
			"reason", reason, xlog.MultipleOf(fmt.Sprint(m)))
		return m, nil
	}
	var zero T
	return zero, emptyWindowError(c)
}

func emptyWindowError[T any](c Constraints[T]) error {
	return fmt.Errorf("%w: multiple_of %v, range [%s, %s]",
		ErrEmptyWindow, *c.MultipleOf, describe(c.Minimum, "-inf"), describe(c.Maximum, "+inf"))
}

func inBounds[T any](arith Arith[T], c Constraints[T], v T) bool {
	if c.Minimum != nil && arith.Cmp(v, *c.Minimum) < 0 {
		return false
	}
	if c.Maximum != nil && arith.Cmp(v, *c.Maximum) > 0 {
		return false
	}
	return true
}

func describe[T any](p *T, absent string) string {
	if p == nil {
		return absent
	}
	return fmt.Sprint(*p)
}
