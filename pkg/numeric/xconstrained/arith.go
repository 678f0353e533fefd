package xconstrained

import "math/big"

// Arith 描述一种数值表示上生成算法所需的能力。
//
// 每种表示（float64、int64、十进制）实现一次，[Generate] 对其保持泛型。
// 乘数 k 一律以 *big.Int 表达，不受表示本身的整数范围限制。
// 除 Check 外，实现不得 panic。
type Arith[T any] interface {
	// Normalize 把 v 按当前精度上下文重新表达。无上下文的表示原样返回。
	Normalize(v T) T

	// Check 报告 v 是否可参与运算（如 float64 的 NaN/Inf）。
	Check(v T) error

	// Cmp 比较 a 与 b，返回 -1、0 或 1。
	Cmp(a, b T) int

	// Sign 返回 v 的符号：-1、0 或 1。
	Sign(v T) int

	// Scale 返回 k*m（按上下文舍入）。结果不可表示（溢出、Inf）时 ok 为 false。
	Scale(k *big.Int, m T) (product T, ok bool)

	// CeilQuo 返回 ceil(a/b)。b 不为 0。
	CeilQuo(a, b T) *big.Int

	// FloorQuo 返回 floor(a/b)。b 不为 0。
	FloorQuo(a, b T) *big.Int

	// FromInt 把整数乘数转为该表示，不可表示时 ok 为 false。
	FromInt(k *big.Int) (v T, ok bool)

	// RoundInt 把 v 四舍六入五成双到整数。
	RoundInt(v T) *big.Int

	// Next 返回严格大于 v 的最小可表示值；不存在时返回 v。
	Next(v T) T

	// Prev 返回严格小于 v 的可表示值；不存在时返回 v。
	Prev(v T) T

	// IsMultiple 报告 v 是否为 multipleOf 的整数倍。multipleOf 为 0 时恒为 true。
	IsMultiple(multipleOf, v T) bool
}

var bigOne = big.NewInt(1)

// ceilDiv 返回 ceil(a/b)，b 不为 0。
func ceilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() == b.Sign() {
		q.Add(q, bigOne)
	}
	return q
}

// floorDiv 返回 floor(a/b)，b 不为 0。
func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, bigOne)
	}
	return q
}
