package xconstrained

import (
	"cmp"
	"math"
	"math/big"
)

type int64Arith struct{}

// Int64 返回 int64 表示的数值能力。运算精确，乘法溢出视为不可表示。
func Int64() Arith[int64] {
	return int64Arith{}
}

func (int64Arith) Normalize(v int64) int64 { return v }

func (int64Arith) Check(int64) error { return nil }

func (int64Arith) Cmp(a, b int64) int { return cmp.Compare(a, b) }

func (int64Arith) Sign(v int64) int { return cmp.Compare(v, 0) }

// Scale 在 *big.Int 上精确相乘，乘积超出 int64 时 ok 为 false。
func (int64Arith) Scale(k *big.Int, m int64) (int64, bool) {
	p := new(big.Int).Mul(k, big.NewInt(m))
	if !p.IsInt64() {
		return 0, false
	}
	return p.Int64(), true
}

func (int64Arith) CeilQuo(a, b int64) *big.Int { return ceilDiv(big.NewInt(a), big.NewInt(b)) }

func (int64Arith) FloorQuo(a, b int64) *big.Int { return floorDiv(big.NewInt(a), big.NewInt(b)) }

func (int64Arith) FromInt(k *big.Int) (int64, bool) {
	if !k.IsInt64() {
		return 0, false
	}
	return k.Int64(), true
}

func (int64Arith) RoundInt(v int64) *big.Int { return big.NewInt(v) }

func (int64Arith) Next(v int64) int64 {
	if v == math.MaxInt64 {
		return v
	}
	return v + 1
}

func (int64Arith) Prev(v int64) int64 {
	if v == math.MinInt64 {
		return v
	}
	return v - 1
}

func (int64Arith) IsMultiple(multipleOf, v int64) bool {
	if multipleOf == 0 {
		return true
	}
	return v%multipleOf == 0
}
