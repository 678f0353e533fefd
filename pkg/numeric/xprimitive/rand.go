package xprimitive

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// pcgStream PCG 第二个种子字的固定扰动。
const pcgStream = 0x9e3779b97f4a7c15

// Rand 原始生成器使用的随机源。*rand.Rand（math/rand/v2）满足该接口。
type Rand interface {
	Float64() float64
	Int64N(n int64) int64
	Uint64() uint64
}

var _ Rand = (*rand.Rand)(nil)

// NewRand 返回以 seed 初始化的确定性随机源。
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^pcgStream))
}

// NewSeed 使用 crypto/rand 生成高熵种子。
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("xprimitive: read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// DeriveSeed 由基础种子和若干标签派生子种子。
//
// 相同输入总是得到相同输出；标签之间以 0 字节分隔，
// 因此 ("ab", "c") 与 ("a", "bc") 得到不同结果。
func DeriveSeed(base int64, parts ...string) int64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	_, _ = h.Write(buf[:])
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return int64(h.Sum64())
}
