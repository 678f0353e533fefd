package xconstrained

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
)

func BenchmarkGenerateFloat64(b *testing.B) {
	c := Constraints[float64]{Minimum: ptr(0.13), Maximum: ptr(7.55), MultipleOf: ptr(0.0123)}
	r := xprimitive.NewRand(1)
	for b.Loop() {
		_, _ = GenerateFloat64(r, c)
	}
}

func BenchmarkGenerateInt64(b *testing.B) {
	c := Constraints[int64]{Minimum: ptr[int64](-1000), Maximum: ptr[int64](1000), MultipleOf: ptr[int64](7)}
	r := xprimitive.NewRand(1)
	for b.Loop() {
		_, _ = GenerateInt64(r, c)
	}
}

func BenchmarkGenerateDecimal(b *testing.B) {
	c := Constraints[decimal.Decimal]{Minimum: ptr(dec("0.13")), Maximum: ptr(dec("7.55")), MultipleOf: ptr(dec("0.0123"))}
	ctx := xdecimal.New()
	r := xprimitive.NewRand(1)
	for b.Loop() {
		_, _ = GenerateDecimal(r, ctx, c)
	}
}

func BenchmarkPassesMultipleDecimal(b *testing.B) {
	ctx := xdecimal.New()
	m, v := dec("0.0123"), dec("0.1353")
	for b.Loop() {
		_ = PassesMultipleDecimal(ctx, m, v)
	}
}
