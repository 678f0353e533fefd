package xconstrained

import (
	"errors"
	"math"
	"math/big"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
)

const iterations = 500

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertBig(t *testing.T, want int64, got *big.Int) {
	t.Helper()
	if assert.NotNil(t, got) {
		assert.Zero(t, got.Cmp(big.NewInt(want)), "want %d, got %s", want, got)
	}
}

// lowest 总是返回下界的原始生成器，用于检查窗口端点。
func lowest[T any](_ xprimitive.Rand, minimum, _ *T) T { return *minimum }

// highest 总是返回上界的原始生成器。
func highest[T any](_ xprimitive.Rand, _, maximum *T) T { return *maximum }

func TestGenerateFloat64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		maximum, minimum, mul *float64
	}{
		{"range_multiple", ptr(100.0), ptr(2.0), ptr(8.0)},
		{"negative_multiple", ptr(-100.0), ptr(-187.0), ptr(-10.0)},
		{"fractional", ptr(7.55), ptr(0.13), ptr(0.0123)},
		{"min_only_positive", nil, ptr(10.0), ptr(3.0)},
		{"min_only_negative", nil, ptr(-10.0), ptr(3.0)},
		{"no_multiple", ptr(13.0), ptr(2.0), nil},
		{"max_only", ptr(50.0), nil, ptr(7.0)},
		{"max_only_negative", ptr(-50.0), nil, ptr(7.0)},
		{"unbounded", nil, nil, ptr(4.0)},
		{"multiple_exceeds_max", ptr(900.0), nil, ptr(1000.0)},
		{"max_only_no_multiple", ptr(13.0), nil, nil},
		{"min_only_no_multiple", nil, ptr(-50.0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := xprimitive.NewRand(1)
			for range iterations {
				v, err := GenerateFloat64(r, Constraints[float64]{Minimum: tt.minimum, Maximum: tt.maximum, MultipleOf: tt.mul})
				require.NoError(t, err)
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
				if tt.maximum != nil {
					assert.LessOrEqual(t, v, *tt.maximum)
				}
				if tt.minimum != nil {
					assert.GreaterOrEqual(t, v, *tt.minimum)
				}
				if tt.mul != nil {
					assert.True(t, PassesMultipleFloat64(*tt.mul, v), "%v is not a multiple of %v", v, *tt.mul)
				}
			}
		})
	}
}

func TestGenerateFloat64_UnboundedIsBounded(t *testing.T) {
	t.Parallel()

	r := xprimitive.NewRand(2)
	for range iterations {
		v, err := GenerateFloat64(r, Constraints[float64]{MultipleOf: ptr(4.0)})
		require.NoError(t, err)
		assert.LessOrEqual(t, math.Abs(v), 4*float64(DefaultWindow))
		assert.Zero(t, math.Mod(v, 4))
	}
}

func TestGenerateInt64_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("multiples_of_8", func(t *testing.T) {
		t.Parallel()
		r := xprimitive.NewRand(3)
		seen := make(map[int64]bool)
		for range iterations {
			v, err := GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](2), Maximum: ptr[int64](100), MultipleOf: ptr[int64](8)})
			require.NoError(t, err)
			require.Zero(t, v%8)
			require.GreaterOrEqual(t, v, int64(8))
			require.LessOrEqual(t, v, int64(96))
			seen[v] = true
		}
		assert.Len(t, seen, 12)
	})

	t.Run("negative_multiple", func(t *testing.T) {
		t.Parallel()
		r := xprimitive.NewRand(4)
		for range iterations {
			v, err := GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](-187), Maximum: ptr[int64](-100), MultipleOf: ptr[int64](-10)})
			require.NoError(t, err)
			assert.Zero(t, v%10)
			assert.GreaterOrEqual(t, v, int64(-180))
			assert.LessOrEqual(t, v, int64(-100))
		}
	})

	t.Run("endpoints", func(t *testing.T) {
		t.Parallel()
		c := Constraints[int64]{Minimum: ptr[int64](2), Maximum: ptr[int64](100), MultipleOf: ptr[int64](8)}
		r := xprimitive.NewRand(5)

		v, err := Generate[int64](r, Int64(), lowest[int64], c)
		require.NoError(t, err)
		assert.Equal(t, int64(8), v)

		v, err = Generate[int64](r, Int64(), highest[int64], c)
		require.NoError(t, err)
		assert.Equal(t, int64(96), v)
	})
}

func TestGenerateDecimal_OverpreciseContext(t *testing.T) {
	t.Parallel()

	c := xdecimal.Context{Precision: 3}
	minimum, maximum, mul := dec("1.0005"), dec("2"), dec("1.0005")

	r := xprimitive.NewRand(6)
	for range iterations {
		v, err := GenerateDecimal(r, c, Constraints[decimal.Decimal]{Minimum: &minimum, Maximum: &maximum, MultipleOf: &mul})
		require.NoError(t, err)
		assert.True(t, v.LessThanOrEqual(c.Round(maximum)), v.String())
		assert.True(t, v.GreaterThanOrEqual(c.Round(minimum)), v.String())
		assert.True(t, PassesMultipleDecimal(c, c.Round(mul), v), v.String())
	}

	// 调用方的值不被修改
	assert.Equal(t, "1.0005", minimum.String())
}

func TestGenerateDecimal_RoundedProductsRetried(t *testing.T) {
	t.Parallel()

	// 3 位精度下，k*0.0123 的多数乘积舍入后不再是 0.0123 的倍数
	c := xdecimal.Context{Precision: 3}
	minimum, maximum, mul := dec("0.13"), dec("7.55"), dec("0.0123")

	r := xprimitive.NewRand(7)
	for range 50 {
		v, err := GenerateDecimal(r, c, Constraints[decimal.Decimal]{Minimum: &minimum, Maximum: &maximum, MultipleOf: &mul})
		require.NoError(t, err)
		assert.True(t, v.GreaterThanOrEqual(minimum) && v.LessThanOrEqual(maximum), v.String())
		assert.True(t, PassesMultipleDecimal(c, mul, v), v.String())
	}
}

func TestGenerateDecimal_NoRepresentableMultiple(t *testing.T) {
	t.Parallel()

	c := xdecimal.Context{Precision: 3}
	minimum, maximum, mul := dec("0.13"), dec("0.2"), dec("0.0123")

	_, err := GenerateDecimal(xprimitive.NewRand(8), c,
		Constraints[decimal.Decimal]{Minimum: &minimum, Maximum: &maximum, MultipleOf: &mul},
		WithMaxAttempts(4))
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestGenerateDecimal_DefaultContext(t *testing.T) {
	t.Parallel()

	minimum, maximum, mul := dec("0.13"), dec("7.55"), dec("0.0123")
	r := xprimitive.NewRand(9)
	for range iterations {
		v, err := GenerateDecimal(r, xdecimal.New(), Constraints[decimal.Decimal]{Minimum: &minimum, Maximum: &maximum, MultipleOf: &mul})
		require.NoError(t, err)
		assert.True(t, v.GreaterThanOrEqual(minimum) && v.LessThanOrEqual(maximum), v.String())
		assert.True(t, v.Mod(mul).IsZero(), v.String())
	}
}

func TestGenerate_NoMultipleDelegates(t *testing.T) {
	t.Parallel()

	calls := 0
	method := func(_ xprimitive.Rand, minimum, maximum *float64) float64 {
		calls++
		assert.Equal(t, 2.0, *minimum)
		assert.Equal(t, 13.0, *maximum)
		return 42 // 原样返回，不做约束检查
	}

	v, err := Generate[float64](xprimitive.NewRand(1), Float64(), method, Constraints[float64]{Minimum: ptr(2.0), Maximum: ptr(13.0)})
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, 1, calls)
}

func TestGenerate_ZeroMultiple(t *testing.T) {
	t.Parallel()

	r := xprimitive.NewRand(1)

	v, err := GenerateFloat64(r, Constraints[float64]{Minimum: ptr(-5.0), Maximum: ptr(5.0), MultipleOf: ptr(0.0)})
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = GenerateFloat64(r, Constraints[float64]{Minimum: ptr(1.0), Maximum: ptr(5.0), MultipleOf: ptr(0.0)})
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestGenerate_Fallback(t *testing.T) {
	t.Parallel()

	r := xprimitive.NewRand(1)

	// 区间内没有 7 的倍数
	_, err := GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](1), Maximum: ptr[int64](6), MultipleOf: ptr[int64](7)})
	assert.ErrorIs(t, err, ErrEmptyWindow)
	assert.Contains(t, err.Error(), "[1, 6]")

	_, err = GenerateInt64(r, Constraints[int64]{Maximum: ptr[int64](6), MultipleOf: ptr[int64](math.MaxInt64)})
	require.NoError(t, err)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	r := xprimitive.NewRand(1)
	c := Constraints[float64]{Minimum: ptr(10.0), Maximum: ptr(1.0)}

	_, err := GenerateFloat64(r, c)
	assert.ErrorIs(t, err, ErrInvalidRange)

	c.MultipleOf = ptr(2.0)
	_, err = GenerateFloat64(r, c)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = GenerateFloat64(r, Constraints[float64]{Minimum: ptr(math.NaN())})
	assert.ErrorIs(t, err, ErrNotFinite)
	assert.Contains(t, err.Error(), "minimum")

	_, err = GenerateFloat64(r, Constraints[float64]{MultipleOf: ptr(math.Inf(1))})
	assert.ErrorIs(t, err, ErrNotFinite)

	_, err = GenerateFloat64(nil, Constraints[float64]{})
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = Generate[float64](r, nil, xprimitive.Float, Constraints[float64]{})
	assert.ErrorIs(t, err, ErrNilArith)

	_, err = Generate[float64](r, Float64(), nil, Constraints[float64]{})
	assert.ErrorIs(t, err, ErrNilMethod)

	_, err = GenerateDecimal(r, xdecimal.Context{Rounding: xdecimal.Rounding(42)}, Constraints[decimal.Decimal]{Minimum: ptr(dec("1"))})
	assert.ErrorIs(t, err, xdecimal.ErrInvalidRounding)
}

func TestGenerate_WithWindow(t *testing.T) {
	t.Parallel()

	r := xprimitive.NewRand(1)
	for range iterations {
		v, err := GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](10), MultipleOf: ptr[int64](5)}, WithWindow(2))
		require.NoError(t, err)
		assert.Contains(t, []int64{10, 15, 20}, v)
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := xprimitive.NewRand(seed)
			for range iterations {
				v, err := GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](2), Maximum: ptr[int64](100), MultipleOf: ptr[int64](8)})
				if err != nil {
					errs <- err
					return
				}
				if v%8 != 0 {
					errs <- errors.New("not a multiple")
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestMultiplierWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		c      Constraints[int64]
		lo, hi int64
	}{
		{"closed", Constraints[int64]{Minimum: ptr[int64](2), Maximum: ptr[int64](100), MultipleOf: ptr[int64](8)}, 1, 12},
		{"negative_multiple", Constraints[int64]{Minimum: ptr[int64](-187), Maximum: ptr[int64](-100), MultipleOf: ptr[int64](-10)}, 10, 18},
		{"min_only", Constraints[int64]{Minimum: ptr[int64](10), MultipleOf: ptr[int64](3)}, 4, 104},
		{"max_only", Constraints[int64]{Maximum: ptr[int64](900), MultipleOf: ptr[int64](1000)}, -100, 0},
		{"unbounded", Constraints[int64]{MultipleOf: ptr[int64](4)}, -100, 100},
		{"overflow_trimmed", Constraints[int64]{MultipleOf: ptr[int64](math.MaxInt64 / 2)}, -2, 2},
		{"large_magnitude", Constraints[int64]{Minimum: ptr[int64](1e16), Maximum: ptr[int64](2e16), MultipleOf: ptr[int64](1)}, 1e16, 2e16},
		{"large_min_only", Constraints[int64]{Minimum: ptr[int64](1e16), MultipleOf: ptr[int64](1)}, 1e16, 1e16 + 100},
		{"full_range", Constraints[int64]{Minimum: ptr[int64](math.MinInt64), Maximum: ptr[int64](math.MaxInt64), MultipleOf: ptr[int64](1)}, math.MinInt64, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lo, hi, err := MultiplierWindow[int64](Int64(), tt.c)
			require.NoError(t, err)
			assertBig(t, tt.lo, lo)
			assertBig(t, tt.hi, hi)
		})
	}

	t.Run("float_overflow_trimmed", func(t *testing.T) {
		t.Parallel()
		lo, hi, err := MultiplierWindow[float64](Float64(), Constraints[float64]{MultipleOf: ptr(1e308)})
		require.NoError(t, err)
		assertBig(t, -1, lo)
		assertBig(t, 1, hi)
	})

	t.Run("multiplier_beyond_int64", func(t *testing.T) {
		t.Parallel()
		lo, hi, err := MultiplierWindow[int64](Int64(), Constraints[int64]{
			Minimum: ptr[int64](math.MinInt64), Maximum: ptr[int64](0), MultipleOf: ptr[int64](-1),
		})
		require.NoError(t, err)
		assertBig(t, 0, lo)
		assert.Equal(t, "9223372036854775808", hi.String())
	})

	t.Run("float_beyond_int64", func(t *testing.T) {
		t.Parallel()
		lo, hi, err := MultiplierWindow[float64](Float64(), Constraints[float64]{Minimum: ptr(1e20), Maximum: ptr(2e20), MultipleOf: ptr(1.0)})
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000", lo.String())
		assert.Equal(t, "200000000000000000000", hi.String())
	})

	t.Run("decimal_exact_quotient", func(t *testing.T) {
		t.Parallel()
		lo, hi, err := MultiplierWindow[decimal.Decimal](Decimal(xdecimal.New()), Constraints[decimal.Decimal]{
			Minimum: ptr(dec("1e20")), Maximum: ptr(dec("2e20")), MultipleOf: ptr(dec("1")),
		})
		require.NoError(t, err)
		assert.Equal(t, "100000000000000000000", lo.String())
		assert.Equal(t, "200000000000000000000", hi.String())
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		_, _, err := MultiplierWindow[int64](Int64(), Constraints[int64]{})
		assert.ErrorIs(t, err, ErrEmptyWindow)

		_, _, err = MultiplierWindow[int64](Int64(), Constraints[int64]{Minimum: ptr[int64](1), Maximum: ptr[int64](6), MultipleOf: ptr[int64](7)})
		assert.ErrorIs(t, err, ErrEmptyWindow)

		_, _, err = MultiplierWindow[int64](nil, Constraints[int64]{})
		assert.ErrorIs(t, err, ErrNilArith)
	})
}

func TestHasMultipleInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, HasMultipleInRange[int64](Int64(), 2, 100, 8))
	assert.True(t, HasMultipleInRange[int64](Int64(), 8, 8, 8))
	assert.False(t, HasMultipleInRange[int64](Int64(), 1, 6, 7))
	assert.False(t, HasMultipleInRange[int64](Int64(), 10, 1, 2))
	assert.True(t, HasMultipleInRange[float64](Float64(), 0.13, 7.55, 0.0123))
	assert.True(t, HasMultipleInRange[float64](Float64(), -1, 1, 0))
	assert.False(t, HasMultipleInRange[float64](Float64(), 1, 2, 0))
	assert.False(t, HasMultipleInRange[float64](Float64(), 1, 2, math.NaN()))
	assert.False(t, HasMultipleInRange[float64](nil, 1, 2, 1))
}

func TestTighten(t *testing.T) {
	t.Parallel()

	between := func(a, b int64) func(*big.Int) bool {
		return func(k *big.Int) bool { return k.Cmp(big.NewInt(a)) >= 0 && k.Cmp(big.NewInt(b)) <= 0 }
	}
	run := func(valid func(*big.Int) bool, lo, hi int64) (*big.Int, *big.Int, bool) {
		return tighten(valid, big.NewInt(lo), big.NewInt(hi))
	}

	lo, hi, ok := run(between(5, 12), 0, 20)
	require.True(t, ok)
	assertBig(t, 5, lo)
	assertBig(t, 12, hi)

	lo, hi, ok = run(between(1, 19), 0, 20)
	require.True(t, ok)
	assertBig(t, 1, lo)
	assertBig(t, 19, hi)

	lo, hi, ok = run(between(-3, 3), -100, 100)
	require.True(t, ok)
	assertBig(t, -3, lo)
	assertBig(t, 3, hi)

	_, _, ok = run(between(5, 9), 10, 20)
	assert.False(t, ok)

	lo, hi, ok = run(between(0, 100), 10, 20)
	require.True(t, ok)
	assertBig(t, 10, lo)
	assertBig(t, 20, hi)

	t.Run("inputs_untouched", func(t *testing.T) {
		t.Parallel()
		l, h := big.NewInt(0), big.NewInt(20)
		lo, hi, ok := tighten(between(5, 12), l, h)
		require.True(t, ok)
		lo.SetInt64(99)
		hi.SetInt64(99)
		assertBig(t, 0, l)
		assertBig(t, 20, h)
	})
}

func TestGenerate_LargeMagnitude(t *testing.T) {
	t.Parallel()

	t.Run("int64", func(t *testing.T) {
		t.Parallel()
		r := xprimitive.NewRand(1)
		c := Constraints[int64]{Minimum: ptr[int64](1e16), Maximum: ptr[int64](2e16), MultipleOf: ptr[int64](1)}
		for range iterations {
			v, err := GenerateInt64(r, c)
			require.NoError(t, err)
			assert.True(t, v >= 1e16 && v <= 2e16, "%d", v)
		}

		v, err := Generate[int64](r, Int64(), lowest[int64], c)
		require.NoError(t, err)
		assert.Equal(t, int64(1e16), v)
		v, err = Generate[int64](r, Int64(), highest[int64], c)
		require.NoError(t, err)
		assert.Equal(t, int64(2e16), v)

		v, err = GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](1e16), MultipleOf: ptr[int64](1)})
		require.NoError(t, err)
		assert.True(t, v >= 1e16 && v <= 1e16+100, "%d", v)

		v, err = GenerateInt64(r, Constraints[int64]{Minimum: ptr[int64](math.MinInt64), Maximum: ptr[int64](math.MinInt64), MultipleOf: ptr[int64](-1)})
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), v)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		r := xprimitive.NewRand(2)
		tests := []struct {
			name                  string
			minimum, maximum, mul float64
		}{
			{"1e16", 1e16, 2e16, 1},
			{"1e20", 1e20, 2e20, 1},
			{"tiny_multiple", 1, 2, 1e-17},
		}
		for _, tt := range tests {
			c := Constraints[float64]{Minimum: ptr(tt.minimum), Maximum: ptr(tt.maximum), MultipleOf: ptr(tt.mul)}
			for range iterations {
				v, err := GenerateFloat64(r, c)
				require.NoError(t, err, tt.name)
				assert.True(t, v >= tt.minimum && v <= tt.maximum, "%s: %v", tt.name, v)
				assert.True(t, PassesMultipleFloat64(tt.mul, v), "%s: %v", tt.name, v)
			}
		}
	})

	t.Run("decimal", func(t *testing.T) {
		t.Parallel()
		r := xprimitive.NewRand(3)
		for _, bounds := range [][2]string{{"1e16", "2e16"}, {"1e20", "2e20"}} {
			minimum, maximum := dec(bounds[0]), dec(bounds[1])
			c := Constraints[decimal.Decimal]{Minimum: &minimum, Maximum: &maximum, MultipleOf: ptr(dec("1"))}
			for range iterations {
				v, err := GenerateDecimal(r, xdecimal.New(), c)
				require.NoError(t, err)
				assert.True(t, v.GreaterThanOrEqual(minimum) && v.LessThanOrEqual(maximum), v.String())
				assert.True(t, v.IsInteger(), v.String())
			}
		}
	})

	t.Run("has_multiple", func(t *testing.T) {
		t.Parallel()
		assert.True(t, HasMultipleInRange[int64](Int64(), 1e16, 2e16, 1))
		assert.True(t, HasMultipleInRange[float64](Float64(), 1e16, 2e16, 1))
		assert.True(t, HasMultipleInRange[float64](Float64(), 1e20, 2e20, 1))
		assert.True(t, HasMultipleInRange[float64](Float64(), 1, 2, 1e-17))
		assert.True(t, HasMultipleInRange(Decimal(xdecimal.New()), dec("1e20"), dec("2e20"), dec("1")))
	})
}
