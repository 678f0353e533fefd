package xsample

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
	"github.com/omeyang/xsynth/pkg/synth/xrules"
)

// field 编译后的单字段生成器。
type field struct {
	name string
	kind xrules.Kind
	// dctx 十进制字段的精度上下文，其余为 nil
	dctx *xdecimal.Context
	gen  func(r xprimitive.Rand) (any, error)
}

func compile(rule xrules.Rule, base xdecimal.Context, opts []xconstrained.Option) (field, error) {
	switch rule.Kind {
	case xrules.KindFloat:
		b, m, err := rule.Float64()
		if err != nil {
			return field{}, err
		}
		return compileField[float64](rule, xconstrained.Float64(), xprimitive.Float, b, m, opts)
	case xrules.KindInt:
		b, m, err := rule.Int64()
		if err != nil {
			return field{}, err
		}
		return compileField[int64](rule, xconstrained.Int64(), xprimitive.Int, b, m, opts)
	case xrules.KindDecimal:
		ctx, err := rule.DecimalContext(base)
		if err != nil {
			return field{}, err
		}
		b, m, err := rule.Decimal(ctx)
		if err != nil {
			return field{}, err
		}
		f, err := compileField[decimal.Decimal](rule, xconstrained.Decimal(ctx), xprimitive.Decimal(ctx), b, m, opts)
		f.dctx = &ctx
		return f, err
	default:
		return field{}, fmt.Errorf("%w: %s: unknown kind %q", xrules.ErrInvalidRule, rule.Name, rule.Kind)
	}
}

func compileField[T any](
	rule xrules.Rule,
	arith xconstrained.Arith[T],
	method xconstrained.Method[T],
	b xconstrained.Bounds[T],
	multipleOf *T,
	opts []xconstrained.Option,
) (field, error) {
	c, err := b.Constraints(arith, multipleOf)
	if err != nil {
		return field{}, fmt.Errorf("%s: %w", rule.Name, err)
	}
	if err := feasible(arith, c); err != nil {
		return field{}, fmt.Errorf("%s: %w", rule.Name, err)
	}
	return field{
		name: rule.Name,
		kind: rule.Kind,
		gen: func(r xprimitive.Rand) (any, error) {
			v, err := xconstrained.Generate(r, arith, method, c, opts...)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}, nil
}

// feasible 在两侧边界都给出时检查区间非空且含 multiple_of 的倍数。
func feasible[T any](arith xconstrained.Arith[T], c xconstrained.Constraints[T]) error {
	if c.Minimum == nil || c.Maximum == nil {
		return nil
	}
	if arith.Cmp(*c.Minimum, *c.Maximum) > 0 {
		return fmt.Errorf("%w: %v > %v", xconstrained.ErrInvalidRange, *c.Minimum, *c.Maximum)
	}
	if c.MultipleOf == nil {
		return nil
	}
	if !xconstrained.HasMultipleInRange(arith, *c.Minimum, *c.Maximum, *c.MultipleOf) {
		return fmt.Errorf("%w: no multiple of %v in [%v, %v]",
			ErrInfeasibleRule, *c.MultipleOf, *c.Minimum, *c.Maximum)
	}
	return nil
}
