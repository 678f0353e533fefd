package xrules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
)

// Kind 数值表示。
type Kind string

const (
	KindFloat   Kind = "float"
	KindInt     Kind = "int"
	KindDecimal Kind = "decimal"
)

// IsValid 报告 k 是否为已知表示。
func (k Kind) IsValid() bool {
	switch k {
	case KindFloat, KindInt, KindDecimal:
		return true
	default:
		return false
	}
}

// File 规则文件。
type File struct {
	// Precision 十进制默认精度（有效数字位数），nil 使用 xdecimal.DefaultPrecision，0 表示不限。
	Precision *uint32 `koanf:"precision" json:"precision,omitempty"`
	// Rounding 十进制默认舍入模式，空值为 half_even。
	Rounding string `koanf:"rounding" json:"rounding,omitempty"`
	// Window 缺失边界时的乘数窗口宽度，0 使用 xconstrained.DefaultWindow。
	Window int64  `koanf:"window" json:"window,omitempty"`
	Rules  []Rule `koanf:"rules" json:"rules"`
}

// Rule 单个字段的约束。
type Rule struct {
	Name       string  `koanf:"name" json:"name"`
	Kind       Kind    `koanf:"kind" json:"kind"`
	Ge         string  `koanf:"ge" json:"ge,omitempty"`
	Gt         string  `koanf:"gt" json:"gt,omitempty"`
	Le         string  `koanf:"le" json:"le,omitempty"`
	Lt         string  `koanf:"lt" json:"lt,omitempty"`
	MultipleOf string  `koanf:"multiple_of" json:"multiple_of,omitempty"`
	Precision  *uint32 `koanf:"precision" json:"precision,omitempty"`
	Rounding   string  `koanf:"rounding" json:"rounding,omitempty"`
}

// Context 返回文件级十进制上下文。
func (f *File) Context() (xdecimal.Context, error) {
	return buildContext(xdecimal.New(), f.Precision, f.Rounding)
}

// EffectiveWindow 返回生效的乘数窗口宽度。
func (f *File) EffectiveWindow() int64 {
	if f.Window <= 0 {
		return xconstrained.DefaultWindow
	}
	return f.Window
}

// Validate 校验整个文件，返回第一个错误。
func (f *File) Validate() error {
	if f.Window < 0 {
		return fmt.Errorf("%w: negative window %d", ErrInvalidRule, f.Window)
	}
	base, err := f.Context()
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(f.Rules))
	for i, r := range f.Rules {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return fmt.Errorf("%w: rules[%d]: empty name", ErrInvalidRule, i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidRule, name)
		}
		seen[name] = struct{}{}
		if err := r.validate(base); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) validate(base xdecimal.Context) error {
	switch r.Kind {
	case KindFloat:
		_, _, err := r.Float64()
		return err
	case KindInt:
		_, _, err := r.Int64()
		return err
	case KindDecimal:
		ctx, err := r.DecimalContext(base)
		if err != nil {
			return err
		}
		_, _, err = r.Decimal(ctx)
		return err
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidRule, r.Name, r.Kind)
	}
}

// DecimalContext 以 base 为默认值叠加规则级精度与舍入模式。
func (r Rule) DecimalContext(base xdecimal.Context) (xdecimal.Context, error) {
	c, err := buildContext(base, r.Precision, r.Rounding)
	if err != nil {
		return c, fmt.Errorf("%s: %w", r.Name, err)
	}
	return c, nil
}

// Float64 按 float64 解析边界与 multiple_of。
func (r Rule) Float64() (xconstrained.Bounds[float64], *float64, error) {
	return parseRule(r, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Int64 按 int64 解析边界与 multiple_of。
func (r Rule) Int64() (xconstrained.Bounds[int64], *int64, error) {
	return parseRule(r, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

// Decimal 按十进制解析边界与 multiple_of，并在 c 中重新表达。
func (r Rule) Decimal(c xdecimal.Context) (xconstrained.Bounds[decimal.Decimal], *decimal.Decimal, error) {
	return parseRule(r, func(s string) (decimal.Decimal, error) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return d, err
		}
		return c.Round(d), nil
	})
}

func parseRule[T any](r Rule, parse func(string) (T, error)) (xconstrained.Bounds[T], *T, error) {
	var (
		b xconstrained.Bounds[T]
		m *T
	)
	fields := []struct {
		key string
		raw string
		dst **T
	}{
		{"ge", r.Ge, &b.Ge},
		{"gt", r.Gt, &b.Gt},
		{"le", r.Le, &b.Le},
		{"lt", r.Lt, &b.Lt},
		{"multiple_of", r.MultipleOf, &m},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(f.raw)
		if raw == "" {
			continue
		}
		v, err := parse(raw)
		if err != nil {
			return b, nil, fmt.Errorf("%w: %s.%s = %q is not %s", ErrKindMismatch, r.Name, f.key, f.raw, r.Kind)
		}
		*f.dst = &v
	}
	switch {
	case b.Ge != nil && b.Gt != nil:
		return b, m, fmt.Errorf("%w: %s: ge and gt", ErrConflictingBounds, r.Name)
	case b.Le != nil && b.Lt != nil:
		return b, m, fmt.Errorf("%w: %s: le and lt", ErrConflictingBounds, r.Name)
	}
	return b, m, nil
}

func buildContext(base xdecimal.Context, precision *uint32, rounding string) (xdecimal.Context, error) {
	c := base
	if precision != nil {
		c.Precision = *precision
	}
	if strings.TrimSpace(rounding) != "" {
		rm, err := xdecimal.ParseRounding(rounding)
		if err != nil {
			return c, err
		}
		c.Rounding = rm
	}
	return c, c.Validate()
}
