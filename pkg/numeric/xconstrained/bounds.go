package xconstrained

import "fmt"

// Bounds 含开、闭两种形式的区间边界（对应 ge/gt/le/lt）。
// 同一侧只能给出一种。
type Bounds[T any] struct {
	Ge *T
	Gt *T
	Le *T
	Lt *T
}

// Resolve 把边界转为闭区间 [minimum, maximum]。
//
// 开区间边界通过 arith.Next/Prev 转为最近的可表示闭区间边界；
// 若开区间边界之外不存在可表示值（如 int64 的 Gt=MaxInt64），返回 [ErrInvalidRange]。
func (b Bounds[T]) Resolve(arith Arith[T]) (minimum, maximum *T, err error) {
	if arith == nil {
		return nil, nil, ErrNilArith
	}
	if b.Ge != nil && b.Gt != nil {
		return nil, nil, fmt.Errorf("%w: ge and gt", ErrConflictingBounds)
	}
	if b.Le != nil && b.Lt != nil {
		return nil, nil, fmt.Errorf("%w: le and lt", ErrConflictingBounds)
	}

	switch {
	case b.Ge != nil:
		v := arith.Normalize(*b.Ge)
		minimum = &v
	case b.Gt != nil:
		base := arith.Normalize(*b.Gt)
		v := arith.Next(base)
		if arith.Cmp(v, base) <= 0 {
			return nil, nil, fmt.Errorf("%w: nothing greater than %v", ErrInvalidRange, base)
		}
		minimum = &v
	}

	switch {
	case b.Le != nil:
		v := arith.Normalize(*b.Le)
		maximum = &v
	case b.Lt != nil:
		base := arith.Normalize(*b.Lt)
		v := arith.Prev(base)
		if arith.Cmp(v, base) >= 0 {
			return nil, nil, fmt.Errorf("%w: nothing less than %v", ErrInvalidRange, base)
		}
		maximum = &v
	}
	return minimum, maximum, nil
}

// Constraints 解析边界并与 multipleOf 组合为 [Constraints]。
func (b Bounds[T]) Constraints(arith Arith[T], multipleOf *T) (Constraints[T], error) {
	minimum, maximum, err := b.Resolve(arith)
	if err != nil {
		return Constraints[T]{}, err
	}
	return Constraints[T]{Minimum: minimum, Maximum: maximum, MultipleOf: multipleOf}, nil
}
