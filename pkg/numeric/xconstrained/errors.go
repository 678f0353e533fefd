package xconstrained

import "errors"

var (
	// ErrNilRand 表示随机源为 nil。
	ErrNilRand = errors.New("xconstrained: nil random source")

	// ErrNilMethod 表示原始生成器为 nil。
	ErrNilMethod = errors.New("xconstrained: nil primitive method")

	// ErrNilArith 表示数值能力为 nil。
	ErrNilArith = errors.New("xconstrained: nil arithmetic")

	// ErrInvalidRange 表示下界大于上界，或开区间边界之外不存在可表示的值。
	ErrInvalidRange = errors.New("xconstrained: minimum greater than maximum")

	// ErrEmptyWindow 表示区间内不存在 multiple_of 的整数倍，且 multiple_of 本身也不在区间内。
	ErrEmptyWindow = errors.New("xconstrained: no multiple of multiple_of within range")

	// ErrNotFinite 表示约束值为 NaN 或 Inf。
	ErrNotFinite = errors.New("xconstrained: value is not finite")

	// ErrConflictingBounds 表示同一侧同时给出了开、闭两种边界。
	ErrConflictingBounds = errors.New("xconstrained: conflicting inclusive and exclusive bounds")
)
