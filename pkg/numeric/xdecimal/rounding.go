package xdecimal

import (
	"fmt"
	"strconv"
	"strings"
)

// Rounding 舍入模式。零值为 [RoundHalfEven]。
type Rounding int

const (
	// RoundHalfEven 四舍六入五成双（银行家舍入）。
	RoundHalfEven Rounding = iota
	// RoundHalfUp 四舍五入，恰好一半时远离 0。
	RoundHalfUp
	// RoundDown 向 0 截断。
	RoundDown
	// RoundUp 远离 0。
	RoundUp
	// RoundCeiling 向正无穷。
	RoundCeiling
	// RoundFloor 向负无穷。
	RoundFloor
)

// String 返回舍入模式名称，如 "half_even"。
func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half_even"
	case RoundHalfUp:
		return "half_up"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	default:
		return "Rounding(" + strconv.Itoa(int(r)) + ")"
	}
}

// IsValid 报告舍入模式是否已知。
func (r Rounding) IsValid() bool {
	return r >= RoundHalfEven && r <= RoundFloor
}

// MarshalText 实现 encoding.TextMarshaler，用于配置序列化。
func (r Rounding) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounding, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (r *Rounding) UnmarshalText(data []byte) error {
	parsed, err := ParseRounding(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRounding 解析舍入模式名称。
//
// 大小写不敏感，"-" 与 "_" 等价，可带 "round_" 前缀：
// "half_even"、"HALF-EVEN"、"ROUND_HALF_EVEN" 均解析为 [RoundHalfEven]。
// 空字符串返回默认值 [RoundHalfEven]。
func ParseRounding(s string) (Rounding, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.TrimPrefix(normalized, "round_")
	switch normalized {
	case "", "half_even":
		return RoundHalfEven, nil
	case "half_up":
		return RoundHalfUp, nil
	case "down":
		return RoundDown, nil
	case "up":
		return RoundUp, nil
	case "ceiling", "ceil":
		return RoundCeiling, nil
	case "floor":
		return RoundFloor, nil
	default:
		return RoundHalfEven, fmt.Errorf("%w: %q", ErrInvalidRounding, s)
	}
}
