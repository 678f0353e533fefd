package xlog

import (
	"fmt"
	"log/slog"
	"time"
)

// 标准字段名
const (
	KeyError      = "error"
	KeyDuration   = "duration"
	KeyCount      = "count"
	KeyComponent  = "component"
	KeyRunID      = "run_id"
	KeySeed       = "seed"
	KeyField      = "field"
	KeyKind       = "kind"
	KeyMultipleOf = "multiple_of"
	KeyAttempts   = "attempts"
	KeyContext    = "decimal_context"
)

// Err 错误属性；err 为 nil 时返回空属性（被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.Duration(KeyDuration, d)
}

// Count 计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// RunID 采样运行 ID 属性
func RunID(id string) slog.Attr {
	return slog.String(KeyRunID, id)
}

// Seed 随机种子属性
func Seed(seed int64) slog.Attr {
	return slog.Int64(KeySeed, seed)
}

// Field 规则字段名属性
func Field(name string) slog.Attr {
	return slog.String(KeyField, name)
}

// Kind 数值表示属性（float/int/decimal）
func Kind(kind string) slog.Attr {
	return slog.String(KeyKind, kind)
}

// MultipleOf 整除约束属性。十进制值建议先转为字符串。
func MultipleOf(v any) slog.Attr {
	return slog.Any(KeyMultipleOf, v)
}

// Attempts 尝试次数属性
func Attempts(n int) slog.Attr {
	return slog.Int(KeyAttempts, n)
}

// DecimalContext 十进制精度上下文属性，值形如 "28/half_even"。
func DecimalContext(c fmt.Stringer) slog.Attr {
	return slog.String(KeyContext, c.String())
}
