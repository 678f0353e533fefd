package xdecimal

import (
	"context"
	"sync/atomic"
)

// defaultContext 进程级默认上下文（并发安全）。
var defaultContext atomic.Pointer[Context]

func init() {
	c := New()
	defaultContext.Store(&c)
}

// Default 返回进程级默认上下文的快照。
func Default() Context {
	return *defaultContext.Load()
}

// SetDefault 替换进程级默认上下文。
//
// 配置无效时返回错误且不修改当前值。
// 已经开始的运算持有调用时的快照，不受影响。
func SetDefault(c Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	defaultContext.Store(&c)
	return nil
}

type ctxKey struct{}

// WithContext 把精度上下文写入 ctx。
func WithContext(ctx context.Context, c Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext 读取 ctx 中的精度上下文，缺失时返回 [Default]。
func FromContext(ctx context.Context) Context {
	if ctx != nil {
		if c, ok := ctx.Value(ctxKey{}).(Context); ok {
			return c
		}
	}
	return Default()
}
