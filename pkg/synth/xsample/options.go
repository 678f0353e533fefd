package xsample

import (
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xsynth/pkg/observability/xlog"
)

type options struct {
	seed           int64
	seeded         bool
	workers        int
	logger         *slog.Logger
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

// Option 定义 Sampler 选项。
type Option func(*options)

func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		logger:  xlog.Discard(),
	}
}

// WithSeed 固定基础种子；未设置时每次 Sample 取一个新的加密随机种子。
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers 并发生成的最大 goroutine 数，小于 1 的值被忽略。
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger 设置日志记录器。传入 nil 将被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认 otel 全局 provider。
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithTracerProvider 设置 TracerProvider，默认 otel 全局 provider。
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}
