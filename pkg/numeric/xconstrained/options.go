package xconstrained

import "log/slog"

const (
	// DefaultWindow 约束缺失一侧（或两侧）时乘数窗口的默认宽度。
	DefaultWindow int64 = 100

	// DefaultMaxAttempts 乘积未通过整除校验时的最大重选次数。
	DefaultMaxAttempts = 32
)

// Option 定义生成选项。
type Option func(*options)

type options struct {
	window      int64
	maxAttempts int
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		window:      DefaultWindow,
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.Default(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWindow 设置缺失边界时的乘数窗口宽度。小于 1 的值按 1 处理。
func WithWindow(n int64) Option {
	return func(o *options) {
		o.window = max(n, 1)
	}
}

// WithMaxAttempts 设置乘积未通过整除校验时的最大重选次数。
// 只在降低精度的十进制上下文或远离 0 的 float64 乘数下才可能触发。小于 1 的值被忽略。
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxAttempts = n
		}
	}
}

// WithLogger 设置日志记录器，用于回退与重选的调试日志。
// 默认使用 slog.Default()。传入 nil 将被忽略。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
