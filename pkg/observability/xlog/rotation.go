package xlog

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 14

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

type rotationConfig struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
}

// RotationOption 轮转配置选项
type RotationOption func(*rotationConfig)

// WithMaxSizeMB 单个文件上限（MB），超过后触发轮转。
func WithMaxSizeMB(n int) RotationOption {
	return func(c *rotationConfig) { c.maxSizeMB = n }
}

// WithMaxBackups 保留的备份数量，0 表示不限制。
func WithMaxBackups(n int) RotationOption {
	return func(c *rotationConfig) { c.maxBackups = n }
}

// WithMaxAgeDays 备份保留天数，0 表示不按天清理。
func WithMaxAgeDays(n int) RotationOption {
	return func(c *rotationConfig) { c.maxAgeDays = n }
}

// WithCompress 是否 gzip 压缩备份。
func WithCompress(enable bool) RotationOption {
	return func(c *rotationConfig) { c.compress = enable }
}

func (c rotationConfig) validate() error {
	switch {
	case c.maxSizeMB <= 0 || c.maxSizeMB > maxSizeMB:
		return fmt.Errorf("%w: max size %dMB not in (0, %d]", ErrInvalidRotation, c.maxSizeMB, maxSizeMB)
	case c.maxBackups < 0 || c.maxBackups > maxBackups:
		return fmt.Errorf("%w: max backups %d not in [0, %d]", ErrInvalidRotation, c.maxBackups, maxBackups)
	case c.maxAgeDays < 0 || c.maxAgeDays > maxAgeDays:
		return fmt.Errorf("%w: max age %d days not in [0, %d]", ErrInvalidRotation, c.maxAgeDays, maxAgeDays)
	}
	return nil
}

func newRotator(filename string, opts ...RotationOption) (*lumberjack.Logger, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	cfg := rotationConfig{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
		compress:   true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Clean(filename),
		MaxSize:    cfg.maxSizeMB,
		MaxBackups: cfg.maxBackups,
		MaxAge:     cfg.maxAgeDays,
		Compress:   cfg.compress,
	}, nil
}
