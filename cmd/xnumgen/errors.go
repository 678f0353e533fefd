package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/synth/xrules"
	"github.com/omeyang/xsynth/pkg/synth/xsample"
)

// exitError 命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 参数或规则错误，退出码 2。
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// asUsage 把规则校验类错误（含区间颠倒、无解的整除约束）转为 usageError，其余原样返回。
func asUsage(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range []error{
		xrules.ErrInvalidRule,
		xrules.ErrKindMismatch,
		xconstrained.ErrConflictingBounds,
		xrules.ErrEmptyPath,
		xrules.ErrUnsupportedFormat,
		xrules.ErrParseFailed,
		xrules.ErrUnmarshalFailed,
		xdecimal.ErrInvalidRounding,
		xdecimal.ErrInvalidPrecision,
		xconstrained.ErrInvalidRange,
		xsample.ErrInfeasibleRule,
	} {
		if errors.Is(err, target) {
			return &usageError{msg: "invalid rules", err: err}
		}
	}
	return err
}

// isCLIUsageError 识别 urfave/cli 的参数解析错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"Required flag",
		"No help topic",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
