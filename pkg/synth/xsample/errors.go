package xsample

import "errors"

var (
	// ErrNilFile 规则文件为 nil。
	ErrNilFile = errors.New("xsample: nil rules file")

	// ErrInvalidCount 行数为负。
	ErrInvalidCount = errors.New("xsample: negative row count")

	// ErrInfeasibleRule 规则的区间内不存在 multiple_of 的倍数。
	ErrInfeasibleRule = errors.New("xsample: infeasible rule")
)
