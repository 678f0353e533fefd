package xdecimal

import "errors"

var (
	// ErrDivisionByZero 表示除数为 0。
	ErrDivisionByZero = errors.New("xdecimal: division by zero")

	// ErrInvalidRounding 表示未知的舍入模式。
	ErrInvalidRounding = errors.New("xdecimal: invalid rounding mode")

	// ErrInvalidPrecision 表示精度超出允许范围。
	ErrInvalidPrecision = errors.New("xdecimal: invalid precision")
)
