package xrules

import (
	"errors"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
)

var (
	// ErrEmptyPath 规则文件路径为空。
	ErrEmptyPath = errors.New("xrules: empty rules path")

	// ErrUnsupportedFormat 不支持的文件格式。
	ErrUnsupportedFormat = errors.New("xrules: unsupported rules format")

	// ErrLoadFailed 读取规则文件失败。
	ErrLoadFailed = errors.New("xrules: failed to load rules")

	// ErrParseFailed 规则文件解析失败。
	ErrParseFailed = errors.New("xrules: failed to parse rules")

	// ErrUnmarshalFailed 规则反序列化失败。
	ErrUnmarshalFailed = errors.New("xrules: failed to unmarshal rules")

	// ErrInvalidRule 规则非法（名称、kind、窗口等）。
	ErrInvalidRule = errors.New("xrules: invalid rule")

	// ErrKindMismatch 约束值无法按规则的数值表示解析。
	ErrKindMismatch = errors.New("xrules: value does not match rule kind")

	// ErrConflictingBounds 同侧同时给出开、闭边界。
	ErrConflictingBounds = xconstrained.ErrConflictingBounds
)
