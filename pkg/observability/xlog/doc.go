// Package xlog 基于 log/slog 的结构化日志构建器。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xnumgen.log").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// 未设置输出时写到 stderr。SetRotation 通过 lumberjack 按文件大小轮转，
// cleanup 负责关闭轮转文件，可重复调用。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// Level 实现 encoding.TextMarshaler/TextUnmarshaler，可直接出现在配置结构中。
// Build 返回的 *slog.LevelVar 支持运行时调整级别。
//
// # 属性
//
// 生成器相关的标准字段名见 Key* 常量，对应的构造函数（[Field]、[Kind]、[Seed]、
// [RunID]、[Err] 等）保证各包使用一致的 key。
package xlog
