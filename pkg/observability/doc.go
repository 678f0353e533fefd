// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志构建器，基于 log/slog，支持按大小轮转
//   - xmetrics: 生成过程的 OpenTelemetry 指标与 span
package observability
