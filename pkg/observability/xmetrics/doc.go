// Package xmetrics 基于 OpenTelemetry 的生成过程观测（metrics + tracing）。
//
// # 使用示例
//
//	rec, _ := xmetrics.NewRecorder(xmetrics.WithMeterProvider(mp))
//	ctx, span := rec.Start(ctx, "xsample.Sample", attribute.String("run_id", id))
//	rec.Value(ctx, "price", "decimal")
//	span.End(err)
//
// 未指定 provider 时使用 otel 全局 provider（默认 no-op）。
//
// # 指标命名
//
//   - xsynth.sample.values: 生成的值个数，属性 field / kind
//   - xsynth.sample.errors: 生成失败次数，属性 field / kind / error
//   - xsynth.sample.duration: 一次运行的耗时（秒），属性 operation / status
package xmetrics
