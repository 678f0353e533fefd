// Package synth 提供基于规则文件的批量数据生成子包。
//
// 子包列表：
//   - xrules: 规则文件加载与校验
//   - xsample: 按规则并发生成可复现的记录
package synth
