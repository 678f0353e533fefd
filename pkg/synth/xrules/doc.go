// Package xrules 加载与校验数值生成规则文件。
//
// 规则文件为 YAML 或 JSON，通过 koanf 解析：
//
//	precision: 28
//	rounding: half_even
//	window: 100
//	rules:
//	  - name: price
//	    kind: decimal
//	    ge: "1.0005"
//	    le: "2"
//	    multiple_of: "1.0005"
//	    precision: 3
//
// 数值一律按字符串解析（YAML/JSON 数字也会转为字符串），
// 再依规则的 kind 解析为 float64、int64 或十进制，保证十进制值不经过二进制浮点。
// 建议十进制规则的值加引号。
//
// # 校验
//
// [File.Validate] 检查：名称非空且唯一、kind 已知、各值能按 kind 解析
// （否则 [ErrKindMismatch]）、同侧开闭边界不同时出现（否则 [ErrConflictingBounds]）、
// 舍入模式与精度合法。[LoadFile] 与 [LoadBytes] 加载后自动校验。
package xrules
