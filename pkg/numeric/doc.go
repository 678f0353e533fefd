// Package numeric 提供数值表示与约束生成相关的子包。
//
// 子包列表：
//   - xdecimal: 十进制精度上下文（有效数字位数 + 舍入模式）
//   - xprimitive: 原始随机生成器与可复现的随机源
//   - xconstrained: 区间 + 整除约束的随机数生成与整除校验
package numeric
