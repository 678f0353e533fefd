// Package xdecimal 提供任意精度十进制数的精度上下文（precision context）。
//
// 十进制数本身由 [github.com/shopspring/decimal] 表示，该库不带上下文：
// 运算结果总是精确值（除法按小数位截断）。xdecimal 在其上补充“有效数字 + 舍入模式”
// 语义，使每一步运算结果都按调用方配置的精度重新表达。
//
// # 核心类型
//
//   - [Context]: 精度（有效数字位数，0 表示不限）+ 舍入模式
//   - [Rounding]: 舍入模式，默认 [RoundHalfEven]
//
// # 运算语义
//
// [Context.Add]、[Context.Sub]、[Context.Mul]、[Context.Quo]、[Context.Rem]
// 均对运算结果按上下文舍入；操作数不做预处理。
// 若需要把输入值先按上下文重新表达，显式调用 [Context.Round]。
// [Context.Ceil] 与 [Context.Floor] 是精确的取整运算，不受精度影响。
//
// # 上下文传递
//
// 进程级默认上下文通过 [Default]/[SetDefault] 读写（并发安全）；
// 请求级上下文通过 [WithContext]/[FromContext] 随 context.Context 传递，
// 缺失时回退到 [Default]。
//
// 注意：生成过程中上下文被视为只读值。[Context] 是值类型，
// 传入后调用方对默认上下文的修改不会影响已经在执行的运算。
package xdecimal
