// Package xconstrained 生成同时满足下界、上界与整除（multiple-of）约束的随机数。
//
// 用于数据合成场景：按 schema 声明的数值约束（ge/le/multiple_of）产生真实感的值。
// 不规定随机性本身如何产生，原始生成器 [Method] 由调用方注入，
// 默认实现见 xprimitive。
//
// # 算法
//
// 未给出 multiple_of 时，直接委托原始生成器并原样返回结果。
//
// 给出 multiple_of = m 时，问题转化为选择整数乘数 k，使 k*m 落在区间内：
//
//	m > 0: k ∈ [ceil(min/m), floor(max/m)]
//	m < 0: k ∈ [ceil(max/m), floor(min/m)]
//
// 缺失的一侧以另一侧为基准偏移 [DefaultWindow] 个乘数；两侧都缺失时取
// [-DefaultWindow, +DefaultWindow]，保证结果有界。随后收紧窗口端点，
// 排除因舍入导致乘积越界的乘数。乘数本身同样交给原始生成器在整数域内选取。
// 乘数以任意精度整数表达，窗口不受 int64 或 2^53 限制。
// 降低精度的十进制上下文或远离 0 的 float64 乘数下，乘积可能不再通过整除校验，
// 此时有限次重选（见 [WithMaxAttempts]），再从窗口两端向内扫描。
//
// 窗口为空或 m 为 0 时，若 m 本身满足区间约束则返回 m，否则返回 [ErrEmptyWindow]。
//
// # 数值表示
//
// 同一算法通过 [Arith] 能力接口作用于不同数值表示：
//
//   - [Float64]: float64，整除校验容差 1e-8
//   - [Int64]: int64，精确
//   - [Decimal]: shopspring/decimal，每一步运算都按 xdecimal.Context 舍入
//
// 十进制路径中，约束值会先按上下文重新表达，比较与整除校验都针对重新表达后的值，
// 而不是按完整存储精度。
//
// # 整除校验
//
// [PassesMultiple] 是全函数：除数为 0 时恒为 true，从不 panic、从不返回错误。
//
// # 并发
//
// 所有函数无状态、同步执行。随机源不可重入，并发调用时每个 goroutine 需持有独立实例。
package xconstrained
