// Package xprimitive 提供只感知区间的原始随机数生成器（primitive generator）。
//
// 原始生成器只负责“在 [minimum, maximum] 内产生一个随机值”，
// 不理解整除（multiple-of）约束；约束求解由 xconstrained 完成，
// 原始生成器作为可替换的策略显式注入。
//
// # 随机源
//
// [Rand] 是最小随机源接口，*math/rand/v2.Rand 直接满足。
// 随机源不可重入：每个 goroutine 应持有独立实例，
// 可用 [DeriveSeed] 从同一个基础种子派生互不相关、可复现的子种子。
//
// # 生成器
//
//   - [Float]: float64，缺失边界按约定补齐
//   - [Int]: int64，闭区间均匀分布，不溢出
//   - [Decimal]: 十进制数，结果按精度上下文舍入并夹回区间
//
// 所有生成器的区间均为闭区间，任一边界可为 nil。
package xprimitive
