// Package xsample 按规则文件批量生成满足约束的数值记录。
//
// 每条规则编译为一个字段生成器（数值表示、边界、整除约束、十进制上下文），
// 不可满足的规则在 [New] 时即报错。[Sampler.Sample] 用 errgroup 并发生成 n 行，
// 第 i 行字段 f 的随机源由 (seed, f, i) 派生，同一 seed 的输出与调度无关、可复现。
//
//	file, _ := xrules.LoadFile("rules.yaml")
//	s, _ := xsample.New(file, xsample.WithSeed(42), xsample.WithWorkers(4))
//	res, err := s.Sample(ctx, 1000)
//
// 十进制字段的值为 decimal.Decimal，JSON 编码为带引号的字符串。
package xsample
