// xnumgen 生成满足区间与整除约束的随机数，并校验整除性。
//
// 用法:
//
//	xnumgen [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--log-level    日志级别 debug/info/warn/error (默认: warn)
//	--log-format   日志格式 text/json (默认: text)
//	--log-file     日志写入文件（按大小轮转），默认 stderr
//	--seed         固定随机种子，输出可复现
//
// 命令:
//
//	gen            按单条约束生成若干值，每行一个
//	sample         按规则文件批量生成，输出 JSON
//	check          校验给定值是否为 multiple_of 的整数倍
//
// 退出码:
//
//	0: 成功
//	1: 生成失败，或 check 有值未通过
//	2: 参数或规则错误
//
// 示例:
//
//	xnumgen --seed 42 gen --kind int --ge 10 --le 20 --multiple-of 5 -n 3
//	xnumgen gen --kind decimal --ge 0.13 --le 7.55 --multiple-of 0.0123 --precision 3
//	xnumgen sample --file rules.yaml -n 1000 --workers 8
//	xnumgen check --kind float --multiple-of 0.1 0.3 0.35
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xnumgen",
		Usage:   "约束随机数生成与整除校验",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug/info/warn/error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 text/json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件路径（按大小轮转）",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "固定随机种子",
			},
		},
		Commands: []*cli.Command{
			createGenCommand(),
			createSampleCommand(),
			createCheckCommand(),
		},
		// 退出码由 run() 统一映射，不让 urfave/cli 直接 os.Exit。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(cmd.Root().ErrWriter, err)
			}
		},
	}
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := createApp().Run(ctx, os.Args)
	code := exitCode(err)
	if code != 0 && err != nil && err.Error() != "" {
		fmt.Fprintf(os.Stderr, "xnumgen: %v\n", err)
	}
	return code
}

// exitCode 把命令错误映射为退出码。
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return 2
	}
	if isCLIUsageError(err) {
		return 2
	}
	return 1
}
