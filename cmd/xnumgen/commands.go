package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
	"github.com/omeyang/xsynth/pkg/numeric/xdecimal"
	"github.com/omeyang/xsynth/pkg/observability/xlog"
	"github.com/omeyang/xsynth/pkg/synth/xrules"
	"github.com/omeyang/xsynth/pkg/synth/xsample"
)

// genField gen 命令单条规则的字段名。
const genField = "value"

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "kind",
		Usage: "数值表示 float/int/decimal",
		Value: string(xrules.KindFloat),
	}
}

func precisionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "precision",
			Usage: "十进制有效数字位数，0 表示不限（默认 28）",
		},
		&cli.StringFlag{
			Name:  "rounding",
			Usage: "十进制舍入模式 half_even/half_up/down/up/ceiling/floor",
		},
	}
}

func createGenCommand() *cli.Command {
	flags := []cli.Flag{
		kindFlag(),
		&cli.StringFlag{Name: "ge", Usage: "下界（含）"},
		&cli.StringFlag{Name: "gt", Usage: "下界（不含）"},
		&cli.StringFlag{Name: "le", Usage: "上界（含）"},
		&cli.StringFlag{Name: "lt", Usage: "上界（不含）"},
		&cli.StringFlag{Name: "multiple-of", Usage: "整除约束"},
		&cli.IntFlag{Name: "window", Usage: "缺失边界时的乘数窗口宽度（默认 100）"},
		&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "生成个数", Value: 10},
	}
	return &cli.Command{
		Name:  "gen",
		Usage: "按单条约束生成若干值，每行一个",
		Flags: append(flags, precisionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			precision, err := precisionOf(cmd)
			if err != nil {
				return err
			}
			file := &xrules.File{
				Precision: precision,
				Rounding:  cmd.String("rounding"),
				Window:    int64(cmd.Int("window")),
				Rules: []xrules.Rule{{
					Name:       genField,
					Kind:       xrules.Kind(strings.ToLower(cmd.String("kind"))),
					Ge:         cmd.String("ge"),
					Gt:         cmd.String("gt"),
					Le:         cmd.String("le"),
					Lt:         cmd.String("lt"),
					MultipleOf: cmd.String("multiple-of"),
				}},
			}
			res, err := sample(ctx, cmd, file, cmd.Int("count"), 0)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			for _, row := range res.Rows {
				fmt.Fprintln(w, row[genField])
			}
			return nil
		},
	}
}

func createSampleCommand() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "按规则文件批量生成，输出 JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "规则文件（.yaml/.yml/.json）", Required: true},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "行数", Value: 10},
			&cli.IntFlag{Name: "workers", Usage: "并发数（默认 GOMAXPROCS）"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			file, err := xrules.LoadFile(cmd.String("file"))
			if err != nil {
				return asUsage(err)
			}
			res, err := sample(ctx, cmd, file, cmd.Int("count"), cmd.Int("workers"))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
}

func createCheckCommand() *cli.Command {
	flags := []cli.Flag{
		kindFlag(),
		&cli.StringFlag{Name: "multiple-of", Usage: "整除约束", Required: true},
	}
	return &cli.Command{
		Name:      "check",
		Usage:     "校验给定值是否为 multiple_of 的整数倍",
		ArgsUsage: "<value>...",
		Flags:     append(flags, precisionFlags()...),
		Action: func(_ context.Context, cmd *cli.Command) error {
			values := cmd.Args().Slice()
			if len(values) == 0 {
				return usagef("check: no values given")
			}
			passes, err := validator(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			failed := false
			for _, v := range values {
				ok, err := passes(v)
				if err != nil {
					return err
				}
				failed = failed || !ok
				fmt.Fprintf(w, "%s\t%t\n", v, ok)
			}
			if failed {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}

// validator 按 --kind 构造单值整除校验函数。
func validator(cmd *cli.Command) (func(string) (bool, error), error) {
	kind := xrules.Kind(strings.ToLower(cmd.String("kind")))
	raw := cmd.String("multiple-of")
	switch kind {
	case xrules.KindFloat:
		m, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, usagef("multiple-of %q is not float", raw)
		}
		return func(s string) (bool, error) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return false, usagef("value %q is not float", s)
			}
			return xconstrained.PassesMultipleFloat64(m, v), nil
		}, nil
	case xrules.KindInt:
		m, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, usagef("multiple-of %q is not int", raw)
		}
		return func(s string) (bool, error) {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return false, usagef("value %q is not int", s)
			}
			return xconstrained.PassesMultipleInt64(m, v), nil
		}, nil
	case xrules.KindDecimal:
		c, err := decimalContext(cmd)
		if err != nil {
			return nil, err
		}
		m, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, usagef("multiple-of %q is not decimal", raw)
		}
		return func(s string) (bool, error) {
			v, err := decimal.NewFromString(s)
			if err != nil {
				return false, usagef("value %q is not decimal", s)
			}
			return xconstrained.PassesMultipleDecimal(c, m, v), nil
		}, nil
	default:
		return nil, usagef("unknown kind %q", kind)
	}
}

func precisionOf(cmd *cli.Command) (*uint32, error) {
	if !cmd.IsSet("precision") {
		return nil, nil
	}
	p := cmd.Int("precision")
	if p < 0 || p > xdecimal.MaxPrecision {
		return nil, usagef("precision %d not in [0, %d]", p, xdecimal.MaxPrecision)
	}
	u := uint32(p)
	return &u, nil
}

func decimalContext(cmd *cli.Command) (xdecimal.Context, error) {
	precision, err := precisionOf(cmd)
	if err != nil {
		return xdecimal.Context{}, err
	}
	f := xrules.File{Precision: precision, Rounding: cmd.String("rounding")}
	c, err := f.Context()
	return c, asUsage(err)
}

// sample 构造 Sampler 并生成 n 行；workers 为 0 时使用默认并发数。
func sample(ctx context.Context, cmd *cli.Command, file *xrules.File, n, workers int) (*xsample.Result, error) {
	if n < 0 {
		return nil, usagef("count %d is negative", n)
	}
	logger, cleanup, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()

	opts := []xsample.Option{xsample.WithLogger(logger), xsample.WithWorkers(workers)}
	if cmd.IsSet("seed") {
		opts = append(opts, xsample.WithSeed(int64(cmd.Int("seed"))))
	}
	s, err := xsample.New(file, opts...)
	if err != nil {
		return nil, asUsage(err)
	}
	return s.Sample(ctx, n)
}

// newLogger 按全局日志参数构建 logger，未指定文件时写到 ErrWriter。
func newLogger(cmd *cli.Command) (*slog.Logger, func() error, error) {
	b := xlog.New().
		SetOutput(cmd.Root().ErrWriter).
		SetLevelString(cmd.String("log-level")).
		SetFormat(cmd.String("log-format")).
		SetAttrs(xlog.Component("xnumgen"))
	if path := cmd.String("log-file"); path != "" {
		b = b.SetRotation(path)
	}
	logger, _, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, &usageError{msg: "invalid log options", err: err}
	}
	return logger, cleanup, nil
}
