package xsample

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xsynth/pkg/numeric/xconstrained"
	"github.com/omeyang/xsynth/pkg/numeric/xprimitive"
	"github.com/omeyang/xsynth/pkg/observability/xlog"
	"github.com/omeyang/xsynth/pkg/observability/xmetrics"
	"github.com/omeyang/xsynth/pkg/synth/xrules"
)

const instrumentationName = "github.com/omeyang/xsynth/xsample"

// Sampler 编译后的规则集，并发安全，可重复 Sample。
type Sampler struct {
	fields   []field
	opts     options
	recorder *xmetrics.Recorder
}

// Result 一次采样的结果。
type Result struct {
	RunID  string           `json:"run_id"`
	Seed   int64            `json:"seed"`
	Fields []string         `json:"fields"`
	Rows   []map[string]any `json:"rows"`
}

// New 校验并编译规则文件。
func New(file *xrules.File, opts ...Option) (*Sampler, error) {
	if file == nil {
		return nil, ErrNilFile
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	base, err := file.Context()
	if err != nil {
		return nil, err
	}

	genOpts := []xconstrained.Option{
		xconstrained.WithWindow(file.EffectiveWindow()),
		xconstrained.WithLogger(o.logger),
	}
	fields := make([]field, 0, len(file.Rules))
	for _, rule := range file.Rules {
		f, err := compile(rule, base, genOpts)
		if err != nil {
			return nil, err
		}
		attrs := []any{xlog.Field(f.name), xlog.Kind(string(f.kind))}
		if f.dctx != nil {
			attrs = append(attrs, xlog.DecimalContext(f.dctx))
		}
		o.logger.Debug("xsample: rule compiled", attrs...)
		fields = append(fields, f)
	}

	recorder, err := xmetrics.NewRecorder(
		xmetrics.WithInstrumentationName(instrumentationName),
		xmetrics.WithMeterProvider(o.meterProvider),
		xmetrics.WithTracerProvider(o.tracerProvider),
	)
	if err != nil {
		return nil, err
	}

	return &Sampler{fields: fields, opts: o, recorder: recorder}, nil
}

// Fields 按规则顺序返回字段名。
func (s *Sampler) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Sample 生成 n 行。任一字段生成失败或 ctx 取消时返回错误，不返回部分结果。
func (s *Sampler) Sample(ctx context.Context, n int) (*Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	seed := s.opts.seed
	if !s.opts.seeded {
		var err error
		if seed, err = xprimitive.NewSeed(); err != nil {
			return nil, err
		}
	}
	runID := uuid.NewString()
	logger := s.opts.logger.With(xlog.RunID(runID))

	ctx, span := s.recorder.Start(ctx, "xsample.Sample",
		attribute.String(xlog.KeyRunID, runID),
		attribute.Int64(xlog.KeySeed, seed),
		attribute.Int("rows", n),
		attribute.Int("fields", len(s.fields)),
	)
	start := time.Now()

	rows := make([]map[string]any, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := s.row(gctx, seed, i)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	span.End(err)

	if err != nil {
		logger.Error("xsample: sample failed", xlog.Seed(seed), xlog.Err(err))
		return nil, err
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "xsample: sample finished",
		xlog.Seed(seed), xlog.Count(n), xlog.Duration(time.Since(start)))
	return &Result{RunID: runID, Seed: seed, Fields: s.Fields(), Rows: rows}, nil
}

// row 生成第 i 行；每个字段使用由 (seed, 字段名, i) 派生的独立随机源。
func (s *Sampler) row(ctx context.Context, seed int64, i int) (map[string]any, error) {
	idx := strconv.Itoa(i)
	row := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		r := xprimitive.NewRand(xprimitive.DeriveSeed(seed, f.name, idx))
		v, err := f.gen(r)
		if err != nil {
			s.recorder.Error(ctx, f.name, string(f.kind), err)
			return nil, fmt.Errorf("xsample: row %d field %s: %w", i, f.name, err)
		}
		s.recorder.Value(ctx, f.name, string(f.kind))
		row[f.name] = v
	}
	return row, nil
}
