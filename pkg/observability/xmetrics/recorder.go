package xmetrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	metricValues   = "xsynth.sample.values"
	metricErrors   = "xsynth.sample.errors"
	metricDuration = "xsynth.sample.duration"

	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// Recorder 记录生成过程的指标与 span，并发安全。
type Recorder struct {
	tracer   trace.Tracer
	values   metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewRecorder 创建 Recorder。
func NewRecorder(opts ...Option) (*Recorder, error) {
	cfg := &config{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	meter := cfg.meterProvider.Meter(cfg.instrumentationName)
	values, err := meter.Int64Counter(
		metricValues,
		metric.WithDescription("generated values"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}
	errs, err := meter.Int64Counter(
		metricErrors,
		metric.WithDescription("failed generations"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}
	duration, err := meter.Float64Histogram(
		metricDuration,
		metric.WithDescription("sampling run duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateInstrument, err)
	}

	return &Recorder{
		tracer:   cfg.tracerProvider.Tracer(cfg.instrumentationName),
		values:   values,
		errors:   errs,
		duration: duration,
	}, nil
}

// Value 记录字段 field 成功生成一个值。
func (r *Recorder) Value(ctx context.Context, field, kind string) {
	r.values.Add(context.WithoutCancel(ctx), 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.String("kind", kind),
	))
}

// Error 记录字段 field 生成失败，error 属性取错误链最内层的文本。
func (r *Recorder) Error(ctx context.Context, field, kind string, err error) {
	r.errors.Add(context.WithoutCancel(ctx), 1, metric.WithAttributes(
		attribute.String("field", field),
		attribute.String("kind", kind),
		attribute.String("error", errorClass(err)),
	))
}

// Start 开始一次运行的 span。
func (r *Recorder) Start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, *Span) {
	ctx, span := r.tracer.Start(ctx, operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	return ctx, &Span{
		span:      span,
		recorder:  r,
		ctx:       ctx,
		operation: operation,
		start:     time.Now(),
	}
}

// Span 一次运行的观测跨度。
type Span struct {
	span      trace.Span
	recorder  *Recorder
	ctx       context.Context
	operation string
	start     time.Time
	endOnce   sync.Once
}

// SetAttributes 追加 span 属性。
func (s *Span) SetAttributes(attrs ...attribute.KeyValue) {
	if s != nil {
		s.span.SetAttributes(attrs...)
	}
}

// End 结束 span 并记录耗时，幂等。
func (s *Span) End(err error) {
	if s == nil {
		return
	}
	s.endOnce.Do(func() {
		status := resolveStatus(err)
		switch status {
		case StatusOK:
			s.span.SetStatus(codes.Ok, "")
		default:
			s.span.RecordError(err)
			s.span.SetStatus(codes.Error, err.Error())
		}
		s.span.End()

		s.recorder.duration.Record(context.WithoutCancel(s.ctx), time.Since(s.start).Seconds(),
			metric.WithAttributes(
				attribute.String("operation", s.operation),
				attribute.String("status", status),
			))
	})
}

func resolveStatus(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusError
	}
}

// errorClass 取错误链最内层的错误文本，得到低基数的属性值。
func errorClass(err error) string {
	if err == nil {
		return ""
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
