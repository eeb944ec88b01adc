package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/reed/config"
	"github.com/Ramsey-B/reed/pkg/metrics"
	"github.com/Ramsey-B/reed/pkg/pipeline"
	"github.com/Ramsey-B/reed/pkg/tracing"
)

// runtime carries the process-wide logging, tracing and metrics setup for
// a single command run.
type runtime struct {
	cfg      config.Config
	zap      *zap.Logger
	logger   ectologger.Logger
	provider *sdktrace.TracerProvider
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRuntime(cfg config.Config) (*runtime, error) {
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q", cfg.Timezone)
		}
		time.Local = loc
	}

	zapLogger, err := newZapLogger(cfg)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:    cfg,
		zap:    zapLogger,
		logger: zapadapter.NewZapEctoLogger(zapLogger, nil),
	}

	if cfg.TracingEnabled {
		rt.provider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanLogger{logger: zapLogger}))
		tracing.SetTracer(rt.provider.Tracer(cfg.AppName))
	}

	if cfg.MetricsEnabled {
		rt.registry = prometheus.NewRegistry()
		rt.metrics = metrics.New(rt.registry)
	}

	return rt, nil
}

func newZapLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.InitialFields = map[string]any{"app": cfg.AppName}

	return zapConfig.Build()
}

// Instrument attaches the configured logger, observer and tracing to chain.
func (r *runtime) Instrument(chain pipeline.Chain) pipeline.Chain {
	chain = chain.WithLogger(r.logger)
	if r.metrics != nil {
		chain = chain.WithObserver(r.metrics)
	}
	if r.provider != nil {
		chain = chain.Traced()
	}
	return chain
}

// Report logs every collected metric sample at info level.
func (r *runtime) Report() error {
	if r.registry == nil {
		return nil
	}

	families, err := r.registry.Gather()
	if err != nil {
		return err
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := []zap.Field{zap.String("metric", family.GetName())}
			for _, label := range metric.GetLabel() {
				fields = append(fields, zap.String(label.GetName(), label.GetValue()))
			}
			fields = append(fields, sample(family.GetType(), metric)...)
			r.zap.Info("metric", fields...)
		}
	}
	return nil
}

func sample(kind dto.MetricType, metric *dto.Metric) []zap.Field {
	switch kind {
	case dto.MetricType_COUNTER:
		return []zap.Field{zap.Float64("value", metric.GetCounter().GetValue())}
	case dto.MetricType_HISTOGRAM:
		return []zap.Field{
			zap.Uint64("count", metric.GetHistogram().GetSampleCount()),
			zap.Float64("sum", metric.GetHistogram().GetSampleSum()),
		}
	default:
		return nil
	}
}

// Close flushes spans and logs. It is safe to call more than once.
func (r *runtime) Close(ctx context.Context) error {
	if r.provider != nil {
		tracing.SetTracer(nil)
		if err := r.provider.Shutdown(ctx); err != nil {
			return err
		}
		r.provider = nil
	}
	_ = r.zap.Sync()
	return nil
}

// spanLogger writes finished spans to the log.
type spanLogger struct {
	logger *zap.Logger
}

func (spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (s spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	s.logger.Debug("span",
		zap.String("name", span.Name()),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
		zap.Duration("duration", span.EndTime().Sub(span.StartTime())),
		zap.String("status", span.Status().Code.String()),
	)
}

func (spanLogger) Shutdown(context.Context) error   { return nil }
func (spanLogger) ForceFlush(context.Context) error { return nil }
