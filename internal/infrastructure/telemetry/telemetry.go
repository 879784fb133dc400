package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/govprop/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InstrumentationName names the tracer and meter used by the stock ledger
const InstrumentationName = "github.com/govprop/backend"

// Telemetry groups the providers started for one process
type Telemetry struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
	logger   *zap.Logger
}

// Setup starts every provider configured in cfg. Anything started before a failure is shut down
// again before the error is returned.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*Telemetry, error) {
	t := &Telemetry{logger: logger}
	var err error

	if t.Tracer, err = NewTracerProvider(ctx, cfg, logger); err != nil {
		return nil, err
	}
	if t.Meter, err = NewMeterProvider(ctx, cfg, logger); err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	if t.Logs, err = NewLoggerProvider(ctx, cfg, logger); err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	if t.Profiler, err = NewProfiler(cfg, logger); err != nil {
		return nil, errors.Join(err, t.Shutdown(ctx))
	}
	if t.Profiler.Enabled() {
		t.Tracer.EnableSpanProfiles()
	}
	return t, nil
}

// LogCore is the otelzap core to tee into the application logger
func (t *Telemetry) LogCore(level zapcore.Level) zapcore.Core {
	if t.Logs == nil {
		return zapcore.NewNopCore()
	}
	return t.Logs.Core(level)
}

// LedgerMetrics registers the ledger movement instruments on the process meter
func (t *Telemetry) LedgerMetrics() (*LedgerMetrics, error) {
	var meter metric.Meter
	if t.Meter != nil {
		meter = t.Meter.Meter(InstrumentationName)
	} else {
		meter = (&MeterProvider{}).Meter(InstrumentationName)
	}
	m, err := NewLedgerMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("ledger metrics: %w", err)
	}
	return m, nil
}

// Shutdown stops the profiler and flushes every provider in reverse start order
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.Profiler != nil {
		errs = append(errs, t.Profiler.Stop())
	}
	if t.Logs != nil {
		errs = append(errs, t.Logs.Shutdown(ctx))
	}
	if t.Meter != nil {
		errs = append(errs, t.Meter.Shutdown(ctx))
	}
	if t.Tracer != nil {
		errs = append(errs, t.Tracer.Shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	t.logger.Info("telemetry shut down")
	return nil
}
