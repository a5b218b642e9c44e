package persistence

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Compile-time interface check.
var _ ports.RobotStore = (*instrumentedStore)(nil)

// instrumentedStore wraps a store with a client span and store metrics per
// operation. Errors are returned exactly as the wrapped store produced them.
type instrumentedStore struct {
	next    ports.RobotStore
	driver  string
	metrics *telemetry.Metrics
}

// Instrument decorates store with tracing and, when metrics is non-nil,
// store operation metrics labelled with driver.
func Instrument(store ports.RobotStore, driver string, metrics *telemetry.Metrics) ports.RobotStore {
	return &instrumentedStore{next: store, driver: driver, metrics: metrics}
}

func (s *instrumentedStore) observe(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	tracer := otel.GetTracerProvider().Tracer("persistence")
	ctx, span := tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrStoreOperation.String(op),
			telemetry.AttrStoreDriver.String(s.driver),
		),
	)
	defer span.End()

	err := fn(ctx)

	result := "success"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if s.metrics != nil {
		attrs := metric.WithAttributes(
			telemetry.AttrStoreOperation.String(op),
			telemetry.AttrStoreDriver.String(s.driver),
			telemetry.AttrResult.String(result),
		)
		s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
	}

	return err
}

func (s *instrumentedStore) Save(ctx context.Context, r *robot.Robot) (*robot.Robot, error) {
	var saved *robot.Robot
	err := s.observe(ctx, "save", func(ctx context.Context) error {
		var err error
		saved, err = s.next.Save(ctx, r)
		return err
	})
	return saved, err
}

func (s *instrumentedStore) FindAll(ctx context.Context, sort robot.Sort) ([]robot.Robot, error) {
	var robots []robot.Robot
	err := s.observe(ctx, "find_all", func(ctx context.Context) error {
		var err error
		robots, err = s.next.FindAll(ctx, sort)
		return err
	})
	return robots, err
}

func (s *instrumentedStore) FindByID(ctx context.Context, id int64) (*robot.Robot, bool, error) {
	var (
		found *robot.Robot
		ok    bool
	)
	err := s.observe(ctx, "find_by_id", func(ctx context.Context) error {
		var err error
		found, ok, err = s.next.FindByID(ctx, id)
		return err
	})
	return found, ok, err
}

func (s *instrumentedStore) DeleteByID(ctx context.Context, id int64) error {
	return s.observe(ctx, "delete_by_id", func(ctx context.Context) error {
		return s.next.DeleteByID(ctx, id)
	})
}

func (s *instrumentedStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.observe(ctx, "count", func(ctx context.Context) error {
		var err error
		n, err = s.next.Count(ctx)
		return err
	})
	return n, err
}

func (s *instrumentedStore) Name() string {
	return s.next.Name()
}

// HealthCheck passes through untraced.
func (s *instrumentedStore) HealthCheck(ctx context.Context) error {
	return s.next.HealthCheck(ctx)
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
