package observability

import (
	"context"
	"time"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/ama-mesquita/app-declaracao/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// TracerName names every span this service starts
	TracerName = "app-declaracao"

	serviceVersion = "v1.0.0"
)

var (
	tracerProvider *sdktrace.TracerProvider
)

// Tracer returns the service tracer from the global provider
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// declarationResource describes this process to the trace backend: which
// association issues the declarations and which letterhead it prints.
func declarationResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(TracerName),
			semconv.ServiceVersionKey.String(serviceVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
			attribute.String("declaration.organization", cfg.Template.OrganizationShortName),
			attribute.String("declaration.issue_city", cfg.Template.IssueCity),
			attribute.String("declaration.state", cfg.Template.State),
			attribute.String("declaration.timezone", cfg.Timezone),
			attribute.Bool("declaration.logo_configured", cfg.LogoPath != ""),
		),
	)
}

// InitTracer exports spans over OTLP gRPC when TRACING_ENABLED is set
func InitTracer() {
	cfg := config.AppConfig
	if cfg == nil || !cfg.TracingEnabled {
		Logger().Info("tracing is disabled")
		return
	}

	ctx := context.Background()

	client := otlptracegrpc.NewClient(
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.TracingEndpoint),
		otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		Logger().Error("failed to create OTLP exporter", zap.Error(err))
		return
	}

	res, err := declarationResource(ctx, cfg)
	if err != nil {
		Logger().Error("failed to create resource", zap.Error(err))
		return
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter,
			sdktrace.WithMaxExportBatchSize(128),
			sdktrace.WithBatchTimeout(5*time.Second),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	Logger().Info("tracer initialized",
		zap.String("endpoint", cfg.TracingEndpoint),
		zap.String("environment", cfg.Environment),
		zap.String("organization", cfg.Template.OrganizationShortName),
	)
}

// ShutdownTracer flushes pending spans and releases the provider
func ShutdownTracer() {
	if tracerProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tracerProvider.Shutdown(ctx); err != nil {
		logging.Logger.Error("failed to shutdown tracer provider", zap.Error(err))
	}
	tracerProvider = nil
}
