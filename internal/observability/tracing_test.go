package observability

import (
	"context"
	"testing"

	"github.com/ama-mesquita/app-declaracao/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracer_Disabled(t *testing.T) {
	original := config.AppConfig
	defer func() { config.AppConfig = original }()

	config.AppConfig = &config.Config{TracingEnabled: false}

	InitTracer()

	assert.Nil(t, tracerProvider)
}

func TestInitTracer_NilConfig(t *testing.T) {
	original := config.AppConfig
	defer func() { config.AppConfig = original }()

	config.AppConfig = nil

	assert.NotPanics(t, InitTracer)
	assert.Nil(t, tracerProvider)
}

func TestInitTracer_EnabledThenShutdown(t *testing.T) {
	original := config.AppConfig
	defer func() { config.AppConfig = original }()

	// The gRPC exporter connects lazily, so an unreachable endpoint still
	// yields a provider.
	config.AppConfig = &config.Config{
		TracingEnabled:  true,
		TracingEndpoint: "127.0.0.1:4317",
	}

	InitTracer()
	assert.NotNil(t, tracerProvider)

	ShutdownTracer()
	assert.Nil(t, tracerProvider)
}

func TestShutdownTracer_NilProvider(t *testing.T) {
	tracerProvider = nil
	assert.NotPanics(t, ShutdownTracer)
}

func TestDeclarationResource(t *testing.T) {
	cfg := &config.Config{
		Environment: "staging",
		Timezone:    "America/Sao_Paulo",
		LogoPath:    "logoalto.jpg",
		Template:    config.DefaultTemplate(),
	}

	res, err := declarationResource(context.Background(), cfg)
	require.NoError(t, err)

	attrs := res.Set()
	expected := map[attribute.Key]attribute.Value{
		"service.name":                attribute.StringValue(TracerName),
		"deployment.environment":      attribute.StringValue("staging"),
		"declaration.organization":    attribute.StringValue("A.M.A"),
		"declaration.issue_city":      attribute.StringValue("Mesquita"),
		"declaration.state":           attribute.StringValue("RJ"),
		"declaration.timezone":        attribute.StringValue("America/Sao_Paulo"),
		"declaration.logo_configured": attribute.BoolValue(true),
	}
	for key, want := range expected {
		got, ok := attrs.Value(key)
		if assert.True(t, ok, "missing %s", key) {
			assert.Equal(t, want, got, "attribute %s", key)
		}
	}
}
