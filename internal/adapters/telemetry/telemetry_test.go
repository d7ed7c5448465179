package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/dcmget/internal/adapters/telemetry"
	"go.trai.ch/dcmget/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func hasPrefix(prefix string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		s, ok := x.(string)
		return ok && strings.HasPrefix(s, prefix)
	})
}

func TestBridge_OnEnd_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(hasPrefix("✓ clone (")).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "clone")
	span.End()
}

func TestBridge_OnEnd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(hasPrefix("install failed after ")).Times(1)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "install")
	span.RecordError(errors.New("exit status 1"))
	span.End()
}

func TestBridge_NilLogger(_ *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := telemetry.NewOTelTracerWithProvider(tp, "test").Start(context.Background(), "clean")
	span.End()
}

func TestOTelSpan_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, span := tracer.Start(context.Background(), "checkout")
	span.SetAttribute("step.name", "checkout")
	span.SetAttribute("step.exit_code", 0)
	span.SetAttribute("batch", true)
	span.SetAttribute("elapsed", 2*time.Second)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "checkout", ended[0].Name())

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "checkout", attrs["step.name"].AsString())
	assert.Equal(t, int64(0), attrs["step.exit_code"].AsInt64())
	assert.True(t, attrs["batch"].AsBool())
	assert.Equal(t, "2s", attrs["elapsed"].AsString())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 1234567 * time.Nanosecond, want: "1ms"},
		{in: 2345 * time.Millisecond, want: "2.3s"},
		{in: 95*time.Second + 400*time.Millisecond, want: "1m35s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, telemetry.FormatDuration(tt.in))
		})
	}
}
