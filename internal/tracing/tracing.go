// Package tracing はOpenTelemetryのTracerProviderを初期化します。
package tracing

import (
	"context"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc はエクスポーターをフラッシュして停止します。
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init は enabled の場合にstdoutエクスポーター付きのTracerProviderを
// グローバルに設定します。無効の場合は何もしません。
// w が nil の場合は標準出力に書き出します。
func Init(enabled bool, serviceName string, w io.Writer) (ShutdownFunc, error) {
	if !enabled {
		return noopShutdown, nil
	}

	opts := []stdouttrace.Option{stdouttrace.WithPrettyPrint()}
	if w != nil {
		opts = append(opts, stdouttrace.WithWriter(w))
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create stdout trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	log.Printf("Tracing enabled for service %q (stdout exporter)", serviceName)

	return tp.Shutdown, nil
}
