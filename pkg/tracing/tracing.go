// Package tracing 基于OpenTelemetry的链路追踪
//
// 每个应用层用例开一个Span，仓储调用挂在用例Span下面。
// 没有调用InitTracer时otel使用全局的noop Provider，StartSpan依然可以安全调用，
// 所以交互模式默认不需要Collector。
//
// 示例：
//
//	shutdown, err := tracing.InitTracer("bookstore-admin", "localhost:4317", 1.0)
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "inventory", "AddBookToStore")
//	defer span.End()
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer 初始化全局Tracer Provider
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - endpoint: OTLP gRPC端点（如localhost:4317）
//   - sampleRatio: 采样率，1表示全部采样
//
// 返回的shutdown必须在退出前调用，否则最后一批Span可能丢失
func InitTracer(serviceName, endpoint string, sampleRatio float64) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1. 创建OTLP gRPC Exporter（连接是惰性的，Collector不在线不会阻塞启动）
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	// 2. 资源属性
	res, err := resource.New(
		ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	// 3. 创建Tracer Provider
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	// 4. 设置全局Provider和Propagator
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}

	return shutdown, nil
}

// StartSpan 创建一个新的Span
// 必须使用返回的ctx调用下游函数，否则无法构建调用树
func StartSpan(ctx context.Context, tracerName, spanName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName)
}

// EndSpan 结束Span，err非nil时记录错误并标记状态
//
//	ctx, span := tracing.StartSpan(ctx, "book", "AddBook")
//	defer func() { tracing.EndSpan(span, err) }()
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ExtractTraceID 从Context提取TraceID（用于关联日志）
func ExtractTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.SpanContext().IsValid() {
		return ""
	}
	return span.SpanContext().TraceID().String()
}
