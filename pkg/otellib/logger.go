package otellib

import (
	"context"

	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type ctxLoggerKey struct{}
type ctxLoggerValue struct {
	logger *zap.Logger
}

var loggerKey ctxLoggerKey

const (
	traceIDField    = "trace.id"
	spanIDField     = "span.id"
	traceFlagsField = "trace.flags"

	rpcMethodField = "rpc.method"
)

// SetTraceInfoInterceptor tags the grpc call with trace info and puts the logger in the context
func SetTraceInfoInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		tags := grpc_ctxtags.Extract(ctx)
		sc := trace.SpanContextFromContext(ctx)

		tags.Set(traceIDField, sc.TraceID())
		tags.Set(spanIDField, sc.SpanID())
		tags.Set(traceFlagsField, sc.TraceFlags())

		ctx = ToContext(ctx, logger.With(zap.String(rpcMethodField, info.FullMethod)))
		return handler(ctx, req)
	}
}

// Extract returns the context logger with trace fields, a nop logger if none
func Extract(ctx context.Context) *zap.Logger {
	val, ok := ctx.Value(loggerKey).(ctxLoggerValue)
	if !ok {
		return zap.NewNop()
	}
	sc := trace.SpanContextFromContext(ctx)
	return val.logger.With(
		zap.String(traceIDField, sc.TraceID().String()),
		zap.String(spanIDField, sc.SpanID().String()),
		zap.String(traceFlagsField, sc.TraceFlags().String()),
	)
}

// WithFields attaches fields to the context logger, no-op when the context has none
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	val, ok := ctx.Value(loggerKey).(ctxLoggerValue)
	if !ok {
		return ctx
	}
	return ToContext(ctx, val.logger.With(fields...))
}

// LogError logs err at error level, attributed to the caller's caller
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	Extract(ctx).WithOptions(zap.AddCallerSkip(1)).
		Error(msg, append(fields, zap.Error(err))...)
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, ctxLoggerValue{logger: l})
}
