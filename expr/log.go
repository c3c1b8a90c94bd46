package expr

import (
	"context"
	"log/slog"

	"github.com/gitnlsn/ncas/internal/log"
)

var logger = ExprLogger(log.DefaultLogger).With("section", "expr")

// Slog wraps an Expression as a slog.LogValuer so that it is only
// rendered when the record is actually written
func Slog(e Expression) slog.LogValuer {
	return exprLogValuer{e}
}

type exprLogValuer struct{ Expression }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.StringValue(l.Expression.String())
}

// ExprHandler is a slog.Handler that lazily renders Expression attributes
func ExprHandler(underlying slog.Handler) slog.Handler {
	return &exprLogHandler{underlying: underlying}
}

func ExprLogger(underlying *slog.Logger) *slog.Logger {
	return slog.New(ExprHandler(underlying.Handler()))
}

type exprLogHandler struct {
	underlying slog.Handler
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(lazyAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	wrapped := make([]slog.Attr, 0, len(attrs))
	for _, attr := range attrs {
		wrapped = append(wrapped, lazyAttr(attr))
	}
	return ExprHandler(l.underlying.WithAttrs(wrapped))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return ExprHandler(l.underlying.WithGroup(name))
}

func lazyAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindAny {
		if e, isExpr := attr.Value.Any().(Expression); isExpr {
			return slog.Any(attr.Key, Slog(e))
		}
	}
	return attr
}
