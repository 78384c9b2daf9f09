package xslog

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*FilterHandler)(nil)

// FilterFunc rewrites a record before it reaches the wrapped handler. Return
// false to discard the record entirely.
type FilterFunc func(ctx context.Context, record slog.Record) (slog.Record, bool)

// StripAttr returns a filter which removes attributes with the given key from
// every record. Used to keep raw response bodies out of production logs while
// the record itself still gets emitted.
func StripAttr(key string) FilterFunc {
	return func(ctx context.Context, record slog.Record) (slog.Record, bool) {
		stripped := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key != key {
				stripped.AddAttrs(attr)
			}
			return true
		})
		return stripped, true
	}
}

func NewFilterHandler(handler slog.Handler, filter FilterFunc) *FilterHandler {
	return &FilterHandler{handler: handler, filter: filter}
}

type FilterHandler struct {
	handler slog.Handler
	filter  FilterFunc
}

func (f *FilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return f.handler.Enabled(ctx, level)
}

func (f *FilterHandler) Handle(ctx context.Context, record slog.Record) error {
	if f.filter != nil {
		filtered, ok := f.filter(ctx, record)
		if !ok {
			return nil
		}
		record = filtered
	}
	return f.handler.Handle(ctx, record)
}

func (f *FilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return NewFilterHandler(f.handler.WithAttrs(attrs), f.filter)
}

func (f *FilterHandler) WithGroup(name string) slog.Handler {
	return NewFilterHandler(f.handler.WithGroup(name), f.filter)
}
