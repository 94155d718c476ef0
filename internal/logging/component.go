package logging

import (
	"context"
	"log/slog"
)

// handlerOp is one WithAttrs or WithGroup call, replayed in call order.
type handlerOp struct {
	group string
	attrs []slog.Attr
}

// componentHandler delegates to the current global handler at log time, so
// package-level component loggers pick up the sink installed later by Init.
type componentHandler struct {
	component string
	ops       []handlerOp
}

func (h *componentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (h *componentHandler) Handle(ctx context.Context, r slog.Record) error {
	handler := Logger().Handler().WithAttrs([]slog.Attr{slog.String("component", h.component)})
	for _, op := range h.ops {
		if op.group != "" {
			handler = handler.WithGroup(op.group)
		} else {
			handler = handler.WithAttrs(op.attrs)
		}
	}
	return handler.Handle(ctx, r)
}

func (h *componentHandler) with(op handlerOp) *componentHandler {
	ops := make([]handlerOp, 0, len(h.ops)+1)
	ops = append(ops, h.ops...)
	return &componentHandler{component: h.component, ops: append(ops, op)}
}

func (h *componentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerOp{attrs: attrs})
}

func (h *componentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}
