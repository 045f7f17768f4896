package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-courier/logr"
)

func newLogger(w io.Writer, debug bool) *logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}

	return &logger{
		ctx: context.Background(),
		slog: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})),
	}
}

type logger struct {
	slog      *slog.Logger
	ctx       context.Context
	spans     []string
	attrs     []any
	startedAt time.Time
}

func (d logger) WithValues(keyAndValues ...any) logr.Logger {
	d.attrs = append(d.attrs[:len(d.attrs):len(d.attrs)], keyAndValues...)
	return &d
}

func (d *logger) Start(ctx context.Context, name string, keyAndValues ...any) (context.Context, logr.Logger) {
	ll := &logger{
		slog: d.slog,
		ctx:  ctx,

		spans:     append(d.spans[:len(d.spans):len(d.spans)], name),
		attrs:     append(d.attrs[:len(d.attrs):len(d.attrs)], keyAndValues...),
		startedAt: time.Now(),
	}

	return logr.WithLogger(ctx, ll), ll
}

func (d *logger) End() {
	var dd logr.Logger = d
	if !d.startedAt.IsZero() {
		dd = dd.WithValues(slog.Duration("cost", time.Since(d.startedAt)))
	}
	dd.Debug("done")
}

func (d *logger) toAttrs() []any {
	if len(d.spans) == 0 {
		return d.attrs
	}
	return append(d.attrs[:len(d.attrs):len(d.attrs)], slog.String("span", strings.Join(d.spans, "/")))
}

func (d *logger) Debug(format string, args ...any) {
	if !d.slog.Enabled(d.ctx, slog.LevelDebug) {
		return
	}
	d.slog.Log(d.ctx, slog.LevelDebug, fmt.Sprintf(format, args...), d.toAttrs()...)
}

func (d *logger) Info(format string, args ...any) {
	if !d.slog.Enabled(d.ctx, slog.LevelInfo) {
		return
	}
	d.slog.Log(d.ctx, slog.LevelInfo, fmt.Sprintf(format, args...), d.toAttrs()...)
}

func (d *logger) Warn(err error) {
	if !d.slog.Enabled(d.ctx, slog.LevelWarn) {
		return
	}
	d.slog.Log(d.ctx, slog.LevelWarn, err.Error(), d.toAttrs()...)
}

func (d *logger) Error(err error) {
	d.slog.Log(d.ctx, slog.LevelError, err.Error(), d.toAttrs()...)
}
