// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import "log/slog"

var (
	_ slog.LogValuer = (*Error)(nil)
	_ slog.LogValuer = (*GeneralError)(nil)
)

// LogValue implements slog.LogValuer. It logs the raw inputs rather than the
// formatted fields so log lines keep a stable shape across formatters.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", e.raw.StatusCode),
		slog.String("message", e.raw.Message),
	}
	if e.raw.Details != nil {
		attrs = append(attrs, slog.Any("details", e.raw.Details))
	}
	if len(e.raw.Args) > 0 {
		attrs = append(attrs, slog.Int("args", len(e.raw.Args)))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (e *GeneralError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("status", e.StatusCode),
		slog.String("message", e.Message),
	}
	if e.Details != nil {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}
	return slog.GroupValue(attrs...)
}
