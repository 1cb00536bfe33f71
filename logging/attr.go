// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"errors"
	"log/slog"

	"github.com/stacklok/kithttp/httperr"
)

// ErrorKey is the attribute key used by [ErrorAttr].
const ErrorKey = "error"

// ErrorAttr returns an attribute describing err. Status errors become a group
// of status, message, details and cause; *httperr.Error adds the number of
// extra args and its fingerprint. Other errors become a string.
func ErrorAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var fe *httperr.Error
	if errors.As(err, &fe) {
		raw := fe.Raw()
		attrs := []slog.Attr{
			slog.Int("status", raw.StatusCode),
			slog.String("message", raw.Message),
		}
		if raw.Details != nil {
			attrs = append(attrs, slog.Any("details", raw.Details))
		}
		if len(raw.Args) > 0 {
			attrs = append(attrs, slog.Int("args", len(raw.Args)))
		}
		attrs = append(attrs, slog.String("fingerprint", fe.Fingerprint().String()))
		if cause := fe.Unwrap(); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		return slog.Attr{Key: ErrorKey, Value: slog.GroupValue(attrs...)}
	}

	var ge *httperr.GeneralError
	if errors.As(err, &ge) {
		return slog.Attr{Key: ErrorKey, Value: ge.LogValue()}
	}

	return slog.String(ErrorKey, err.Error())
}
