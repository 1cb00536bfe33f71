// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/stacklok/kithttp/httperr"
	"github.com/stacklok/kithttp/respond"
)

// Middleware is an HTTP middleware that recovers from panics using
// slog.Default() for logging. See NewMiddleware.
func Middleware(next http.Handler) http.Handler {
	return NewMiddleware(nil)(next)
}

// NewMiddleware returns middleware that recovers from panics in the wrapped
// handler. The panic value and stack trace are logged to logger (or
// slog.Default() when nil) and the client receives an InternalServerError
// written by respond.Error. The panic value is never sent to the client.
//
// http.ErrAbortHandler is re-panicked so the server can abort the response.
func NewMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log := logger
				if log == nil {
					log = slog.Default()
				}
				log.ErrorContext(r.Context(), "recovered from panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)

				// Already logged with the stack above.
				respond.Error(w, httperr.InternalServerError.Make(httperr.WithCause(panicError(rec))),
					respond.WithLogger(slog.New(slog.DiscardHandler)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}
