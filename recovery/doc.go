// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery provides panic recovery middleware for HTTP handlers.
//
// The middleware recovers from panics in HTTP handlers and answers with a
// formatted 500 Internal Server Error, so the body follows the formatter
// configured on httperr.Default. This prevents a single panicking request
// from crashing the entire server.
//
// # Basic Usage
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	wrappedMux := recovery.Middleware(mux)
//	http.ListenAndServe(":8080", wrappedMux)
//
// # Logging
//
// Middleware logs recovered panics with slog.Default(). Use NewMiddleware to
// supply a logger:
//
//	wrapped := recovery.NewMiddleware(logging.New())(mux)
//
// Each entry carries the request method and path, the panic value and the
// stack trace. http.ErrAbortHandler is not recovered.
package recovery
