// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package respond writes status errors as HTTP responses.
//
// The status line comes from the error's HTTP code and the body is the JSON
// encoding of its serialized record, so the active formatter decides the
// body shape:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		user, err := lookup(r)
//		if err != nil {
//			respond.Error(w, err, respond.WithContentType(respond.ContentTypeProblem))
//			return
//		}
//		...
//	}
//
// Errors that carry no status are answered with a 500 whose body never
// includes the original message. Server errors are logged through slog.
//
// For 429 and 503 responses a Retry-After header is derived from the
// "retryAfter" details key when the details are a map.
package respond
