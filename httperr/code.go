// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"net/http"
)

// WithCode wraps an error with an HTTP status code.
// The returned *Error uses err's text as its message and implements Unwrap()
// for use with errors.Is() and errors.As().
// If err is nil, WithCode returns nil.
func WithCode(err error, code int, opts ...Option) error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), append(opts, WithCause(err))...)
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for a StatusError.
// If none is found, it returns http.StatusInternalServerError (500).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var se StatusError
	if errors.As(err, &se) {
		return se.HTTPCode()
	}

	return http.StatusInternalServerError
}

// As returns the first StatusError in err's chain.
func As(err error) (StatusError, bool) {
	var se StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
