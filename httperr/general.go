// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import "github.com/stacklok/kithttp/status"

// StatusError is implemented by both error types of this package.
type StatusError interface {
	error
	HTTPCode() int
	Serialize() Fields
}

var (
	_ StatusError = (*Error)(nil)
	_ StatusError = (*GeneralError)(nil)
)

// GeneralError is the non-formatting sibling of Error: a plain status code,
// message and details triple. Formatters and extra args never apply to it.
type GeneralError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Details    any    `json:"details"`

	cause error
}

// NewGeneral creates a GeneralError. When message is empty the status
// description is used instead.
func NewGeneral(statusCode int, message string, details any) *GeneralError {
	if message == "" {
		message = status.Text(statusCode)
	}
	return &GeneralError{StatusCode: statusCode, Message: message, Details: details}
}

// Error implements the error interface.
func (e *GeneralError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *GeneralError) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *GeneralError) HTTPCode() int {
	return e.StatusCode
}

// Serialize returns the identity shape.
func (e *GeneralError) Serialize() Fields {
	return Identity(e.StatusCode, e.Message, e.Details)
}

// Make builds an error for statusCode. When the config (Default unless
// WithConfig is given) prefers formattable errors, which happens once a
// formatter has been configured on it, Make returns an *Error; otherwise it
// returns a *GeneralError and ignores WithArgs and WithFormatter.
func Make(statusCode int, opts ...Option) StatusError {
	o := collect("", opts)
	if o.cfg.PreferFormattable() {
		return build(statusCode, o)
	}
	ge := NewGeneral(statusCode, o.message, o.details)
	ge.cause = o.cause
	return ge
}
