// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ory/fosite"

	"github.com/stacklok/kithttp/httperr"
)

// MaxErrorURILength bounds the error_uri member accepted from details.
const MaxErrorURILength = 2048

// ErrorFor returns the fosite catalogue entry that best describes statusCode.
// Codes without a dedicated entry fall back to invalid_request for 4xx and
// server_error for everything else.
func ErrorFor(statusCode int) *fosite.RFC6749Error {
	switch {
	case statusCode == http.StatusUnauthorized:
		return fosite.ErrInvalidClient
	case statusCode == http.StatusForbidden:
		return fosite.ErrAccessDenied
	case statusCode == http.StatusServiceUnavailable:
		return fosite.ErrTemporarilyUnavailable
	case statusCode >= 400 && statusCode < 500:
		return fosite.ErrInvalidRequest
	default:
		return fosite.ErrServerError
	}
}

// ErrorCode returns the RFC 6749 error code for statusCode.
func ErrorCode(statusCode int) string {
	return ErrorFor(statusCode).ErrorField
}

// Formatter shapes errors as RFC 6749 Section 5.2 error responses:
//
//	{"error": "invalid_request", "error_description": "missing grant_type"}
//
// A string "error" entry in map-shaped details overrides the derived code, so
// resource servers can answer with the RFC 6750 codes. A valid "error_uri"
// entry is copied through. Other details and extra args are not exposed.
func Formatter(statusCode int, message string, details any, _ ...any) httperr.Fields {
	out := httperr.Fields{
		FieldError:            ErrorCode(statusCode),
		FieldErrorDescription: message,
	}

	m, ok := details.(map[string]any)
	if !ok {
		if f, isFields := details.(httperr.Fields); isFields {
			m, ok = f, true
		}
	}
	if !ok {
		return out
	}

	if code, isString := m[FieldError].(string); isString && code != "" {
		out[FieldError] = code
	}
	if uri, isString := m[FieldErrorURI].(string); isString && ValidateErrorURI(uri) == nil {
		out[FieldErrorURI] = uri
	}
	return out
}

// ValidateErrorURI checks that uri is an absolute URI without a fragment, as
// RFC 6749 requires for error_uri.
func ValidateErrorURI(uri string) error {
	if len(uri) > MaxErrorURILength {
		return fmt.Errorf("error_uri too long (maximum %d characters)", MaxErrorURILength)
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid error_uri format: %w", err)
	}

	if !fosite.IsValidRedirectURI(parsed) {
		return errors.New("error_uri must be an absolute URI without a fragment")
	}

	return nil
}

// FromFosite converts a fosite error into a formattable error that renders
// with Formatter. The description and hint become the message and the fosite
// error code is kept in the details. Errors that are not fosite errors become
// server_error responses.
func FromFosite(err error, opts ...httperr.Option) *httperr.Error {
	var fe *fosite.RFC6749Error
	if !errors.As(err, &fe) {
		fe = fosite.ErrServerError
	}

	code := fe.CodeField
	if code == 0 {
		code = http.StatusBadRequest
	}

	message := fe.DescriptionField
	if fe.HintField != "" {
		message = strings.TrimSpace(message + " " + fe.HintField)
	}

	base := []httperr.Option{
		httperr.WithDetails(map[string]any{FieldError: fe.ErrorField}),
		httperr.WithFormatter(Formatter),
		httperr.WithCause(err),
	}
	return httperr.New(code, message, append(base, opts...)...)
}
