// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes for API error handling.

Errors carry their intended HTTP response code through the call stack, and their
response body shape is decided by a pluggable Formatter rather than by the code
that raises them.

# Basic Usage

Every 4xx and 5xx status has a Variant:

	err := httperr.NotFound.New(httperr.WithMessage("no such user"))
	err.HTTPCode() // 404
	err.Fields()   // {"statusCode": 404, "message": "no such user", "details": nil}

	// An empty message falls back to the status description.
	httperr.NotFound.New().Message() // "Not Found"

Arbitrary codes use New directly, and Lookup maps a code back to its Variant:

	err := httperr.New(http.StatusConflict, "version mismatch",
		httperr.WithDetails(map[string]any{"expected": 3}))

# Formatters

A Formatter receives the raw inputs of an error and returns the record the
error exposes. Resolution order is:

 1. the instance formatter (WithFormatter or SetFormatter)
 2. the formatter of the error's Config (Default unless WithConfig is used)
 3. the identity shape {statusCode, message, details}

Formatting always starts from the raw construction inputs, so replacing a
formatter never builds on the output of a previous one:

	err := httperr.BadRequest.New().
		SetFormatter(httperr.ProblemDetails("https://errors.example.com"))

Fields reflects construction time (or the last SetFormatter call) while
Serialize and MarshalJSON re-resolve against the formatter active now.

# Configuration

	httperr.ConfigureFormatter(httperr.Envelope("error", nil))
	defer httperr.Reset()

Configuring a formatter also makes Make and Variant.Make return *Error values.
Until then they return the plain GeneralError, which ignores formatters.

# Extracting Status Codes

	code := httperr.Code(err)
	// Returns the code if err contains a StatusError
	// Returns http.StatusInternalServerError (500) if none is found
	// Returns http.StatusOK (200) if err is nil

WithCode wraps an existing error, keeping it reachable with errors.Is and
errors.As:

	sentinel := errors.New("database connection failed")
	err := httperr.WithCode(sentinel, http.StatusServiceUnavailable)
	errors.Is(err, sentinel) // true
*/
package httperr
