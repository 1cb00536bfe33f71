// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"net/http"
	"slices"
)

// Non-standard status codes enumerated alongside the registered ones.
const (
	// StatusInsufficientSpaceOnResource is the WebDAV draft code 419.
	StatusInsufficientSpaceOnResource = 419

	// StatusMethodFailure is the WebDAV draft code 420.
	StatusMethodFailure = 420
)

// extra holds phrases for codes net/http does not know about.
var extra = map[int]string{
	StatusInsufficientSpaceOnResource: "Insufficient Space on Resource",
	StatusMethodFailure:               "Method Failure",
}

// enumerated lists every code that has a named error variant, ascending.
var enumerated = []int{
	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusPaymentRequired,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusMethodNotAllowed,
	http.StatusNotAcceptable,
	http.StatusProxyAuthRequired,
	http.StatusRequestTimeout,
	http.StatusConflict,
	http.StatusGone,
	http.StatusLengthRequired,
	http.StatusPreconditionFailed,
	http.StatusRequestEntityTooLarge,
	http.StatusRequestURITooLong,
	http.StatusUnsupportedMediaType,
	http.StatusRequestedRangeNotSatisfiable,
	http.StatusExpectationFailed,
	http.StatusTeapot,
	StatusInsufficientSpaceOnResource,
	StatusMethodFailure,
	http.StatusMisdirectedRequest,
	http.StatusUnprocessableEntity,
	http.StatusLocked,
	http.StatusFailedDependency,
	http.StatusTooEarly,
	http.StatusUpgradeRequired,
	http.StatusPreconditionRequired,
	http.StatusTooManyRequests,
	http.StatusRequestHeaderFieldsTooLarge,
	http.StatusUnavailableForLegalReasons,
	http.StatusInternalServerError,
	http.StatusNotImplemented,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
	http.StatusHTTPVersionNotSupported,
	http.StatusVariantAlsoNegotiates,
	http.StatusInsufficientStorage,
	http.StatusLoopDetected,
	http.StatusNotExtended,
	http.StatusNetworkAuthenticationRequired,
}

// Lookup returns the phrase for an enumerated error status code.
// The boolean is false for codes outside the table.
func Lookup(code int) (string, bool) {
	if _, found := slices.BinarySearch(enumerated, code); !found {
		return "", false
	}
	if phrase, ok := extra[code]; ok {
		return phrase, true
	}
	return http.StatusText(code), true
}

// Text returns the canonical phrase for code. Codes outside the enumerated
// table fall back to [net/http.StatusText], which yields "" for unknown codes.
func Text(code int) string {
	if phrase, ok := Lookup(code); ok {
		return phrase
	}
	return http.StatusText(code)
}

// Codes returns a copy of the enumerated status codes in ascending order.
func Codes() []int {
	return slices.Clone(enumerated)
}
