// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/stacklok/kithttp/status"
)

// Variant names one HTTP error status. Variants carry no behaviour of their
// own: they only fix the status code handed to New and Make.
type Variant struct {
	Code int
	Name string
}

// Message returns the default message for the variant's status code.
func (v Variant) Message() string {
	return status.Text(v.Code)
}

// New builds a formattable *Error with the variant's status code.
func (v Variant) New(opts ...Option) *Error {
	return New(v.Code, "", opts...)
}

// Make builds an error with the variant's status code, choosing the type
// from the config's prefer-formattable flag. See Make.
func (v Variant) Make(opts ...Option) StatusError {
	return Make(v.Code, opts...)
}

// String returns e.g. "404 NotFoundError".
func (v Variant) String() string {
	return strconv.Itoa(v.Code) + " " + v.Name
}

// 4xx client errors.
var (
	BadRequest                   = Variant{http.StatusBadRequest, "BadRequestError"}
	Unauthorized                 = Variant{http.StatusUnauthorized, "UnauthorizedError"}
	PaymentRequired              = Variant{http.StatusPaymentRequired, "PaymentRequiredError"}
	Forbidden                    = Variant{http.StatusForbidden, "ForbiddenError"}
	NotFound                     = Variant{http.StatusNotFound, "NotFoundError"}
	MethodNotAllowed             = Variant{http.StatusMethodNotAllowed, "MethodNotAllowedError"}
	NotAcceptable                = Variant{http.StatusNotAcceptable, "NotAcceptableError"}
	ProxyAuthenticationRequired  = Variant{http.StatusProxyAuthRequired, "ProxyAuthenticationRequiredError"}
	RequestTimeout               = Variant{http.StatusRequestTimeout, "RequestTimeoutError"}
	Conflict                     = Variant{http.StatusConflict, "ConflictError"}
	Gone                         = Variant{http.StatusGone, "GoneError"}
	LengthRequired               = Variant{http.StatusLengthRequired, "LengthRequiredError"}
	PreconditionFailed           = Variant{http.StatusPreconditionFailed, "PreconditionFailedError"}
	RequestTooLong               = Variant{http.StatusRequestEntityTooLarge, "RequestTooLongError"}
	RequestURITooLong            = Variant{http.StatusRequestURITooLong, "RequestUriTooLongError"}
	UnsupportedMediaType         = Variant{http.StatusUnsupportedMediaType, "UnsupportedMediaTypeError"}
	RequestedRangeNotSatisfiable = Variant{http.StatusRequestedRangeNotSatisfiable, "RequestedRangeNotSatisfiableError"}
	ExpectationFailed            = Variant{http.StatusExpectationFailed, "ExpectationFailedError"}
	ImATeapot                    = Variant{http.StatusTeapot, "ImATeapotError"}
	InsufficientSpaceOnResource  = Variant{status.StatusInsufficientSpaceOnResource, "InsufficientSpaceOnResourceError"}
	MethodFailure                = Variant{status.StatusMethodFailure, "MethodFailureError"}
	MisdirectedRequest           = Variant{http.StatusMisdirectedRequest, "MisdirectedRequestError"}
	UnprocessableEntity          = Variant{http.StatusUnprocessableEntity, "UnprocessableEntityError"}
	Locked                       = Variant{http.StatusLocked, "LockedError"}
	FailedDependency             = Variant{http.StatusFailedDependency, "FailedDependencyError"}
	TooEarly                     = Variant{http.StatusTooEarly, "TooEarlyError"}
	UpgradeRequired              = Variant{http.StatusUpgradeRequired, "UpgradeRequiredError"}
	PreconditionRequired         = Variant{http.StatusPreconditionRequired, "PreconditionRequiredError"}
	TooManyRequests              = Variant{http.StatusTooManyRequests, "TooManyRequestsError"}
	RequestHeaderFieldsTooLarge  = Variant{http.StatusRequestHeaderFieldsTooLarge, "RequestHeaderFieldsTooLargeError"}
	UnavailableForLegalReasons   = Variant{http.StatusUnavailableForLegalReasons, "UnavailableForLegalReasonsError"}
)

// 5xx server errors.
var (
	InternalServerError           = Variant{http.StatusInternalServerError, "InternalServerError"}
	NotImplemented                = Variant{http.StatusNotImplemented, "NotImplementedError"}
	BadGateway                    = Variant{http.StatusBadGateway, "BadGatewayError"}
	ServiceUnavailable            = Variant{http.StatusServiceUnavailable, "ServiceUnavailableError"}
	GatewayTimeout                = Variant{http.StatusGatewayTimeout, "GatewayTimeoutError"}
	HTTPVersionNotSupported       = Variant{http.StatusHTTPVersionNotSupported, "HttpVersionNotSupportedError"}
	VariantAlsoNegotiates         = Variant{http.StatusVariantAlsoNegotiates, "VariantAlsoNegotiatesError"}
	InsufficientStorage           = Variant{http.StatusInsufficientStorage, "InsufficientStorageError"}
	LoopDetected                  = Variant{http.StatusLoopDetected, "LoopDetectedError"}
	NotExtended                   = Variant{http.StatusNotExtended, "NotExtendedError"}
	NetworkAuthenticationRequired = Variant{http.StatusNetworkAuthenticationRequired, "NetworkAuthenticationRequiredError"}
)

// variants is ordered by status code, matching status.Codes.
var variants = []Variant{
	BadRequest,
	Unauthorized,
	PaymentRequired,
	Forbidden,
	NotFound,
	MethodNotAllowed,
	NotAcceptable,
	ProxyAuthenticationRequired,
	RequestTimeout,
	Conflict,
	Gone,
	LengthRequired,
	PreconditionFailed,
	RequestTooLong,
	RequestURITooLong,
	UnsupportedMediaType,
	RequestedRangeNotSatisfiable,
	ExpectationFailed,
	ImATeapot,
	InsufficientSpaceOnResource,
	MethodFailure,
	MisdirectedRequest,
	UnprocessableEntity,
	Locked,
	FailedDependency,
	TooEarly,
	UpgradeRequired,
	PreconditionRequired,
	TooManyRequests,
	RequestHeaderFieldsTooLarge,
	UnavailableForLegalReasons,
	InternalServerError,
	NotImplemented,
	BadGateway,
	ServiceUnavailable,
	GatewayTimeout,
	HTTPVersionNotSupported,
	VariantAlsoNegotiates,
	InsufficientStorage,
	LoopDetected,
	NotExtended,
	NetworkAuthenticationRequired,
}

// Lookup returns the variant for a status code.
func Lookup(code int) (Variant, bool) {
	i, found := slices.BinarySearchFunc(variants, code, func(v Variant, c int) int {
		return v.Code - c
	})
	if !found {
		return Variant{}, false
	}
	return variants[i], true
}

// Variants returns every variant ordered by status code.
func Variants() []Variant {
	return slices.Clone(variants)
}

// Is reports whether err's chain contains a StatusError with v's status code.
func Is(err error, v Variant) bool {
	var se StatusError
	return errors.As(err, &se) && se.HTTPCode() == v.Code
}
