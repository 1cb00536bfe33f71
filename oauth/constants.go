// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

// Error response members as defined by RFC 6749 Section 5.2.
const (
	FieldError            = "error"
	FieldErrorDescription = "error_description"
	FieldErrorURI         = "error_uri"
)

// Error codes defined by RFC 6750 Section 3.1 for protected resources. The
// RFC 6749 codes come from fosite's catalogue.
const (
	// ErrorCodeInvalidToken means the access token is expired, revoked or malformed.
	ErrorCodeInvalidToken = "invalid_token"

	// ErrorCodeInsufficientScope means the request requires higher privileges
	// than the access token provides.
	ErrorCodeInsufficientScope = "insufficient_scope"
)

// WellKnownOAuthResourcePath is the RFC 9728 path for OAuth Protected Resource
// metadata, referenced by the resource_metadata challenge parameter.
const WellKnownOAuthResourcePath = "/.well-known/oauth-protected-resource"

// AuthScheme is the authentication scheme used in challenges (RFC 6750).
const AuthScheme = "Bearer"
