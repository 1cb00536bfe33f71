// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package oauth renders httperr errors as OAuth 2.0 error responses
// (RFC 6749 Section 5.2) and Bearer challenges (RFC 6750 Section 3).
//
// # Error Responses
//
// Formatter is an httperr.Formatter producing {error, error_description}
// with the error code taken from fosite's catalogue:
//
//	err := httperr.BadRequest.New(
//		httperr.WithMessage("missing grant_type"),
//		httperr.WithFormatter(oauth.Formatter),
//	)
//	// {"error": "invalid_request", "error_description": "missing grant_type"}
//
// Errors already produced by fosite convert directly:
//
//	err := oauth.FromFosite(fosite.ErrInvalidClient)
//
// # Challenges
//
// Protected resources answer 401 and 403 with a WWW-Authenticate header:
//
//	c := oauth.Challenge{
//		Realm:            "api",
//		ResourceMetadata: oauth.ResourceMetadataURL("https://api.example.com"),
//	}
//	w.Header().Set("WWW-Authenticate", c.Header(err))
//
// # Stability
//
// This package is Beta stability. The API may have minor changes before
// reaching stable status in v1.0.0.
package oauth
