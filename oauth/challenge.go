// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package oauth

import (
	"net/http"
	"strings"

	"github.com/stacklok/kithttp/httperr"
)

// Challenge holds the parameters of a Bearer WWW-Authenticate challenge.
type Challenge struct {
	Realm string
	Scope string
	// ResourceMetadata is the URL of the RFC 9728 protected resource
	// metadata document. See ResourceMetadataURL.
	ResourceMetadata string
}

// WWWAuthenticate renders the Bearer challenge for err with only a realm.
func WWWAuthenticate(realm string, err httperr.StatusError) string {
	return Challenge{Realm: realm}.Header(err)
}

// Header renders the challenge for err per RFC 6750 Section 3:
//
//	Bearer realm="api", error="invalid_token", error_description="token expired"
//
// The error code and description are taken from err's serialized record when
// it was formatted with Formatter, else derived from its status code and
// message. A nil err or a 401 without an explicit error code renders the
// bare challenge, since clients that sent no credentials get no error code.
func (c Challenge) Header(err httperr.StatusError) string {
	var params []string
	add := func(name, value string) {
		if value != "" {
			params = append(params, name+"="+quote(value))
		}
	}

	add("realm", c.Realm)
	add("scope", c.Scope)
	add("resource_metadata", c.ResourceMetadata)

	if err != nil {
		code, description := errorMembers(err)
		add(FieldError, code)
		add(FieldErrorDescription, description)
	}

	if len(params) == 0 {
		return AuthScheme
	}
	return AuthScheme + " " + strings.Join(params, ", ")
}

func errorMembers(err httperr.StatusError) (code, description string) {
	fields := err.Serialize()
	code, _ = fields[FieldError].(string)
	description, _ = fields[FieldErrorDescription].(string)

	if code == "" {
		if err.HTTPCode() == http.StatusUnauthorized {
			return "", ""
		}
		code = ErrorCode(err.HTTPCode())
	}
	if description == "" {
		description = err.Error()
	}
	return code, description
}

// ResourceMetadataURL returns the RFC 9728 metadata URL for a resource
// server base URL, e.g. https://api.example.com/.well-known/oauth-protected-resource.
func ResourceMetadataURL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + WellKnownOAuthResourcePath
}

// quote renders an RFC 7230 quoted-string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\r' || c == '\n':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
