// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/stacklok/kithttp/status"
)

// Fields is the record an error exposes once formatted.
type Fields map[string]any

// Field names of the identity shape.
const (
	FieldStatusCode = "statusCode"
	FieldMessage    = "message"
	FieldDetails    = "details"
)

// Formatter maps the raw inputs of an error to the record it exposes.
//
// Formatters are called synchronously and are expected not to fail. A
// formatter that panics propagates the panic to whoever triggered the
// formatting pass. A nil result is treated as an empty record.
type Formatter func(statusCode int, message string, details any, args ...any) Fields

// Identity is the default shape: {statusCode, message, details}.
func Identity(statusCode int, message string, details any, _ ...any) Fields {
	return Fields{
		FieldStatusCode: statusCode,
		FieldMessage:    message,
		FieldDetails:    details,
	}
}

// apply runs f over raw. A nil f selects the unformatted shape, which also
// merges map-shaped extra args under the identity fields.
func apply(f Formatter, raw RawInputs) Fields {
	if f == nil {
		return unformatted(raw)
	}
	out := f(raw.StatusCode, raw.Message, raw.Details, slices.Clone(raw.Args)...)
	if out == nil {
		return Fields{}
	}
	return out
}

func unformatted(raw RawInputs) Fields {
	out := Fields{}
	for _, arg := range raw.Args {
		if m, ok := asMap(arg); ok {
			maps.Copy(out, m)
		}
	}
	maps.Copy(out, Identity(raw.StatusCode, raw.Message, raw.Details))
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Fields:
		return m, m != nil
	case map[string]any:
		return m, m != nil
	}
	return nil, false
}

// ProblemDetails returns a formatter producing RFC 9457 problem details:
//
//	{"type": ..., "title": ..., "status": ..., "detail": ...}
//
// The type member is typeBase joined with a slug of the title, or
// "about:blank" when typeBase is empty. Map-shaped details are added as
// extension members without overriding the standard ones; any other non-nil
// details value is exposed under "details".
func ProblemDetails(typeBase string) Formatter {
	return func(statusCode int, message string, details any, _ ...any) Fields {
		title := status.Text(statusCode)
		out := Fields{
			"type":   problemType(typeBase, statusCode, title),
			"title":  title,
			"status": statusCode,
			"detail": message,
		}
		if m, ok := asMap(details); ok {
			for k, v := range m {
				if _, reserved := out[k]; !reserved {
					out[k] = v
				}
			}
		} else if details != nil {
			out[FieldDetails] = details
		}
		return out
	}
}

func problemType(base string, statusCode int, title string) string {
	if base == "" {
		return "about:blank"
	}
	slug := slugify(title)
	if slug == "" {
		slug = strconv.Itoa(statusCode)
	}
	return strings.TrimSuffix(base, "/") + "/" + slug
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == '\'':
			// "I'm a teapot" -> "im-a-teapot"
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Envelope nests the record produced by inner under key, e.g.
// {"error": {"statusCode": 404, ...}}. A nil inner selects Identity.
func Envelope(key string, inner Formatter) Formatter {
	if inner == nil {
		inner = Identity
	}
	return func(statusCode int, message string, details any, args ...any) Fields {
		nested := inner(statusCode, message, details, args...)
		if nested == nil {
			nested = Fields{}
		}
		return Fields{key: nested}
	}
}
