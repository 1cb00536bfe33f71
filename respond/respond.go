// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package respond

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/stacklok/kithttp/httperr"
	"github.com/stacklok/kithttp/logging"
	httpval "github.com/stacklok/kithttp/validation/http"
)

// Content types for error bodies.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeProblem = "application/problem+json"
)

// RetryAfterKey is the details key read for the Retry-After header.
const RetryAfterKey = "retryAfter"

type header struct {
	name  string
	value string
}

type options struct {
	contentType string
	headers     []header
	logger      *slog.Logger
	cfg         *httperr.Config
}

// Option configures Error.
type Option func(*options)

// WithHeader adds a response header. Headers that fail validation are
// skipped and logged.
func WithHeader(name, value string) Option {
	return func(o *options) {
		o.headers = append(o.headers, header{name: name, value: value})
	}
}

// WithContentType overrides the Content-Type of the body.
// The default is ContentTypeJSON.
func WithContentType(contentType string) Option {
	return func(o *options) {
		o.contentType = contentType
	}
}

// WithLogger sets the logger used for skipped headers and server errors.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConfig sets the config used to build the fallback error for errors
// that carry no status. The default is httperr.Default.
func WithConfig(cfg *httperr.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// Error writes err as an HTTP response. The status code comes from
// httperr.Code and the body is the JSON encoding of the error's serialized
// record. Errors without a status become an InternalServerError whose body
// does not include the original message.
//
// Error does nothing when err is nil.
func Error(w http.ResponseWriter, err error, opts ...Option) {
	if err == nil {
		return
	}

	o := options{contentType: ContentTypeJSON}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	se, ok := httperr.As(err)
	if !ok {
		se = httperr.InternalServerError.Make(httperr.WithConfig(o.cfg), httperr.WithCause(err))
	}
	code := se.HTTPCode()
	if code >= http.StatusInternalServerError {
		o.logger.Error("request failed", logging.ErrorAttr(err))
	}

	body, marshalErr := json.Marshal(se.Serialize())
	if marshalErr != nil {
		o.logger.Error("failed to encode error body", logging.ErrorAttr(marshalErr), logging.ErrorAttr(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h := w.Header()
	for _, hdr := range o.headers {
		if vErr := httpval.ValidateHeader(hdr.name, hdr.value); vErr != nil {
			o.logger.Warn("skipping invalid response header", slog.String("header", hdr.name), logging.ErrorAttr(vErr))
			continue
		}
		h.Set(hdr.name, hdr.value)
	}
	if code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable {
		if v, found := retryAfter(se); found && h.Get("Retry-After") == "" {
			h.Set("Retry-After", v)
		}
	}
	h.Set("Content-Type", o.contentType)
	h.Set("X-Content-Type-Options", "nosniff")

	w.WriteHeader(code)
	_, _ = w.Write(body)
}

// retryAfter reads a delay in seconds from details. Integers, whole-number
// floats, durations and strings are accepted.
func retryAfter(se httperr.StatusError) (string, bool) {
	var details any
	switch e := se.(type) {
	case *httperr.Error:
		details = e.Details()
	case *httperr.GeneralError:
		details = e.Details
	}
	m, ok := details.(map[string]any)
	if !ok {
		return "", false
	}

	switch v := m[RetryAfterKey].(type) {
	case int:
		if v >= 0 {
			return strconv.Itoa(v), true
		}
	case int64:
		if v >= 0 {
			return strconv.FormatInt(v, 10), true
		}
	case float64:
		if v >= 0 && v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), true
		}
	case time.Duration:
		if v >= 0 {
			return strconv.FormatInt(int64(math.Ceil(v.Seconds())), 10), true
		}
	case string:
		if httpval.ValidateHeaderValue(v) == nil {
			return v, true
		}
	}
	return "", false
}
