// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"encoding/json"
	"maps"
	"slices"
	"sync"

	"github.com/stacklok/kithttp/status"
)

// RawInputs is the snapshot of the values an Error was constructed with.
// It is the only source every formatter reads from.
type RawInputs struct {
	StatusCode int
	Message    string
	Details    any
	Args       []any
}

// Error is an HTTP status error whose visible shape is produced by a Formatter.
//
// The constructor arguments are captured once as RawInputs and never change.
// Every formatting pass (at construction, on SetFormatter and on Serialize)
// starts again from that snapshot, so swapping formatters never compounds.
type Error struct {
	raw   RawInputs
	cfg   *Config
	cause error

	mu        sync.RWMutex
	formatter Formatter
	fields    Fields
}

// Option configures an Error built by New, Make or a Variant.
type Option func(*options)

type options struct {
	message   string
	details   any
	args      []any
	formatter Formatter
	cfg       *Config
	cause     error
}

// WithMessage sets the human-readable message. An empty message selects the
// status description of the error's code.
func WithMessage(message string) Option {
	return func(o *options) {
		o.message = message
	}
}

// WithDetails sets the opaque details value passed to formatters.
func WithDetails(details any) Option {
	return func(o *options) {
		o.details = details
	}
}

// WithArgs appends extra values that are passed to formatters after details.
func WithArgs(args ...any) Option {
	return func(o *options) {
		o.args = append(o.args, args...)
	}
}

// WithFormatter sets an instance-level formatter at construction time.
// It takes precedence over the configured default formatter.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithConfig builds the error against cfg instead of Default.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithCause attaches an underlying error returned by Unwrap.
func WithCause(err error) Option {
	return func(o *options) {
		o.cause = err
	}
}

func collect(message string, opts []Option) options {
	o := options{message: message}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		o.cfg = Default
	}
	return o
}

// New creates an Error for statusCode. The status code is not validated.
// When message is empty the status description is used instead.
//
// The initial fields are resolved from the instance formatter given with
// WithFormatter, else the config's formatter, else the identity shape.
func New(statusCode int, message string, opts ...Option) *Error {
	return build(statusCode, collect(message, opts))
}

func build(statusCode int, o options) *Error {
	if o.message == "" {
		o.message = status.Text(statusCode)
	}

	e := &Error{
		raw: RawInputs{
			StatusCode: statusCode,
			Message:    o.message,
			Details:    o.details,
			Args:       slices.Clone(o.args),
		},
		cfg:       o.cfg,
		cause:     o.cause,
		formatter: o.formatter,
	}

	f := o.formatter
	if f == nil {
		f = o.cfg.Formatter()
	}
	e.fields = apply(f, e.raw)
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.raw.Message
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *Error) Unwrap() error {
	return e.cause
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int {
	return e.raw.StatusCode
}

// Message returns the message the error was constructed with.
func (e *Error) Message() string {
	return e.raw.Message
}

// Details returns the details value the error was constructed with.
func (e *Error) Details() any {
	return e.raw.Details
}

// Raw returns the construction snapshot. The Args slice is a copy.
func (e *Error) Raw() RawInputs {
	raw := e.raw
	raw.Args = slices.Clone(e.raw.Args)
	return raw
}

// SetFormatter installs f as this error's formatter and recomputes the
// visible fields from the raw inputs. A nil f removes the override.
// It returns e so it can be chained directly after construction:
//
//	err := httperr.NotFound.New().SetFormatter(myFormatter)
func (e *Error) SetFormatter(f Formatter) *Error {
	resolved := f
	if resolved == nil {
		resolved = e.cfg.Formatter()
	}
	fields := apply(resolved, e.raw)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.formatter = f
	e.fields = fields
	return e
}

// Fields returns a shallow copy of the fields resolved at construction or by
// the last SetFormatter call.
func (e *Error) Fields() Fields {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.fields)
}

// Get returns a single resolved field.
func (e *Error) Get(key string) (any, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.fields[key]
	return v, ok
}

// Serialize formats the raw inputs with the instance formatter, else the
// config's current formatter, else the identity shape. Unlike Fields it
// always reflects the formatter that is active right now.
func (e *Error) Serialize() Fields {
	e.mu.RLock()
	f := e.formatter
	e.mu.RUnlock()

	if f == nil {
		f = e.cfg.Formatter()
	}
	return apply(f, e.raw)
}

// MarshalJSON implements json.Marshaler using Serialize.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}
