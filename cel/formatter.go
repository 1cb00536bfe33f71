// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"sync"

	"github.com/stacklok/kithttp/httperr"
)

var defaultEngine = sync.OnceValue(func() *Engine { return NewEngine() })

// NewFormatter compiles expr with the default engine and returns it as a
// formatter. Compilation errors are returned here; evaluation errors surface
// as a panic carrying an error that wraps ErrEvaluation or ErrInvalidResult,
// since formatters have no error return.
//
//	f, err := cel.NewFormatter(`{"code": statusCode, "msg": message}`)
func NewFormatter(expr string) (httperr.Formatter, error) {
	return defaultEngine().Formatter(expr)
}

// Formatter compiles expr and returns it as a formatter. See NewFormatter.
func (e *Engine) Formatter(expr string) (httperr.Formatter, error) {
	compiled, err := e.Compile(expr)
	if err != nil {
		return nil, err
	}
	return compiled.Formatter(), nil
}

// Formatter returns the compiled expression as a formatter.
func (ce *CompiledExpression) Formatter() httperr.Formatter {
	return func(statusCode int, message string, details any, args ...any) httperr.Fields {
		fields, err := ce.EvaluateFields(httperr.RawInputs{
			StatusCode: statusCode,
			Message:    message,
			Details:    details,
			Args:       args,
		})
		if err != nil {
			panic(err)
		}
		return fields
	}
}
