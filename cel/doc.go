// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cel builds httperr formatters from CEL expressions, so the shape of
error responses can be changed through configuration instead of code.

An expression sees the raw inputs of an error as variables:

	statusCode  int         the HTTP status code
	message     string      the error message
	details     dyn         the details value, null when absent
	args        list(dyn)   the extra args, in order
	title       string      the status description, e.g. "Not Found"

and must evaluate to a map, which becomes the error's record.

# Basic Usage

	f, err := cel.NewFormatter(`{"code": statusCode, "error": title, "msg": message}`)
	if err != nil {
	    // handle compilation error
	}
	httperr.ConfigureFormatter(f)

	httperr.NotFound.New().Fields()
	// {"code": 404, "error": "Not Found", "msg": "Not Found"}

Results follow JSON semantics: numbers become float64 and nested values become
map[string]any and []any.

# Expression Validation

Use Check to validate an expression without creating a compiled program. This is
useful for validating configuration at startup:

	err := cel.NewEngine().Check(`{"status": statusCode}`)

Expressions whose type is known not to be a map, such as `message`, are
rejected with ErrInvalidResult. Expressions of dynamic type, such as `details`,
are accepted and checked when evaluated.

# Error Handling

Compilation errors are returned as structured types with location information:

	_, err := cel.NewFormatter(`{"code": statusCode`)
	var parseErr *cel.ParseError
	if errors.As(err, &parseErr) {
	    fmt.Println(parseErr.Source) // the original expression
	    fmt.Println(parseErr.Errors) // line/column/message details
	}

Formatters cannot return errors. A formatter built by this package panics
with an error wrapping ErrEvaluation (runtime failure) or ErrInvalidResult
(non-map result), and the panic reaches the code that triggered formatting.

# DoS Protection

The engine includes configurable safeguards against denial-of-service:

	engine := cel.NewEngine().
	    WithMaxExpressionLength(5000). // reject overly long expressions
	    WithCostLimit(500000)          // limit runtime evaluation cost

# Concurrency

The Engine and CompiledExpression types are safe for concurrent use. A compiled
expression can be evaluated from multiple goroutines simultaneously.
*/
package cel
