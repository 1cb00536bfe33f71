// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel_test

import (
	"errors"
	"net/http"
	"testing"

	celgo "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/kithttp/cel"
	"github.com/stacklok/kithttp/httperr"
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()
	require.NotNil(t, engine)

	expr, err := engine.Compile(`{"code": statusCode}`)
	require.NoError(t, err)
	require.NotNil(t, expr)
}

func TestEngine_Compile_ValidExpressions(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{
			name: "map literal",
			expr: `{"code": statusCode, "msg": message}`,
		},
		{
			name: "nested map",
			expr: `{"error": {"status": statusCode, "title": title}}`,
		},
		{
			name: "args list",
			expr: `{"list": args}`,
		},
		{
			name: "conditional field",
			expr: `statusCode >= 500 ? {"error": "internal"} : {"error": message}`,
		},
		{
			name: "dynamic details",
			expr: `details`,
		},
		{
			name: "details field access",
			expr: `{"id": details.id}`,
		},
		{
			name: "string functions",
			expr: `{"slow": message.startsWith("Too")}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)
			require.NotNil(t, expr)
			assert.Equal(t, tt.expr, expr.Source())
		})
	}
}

func TestEngine_Compile_ParseErrors(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{
			name: "unclosed brace",
			expr: `{"code": statusCode`,
		},
		{
			name: "invalid operator",
			expr: `{"code": statusCode === 404}`,
		},
		{
			name: "unclosed string",
			expr: `{"code: statusCode}`,
		},
		{
			name: "missing value",
			expr: `{"code": }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.Error(t, err)
			require.Nil(t, expr)

			var parseErr *cel.ParseError
			assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
			assert.ErrorIs(t, err, cel.ErrExpressionCheck)
		})
	}
}

func TestEngine_Compile_CheckErrors(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name string
		expr string
	}{
		{
			name: "undefined variable",
			expr: `{"x": undefined_var}`,
		},
		{
			name: "undefined function",
			expr: `{"x": undefined_func(message)}`,
		},
		{
			name: "mismatched types",
			expr: `{"x": statusCode + message}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			expr, err := engine.Compile(tt.expr)
			require.Error(t, err)
			require.Nil(t, expr)

			var checkErr *cel.CheckError
			assert.True(t, errors.As(err, &checkErr), "expected CheckError, got %T", err)
		})
	}
}

func TestEngine_Compile_NonMapResult(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	for _, expr := range []string{`message`, `statusCode`, `args`, `true`} {
		t.Run(expr, func(t *testing.T) {
			t.Parallel()

			compiled, err := engine.Compile(expr)
			require.ErrorIs(t, err, cel.ErrInvalidResult)
			require.Nil(t, compiled)
			require.ErrorIs(t, engine.Check(expr), cel.ErrInvalidResult)
		})
	}
}

func TestEngine_Limits(t *testing.T) {
	t.Parallel()

	t.Run("rejects long expressions", func(t *testing.T) {
		t.Parallel()

		engine := cel.NewEngine().WithMaxExpressionLength(10)
		_, err := engine.Compile(`{"code": statusCode}`)
		require.ErrorIs(t, err, cel.ErrExpressionCheck)
		require.ErrorIs(t, engine.Check(`{"code": statusCode}`), cel.ErrExpressionCheck)
	})

	t.Run("stops expensive evaluation", func(t *testing.T) {
		t.Parallel()

		engine := cel.NewEngine().WithCostLimit(1)
		expr, err := engine.Compile(`{"all": args.map(a, [a, a, a])}`)
		require.NoError(t, err)

		_, err = expr.EvaluateFields(httperr.RawInputs{
			StatusCode: http.StatusBadRequest,
			Args:       []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		})
		require.ErrorIs(t, err, cel.ErrEvaluation)
	})
}

func TestEngine_Check(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	t.Run("valid expression", func(t *testing.T) {
		t.Parallel()
		err := engine.Check(`{"code": statusCode}`)
		require.NoError(t, err)
	})

	t.Run("invalid expression", func(t *testing.T) {
		t.Parallel()
		err := engine.Check(`{"code": statusCode`)
		require.Error(t, err)

		var parseErr *cel.ParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}

func TestEngine_CustomOptions(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine(celgo.Constant("service", celgo.StringType, types.String("billing")))
	expr, err := engine.Compile(`{"service": service, "code": statusCode}`)
	require.NoError(t, err)

	fields, err := expr.EvaluateFields(httperr.RawInputs{StatusCode: http.StatusConflict})
	require.NoError(t, err)
	assert.Equal(t, httperr.Fields{"service": "billing", "code": float64(409)}, fields)
}

func TestCompiledExpression_EvaluateFields(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	tests := []struct {
		name     string
		expr     string
		raw      httperr.RawInputs
		expected httperr.Fields
	}{
		{
			name:     "code and message",
			expr:     `{"code": statusCode, "msg": message}`,
			raw:      httperr.RawInputs{StatusCode: 404, Message: "custom"},
			expected: httperr.Fields{"code": float64(404), "msg": "custom"},
		},
		{
			name:     "title from status table",
			expr:     `{"title": title}`,
			raw:      httperr.RawInputs{StatusCode: http.StatusTeapot},
			expected: httperr.Fields{"title": "I'm a teapot"},
		},
		{
			name:     "args in order",
			expr:     `{"list": args}`,
			raw:      httperr.RawInputs{StatusCode: 429, Args: []any{"x", "y"}},
			expected: httperr.Fields{"list": []any{"x", "y"}},
		},
		{
			name:     "nil args become empty list",
			expr:     `{"n": size(args)}`,
			raw:      httperr.RawInputs{StatusCode: 429},
			expected: httperr.Fields{"n": float64(0)},
		},
		{
			name:     "absent details are null",
			expr:     `{"details": details}`,
			raw:      httperr.RawInputs{StatusCode: 400},
			expected: httperr.Fields{"details": nil},
		},
		{
			name: "map details pass through",
			expr: `details`,
			raw: httperr.RawInputs{
				StatusCode: 400,
				Details:    map[string]any{"field": "email", "reasons": []any{"missing"}},
			},
			expected: httperr.Fields{"field": "email", "reasons": []any{"missing"}},
		},
		{
			name:     "details field access",
			expr:     `{"id": details.id, "status": statusCode}`,
			raw:      httperr.RawInputs{StatusCode: 404, Details: map[string]any{"id": "42"}},
			expected: httperr.Fields{"id": "42", "status": float64(404)},
		},
		{
			name:     "conditional shape",
			expr:     `statusCode >= 500 ? {"error": "internal"} : {"error": message}`,
			raw:      httperr.RawInputs{StatusCode: 503, Message: "db down"},
			expected: httperr.Fields{"error": "internal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			fields, err := expr.EvaluateFields(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields)
		})
	}
}

func TestCompiledExpression_EvaluateFields_Errors(t *testing.T) {
	t.Parallel()

	engine := cel.NewEngine()

	t.Run("dynamic non-map result", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`details`)
		require.NoError(t, err)

		_, err = expr.EvaluateFields(httperr.RawInputs{StatusCode: 400, Details: "text"})
		require.ErrorIs(t, err, cel.ErrInvalidResult)
	})

	t.Run("runtime failure wraps ErrEvaluation", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`{"first": args[3]}`)
		require.NoError(t, err)

		_, err = expr.EvaluateFields(httperr.RawInputs{StatusCode: 400, Args: []any{"only"}})
		require.ErrorIs(t, err, cel.ErrEvaluation)
	})

	t.Run("missing details key", func(t *testing.T) {
		t.Parallel()

		expr, err := engine.Compile(`{"id": details.id}`)
		require.NoError(t, err)

		_, err = expr.EvaluateFields(httperr.RawInputs{StatusCode: 404, Details: map[string]any{}})
		require.ErrorIs(t, err, cel.ErrEvaluation)
	})
}

func TestCompiledExpression_Evaluate(t *testing.T) {
	t.Parallel()

	expr, err := cel.NewEngine().Compile(`{"code": statusCode}`)
	require.NoError(t, err)

	out, err := expr.Evaluate(httperr.RawInputs{StatusCode: 410})
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestParseError_Details(t *testing.T) {
	t.Parallel()

	_, err := cel.NewEngine().Compile(`{"code": statusCode`)
	require.Error(t, err)

	var parseErr *cel.ParseError
	require.True(t, errors.As(err, &parseErr))

	assert.Contains(t, parseErr.Error(), "parse")
	assert.Contains(t, parseErr.Source, `{"code": statusCode`)
	assert.NotEmpty(t, parseErr.Errors)
	assert.Contains(t, parseErr.AsJSON(), `"source"`)
}

func TestCheckError_Details(t *testing.T) {
	t.Parallel()

	_, err := cel.NewEngine().Compile(`{"x": undefined_var}`)
	require.Error(t, err)

	var checkErr *cel.CheckError
	require.True(t, errors.As(err, &checkErr))

	assert.Contains(t, checkErr.Error(), "check")
	assert.Contains(t, checkErr.Source, "undefined_var")
	assert.NotEmpty(t, checkErr.Errors)
	assert.Positive(t, checkErr.Errors[0].Line)
}

func TestEngine_Concurrency(t *testing.T) {
	t.Parallel()

	expr, err := cel.NewEngine().Compile(`{"code": statusCode, "n": size(args)}`)
	require.NoError(t, err)

	const numGoroutines = 100
	results := make(chan httperr.Fields, numGoroutines)
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			fields, err := expr.EvaluateFields(httperr.RawInputs{
				StatusCode: 400 + i%100,
				Args:       make([]any, i%3),
			})
			if err != nil {
				errs <- err
				return
			}
			results <- fields
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		select {
		case err := <-errs:
			t.Fatalf("unexpected error: %v", err)
		case fields := <-results:
			assert.Contains(t, fields, "code")
		}
	}
}
