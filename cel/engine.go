// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stacklok/kithttp/httperr"
	"github.com/stacklok/kithttp/status"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a CEL expression.
	// This limit prevents DoS attacks via excessively long expressions.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the default runtime cost limit for CEL program evaluation.
	// This prevents DoS attacks via expensive operations in expressions.
	DefaultCostLimit = 1000000
)

// Variables available to every expression.
const (
	VarStatusCode = "statusCode"
	VarMessage    = "message"
	VarDetails    = "details"
	VarArgs       = "args"
	VarTitle      = "title"
)

// Engine compiles expressions that map the raw inputs of an error to a record.
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	envCache            *envCache
	factory             envFactory
	maxExpressionLength int
	costLimit           uint64
}

// envFactory is a function that creates a CEL environment.
type envFactory func() (*cel.Env, error)

// envCache holds a lazily-initialized CEL environment.
type envCache struct {
	once sync.Once
	env  *cel.Env
	err  error
}

// CompiledExpression is a checked formatter program ready for evaluation.
type CompiledExpression struct {
	source  string
	program cel.Program
}

// Source returns the original expression source string.
func (ce *CompiledExpression) Source() string {
	return ce.source
}

// NewEngine creates an engine declaring statusCode (int), message (string),
// details (dyn), args (list(dyn)) and title (string, the status description).
// Extra options, such as custom functions, are appended to the environment.
//
// The engine is created with default limits for expression length and evaluation cost
// to prevent denial-of-service attacks. Use WithMaxExpressionLength and WithCostLimit
// to customize these limits if needed.
func NewEngine(options ...cel.EnvOption) *Engine {
	opts := append([]cel.EnvOption{
		cel.Variable(VarStatusCode, cel.IntType),
		cel.Variable(VarMessage, cel.StringType),
		cel.Variable(VarDetails, cel.DynType),
		cel.Variable(VarArgs, cel.ListType(cel.DynType)),
		cel.Variable(VarTitle, cel.StringType),
	}, options...)

	return &Engine{
		envCache:            &envCache{},
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
		factory: func() (*cel.Env, error) {
			return cel.NewEnv(opts...)
		},
	}
}

// WithMaxExpressionLength sets the maximum allowed length for CEL expressions.
// Expressions exceeding this length will be rejected during compilation.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for CEL program evaluation.
// Programs that exceed this cost during evaluation will return an error.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

// getEnv returns the CEL environment, creating it lazily on first access.
func (e *Engine) getEnv() (*cel.Env, error) {
	e.envCache.once.Do(func() {
		e.envCache.env, e.envCache.err = e.factory()
	})
	return e.envCache.env, e.envCache.err
}

// check parses and type-checks expr and verifies it yields a map.
func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsedAst, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checkedAst, issues := env.Check(parsedAst)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	// dyn is accepted because details may hold a map at runtime.
	switch out := checkedAst.OutputType(); out.Kind() {
	case types.MapKind, types.DynKind:
	default:
		return nil, nil, fmt.Errorf("%w: expression %q yields %s, expected a map",
			ErrInvalidResult, expr, out)
	}

	return env, checkedAst, nil
}

// Compile parses and compiles a formatter expression, returning a
// CompiledExpression that can be evaluated against many errors.
//
// Returns an error if the expression exceeds the maximum length, a ParseError
// if the expression has syntax errors, a CheckError if the expression has
// type checking errors, or ErrInvalidResult if it cannot yield a map.
func (e *Engine) Compile(expr string) (*CompiledExpression, error) {
	env, checkedAst, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	// Compile to a program with cost limit to prevent DoS via expensive operations
	program, err := env.Program(checkedAst, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &CompiledExpression{
		source:  expr,
		program: program,
	}, nil
}

// Check verifies that a formatter expression is valid without creating a
// compiled program. This is useful for configuration validation.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

func activation(raw httperr.RawInputs) map[string]any {
	args := raw.Args
	if args == nil {
		args = []any{}
	}
	return map[string]any{
		VarStatusCode: raw.StatusCode,
		VarMessage:    raw.Message,
		VarDetails:    raw.Details,
		VarArgs:       args,
		VarTitle:      status.Text(raw.StatusCode),
	}
}

func (ce *CompiledExpression) eval(raw httperr.RawInputs) (ref.Val, error) {
	out, _, err := ce.program.Eval(activation(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}
	return out, nil
}

// Evaluate executes the compiled expression against raw and returns the
// result as a native Go value.
func (ce *CompiledExpression) Evaluate(raw httperr.RawInputs) (any, error) {
	out, err := ce.eval(raw)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// EvaluateFields executes the compiled expression against raw and returns the
// resulting map as a record. Values follow JSON semantics: numbers become
// float64 and nested maps become map[string]any.
func (ce *CompiledExpression) EvaluateFields(raw httperr.RawInputs) (httperr.Fields, error) {
	out, err := ce.eval(raw)
	if err != nil {
		return nil, err
	}

	native, err := out.ConvertToNative(types.JSONStructType)
	if err != nil {
		return nil, fmt.Errorf("%w: expected map, got %s: %s", ErrInvalidResult, out.Type().TypeName(), err)
	}
	st, ok := native.(*structpb.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: expected map, got %T", ErrInvalidResult, native)
	}
	return httperr.Fields(st.AsMap()), nil
}
