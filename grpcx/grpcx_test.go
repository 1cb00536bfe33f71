// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/stacklok/kithttp/httperr"
)

func TestCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		httpStatus int
		expected   codes.Code
	}{
		{http.StatusOK, codes.OK},
		{http.StatusNoContent, codes.OK},
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusConflict, codes.Aborted},
		{http.StatusTooManyRequests, codes.ResourceExhausted},
		{http.StatusTeapot, codes.FailedPrecondition},
		{http.StatusServiceUnavailable, codes.Unavailable},
		{http.StatusGatewayTimeout, codes.DeadlineExceeded},
		{http.StatusInsufficientStorage, codes.Internal},
		{302, codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.httpStatus), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CodeFor(tt.httpStatus))
		})
	}
}

func TestHTTPFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, HTTPFor(codes.NotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPFor(codes.Unauthenticated))
	assert.Equal(t, StatusClientClosedRequest, HTTPFor(codes.Canceled))
	assert.Equal(t, http.StatusInternalServerError, HTTPFor(codes.Code(99)))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("status error carries its record", func(t *testing.T) {
		t.Parallel()

		err := httperr.NotFound.New(
			httperr.WithConfig(httperr.NewConfig()),
			httperr.WithMessage("no such user"),
			httperr.WithDetails(map[string]any{"id": "42"}),
		)

		st := Status(fmt.Errorf("lookup: %w", err))
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Equal(t, "no such user", st.Message())

		record, ok := Record(st)
		require.True(t, ok)
		assert.Equal(t, map[string]any{
			"statusCode": float64(404),
			"message":    "no such user",
			"details":    map[string]any{"id": "42"},
		}, record)
	})

	t.Run("record follows the instance formatter", func(t *testing.T) {
		t.Parallel()

		err := httperr.TooManyRequests.New(
			httperr.WithConfig(httperr.NewConfig()),
			httperr.WithFormatter(httperr.ProblemDetails("")),
		)

		record, ok := Record(Status(err))
		require.True(t, ok)
		assert.Equal(t, "about:blank", record["type"])
		assert.Equal(t, float64(429), record["status"])
	})

	t.Run("grpc status passes through", func(t *testing.T) {
		t.Parallel()

		st := Status(status.Error(codes.AlreadyExists, "dup"))
		assert.Equal(t, codes.AlreadyExists, st.Code())
		assert.Equal(t, "dup", st.Message())
	})

	t.Run("plain error is unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, codes.Unknown, Status(errors.New("boom")).Code())
	})

	t.Run("nil is ok", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, codes.OK, Status(nil).Code())
	})
}

func TestFromStatus(t *testing.T) {
	t.Parallel()

	t.Run("round trip keeps the http status", func(t *testing.T) {
		t.Parallel()

		orig := httperr.Gone.New(
			httperr.WithConfig(httperr.NewConfig()),
			httperr.WithDetails(map[string]any{"since": "2026-01-01"}),
		)

		got := FromStatus(Status(orig), httperr.WithConfig(httperr.NewConfig()))
		assert.Equal(t, http.StatusGone, got.HTTPCode())
		assert.Equal(t, "Gone", got.Message())
		assert.Equal(t, map[string]any{"since": "2026-01-01"}, got.Details())
		assert.Equal(t, orig.Fingerprint(), got.Fingerprint())
	})

	t.Run("non-identity record becomes details", func(t *testing.T) {
		t.Parallel()

		orig := httperr.Conflict.New(
			httperr.WithConfig(httperr.NewConfig()),
			httperr.WithFormatter(func(int, string, any, ...any) httperr.Fields {
				return httperr.Fields{"reason": "version"}
			}),
		)

		got := FromStatus(Status(orig), httperr.WithConfig(httperr.NewConfig()))
		assert.Equal(t, http.StatusConflict, got.HTTPCode())
		assert.Equal(t, map[string]any{"reason": "version"}, got.Details())
	})

	t.Run("bare status", func(t *testing.T) {
		t.Parallel()

		got := FromStatus(status.New(codes.Unavailable, "draining"), httperr.WithConfig(httperr.NewConfig()))
		assert.Equal(t, http.StatusServiceUnavailable, got.HTTPCode())
		assert.Equal(t, "draining", got.Message())
		assert.Nil(t, got.Details())

		gotStatus, ok := status.FromError(errors.Unwrap(got))
		require.True(t, ok)
		assert.Equal(t, codes.Unavailable, gotStatus.Code())
	})
}

func TestUnaryServerInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

	tests := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"status error", httperr.Forbidden.New(httperr.WithConfig(httperr.NewConfig())), codes.PermissionDenied},
		{"grpc error", status.Error(codes.NotFound, "missing"), codes.NotFound},
		{"plain error", errors.New("boom"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := interceptor(t.Context(), "req", info, func(context.Context, any) (any, error) {
				return nil, tt.err
			})
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.Equal(t, tt.expected, status.Code(err))
		})
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		resp, err := interceptor(t.Context(), "req", info, func(context.Context, any) (any, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})
}

func TestStreamServerInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := StreamServerInterceptor()
	err := interceptor(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		return httperr.ServiceUnavailable.New(httperr.WithConfig(httperr.NewConfig()))
	})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	err = interceptor(nil, nil, &grpc.StreamServerInfo{}, func(any, grpc.ServerStream) error {
		return nil
	})
	assert.NoError(t, err)
}
