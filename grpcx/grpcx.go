// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package grpcx

import (
	"context"
	"encoding/json"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/stacklok/kithttp/httperr"
)

// StatusClientClosedRequest is the non-standard status used for canceled
// requests.
const StatusClientClosedRequest = 499

var httpToGRPC = map[int]codes.Code{
	http.StatusBadRequest:                   codes.InvalidArgument,
	http.StatusUnauthorized:                 codes.Unauthenticated,
	http.StatusForbidden:                    codes.PermissionDenied,
	http.StatusNotFound:                     codes.NotFound,
	http.StatusMethodNotAllowed:             codes.Unimplemented,
	http.StatusRequestTimeout:               codes.DeadlineExceeded,
	http.StatusConflict:                     codes.Aborted,
	http.StatusGone:                         codes.NotFound,
	http.StatusPreconditionFailed:           codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge:        codes.ResourceExhausted,
	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,
	http.StatusUnprocessableEntity:          codes.InvalidArgument,
	http.StatusPreconditionRequired:         codes.FailedPrecondition,
	http.StatusTooManyRequests:              codes.ResourceExhausted,
	StatusClientClosedRequest:               codes.Canceled,
	http.StatusInternalServerError:          codes.Internal,
	http.StatusNotImplemented:               codes.Unimplemented,
	http.StatusBadGateway:                   codes.Unavailable,
	http.StatusServiceUnavailable:           codes.Unavailable,
	http.StatusGatewayTimeout:               codes.DeadlineExceeded,
}

var grpcToHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           StatusClientClosedRequest,
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

// CodeFor maps an HTTP status code to a gRPC code. Unlisted client errors
// map to FailedPrecondition, unlisted server errors to Internal, 2xx to OK
// and anything else to Unknown.
func CodeFor(httpStatus int) codes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	switch {
	case httpStatus >= 200 && httpStatus < 300:
		return codes.OK
	case httpStatus >= 400 && httpStatus < 500:
		return codes.FailedPrecondition
	case httpStatus >= 500 && httpStatus < 600:
		return codes.Internal
	}
	return codes.Unknown
}

// HTTPFor maps a gRPC code to an HTTP status code.
func HTTPFor(c codes.Code) int {
	if s, ok := grpcToHTTP[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Status converts err to a gRPC status. Status errors keep their message and
// carry their serialized record as a structpb.Struct detail. Errors that
// already carry a gRPC status are returned as is; anything else becomes
// codes.Unknown. A nil err yields an OK status.
func Status(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	se, ok := httperr.As(err)
	if !ok {
		return status.Convert(err)
	}

	st := status.New(CodeFor(se.HTTPCode()), se.Error())
	record, recErr := toStruct(se.Serialize())
	if recErr != nil {
		return st
	}
	if with, detErr := st.WithDetails(record); detErr == nil {
		return with
	}
	return st
}

// Record returns the first structpb.Struct detail of st as a map.
func Record(st *status.Status) (map[string]any, bool) {
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s.AsMap(), true
		}
	}
	return nil, false
}

// FromStatus converts a gRPC status back into an *httperr.Error. The status
// code is read from an identity-shaped record detail when present, otherwise
// it is derived from the gRPC code. Identity records contribute their
// details; any other record becomes the details as a whole.
func FromStatus(st *status.Status, opts ...httperr.Option) *httperr.Error {
	code := HTTPFor(st.Code())
	var details any

	if record, ok := Record(st); ok {
		details = record
		if sc, isNum := record[httperr.FieldStatusCode].(float64); isNum {
			code = int(sc)
			details = record[httperr.FieldDetails]
		}
	}

	return httperr.New(code, st.Message(), append([]httperr.Option{
		httperr.WithDetails(details),
		httperr.WithCause(st.Err()),
	}, opts...)...)
}

// UnaryServerInterceptor returns an interceptor that converts status errors
// returned by handlers into gRPC status errors. Other errors pass through.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := httperr.As(err); !ok {
			return nil, err
		}
		return nil, Status(err).Err()
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		if _, ok := httperr.As(err); !ok {
			return err
		}
		return Status(err).Err()
	}
}

// toStruct goes through JSON so that any marshalable record value converts,
// not only the types structpb.NewStruct accepts.
func toStruct(f httperr.Fields) (*structpb.Struct, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := s.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return s, nil
}
