// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package grpcx maps status errors onto gRPC statuses.
//
// Status converts an error to a *status.Status whose code is derived from the
// HTTP status and whose details hold the error's serialized record as a
// google.protobuf.Struct. FromStatus performs the reverse conversion on the
// client side.
//
//	srv := grpc.NewServer(
//		grpc.UnaryInterceptor(grpcx.UnaryServerInterceptor()),
//		grpc.StreamInterceptor(grpcx.StreamServerInterceptor()),
//	)
//
// Handlers may then return httperr errors directly:
//
//	return nil, httperr.NotFound.New(httperr.WithMessage("no such user"))
package grpcx
