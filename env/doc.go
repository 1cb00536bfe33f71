// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

# Testing

The Reader interface allows injecting a mock in tests to avoid relying on
real environment variables. A generated mock is available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

	result := myFunc(mock)

# Variables

ConfigPath (KITHTTP_CONFIG) points the config package at a settings file and
UnstructuredLogs (UNSTRUCTURED_LOGS) switches the logger package to console
output. Bool parses boolean variables the same way everywhere:

	if unstructured, ok := env.Bool(reader, env.UnstructuredLogs); ok && !unstructured {
	    // structured JSON logs
	}

# Design

Production code accepts an env.Reader, while tests substitute the generated
mock.
*/
package env
