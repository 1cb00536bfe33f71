// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strconv"
)

// Environment variables read by kithttp.
const (
	// ConfigPath overrides the location of the settings file.
	ConfigPath = "KITHTTP_CONFIG"

	// UnstructuredLogs selects human-readable console logs when true.
	UnstructuredLogs = "UNSTRUCTURED_LOGS"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Bool parses the variable named by key with strconv.ParseBool. ok is false
// when the variable is unset, empty or not a boolean.
func Bool(r Reader, key string) (value, ok bool) {
	v, err := strconv.ParseBool(r.Getenv(key))
	if err != nil {
		return false, false
	}
	return v, true
}
