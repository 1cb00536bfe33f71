// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxKeyLength is the longest accepted record key.
const MaxKeyLength = 128

var validKeyRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

// ValidateKey validates a record member name such as an envelope key.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return fmt.Errorf("record key cannot be empty or consist only of whitespace")
	}

	// Check for null bytes explicitly
	if strings.Contains(key, "\x00") {
		return fmt.Errorf("record key cannot contain null bytes")
	}

	if len(key) > MaxKeyLength {
		return fmt.Errorf("record key exceeds maximum length of %d bytes", MaxKeyLength)
	}

	// Check for leading/trailing whitespace
	if strings.TrimSpace(key) != key {
		return fmt.Errorf("record key cannot have leading or trailing whitespace: %q", key)
	}

	// Validate characters
	if !validKeyRegex.MatchString(key) {
		return fmt.Errorf("record key must start with a letter or underscore and contain only letters, digits, underscores, dots and dashes: %q", key)
	}

	return nil
}
