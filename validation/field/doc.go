// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package field provides validation functions for record keys.

Formatters produce records whose member names end up in JSON bodies, log
entries and gRPC details. Keys taken from configuration are checked here so
they stay portable across those encodings.

# Key Validation

	if err := field.ValidateKey("error"); err != nil {
		// Handle invalid key
	}

Valid keys must:
  - Be non-empty (not just whitespace)
  - Not contain null bytes
  - Not have leading or trailing whitespace
  - Start with a letter or underscore
  - Contain only letters, digits, underscores, dots and dashes

# Examples

Valid keys:

	"error"
	"problem_details"
	"x-error.v1"

Invalid keys:

	""          // empty
	" error"    // leading space
	"1error"    // leading digit
	"err or"    // inner space
*/
package field
