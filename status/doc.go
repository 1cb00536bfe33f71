// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package status is the status description table used by the kithttp error
types: it maps every enumerated HTTP error status code (400-511) to its
canonical human-readable phrase.

The table follows [net/http.StatusText] for registered codes and adds the
two non-standard codes the error family also enumerates:

  - 419 Insufficient Space on Resource
  - 420 Method Failure

# Usage

	msg := status.Text(http.StatusNotFound) // "Not Found"

	if phrase, ok := status.Lookup(419); ok {
		fmt.Println(phrase) // "Insufficient Space on Resource"
	}

	for _, code := range status.Codes() {
		// every enumerated code, ascending
	}
*/
package status
