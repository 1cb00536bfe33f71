// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	_ "crypto/sha256" // registers sha256 for digest.Canonical
	"encoding/json"
	"fmt"

	"github.com/opencontainers/go-digest"
)

// Fingerprint returns a content digest of the raw inputs. Two errors with the
// same status code, message, details and args share a fingerprint whatever
// formatter is active, which makes it usable as a deduplication key in logs.
//
// Values that cannot be encoded as JSON are hashed by their %#v rendering.
func (e *Error) Fingerprint() digest.Digest {
	return digest.FromBytes(canonical(e.raw))
}

func canonical(raw RawInputs) []byte {
	args := raw.Args
	if args == nil {
		args = []any{}
	}
	// encoding/json sorts map keys, which keeps the encoding stable.
	b, err := json.Marshal(struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		Details    any    `json:"details"`
		Args       []any  `json:"args"`
	}{raw.StatusCode, raw.Message, raw.Details, args})
	if err != nil {
		return fmt.Appendf(nil, "%d\x00%s\x00%#v\x00%#v", raw.StatusCode, raw.Message, raw.Details, args)
	}
	return b
}
