// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeneral(t *testing.T) {
	t.Parallel()

	err := NewGeneral(http.StatusForbidden, "", map[string]any{"scope": "admin"})

	assert.Equal(t, "Forbidden", err.Error())
	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.Equal(t, Fields{
		"statusCode": 403,
		"message":    "Forbidden",
		"details":    map[string]any{"scope": "admin"},
	}, err.Serialize())

	b, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"statusCode":403,"message":"Forbidden","details":{"scope":"admin"}}`, string(b))
}

func TestMake_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("expired")
	err := Make(http.StatusUnauthorized, WithConfig(NewConfig()), WithCause(cause))
	require.ErrorIs(t, err, cause)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	a := New(http.StatusNotFound, "", WithConfig(cfg), WithDetails(map[string]any{"b": 1, "a": 2}), WithArgs("x"))
	b := New(http.StatusNotFound, "", WithConfig(cfg), WithDetails(map[string]any{"a": 2, "b": 1}), WithArgs("x")).
		SetFormatter(ProblemDetails(""))

	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NoError(t, a.Fingerprint().Validate())

	other := New(http.StatusNotFound, "", WithConfig(cfg), WithArgs("y"))
	require.NotEqual(t, a.Fingerprint(), other.Fingerprint())

	// Unencodable values fall back to their Go syntax representation.
	ch := New(http.StatusNotFound, "", WithConfig(cfg), WithDetails(make(chan int)))
	require.NoError(t, ch.Fingerprint().Validate())
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := New(http.StatusBadGateway, "upstream", WithConfig(NewConfig()),
		WithDetails("reset"), WithArgs("x"), WithCause(errors.New("eof"))).
		SetFormatter(codeAndMessage)
	logger.Info("request failed", "error", err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, map[string]any{
		"status":  float64(502),
		"message": "upstream",
		"details": "reset",
		"args":    float64(1),
		"cause":   "eof",
	}, entry["error"])

	buf.Reset()
	logger.Info("request failed", "error", NewGeneral(http.StatusGone, "", nil))
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, map[string]any{"status": float64(410), "message": "Gone"}, entry["error"])
}
