// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"errors"
	"maps"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/stacklok/kithttp/httperr"
)

// Keys used for status errors in structured logs.
const (
	KeyStatus      = "status"
	KeyError       = "error"
	KeyDetails     = "details"
	KeyFingerprint = "fingerprint"
	KeyCause       = "cause"
)

// ErrorFields renders err as zap fields. Status errors log their raw inputs,
// never their formatted record, so log shape does not depend on the active
// formatter. Other errors log as zap.Error.
func ErrorFields(err error) []zap.Field {
	se, ok := httperr.As(err)
	if !ok {
		return []zap.Field{zap.Error(err)}
	}

	fields := []zap.Field{
		zap.Int(KeyStatus, se.HTTPCode()),
		zap.String(KeyError, se.Error()),
	}
	if d := details(se); d != nil {
		fields = append(fields, zap.Any(KeyDetails, d))
	}
	if fe, isFormattable := se.(*httperr.Error); isFormattable {
		fields = append(fields, zap.Stringer(KeyFingerprint, fe.Fingerprint()))
	}
	if cause := errors.Unwrap(se); cause != nil {
		fields = append(fields, zap.NamedError(KeyCause, cause))
	}
	return fields
}

// LogrusFields renders err as logrus fields with the same keys as ErrorFields.
func LogrusFields(err error) logrus.Fields {
	se, ok := httperr.As(err)
	if !ok {
		return logrus.Fields{logrus.ErrorKey: err}
	}

	fields := logrus.Fields{
		KeyStatus: se.HTTPCode(),
		KeyError:  se.Error(),
	}
	if d := details(se); d != nil {
		fields[KeyDetails] = d
	}
	if fe, isFormattable := se.(*httperr.Error); isFormattable {
		fields[KeyFingerprint] = fe.Fingerprint().String()
	}
	if cause := errors.Unwrap(se); cause != nil {
		fields[KeyCause] = cause.Error()
	}
	return fields
}

func details(se httperr.StatusError) any {
	switch e := se.(type) {
	case *httperr.Error:
		return e.Details()
	case *httperr.GeneralError:
		return e.Details
	}
	return nil
}

// ErrorHook is a logrus hook that expands status errors attached with
// WithError into the fields of LogrusFields. Fields already set on the entry
// are kept.
type ErrorHook struct{}

// Levels implements logrus.Hook.
func (ErrorHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (ErrorHook) Fire(entry *logrus.Entry) error {
	err, ok := entry.Data[logrus.ErrorKey].(error)
	if !ok {
		return nil
	}
	if _, isStatus := httperr.As(err); !isStatus {
		return nil
	}

	fields := LogrusFields(err)
	delete(fields, KeyError)
	maps.DeleteFunc(fields, func(k string, _ any) bool {
		_, exists := entry.Data[k]
		return exists
	})
	maps.Copy(entry.Data, fields)
	return nil
}

// LogError logs err with ErrorFields. Server errors (5xx and non-status
// errors) log at error level, client errors at warn level.
func LogError(msg string, err error) {
	l := zap.L()
	if httperr.Code(err) >= 500 {
		l.Error(msg, ErrorFields(err)...)
		return
	}
	l.Warn(msg, ErrorFields(err)...)
}
