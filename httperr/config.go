// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import "sync"

// Config holds the default formatter applied to errors built against it and
// the flag that tells Make which error type to build.
//
// Applications normally configure one Config at startup and pass it with
// WithConfig, or configure Default. A Config is safe for concurrent use.
type Config struct {
	mu                sync.RWMutex
	formatter         Formatter
	preferFormattable bool
}

// Default is the process-wide Config used when no WithConfig option is given.
var Default = NewConfig()

// NewConfig returns an empty Config: no default formatter and Make builds
// GeneralError values.
func NewConfig() *Config {
	return &Config{}
}

// SetFormatter replaces the default formatter used by future constructions
// and by Serialize on errors without an instance formatter. It also marks
// the config as preferring formattable errors; that flag is only cleared by
// Reset.
func (c *Config) SetFormatter(f Formatter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatter = f
	c.preferFormattable = true
}

// Formatter returns the configured default formatter, or nil.
func (c *Config) Formatter() Formatter {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.formatter
}

// PreferFormattable reports whether Make should build *Error values.
func (c *Config) PreferFormattable() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preferFormattable
}

// Reset clears the default formatter and the prefer-formattable flag.
func (c *Config) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.formatter = nil
	c.preferFormattable = false
}

// ConfigureFormatter sets the default formatter on Default.
func ConfigureFormatter(f Formatter) {
	Default.SetFormatter(f)
}

// Reset restores Default to its initial state.
func Reset() {
	Default.Reset()
}
