// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/kithttp/cel"
	"github.com/stacklok/kithttp/env"
	"github.com/stacklok/kithttp/httperr"
	"github.com/stacklok/kithttp/logging"
	"github.com/stacklok/kithttp/oauth"
	"github.com/stacklok/kithttp/validation/field"
	httpval "github.com/stacklok/kithttp/validation/http"
)

// RelPath is the settings file location relative to the XDG config
// directories.
const RelPath = "kithttp/config.yaml"

// Kind selects a formatter.
type Kind string

// Formatter kinds.
const (
	KindIdentity   Kind = "identity"
	KindProblem    Kind = "problem"
	KindEnvelope   Kind = "envelope"
	KindExpression Kind = "expression"
	KindOAuth      Kind = "oauth"
)

// ErrUnknownKind is returned for a formatter kind that is not supported.
var ErrUnknownKind = errors.New("unknown formatter kind")

// FormatterSettings describes the default formatter.
type FormatterSettings struct {
	Kind            Kind               `yaml:"kind" json:"kind"`
	ProblemTypeBase string             `yaml:"problemTypeBase,omitempty" json:"problemTypeBase,omitempty"`
	EnvelopeKey     string             `yaml:"envelopeKey,omitempty" json:"envelopeKey,omitempty"`
	Expression      string             `yaml:"expression,omitempty" json:"expression,omitempty"`
	Inner           *FormatterSettings `yaml:"inner,omitempty" json:"inner,omitempty"`
}

// LoggingSettings configures the slog logger built by Settings.Logger.
type LoggingSettings struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
}

// Settings is the content of the settings file.
type Settings struct {
	Format  *FormatterSettings `yaml:"formatter,omitempty" json:"formatter,omitempty"`
	Logging LoggingSettings    `yaml:"logging,omitempty" json:"logging,omitempty"`

	// Path is the file the settings were read from, empty for defaults.
	Path string `yaml:"-" json:"-"`
}

// Load reads the settings file named by the KITHTTP_CONFIG variable, or
// the first kithttp/config.yaml found in the XDG config directories. When
// the variable is unset and no file exists, the zero Settings is returned.
// A file named by the variable must exist.
func Load(reader env.Reader) (*Settings, error) {
	path := reader.Getenv(env.ConfigPath)
	if path == "" {
		found, err := xdg.SearchConfigFile(RelPath)
		if err != nil {
			return &Settings{}, nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile reads and validates the settings file at path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator supplied
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("settings file %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes YAML settings, validates them against the settings schema
// and checks the values the schema cannot express.
func Parse(data []byte) (*Settings, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid settings YAML: %w", err)
	}
	if doc == nil {
		return &Settings{}, nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert settings to JSON: %w", err)
	}
	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}

	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the formatter settings beyond their shape: problem type
// bases must be valid URIs, envelope keys valid record keys and expressions
// must compile.
func (s *Settings) Validate() error {
	if s.Format == nil {
		return nil
	}
	_, err := s.Format.build()
	return err
}

// Formatter builds the configured formatter. It returns nil when no
// formatter is configured.
func (s *Settings) Formatter() (httperr.Formatter, error) {
	if s.Format == nil {
		return nil, nil
	}
	return s.Format.build()
}

// Apply sets the configured formatter on cfg. Settings without a formatter
// leave cfg untouched.
func (s *Settings) Apply(cfg *httperr.Config) error {
	f, err := s.Formatter()
	if err != nil {
		return err
	}
	if f != nil {
		cfg.SetFormatter(f)
	}
	return nil
}

// Logger builds a slog logger from the logging settings.
func (s *Settings) Logger(opts ...logging.Option) *slog.Logger {
	var base []logging.Option
	if s.Logging.Format == "text" {
		base = append(base, logging.WithFormat(logging.FormatText))
	}
	if s.Logging.Level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(s.Logging.Level)); err == nil {
			base = append(base, logging.WithLevel(lvl))
		}
	}
	return logging.New(append(base, opts...)...)
}

func (f *FormatterSettings) build() (httperr.Formatter, error) {
	switch f.Kind {
	case KindIdentity:
		return httperr.Identity, nil
	case KindProblem:
		if f.ProblemTypeBase != "" {
			if err := httpval.ValidateProblemTypeBase(f.ProblemTypeBase); err != nil {
				return nil, err
			}
		}
		return httperr.ProblemDetails(f.ProblemTypeBase), nil
	case KindEnvelope:
		if err := field.ValidateKey(f.EnvelopeKey); err != nil {
			return nil, fmt.Errorf("envelope: %w", err)
		}
		var inner httperr.Formatter
		if f.Inner != nil {
			var err error
			if inner, err = f.Inner.build(); err != nil {
				return nil, fmt.Errorf("envelope %q: %w", f.EnvelopeKey, err)
			}
		}
		return httperr.Envelope(f.EnvelopeKey, inner), nil
	case KindExpression:
		return cel.NewFormatter(f.Expression)
	case KindOAuth:
		return oauth.Formatter, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
}
