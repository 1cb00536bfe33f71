// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads kithttp settings from a YAML file and applies them to
an httperr.Config.

The file is named by the KITHTTP_CONFIG environment variable, or found as
kithttp/config.yaml in the XDG config directories:

	formatter:
	  kind: envelope
	  envelopeKey: error
	  inner:
	    kind: problem
	    problemTypeBase: https://errors.example.com/
	logging:
	  format: json
	  level: info

Settings are validated against an embedded JSON schema before they are
decoded. Formatter kinds are identity, problem, envelope, expression (a CEL
expression evaluated over statusCode, message, details, args and title) and
oauth.

# Usage

	settings, err := config.Load(&env.OSReader{})
	if err != nil {
		return err
	}
	if err := settings.Apply(httperr.Default); err != nil {
		return err
	}
	slog.SetDefault(settings.Logger())
*/
package config
