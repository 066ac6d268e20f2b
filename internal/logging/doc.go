// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

// Package logging provides the zerolog-based global logger used across Toolrec.
//
// Call Init once from main after configuration has been loaded:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("products", n).Msg("Catalog loaded")
//
// Request-scoped logging carries the request ID set by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Recommendation failed")
//
// Components that take a zerolog.Logger by constructor get one from
// WithComponent. Libraries that speak log/slog (the suture supervisor) are
// bridged with NewSlogLogger.
//
// Always finish an event chain with Msg or Send, otherwise nothing is written.
package logging
