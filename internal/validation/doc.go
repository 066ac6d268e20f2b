// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is created once with
// WithRequiredStructEnabled, a tag-name function that reports fields by their
// `query` (or `json`) tag, and a custom "budget" rule accepting Low, Medium and
// High case-insensitively.
//
// # Quick Start
//
//	type recommendQuery struct {
//	    TopN   int    `query:"top_n" validate:"min=1,max=50"`
//	    Budget string `query:"budget" validate:"required,budget"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    respondError(w, http.StatusBadRequest, verr.First().Error())
//	    return
//	}
//
// # Error Messages
//
// Validation failures are translated into messages such as
// "top_n must be at most 50" or "budget must be one of: Low, Medium, High".
package validation
