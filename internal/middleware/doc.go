// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: reuses an upstream X-Request-ID or generates a UUID, stores it
    in the context through the logging package and echoes it on the response
  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by chi route pattern

Both are plain func(http.Handler) http.Handler values and compose with chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Handlers then log through logging.Ctx(r.Context()) to get the request_id
field attached automatically.
*/
package middleware
