// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package api serves the recommendation engine over HTTP using the chi router.

# Endpoints

  - GET  /api/recommend     type=content|price|cf|personalized|budget
  - GET  /api/health        {"status","products_loaded","interactions_loaded"}
  - GET  /api/products      catalog browse with filters, sort and paging
  - POST /api/admin/reload  schedule an engine rebuild (202, 429 or 503)
  - GET  /metrics           Prometheus exposition

Every error response has the form {"error": "message"}. Successful
recommendation responses are JSON arrays of product rows and are never null.

# Validation order for /api/recommend

cf and personalized require user_id. budget requires a valid budget band
and takes an optional user_id. Every other type requires product_id first and
is then checked against content and price, so an unknown type without a
product_id reports the missing product_id. top_n (1 to 50) applies to every
type except content.

# Caching

Serialized results are cached in an LRU keyed by engine generation and query.
Rebuilding the engine bumps the generation, so results from an older engine
are never served.

# Middleware

Request ID, real IP, panic recovery and CORS apply globally. The /api group
adds per-IP rate limiting (go-chi/httprate) and Prometheus request metrics,
and /api/recommend runs under a request timeout.
*/
package api
