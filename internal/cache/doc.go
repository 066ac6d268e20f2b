// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The API layer stores serialized recommendation payloads here, keyed by the
engine generation and the query. When the engine is rebuilt the generation
changes, so entries for the old engine are never hit again and age out
through normal LRU eviction or TTL.

# Usage

	c := cache.NewLRU[string, []byte](1024, 10*time.Minute)
	c.Add("3:price:42:5", payload)
	if body, ok := c.Get("3:price:42:5"); ok {
	    w.Write(body)
	}

# Thread Safety

All methods take an internal mutex. Get mutates recency order, so reads are
serialized too.
*/
package cache
