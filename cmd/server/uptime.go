// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

package main

import (
	"context"
	"time"

	"github.com/tomtom215/toolrec/internal/metrics"
)

// uptimeService keeps the uptime gauge current.
type uptimeService struct {
	started  time.Time
	interval time.Duration
}

func newUptimeService(started time.Time) *uptimeService {
	return &uptimeService{started: started, interval: 15 * time.Second}
}

func (u *uptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()
	for {
		metrics.AppUptime.Set(time.Since(u.started).Seconds())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (u *uptimeService) String() string {
	return "uptime"
}
