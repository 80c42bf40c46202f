// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs indexed jobs on a bounded pool while keeping the
// observable result of a plain sequential loop.
package workers

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// RunOrdered calls fn for every index in [0, n) with at most limit calls in
// flight, starting them in ascending index order.
//
// After the first failure no further index is started; calls already running
// finish with the caller's ctx. The returned error is the one of the lowest
// failing index, which is exactly what a sequential loop stopping at its
// first error would return. limit <= 1 runs strictly sequentially on the
// calling goroutine.
func RunOrdered(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	if limit <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		g      errgroup.Group
		failed atomic.Bool
		errs   = make([]error, n)
	)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		if failed.Load() {
			break
		}
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}

		g.Go(func() error {
			if err := fn(ctx, i); err != nil {
				errs[i] = err
				failed.Store(true)
			}
			return nil
		})
	}
	// Errors live in errs by index so the lowest one wins; Wait only joins.
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
