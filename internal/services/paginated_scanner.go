package services

import (
	"context"
	"errors"
	"iter"
	"time"

	"tag-ledger/internal/repositories"

	"golang.org/x/time/rate"
)

const (
	DefaultPageSize  = 500
	DefaultPageDelay = 50 * time.Millisecond
)

type ScanConfig struct {
	PageSize  int
	PageDelay time.Duration
}

func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		PageSize:  DefaultPageSize,
		PageDelay: DefaultPageDelay,
	}
}

// PageFetcher reads one page starting after cursor. An empty next cursor ends the scan.
type PageFetcher[T any] func(ctx context.Context, cursor string, limit int) (items []T, next string, err error)

// Scan lazily walks every page returned by fetch, pausing PageDelay between pages.
// A missing table yields nothing. Any other error is yielded once and ends the sequence.
// The sequence is not restartable; calling Scan again reads from the beginning.
func Scan[T any](ctx context.Context, cfg ScanConfig, fetch PageFetcher[T]) iter.Seq2[T, error] {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(yield func(T, error) bool) {
		var zero T
		limiter := newPageLimiter(cfg.PageDelay)
		cursor := ""

		for {
			if err := limiter.Wait(ctx); err != nil {
				yield(zero, err)
				return
			}

			items, next, err := fetch(ctx, cursor, pageSize)
			if err != nil {
				if errors.Is(err, repositories.ErrTableNotFound) {
					return
				}
				yield(zero, err)
				return
			}

			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}

			if next == "" {
				return
			}
			cursor = next
		}
	}
}

func newPageLimiter(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}
