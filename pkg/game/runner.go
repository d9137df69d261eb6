package game

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/blocky/pkg/cache"
	"github.com/matzehuels/blocky/pkg/observability"
)

// Runner plays batches of games with caching.
//
// The Runner is stateless except for the cache and logger, so several
// goroutines can share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Simulate returns the report for cfg, from the cache when a batch with the
// same fingerprint was played before. The boolean reports a cache hit.
// onResult is called for every freshly played game; it is never called
// concurrently.
func (r *Runner) Simulate(ctx context.Context, cfg Config, onResult func(Result)) (*Report, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	hooks := observability.Cache()
	key := r.Keyer.ReportKey(cfg.canonical())

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var report Report
		if err := json.Unmarshal(data, &report); err == nil {
			hooks.OnCacheHit(ctx, "report")
			r.Logger.Debug("report cache hit", "fingerprint", report.Fingerprint)
			return &report, true, nil
		}
	}
	hooks.OnCacheMiss(ctx, "report")

	results, err := r.RunBatch(ctx, cfg, onResult)
	if err != nil {
		return nil, false, err
	}
	report := NewReport(cfg.Fingerprint(), results)

	if data, err := json.Marshal(report); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLReport); err != nil {
			r.Logger.Warn("could not cache report", "err", err)
		} else {
			hooks.OnCacheSet(ctx, "report", len(data))
		}
	}
	return report, false, nil
}

// RunBatch plays cfg.Games games, at most cfg.Parallel at a time, and
// returns their results in game order. The first failing game cancels the
// rest.
func (r *Runner) RunBatch(ctx context.Context, cfg Config, onResult func(Result)) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fingerprint := cfg.Fingerprint()
	start := time.Now()
	r.Logger.Info("simulating", "games", cfg.Games, "parallel", cfg.Parallel, "turns", cfg.Turns)

	results := make([]Result, cfg.Games)
	var mu sync.Mutex

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(cfg.Parallel)
	for i := range cfg.Games {
		grp.Go(func() error {
			seed := cfg.Seed + uint64(i)
			g, err := New(GameID(fingerprint, i), cfg, seed)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			res, err := g.Play(ctx)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			results[i] = res
			r.Logger.Debug("game finished",
				"game", res.ID,
				"seed", seed,
				"winners", res.Winners(),
				"duration", res.Duration)

			if onResult != nil {
				mu.Lock()
				onResult(res)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("simulated games", "games", cfg.Games, "duration", time.Since(start))
	return results, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
