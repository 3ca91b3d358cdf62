package game

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gonewx/bobmelting/pkg/config"
)

// BatchResult is the outcome of one headless session.
type BatchResult struct {
	SessionID   string
	Seed        int64
	Survived    int // whole seconds
	FinalHealth int
	GameOver    bool
	Enemies     int
	Stage       int
}

// RunBatch plays one headless session per seed concurrently, without input,
// until Bob melts or maxSeconds pass. Results keep the order of seeds.
//
// Parameters:
//   - ctx: cancels the whole batch
//   - cfg: shared tuning, read-only
//   - level: shared level map, read-only
//   - seeds: one session per seed
//   - maxSeconds: per-session cap on simulated time
func RunBatch(ctx context.Context, cfg *config.GameConfig, level *config.LevelMap, seeds []int64, maxSeconds int) ([]BatchResult, error) {
	if maxSeconds <= 0 {
		return nil, fmt.Errorf("maxSeconds must be > 0, got %d", maxSeconds)
	}

	results := make([]BatchResult, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, seed := range seeds {
		g.Go(func() error {
			res, err := runHeadless(ctx, cfg, level, seed, maxSeconds)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runHeadless(ctx context.Context, cfg *config.GameConfig, level *config.LevelMap, seed int64, maxSeconds int) (BatchResult, error) {
	s, err := NewSession(cfg, level, WithSeed(seed))
	if err != nil {
		return BatchResult{}, err
	}
	defer s.Close()

	dt := cfg.Physics.TimeStep
	lastSecond := 0
	for !s.IsGameOver() && s.WorldTimer() < maxSeconds {
		s.Update(dt)
		if s.WorldTimer() != lastSecond {
			lastSecond = s.WorldTimer()
			if err := ctx.Err(); err != nil {
				return BatchResult{}, err
			}
		}
	}

	log.Printf("[Batch] seed=%d session=%s survived=%ds health=%d", seed, s.ID(), s.WorldTimer(), s.Health())
	return BatchResult{
		SessionID:   s.ID(),
		Seed:        seed,
		Survived:    s.WorldTimer(),
		FinalHealth: s.Health(),
		GameOver:    s.IsGameOver(),
		Enemies:     len(s.enemies),
		Stage:       s.Stage(),
	}, nil
}
