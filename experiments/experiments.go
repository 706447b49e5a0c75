package experiments

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"

	"autobattle/config"
	"autobattle/engine"
	"autobattle/experiments/metrics"
	"autobattle/game"
	"autobattle/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SeriesOptions configure a batch of independent matches.
type SeriesOptions struct {
	Games   int // defaults to a best of five
	Workers int // matches played concurrently, defaults to 1
	// Config applies to every match. A pinned seed makes the series reproducible:
	// match i then uses seed+i.
	Config game.Config
}

// MatchResult is one finished match of a series.
type MatchResult struct {
	Index  int // 1-based
	Metric metrics.MatchMetric
}

func (r MatchResult) String() string {
	return fmt.Sprintf("Match %d: %s (%d turns, seed %d)", r.Index, label(r.Metric.Winner), r.Metric.Turns, r.Metric.Seed)
}

// SeriesResult aggregates a series. Percentages are rounded to the nearest integer.
type SeriesResult struct {
	ID      uuid.UUID
	Config  game.Config
	Matches []MatchResult
	Red     int
	Blue    int
	Draws   int
	RedPct  int
	BluePct int
	DrawPct int
}

func (r SeriesResult) String() string {
	return fmt.Sprintf("Series total: R:%d B:%d D:%d | R=%d%% B=%d%%", r.Red, r.Blue, r.Draws, r.RedPct, r.BluePct)
}

// RunSeries plays the matches silently and reduces them to win/draw counts. Seeds are
// assigned before any match starts, so results do not depend on the number of workers.
func RunSeries(opts SeriesOptions) SeriesResult {
	games := opts.Games
	if games < 1 {
		games = meta.SERIES_GAMES
	}
	workers := min(max(opts.Workers, 1), games)
	cfg := opts.Config.Normalize()

	seeds := make([]uint32, games)
	for i := range seeds {
		if cfg.Seed != nil {
			seeds[i] = *cfg.Seed + uint32(i)
		} else {
			seeds[i] = game.FreshSeed()
		}
	}

	result := SeriesResult{
		ID:      uuid.New(),
		Config:  cfg,
		Matches: make([]MatchResult, games),
	}
	log.Info().Msgf("starting series %s of %d matches on %d workers...", result.ID, games, workers)

	task := make(chan int, games)
	for i := 0; i < games; i++ {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				e := engine.New(cfg.WithSeed(seeds[i]), engine.WithSilent(), engine.WithMetrics())
				_, metric := e.Run()
				result.Matches[i] = MatchResult{Index: i + 1, Metric: metric}
			}
		}()
	}
	wg.Wait()

	for _, match := range result.Matches {
		switch match.Metric.Winner {
		case game.RedWins:
			result.Red++
		case game.BlueWins:
			result.Blue++
		default:
			result.Draws++
		}
		log.Info().Msgf("series %s: %s", result.ID, match)
	}
	result.RedPct = percent(result.Red, games)
	result.BluePct = percent(result.Blue, games)
	result.DrawPct = percent(result.Draws, games)

	log.Info().Msgf("completed series %s: %s", result.ID, result)
	return result
}

// Export writes the config, per-match records and the summary under root/<series id>
// and returns that directory.
func Export(result SeriesResult, root string) (string, error) {
	series := result.ID.String()
	writer, err := metrics.NewWriter(root, series)
	if err != nil {
		return "", fmt.Errorf("failed to create series writer: %w", err)
	}

	if err := config.Save(filepath.Join(writer.Dir(), "config.yaml"), result.Config); err != nil {
		return "", fmt.Errorf("failed to store series config: %w", err)
	}
	log.Info().Msg("stored series config")

	records := make([]metrics.MatchRecord, len(result.Matches))
	for i, match := range result.Matches {
		records[i] = metrics.MatchRecord{Series: series, Index: match.Index, MatchMetric: match.Metric}
	}
	if err := writer.WriteMatchRecords(records); err != nil {
		return "", fmt.Errorf("failed to write match records: %w", err)
	}
	log.Info().Msg("stored match records")

	err = writer.WriteSummary(metrics.Summary{
		Series:  series,
		Games:   len(result.Matches),
		Red:     result.Red,
		Blue:    result.Blue,
		Draws:   result.Draws,
		RedPct:  result.RedPct,
		BluePct: result.BluePct,
		DrawPct: result.DrawPct,
	})
	if err != nil {
		return "", fmt.Errorf("failed to write series summary: %w", err)
	}
	log.Info().Msg("stored series summary")

	return writer.Dir(), nil
}

// percent rounds half up.
func percent(n, total int) int {
	return int(math.Floor(float64(n)*100/float64(total) + 0.5))
}

func label(o game.Outcome) string {
	switch o {
	case game.RedWins:
		return "Red"
	case game.BlueWins:
		return "Blue"
	}
	return "Draw"
}
