// Package results settles a finished session: it compares the run against
// the persisted best score, saves a new best and records the run.
package results

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/candy-dash/internal/game"
)

// DefaultTimeout bounds the persistence work of one settlement.
const DefaultTimeout = 5 * time.Second

// Summary is what the player sees when a session ends.
type Summary struct {
	game.RunResult
	PreviousBest int  // Persisted best before this run
	Best         int  // Persisted best after this run
	NewBest      bool // The run beat the persisted best and it was saved
}

// Settle loads the persisted best, saves the run best if it beats it and
// records the run in history. Practice runs never change the persisted best.
// Saving and recording run concurrently; history may be nil.
//
// A failed load is treated as a best of 0 by the store itself. The summary is
// always usable; a returned error only reports what could not be persisted.
func Settle(ctx context.Context, scores game.HighScoreStore, history game.HistoryRecorder, r game.RunResult) (Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	sum := Summary{RunResult: r}

	best, err := scores.LoadHighScore(ctx)
	if err != nil {
		return sum, fmt.Errorf("results: cannot load high score: %w", err)
	}
	sum.PreviousBest = best
	sum.Best = best
	sum.NewBest = r.Mode != game.ModePractice && r.RunBest > best

	var g errgroup.Group

	if sum.NewBest {
		g.Go(func() error {
			if err := scores.SaveHighScore(ctx, r.RunBest); err != nil {
				return fmt.Errorf("results: cannot save high score: %w", err)
			}
			return nil
		})
	}
	if history != nil {
		g.Go(func() error {
			if err := history.RecordRun(ctx, r); err != nil {
				return fmt.Errorf("results: cannot record run: %w", err)
			}
			return nil
		})
	}

	err = g.Wait()
	if sum.NewBest {
		sum.Best = r.RunBest
	}
	return sum, err
}

// Lines returns the summary text, one line per entry.
func (s Summary) Lines() []string {
	var lines []string
	if msg := s.Reason.Message(); msg != "" {
		lines = append(lines, msg)
	}

	switch {
	case s.Mode == game.ModePractice:
		lines = append(lines,
			"Practice complete. No score is recorded here; it counts from Level 1 on.",
			fmt.Sprintf("Highest score mark: %d", s.Best),
		)
	case s.NewBest:
		lines = append(lines,
			fmt.Sprintf("NEW HIGH SCORE! Your score was %d.", s.Score),
			fmt.Sprintf("The record now stands at %d (was %d).", s.Best, s.PreviousBest),
		)
	default:
		lines = append(lines,
			fmt.Sprintf("Game over! Score %d", s.Score),
			fmt.Sprintf("Best this run: %d", s.RunBest),
			fmt.Sprintf("Highest score mark: %d", s.Best),
		)
	}
	return lines
}
