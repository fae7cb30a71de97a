package results

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/candy-dash/internal/game"
	"github.com/vovakirdan/candy-dash/internal/storage"
)

type memScores struct {
	mu      sync.Mutex
	best    int
	saves   []int
	saveErr error
}

func (m *memScores) LoadHighScore(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

func (m *memScores) SaveHighScore(_ context.Context, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = n
	m.saves = append(m.saves, n)
	return nil
}

type memHistory struct {
	mu   sync.Mutex
	runs []game.RunResult
}

func (m *memHistory) RecordRun(_ context.Context, r game.RunResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, r)
	return nil
}

func TestSettleNewBest(t *testing.T) {
	scores := &memScores{best: 10}
	history := &memHistory{}
	r := game.RunResult{Mode: game.ModeLevel1, Score: 12, RunBest: 12, Reason: game.EndCaught}

	sum, err := Settle(context.Background(), scores, history, r)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !sum.NewBest || sum.Best != 12 || sum.PreviousBest != 10 {
		t.Errorf("summary = %+v", sum)
	}
	if len(scores.saves) != 1 || scores.saves[0] != 12 {
		t.Errorf("saves = %v, expected [12]", scores.saves)
	}
	if len(history.runs) != 1 {
		t.Errorf("history runs = %d, expected 1", len(history.runs))
	}
	if !strings.Contains(strings.Join(sum.Lines(), "\n"), "NEW HIGH SCORE") {
		t.Errorf("lines = %v", sum.Lines())
	}
}

func TestSettleNotBeaten(t *testing.T) {
	scores := &memScores{best: 50}
	r := game.RunResult{Mode: game.ModeLevel2, Score: 20, RunBest: 30, Reason: game.EndCaught}

	sum, err := Settle(context.Background(), scores, nil, r)
	if err != nil {
		t.Fatal(err)
	}
	if sum.NewBest || sum.Best != 50 {
		t.Errorf("summary = %+v", sum)
	}
	if len(scores.saves) != 0 {
		t.Errorf("nothing should be saved, got %v", scores.saves)
	}
	text := strings.Join(sum.Lines(), "\n")
	if !strings.Contains(text, "Score 20") || !strings.Contains(text, "Best this run: 30") {
		t.Errorf("lines = %v", sum.Lines())
	}
}

func TestSettleEqualIsNotBeaten(t *testing.T) {
	scores := &memScores{best: 30}
	r := game.RunResult{Mode: game.ModeLevel1, Score: 30, RunBest: 30}

	sum, _ := Settle(context.Background(), scores, nil, r)
	if sum.NewBest {
		t.Error("matching the record should not count as a new best")
	}
}

func TestSettlePracticeNeverSaves(t *testing.T) {
	scores := &memScores{best: 0}
	history := &memHistory{}
	r := game.RunResult{Mode: game.ModePractice, Score: 0, RunBest: 9, Reason: game.EndCleared}

	sum, err := Settle(context.Background(), scores, history, r)
	if err != nil {
		t.Fatal(err)
	}
	if sum.NewBest || len(scores.saves) != 0 {
		t.Errorf("practice changed the record: %+v saves=%v", sum, scores.saves)
	}
	if len(history.runs) != 1 {
		t.Error("practice runs are still recorded")
	}
	if !strings.Contains(strings.Join(sum.Lines(), "\n"), "Practice complete") {
		t.Errorf("lines = %v", sum.Lines())
	}
}

func TestSettleSaveError(t *testing.T) {
	boom := errors.New("disk full")
	scores := &memScores{best: 1, saveErr: boom}
	history := &memHistory{}
	r := game.RunResult{Mode: game.ModeLevel3, Score: 5, RunBest: 5, Reason: game.EndTimeUp}

	sum, err := Settle(context.Background(), scores, history, r)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped save error, got %v", err)
	}
	if sum.Score != 5 {
		t.Errorf("summary should still carry the run, got %+v", sum)
	}
	if len(history.runs) != 1 {
		t.Error("history should be recorded even when the save fails")
	}
}

func TestSettleWithRealStores(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	scores, err := storage.NewFileStore(filepath.Join(dir, "highestscore.txt"), nil)
	if err != nil {
		t.Fatal(err)
	}
	history, err := storage.Open(filepath.Join(dir, "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer history.Close()

	r := game.RunResult{Mode: game.ModeLevel1, Difficulty: "medium", Score: 7, RunBest: 7, Reason: game.EndCaught}
	sum, err := Settle(ctx, scores, history, r)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !sum.NewBest {
		t.Error("first run should set a new best")
	}

	best, _ := scores.LoadHighScore(ctx)
	if best != 7 {
		t.Errorf("persisted best = %d, expected 7", best)
	}
	runs, err := history.TopRuns(ctx, "level1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Score != 7 {
		t.Errorf("history = %+v", runs)
	}
}
