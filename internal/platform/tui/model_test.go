package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
	"github.com/vovakirdan/candy-dash/internal/results"
)

func newTestModel(t *testing.T, allowChange bool) Model {
	t.Helper()
	return NewModel(Options{
		Settings:    config.Default(),
		Runtime:     core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42},
		AllowChange: allowChange,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func startMode(t *testing.T, m Model, mode game.Mode) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.start(mode)
	m = next.(Model)
	if m.view != viewPlaying {
		t.Fatalf("start(%s) left view %v, err = %v", mode, m.view, m.err)
	}
	return m, cmd
}

func countSprites(m Model, kind game.Kind) int {
	n := 0
	for _, p := range m.sprites.Sprites() {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestModelMenuToPractice(t *testing.T) {
	m := newTestModel(t, false)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewDifficulty || m.pending != game.ModePractice {
		t.Fatalf("after selecting Practice: view = %v, pending = %q", m.view, m.pending)
	}
	if len(m.diffChoices) != len(config.Difficulties) {
		t.Errorf("first pick offers %d difficulties, expected %d", len(m.diffChoices), len(config.Difficulties))
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewPlaying {
		t.Fatalf("view = %v, expected playing (err = %v)", m.view, m.err)
	}
	if m.engine.Phase() != game.PhaseRunning {
		t.Fatalf("engine phase = %v", m.engine.Phase())
	}
	if got := countSprites(m, game.KindDot); got != config.Default().Pieces.DotCount {
		t.Errorf("dot sprites = %d, expected %d", got, config.Default().Pieces.DotCount)
	}
	if got := countSprites(m, game.KindPlayer); got != 1 {
		t.Errorf("player sprites = %d, expected 1", got)
	}
	if !strings.Contains(m.View(), "Candies left") {
		t.Error("Practice HUD should count the candies left")
	}
}

func TestModelMoveUpdatesPlayerSprite(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = startMode(t, m, game.ModePractice)

	before, _ := m.engine.Player()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	after, _ := m.engine.Player()

	if after.X <= before.X && m.engine.Phase() == game.PhaseRunning {
		t.Errorf("player did not move right: %v -> %v", before.X, after.X)
	}
	for _, p := range m.sprites.Sprites() {
		if p.Kind == game.KindPlayer && p.X != after.X {
			t.Errorf("player sprite X = %v, engine X = %v", p.X, after.X)
		}
	}
}

func TestModelBackDuringPlayResets(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = startMode(t, m, game.ModeLevel2)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu", m.view)
	}
	if m.engine.Phase() != game.PhaseSelecting {
		t.Errorf("engine phase = %v, expected selecting", m.engine.Phase())
	}
	if m.sprites.Len() != 0 {
		t.Errorf("%d sprites left after reset", m.sprites.Len())
	}
}

func TestModelDropsStaleFruitTick(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = startMode(t, m, game.ModeLevel2)
	stale := m.timers.gen

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = startMode(t, m, game.ModeLevel2)

	if _, cmd := send(t, m, fruitTickMsg{gen: stale}); cmd != nil {
		t.Error("a tick from the stopped session should be dropped")
	}

	fruitBefore := m.engine.Pieces(game.KindFruit)
	m, cmd := send(t, m, fruitTickMsg{gen: m.timers.gen})
	if cmd == nil {
		t.Error("a live fruit tick should re-arm the fruit timer")
	}
	fruitAfter := m.engine.Pieces(game.KindFruit)
	if len(fruitAfter) != 1 {
		t.Fatalf("fruit after tick = %d, expected 1", len(fruitAfter))
	}
	if len(fruitBefore) > 0 && fruitAfter[0].ID == fruitBefore[0].ID {
		t.Error("fruit tick should replace the fruit")
	}
}

func TestModelClockRefreshSingleLoop(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = startMode(t, m, game.ModeLevel3)
	stale := m.timers.gen

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = startMode(t, m, game.ModeLevel3)

	if _, cmd := send(t, m, clockMsg{gen: stale}); cmd != nil {
		t.Error("a clock refresh from the restarted session should stop its loop")
	}
	if _, cmd := send(t, m, clockMsg{gen: m.timers.gen}); cmd == nil {
		t.Error("the live session should keep refreshing its clock")
	}

	m, _ = send(t, m, gameTickMsg{gen: m.timers.gen})
	if _, cmd := send(t, m, clockMsg{gen: m.timers.gen}); cmd != nil {
		t.Error("the clock should stop once the session ended")
	}
}

func TestModelGameTickSettlesAndOffersChoices(t *testing.T) {
	m := newTestModel(t, false)
	m, _ = startMode(t, m, game.ModeLevel3)

	m, cmd := send(t, m, gameTickMsg{gen: m.timers.gen})
	if m.view != viewSettling {
		t.Fatalf("view = %v, expected settling", m.view)
	}
	if cmd == nil {
		t.Fatal("ending a session should return the settle command")
	}

	msg := cmd()
	settled, ok := msg.(settledMsg)
	if !ok {
		t.Fatalf("settle command returned %T", msg)
	}
	if settled.summary.Reason != game.EndTimeUp {
		t.Errorf("reason = %q, expected %q", settled.summary.Reason, game.EndTimeUp)
	}

	m, _ = send(t, m, settled)
	if m.view != viewSummary {
		t.Fatalf("view = %v, expected summary", m.view)
	}
	if len(m.choices) != 2 || m.choices[0].Action != game.ActionReplay || m.choices[1].Action != game.ActionQuit {
		t.Errorf("Level 3 choices = %+v, expected replay and quit", m.choices)
	}
	if !strings.Contains(m.View(), "Time is up!") {
		t.Error("summary should show the end message")
	}
}

func TestModelSummaryAdvance(t *testing.T) {
	m := newTestModel(t, false)
	sum := results.Summary{RunResult: game.RunResult{Mode: game.ModeLevel1, Score: 9, RunBest: 9}, Best: 9, NewBest: true}

	m, _ = send(t, m, settledMsg{summary: sum})
	if m.best != 9 {
		t.Errorf("banner best = %d, expected 9", m.best)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewPlaying || m.engine.Config().Mode != game.ModeLevel2 {
		t.Fatalf("advance should start Level 2, view = %v mode = %q", m.view, m.engine.Config().Mode)
	}
}

func TestModelSummaryOffersDifficulty(t *testing.T) {
	m := newTestModel(t, true)
	m.difficulty = config.DifficultyMedium
	sum := results.Summary{RunResult: game.RunResult{Mode: game.ModeLevel1}}

	m, _ = send(t, m, settledMsg{summary: sum})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewDifficulty || m.pending != game.ModeLevel2 {
		t.Fatalf("view = %v pending = %q, expected difficulty offer for Level 2", m.view, m.pending)
	}
	if len(m.diffChoices) != 3 {
		t.Fatalf("medium re-offer should have stay/lower/raise, got %+v", m.diffChoices)
	}

	// Move to "Raise to Hard" and start.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.Config().Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", m.engine.Config().Difficulty)
	}
}

func TestModelInitLoadsBest(t *testing.T) {
	scores := &memoryScores{}
	if err := scores.SaveHighScore(context.Background(), 31); err != nil {
		t.Fatal(err)
	}
	m := NewModel(Options{Settings: config.Default(), Scores: scores, Runtime: core.DefaultConfig()})

	m, _ = send(t, m, m.Init()())
	if m.best != 31 {
		t.Errorf("best = %d, expected 31", m.best)
	}
	if !strings.Contains(m.View(), "Highest score mark: 31") {
		t.Error("menu banner should show the persisted best")
	}
}

func TestModelStartFailureStaysInMenu(t *testing.T) {
	m := newTestModel(t, false)
	m.height = hudRows // no rows left for the board

	next, _ := m.start(game.ModeLevel1)
	m = next.(Model)
	if m.view != viewMenu || m.err == nil {
		t.Errorf("view = %v err = %v, expected menu with an error", m.view, m.err)
	}
	if m.engine.Phase() != game.PhaseSelecting {
		t.Errorf("engine phase = %v, expected selecting", m.engine.Phase())
	}
}
