package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-dash/internal/config"
)

// ErrSessionActive is returned by Start when a session has not been reset.
var ErrSessionActive = errors.New("game: session already started; call Reset first")

// Engine runs candy-dash sessions. It is not safe for concurrent use: the
// owner feeds it one event at a time.
type Engine struct {
	settings  config.Config
	presenter Presenter
	timers    Timers
	logger    *log.Logger
	rng       *rand.Rand
	now       func() time.Time

	board *Board
	sizes Sizes
	mode  ModeConfig
	phase Phase

	score          int
	runBest        int
	reason         EndReason
	dotsSinceEnemy int
	dotsEaten      int
	fruitEaten     int
	startedAt      time.Time
	endedAt        time.Time

	nextID  PieceID
	players store
	dots    store
	fruits  store
	enemies store
	borders store
	effects store
}

// Option configures an Engine.
type Option func(*Engine)

// WithPresenter sets the presenter that receives piece visuals.
func WithPresenter(p Presenter) Option {
	return func(e *Engine) { e.presenter = p }
}

// WithTimers sets the timer facility used for fruit and game ticks.
func WithTimers(t Timers) Option {
	return func(e *Engine) { e.timers = t }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithSeed makes placement deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithClock replaces time.Now for session timing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine in the Selecting phase.
func New(settings config.Config, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		phase:    PhaseSelecting,
		now:      time.Now,
		players:  newStore(),
		dots:     newStore(),
		fruits:   newStore(),
		enemies:  newStore(),
		borders:  newStore(),
		effects:  newStore(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.presenter == nil {
		e.presenter = &nopPresenter{}
	}
	if e.timers == nil {
		e.timers = nopTimers{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// Start lays out a new board of the given size and begins a session.
// On error the engine stays in Selecting with nothing placed.
func (e *Engine) Start(mode Mode, diff config.Difficulty, width, height float64) error {
	if e.phase != PhaseSelecting {
		return ErrSessionActive
	}
	mc, err := NewModeConfig(mode, diff, e.settings)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return &InvalidConfigurationError{Field: "board", Value: [2]float64{width, height}, Reason: "dimensions must be positive"}
	}

	e.mode = mc
	e.board = NewBoard(width, height, e.rng, e.settings.Board.PlacementAttempts, e.settings.Board.MarginFactor)
	e.sizes = ComputeSizes(width, height, e.settings.Board)
	e.score = 0
	e.reason = EndNone
	e.dotsSinceEnemy = 0
	e.dotsEaten = 0
	e.fruitEaten = 0

	if err := e.layout(); err != nil {
		e.clearAll()
		e.logger.Error("layout failed", "mode", mode, "err", err)
		return err
	}

	e.phase = PhaseRunning
	e.startedAt = e.now()
	e.endedAt = time.Time{}

	if mc.Fruit {
		e.timers.StartFruit(mc.FruitInterval)
	}
	if mc.GameTimer {
		e.timers.StartGame(mc.GameDuration)
	}

	e.logger.Info("session started",
		"mode", mc.Mode, "difficulty", mc.Difficulty,
		"board", [2]float64{width, height},
		"dots", e.dots.len(), "enemies", e.enemies.len(), "fruit", e.fruits.len())
	return nil
}

// layout places borders, the player, dots, enemies and fruit.
func (e *Engine) layout() error {
	for _, r := range e.board.BorderSpots(e.sizes.Border) {
		e.create(&e.borders, KindBorder, r.X, r.Y, r.W)
	}

	if _, err := e.spawn(&e.players, KindPlayer, e.sizes.Player, nil); err != nil {
		return err
	}

	fixed := append(e.borders.snapshot(), e.players.snapshot()...)
	for i, n := 0, e.mode.DotCount; i < n; i++ {
		if _, err := e.spawn(&e.dots, KindDot, e.sizes.Target, concat(fixed, e.dots.snapshot())); err != nil {
			return err
		}
	}
	for i, n := 0, e.mode.EnemyCount; i < n; i++ {
		if _, err := e.spawn(&e.enemies, KindEnemy, e.sizes.Target, concat(fixed, e.enemies.snapshot())); err != nil {
			return err
		}
	}
	for i, n := 0, e.mode.FruitCount; i < n; i++ {
		if _, err := e.spawn(&e.fruits, KindFruit, e.sizes.Fruit, concat(fixed, e.fruits.snapshot())); err != nil {
			return err
		}
	}
	return nil
}

// Handle resolves one event. Events that do not apply in the current phase
// or mode are ignored. A returned error is a placement failure during a
// respawn; the event is still fully resolved without the missing piece.
func (e *Engine) Handle(ev Event) error {
	if e.phase != PhaseRunning {
		return nil
	}
	switch ev := ev.(type) {
	case MoveEvent:
		return e.handleMove(ev.Dir)
	case FruitTick:
		return e.handleFruitTick()
	case GameTick:
		e.handleGameTick()
	}
	return nil
}

// Reset stops the timers, removes every piece and returns to Selecting.
// The run best survives.
func (e *Engine) Reset() {
	e.timers.Stop()
	e.clearAll()
	e.score = 0
	e.reason = EndNone
	e.dotsSinceEnemy = 0
	e.dotsEaten = 0
	e.fruitEaten = 0
	e.mode = ModeConfig{}
	e.phase = PhaseSelecting
}

// Result reports the ended session. ok is false unless the phase is Ended.
func (e *Engine) Result() (RunResult, bool) {
	if e.phase != PhaseEnded {
		return RunResult{}, false
	}
	return RunResult{
		Mode:       e.mode.Mode,
		Difficulty: e.mode.Difficulty,
		Score:      e.score,
		RunBest:    e.runBest,
		Reason:     e.reason,
		DotsEaten:  e.dotsEaten,
		FruitEaten: e.fruitEaten,
		Duration:   e.endedAt.Sub(e.startedAt),
		EndedAt:    e.endedAt,
	}, true
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current session score.
func (e *Engine) Score() int { return e.score }

// RunBest returns the best score of any session on this engine.
func (e *Engine) RunBest() int { return e.runBest }

// Config returns the parameters of the current session.
func (e *Engine) Config() ModeConfig { return e.mode }

// Sizes returns the piece sizes of the current board.
func (e *Engine) Sizes() Sizes { return e.sizes }

// Board returns the current board, or nil before the first Start.
func (e *Engine) Board() *Board { return e.board }

// Player returns a copy of the player piece.
func (e *Engine) Player() (Piece, bool) {
	p := e.players.first()
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Remaining returns the time left on the Level 3 clock.
func (e *Engine) Remaining() time.Duration {
	if !e.mode.GameTimer || e.startedAt.IsZero() {
		return 0
	}
	end := e.now()
	if e.phase == PhaseEnded {
		end = e.endedAt
	}
	return max(0, e.mode.GameDuration-end.Sub(e.startedAt))
}

// Pieces returns copies of every live piece of the given kind in creation order.
func (e *Engine) Pieces(kind Kind) []Piece {
	if s := e.storeFor(kind); s != nil {
		return s.snapshot()
	}
	return nil
}

func (e *Engine) storeFor(kind Kind) *store {
	switch kind {
	case KindPlayer:
		return &e.players
	case KindDot:
		return &e.dots
	case KindFruit:
		return &e.fruits
	case KindEnemy:
		return &e.enemies
	case KindBorder:
		return &e.borders
	case KindEffect:
		return &e.effects
	}
	return nil
}

// end moves to Ended and detaches the timers before any piece is touched.
func (e *Engine) end(reason EndReason) {
	e.timers.Stop()
	e.phase = PhaseEnded
	e.reason = reason
	e.endedAt = e.now()
	e.ratchet()
	e.logger.Info("session ended",
		"mode", e.mode.Mode, "reason", reason, "score", e.score,
		"dots", e.dotsEaten, "fruit", e.fruitEaten,
		"duration", e.endedAt.Sub(e.startedAt).Round(time.Millisecond))
}

func (e *Engine) ratchet() {
	if e.score > e.runBest {
		e.runBest = e.score
	}
}

func (e *Engine) clearAll() {
	for _, s := range []*store{&e.players, &e.dots, &e.fruits, &e.enemies, &e.borders, &e.effects} {
		e.clear(s)
	}
}

func concat(sets ...[]Piece) []Piece {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	out := make([]Piece, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
