package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
	"github.com/vovakirdan/candy-dash/internal/results"
	"github.com/vovakirdan/candy-dash/internal/storage"
)

// hudRows are the terminal rows not given to the board: HUD and help line.
const hudRows = 2

// screenView is the screen the model is showing.
type screenView int

const (
	viewMenu screenView = iota
	viewDifficulty
	viewPlaying
	viewSettling
	viewSummary
	viewScores
)

// Options configures a Model.
type Options struct {
	Settings    config.Config
	Scores      game.HighScoreStore // Persisted best; in-memory when nil
	History     *storage.Store      // Run history; optional
	Logger      *log.Logger
	Runtime     core.RuntimeConfig // Terminal size and seed; seed 0 picks one from the clock
	Mode        game.Mode          // Level highlighted when the menu opens
	Difficulty  config.Difficulty
	AllowChange bool // Re-offer difficulty between levels
}

type bestLoadedMsg struct {
	best int
	err  error
}

type settledMsg struct {
	summary results.Summary
	err     error
}

// Model is the Bubble Tea model for a candy-dash session: mode menu,
// difficulty pick, play, settlement and the next-step choices.
type Model struct {
	opts    Options
	logger  *log.Logger
	engine  *game.Engine
	sprites *spriteTable
	timers  *teaTimers
	keys    KeyMap
	help    help.Model
	screen  *core.Screen

	width  int
	height int
	view   screenView
	list   menuList

	mode        game.Mode
	pending     game.Mode // Mode to start once a difficulty is picked
	difficulty  config.Difficulty
	diffChoices []game.DifficultyChoice
	choices     []game.Choice
	summary     results.Summary
	best        int // Persisted best, for the banner
	err         error

	scoreboard ScoreboardModel
	quitting   bool
}

// NewModel creates the model and its engine.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scores == nil {
		opts.Scores = &memoryScores{}
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Difficulty == "" {
		opts.Difficulty = opts.Settings.Difficulty.Default
	}
	if opts.Difficulty == "" {
		opts.Difficulty = config.DifficultyEasy
	}
	if !opts.Mode.Valid() {
		opts.Mode = game.ModePractice
	}

	sprites := newSpriteTable()
	timers := newTeaTimers()
	engine := game.New(opts.Settings,
		game.WithPresenter(sprites),
		game.WithTimers(timers),
		game.WithLogger(opts.Logger),
		game.WithSeed(opts.Runtime.Seed),
	)

	width, height := opts.Runtime.ScreenW, opts.Runtime.ScreenH
	h := help.New()
	h.Width = width

	return Model{
		opts:       opts,
		logger:     opts.Logger,
		engine:     engine,
		sprites:    sprites,
		timers:     timers,
		keys:       DefaultKeyMap(),
		help:       h,
		screen:     core.NewScreen(max(1, width), boardRows(height)),
		width:      width,
		height:     height,
		view:       viewMenu,
		list:       modeMenu(opts.Mode),
		mode:       opts.Mode,
		difficulty: opts.Difficulty,
	}
}

func boardRows(height int) int {
	return max(1, height-hudRows)
}

// Init loads the persisted best for the banner.
func (m Model) Init() tea.Cmd {
	scores := m.opts.Scores
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), results.DefaultTimeout)
		defer cancel()
		best, err := scores.LoadHighScore(ctx)
		return bestLoadedMsg{best: best, err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case bestLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("could not load high score", "err", msg.err)
		} else {
			m.best = msg.best
		}
		return m, nil

	case settledMsg:
		return m.handleSettled(msg)

	case fruitTickMsg:
		if m.view != viewPlaying || !m.timers.Current(msg.gen) {
			return m, nil
		}
		if err := m.engine.Handle(game.FruitTick{}); err != nil {
			m.logger.Warn("fruit respawn skipped", "err", err)
		}
		m.timers.Rearm()
		return m.afterEvent()

	case gameTickMsg:
		if m.view != viewPlaying || !m.timers.Current(msg.gen) {
			return m, nil
		}
		if err := m.engine.Handle(game.GameTick{}); err != nil {
			m.logger.Warn("game tick failed", "err", err)
		}
		return m.afterEvent()

	case clockMsg:
		if m.view == viewPlaying && m.engine.Config().GameTimer && m.timers.Current(msg.gen) {
			return m, clockCmd(msg.gen)
		}
		return m, nil
	}

	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(max(1, msg.Width), boardRows(msg.Height))
	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewScores {
		return m.updateScoreboard(msg)
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.view {
	case viewPlaying:
		return m.handlePlayKey(msg)
	case viewSettling:
		// Settlement must finish before anything else happens.
		return m, nil
	default:
		return m.handleMenuKey(msg)
	}
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Reset()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.toMenu(), nil
	}

	dir := m.keys.Direction(msg)
	if dir == game.DirNone {
		return m, nil
	}
	if err := m.engine.Handle(game.MoveEvent{Dir: dir}); err != nil {
		m.logger.Warn("respawn skipped", "err", err)
	}
	return m.afterEvent()
}

// afterEvent schedules queued timers, or settles the session once it ended.
func (m Model) afterEvent() (tea.Model, tea.Cmd) {
	r, ended := m.engine.Result()
	if !ended {
		return m, m.timers.Drain()
	}
	m.view = viewSettling
	return m, m.settleCmd(r)
}

func (m Model) settleCmd(r game.RunResult) tea.Cmd {
	scores := m.opts.Scores
	var history game.HistoryRecorder
	if m.opts.History != nil {
		history = m.opts.History
	}
	return func() tea.Msg {
		sum, err := results.Settle(context.Background(), scores, history, r)
		return settledMsg{summary: sum, err: err}
	}
}

func (m Model) handleSettled(msg settledMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("results not fully saved", "err", msg.err)
	}
	m.summary = msg.summary
	m.best = msg.summary.Best
	m.choices = game.NextChoices(msg.summary.Mode, m.opts.AllowChange)
	m.list = choiceMenu(m.choices)
	m.view = viewSummary
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MenuAction(msg); action {
	case MenuActionQuit:
		m.engine.Reset()
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp, MenuActionDown:
		m.list.Move(action)

	case MenuActionBack:
		if m.view != viewMenu {
			return m.toMenu(), nil
		}

	case MenuActionScores:
		if m.view == viewMenu && m.opts.History != nil {
			m.scoreboard = NewScoreboardModel(m.opts.History, m.width, m.height)
			m.view = viewScores
			return m, m.scoreboard.Init()
		}

	case MenuActionSelect:
		return m.selectItem()
	}
	return m, nil
}

func (m Model) selectItem() (tea.Model, tea.Cmd) {
	idx := m.list.Cursor()

	switch m.view {
	case viewMenu:
		m.pending = game.Modes[idx]
		m.diffChoices = allDifficulties()
		m.list = difficultyMenu(m.diffChoices, m.difficulty)
		m.view = viewDifficulty

	case viewDifficulty:
		m.difficulty = m.diffChoices[idx].Difficulty
		return m.start(m.pending)

	case viewSummary:
		c := m.choices[idx]
		if c.Action == game.ActionQuit {
			m.engine.Reset()
			m.quitting = true
			return m, tea.Quit
		}
		if c.OfferDifficulty {
			m.pending = c.Mode
			m.diffChoices = game.DifficultyChoices(m.difficulty)
			m.list = difficultyMenu(m.diffChoices, m.difficulty)
			m.view = viewDifficulty
			return m, nil
		}
		return m.start(c.Mode)
	}
	return m, nil
}

// start begins a session of mode on a board the size of the terminal.
func (m Model) start(mode game.Mode) (tea.Model, tea.Cmd) {
	if m.engine.Phase() != game.PhaseSelecting {
		m.engine.Reset()
	}

	rows := boardRows(m.height)
	m.screen.Resize(max(1, m.width), rows)
	w := float64(m.width) * m.opts.Settings.Board.CellWidth
	h := float64(rows) * m.opts.Settings.Board.CellHeight

	if err := m.engine.Start(mode, m.difficulty, w, h); err != nil {
		m.logger.Error("cannot start session", "mode", mode, "err", err)
		m.err = err
		m.view = viewMenu
		m.list = modeMenu(mode)
		return m, nil
	}

	m.mode = mode
	m.err = nil
	m.view = viewPlaying
	cmds := []tea.Cmd{m.timers.Drain()}
	if m.engine.Config().GameTimer {
		cmds = append(cmds, clockCmd(m.timers.gen))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toMenu() Model {
	m.engine.Reset()
	m.view = viewMenu
	m.list = modeMenu(m.mode)
	return m
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}
	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewPlaying:
		return m.playView()
	case viewScores:
		return m.scoreboard.View()
	case viewSettling:
		return "\n" + centerText("Saving results...", m.width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C A N D Y   D A S H"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Highest score mark: %d", m.best), m.width))
	b.WriteString("\n\n")

	switch m.view {
	case viewMenu:
		b.WriteString(centerText("Select a level", m.width))
	case viewDifficulty:
		b.WriteString(centerText(titleStyle.Render(m.pending.Title()), m.width))
		b.WriteString("\n")
		for _, line := range wrapDetail(m.pending.Description(), m.width) {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Choose difficulty", m.width))
	case viewSummary:
		for _, line := range m.summary.Lines() {
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.list.View(m.width))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(errorStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpLineStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m Model) playView() string {
	DrawBoard(m.screen, m.sprites.Sprites(), m.opts.Settings.Board.CellWidth, m.opts.Settings.Board.CellHeight)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.hud()))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpLineStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

// hud is the status line above the board.
func (m Model) hud() string {
	mc := m.engine.Config()
	parts := []string{fmt.Sprintf("%s (%s)", mc.Mode.Title(), mc.Difficulty.Title())}
	if mc.Scoring {
		parts = append(parts,
			fmt.Sprintf("Score %d", m.engine.Score()),
			fmt.Sprintf("Run best %d", m.engine.RunBest()),
			fmt.Sprintf("Record %d", m.best),
		)
	} else {
		parts = append(parts, fmt.Sprintf("Candies left %d", len(m.engine.Pieces(game.KindDot))))
	}
	if mc.GameTimer {
		left := m.engine.Remaining().Round(time.Second)
		parts = append(parts, fmt.Sprintf("Time %02d:%02d", int(left.Minutes()), int(left.Seconds())%60))
	}
	return " " + strings.Join(parts, "   ")
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// memoryScores keeps the best score for the life of the process. It stands
// in when no score file is available.
type memoryScores struct {
	mu   sync.Mutex
	best int
}

func (s *memoryScores) LoadHighScore(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best, nil
}

func (s *memoryScores) SaveHighScore(_ context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = score
	return nil
}

// Run runs the candy-dash TUI until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	model.engine.Reset()
	return err
}
