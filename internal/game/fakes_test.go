package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/vovakirdan/candy-dash/internal/config"
)

// journal records presenter and timer calls in order.
type journal struct {
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

func (j *journal) index(prefix string, from int) int {
	for i := from; i < len(j.entries); i++ {
		if len(j.entries[i]) >= len(prefix) && j.entries[i][:len(prefix)] == prefix {
			return i
		}
	}
	return -1
}

type recordingPresenter struct {
	j    *journal
	next Handle
	live map[Handle]Piece
}

func newRecordingPresenter(j *journal) *recordingPresenter {
	return &recordingPresenter{j: j, live: make(map[Handle]Piece)}
}

func (r *recordingPresenter) CreatePiece(p Piece) Handle {
	r.next++
	r.live[r.next] = p
	r.j.add("create:%s", p.Kind)
	return r.next
}

func (r *recordingPresenter) UpdatePiece(h Handle, p Piece) {
	r.live[h] = p
}

func (r *recordingPresenter) RemovePiece(h Handle) {
	delete(r.live, h)
	r.j.add("remove:%d", h)
}

func (r *recordingPresenter) count(kind Kind) int {
	n := 0
	for _, p := range r.live {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

type manualTimers struct {
	j       *journal
	fruit   time.Duration
	game    time.Duration
	running bool
	stops   int
}

func (m *manualTimers) StartFruit(d time.Duration) {
	m.fruit = d
	m.running = true
	m.j.add("start-fruit")
}

func (m *manualTimers) StartGame(d time.Duration) {
	m.game = d
	m.running = true
	m.j.add("start-game")
}

func (m *manualTimers) Stop() {
	m.running = false
	m.stops++
	m.j.add("stop")
}

type harness struct {
	*Engine
	j         *journal
	presenter *recordingPresenter
	timers    *manualTimers
}

func newHarness(t *testing.T, settings config.Config) *harness {
	t.Helper()
	j := &journal{}
	h := &harness{
		j:         j,
		presenter: newRecordingPresenter(j),
		timers:    &manualTimers{j: j},
	}
	h.Engine = New(settings,
		WithPresenter(h.presenter),
		WithTimers(h.timers),
		WithSeed(42),
	)
	return h
}

func (h *harness) start(t *testing.T, mode Mode, diff config.Difficulty, w, ht float64) {
	t.Helper()
	if err := h.Start(mode, diff, w, ht); err != nil {
		t.Fatalf("Start(%s, %s): %v", mode, diff, err)
	}
}

// shrinkPlayer makes the player a 1x1 probe so a move hits exactly the piece
// whose top-left corner it lands on.
func (h *harness) shrinkPlayer() {
	h.players.first().Size = 1
}

// eat steps the player right onto target's top-left corner.
func (h *harness) eat(t *testing.T, target Piece) {
	t.Helper()
	p := h.players.first()
	if p == nil {
		t.Fatal("no player")
	}
	p.X = target.X - h.mode.Step
	p.Y = target.Y
	if err := h.Handle(MoveEvent{Dir: DirRight}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
}
