package game

import (
	"context"
	"time"
)

// Presenter owns the visuals for pieces.
type Presenter interface {
	CreatePiece(p Piece) Handle
	UpdatePiece(h Handle, p Piece)
	RemovePiece(h Handle)
}

// Timers schedules FruitTick and GameTick events back into the engine.
// Stop must cancel both so that no tick from the stopped session is delivered.
type Timers interface {
	StartFruit(interval time.Duration)
	StartGame(d time.Duration)
	Stop()
}

// HighScoreStore persists the all-time best score.
type HighScoreStore interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// HistoryRecorder keeps a record of finished sessions.
type HistoryRecorder interface {
	RecordRun(ctx context.Context, r RunResult) error
}

type nopPresenter struct{ next Handle }

func (n *nopPresenter) CreatePiece(Piece) Handle {
	n.next++
	return n.next
}
func (*nopPresenter) UpdatePiece(Handle, Piece) {}
func (*nopPresenter) RemovePiece(Handle)        {}

type nopTimers struct{}

func (nopTimers) StartFruit(time.Duration) {}
func (nopTimers) StartGame(time.Duration)  {}
func (nopTimers) Stop()                    {}
