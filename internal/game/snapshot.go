package game

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Phase      Phase
	Mode       Mode
	Score      int
	RunBest    int
	Reason     EndReason
	DotsEaten  int
	FruitEaten int
	Counter    int // Replacement dots since the last enemy spawn
	Player     Piece
	Dots       []Piece
	Fruits     []Piece
	Enemies    []Piece
	Effects    []Piece
	Borders    int
}

// Snapshot returns the current engine state. Piece lists are ordered by
// position so that two engines with the same seed compare equal.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      e.phase,
		Mode:       e.mode.Mode,
		Score:      e.score,
		RunBest:    e.runBest,
		Reason:     e.reason,
		DotsEaten:  e.dotsEaten,
		FruitEaten: e.fruitEaten,
		Counter:    e.dotsSinceEnemy,
		Dots:       e.dots.snapshot(),
		Fruits:     e.fruits.snapshot(),
		Enemies:    e.enemies.snapshot(),
		Effects:    e.effects.snapshot(),
		Borders:    e.borders.len(),
	}
	if p := e.players.first(); p != nil {
		s.Player = *p
	}
	for _, list := range [][]Piece{s.Dots, s.Fruits, s.Enemies, s.Effects} {
		SortByPosition(list)
	}
	return s
}
