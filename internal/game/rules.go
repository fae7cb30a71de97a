package game

import "errors"

// create adds a piece at a fixed spot and registers its visual.
func (e *Engine) create(s *store, kind Kind, x, y, size float64) *Piece {
	e.nextID++
	p := &Piece{ID: e.nextID, Kind: kind, X: x, Y: y, Size: size, Points: 1}
	if kind == KindDot {
		p.Points = e.mode.DotPoints
	}
	p.Handle = e.presenter.CreatePiece(*p)
	s.add(p)
	return p
}

// spawn places a new piece at a unique spot, checked only against exclude.
func (e *Engine) spawn(s *store, kind Kind, size float64, exclude []Piece) (*Piece, error) {
	x, y, err := e.board.PlaceUnique(kind, size, exclude)
	if err != nil {
		return nil, err
	}
	p := e.create(s, kind, x, y, size)
	e.logger.Debug("spawned", "kind", kind, "id", p.ID, "x", x, "y", y)
	return p, nil
}

func (e *Engine) removePiece(s *store, id PieceID) {
	if p, ok := s.remove(id); ok {
		e.presenter.RemovePiece(p.Handle)
	}
}

func (e *Engine) clear(s *store) {
	for _, p := range s.snapshot() {
		e.removePiece(s, p.ID)
	}
}

func (e *Engine) handleMove(dir Direction) error {
	player := e.players.first()
	if player == nil || player.Hidden {
		return nil
	}
	if !Move(player, dir, e.mode.Step) {
		return nil
	}
	NudgeFromBorder(player, e.borders.snapshot(), e.board.Width, e.board.Height, e.mode.Step)
	e.presenter.UpdatePiece(player.Handle, *player)

	var errs []error
	errs = append(errs, e.collideDots(player))
	if e.phase == PhaseRunning {
		errs = append(errs, e.collideFruits(player))
		e.collideEnemies(player)
	}
	return errors.Join(errs...)
}

func (e *Engine) collideDots(player *Piece) error {
	var errs []error
	for _, dot := range e.dots.snapshot() {
		if !Collides(*player, dot) {
			continue
		}
		e.removePiece(&e.dots, dot.ID)
		e.dotsEaten++

		if e.mode.Scoring {
			e.score += dot.Points
		}
		if e.mode.Enlarger {
			player.Size += float64(dot.Points) * e.mode.Rates.SizeEnlarger
			e.presenter.UpdatePiece(player.Handle, *player)
		}
		if e.mode.Enemies && e.dotsSinceEnemy > e.mode.Rates.EnemySpawnRate {
			if _, err := e.spawn(&e.enemies, KindEnemy, e.sizes.Target, e.enemies.snapshot()); err != nil {
				errs = append(errs, err)
			}
			e.dotsSinceEnemy = 0
		}
		if !e.mode.LimitDots {
			if _, err := e.spawn(&e.dots, KindDot, e.sizes.Target, e.dots.snapshot()); err != nil {
				errs = append(errs, err)
			}
			e.dotsSinceEnemy++
		}

		if e.mode.Mode == ModePractice && e.dots.len() == 0 {
			player.Hidden = true
			e.presenter.UpdatePiece(player.Handle, *player)
			e.end(EndCleared)
			break
		}
	}
	e.ratchet()
	return errors.Join(errs...)
}

func (e *Engine) collideFruits(player *Piece) error {
	var errs []error
	for _, fruit := range e.fruits.snapshot() {
		if !Collides(*player, fruit) {
			continue
		}
		e.removePiece(&e.fruits, fruit.ID)
		e.fruitEaten++

		player.Size = e.sizes.Player
		e.presenter.UpdatePiece(player.Handle, *player)

		if e.fruits.len() == 0 {
			if _, err := e.spawn(&e.fruits, KindFruit, e.sizes.Fruit, e.fruits.snapshot()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) collideEnemies(player *Piece) {
	for _, enemy := range e.enemies.snapshot() {
		if !Collides(*player, enemy) {
			continue
		}
		e.end(EndCaught)
		e.removePiece(&e.players, player.ID)
		e.removePiece(&e.enemies, enemy.ID)
		e.create(&e.effects, KindEffect, enemy.X, enemy.Y, e.sizes.Effect)
		break
	}
	e.ratchet()
}

// handleFruitTick moves the fruit: all current fruit is replaced by a single
// new one. Nothing happens once the fruit has run out.
func (e *Engine) handleFruitTick() error {
	if !e.mode.Fruit || e.fruits.len() == 0 {
		return nil
	}
	e.clear(&e.fruits)
	exclude := concat(e.fruits.snapshot(), e.borders.snapshot(), e.players.snapshot())
	_, err := e.spawn(&e.fruits, KindFruit, e.sizes.Fruit, exclude)
	return err
}

// handleGameTick ends a timed session and clears the playfield.
func (e *Engine) handleGameTick() {
	if !e.mode.GameTimer {
		return
	}
	e.end(EndTimeUp)
	e.clear(&e.players)
	e.clear(&e.enemies)
	e.clear(&e.fruits)
	e.clear(&e.dots)
}
