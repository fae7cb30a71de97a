package game

// Event is one input to the engine. Each event is resolved completely
// before the next is accepted.
type Event interface {
	gameEvent()
}

// MoveEvent is a directional command from the player.
type MoveEvent struct {
	Dir Direction
}

// FruitTick fires every fruit interval while fruit is enabled.
type FruitTick struct{}

// GameTick fires once when the Level 3 clock runs out.
type GameTick struct{}

func (MoveEvent) gameEvent() {}
func (FruitTick) gameEvent() {}
func (GameTick) gameEvent()  {}
