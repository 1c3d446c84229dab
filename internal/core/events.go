package core

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventBrickHit EventType = iota
	EventQuizResolved
	EventLifeLost
	EventPowerUpCollected
	EventLevelUp
	EventGameOver
)

// String returns a short name for logging.
func (e EventType) String() string {
	switch e {
	case EventBrickHit:
		return "brick_hit"
	case EventQuizResolved:
		return "quiz_resolved"
	case EventLifeLost:
		return "life_lost"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Data carries a game-specific payload,
// e.g. the resolved quiz for EventQuizResolved.
type Event struct {
	Type EventType
	Tick int
	Data any
}
