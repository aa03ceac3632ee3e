package event

// EventType represents the type of game event
type EventType int

const (
	// === Input Event ===

	// EventMoveTick fires periodically while the player moves above the
	// minimum speed, for footstep-style audio cadence
	// Trigger: InputSystem on movement cadence
	// Consumer: frontends | Payload: nil
	EventMoveTick EventType = iota

	// EventJump signals a successful jump
	// Trigger: InputSystem when jump accepted (cooldown clear, energy paid)
	// Consumer: frontends | Payload: nil
	EventJump

	// EventBoostStart signals boost engagement
	// Trigger: InputSystem when boost begins draining energy
	// Consumer: frontends | Payload: nil
	EventBoostStart

	// EventBoostEnd signals boost release or energy exhaustion
	// Trigger: InputSystem
	// Consumer: frontends | Payload: nil
	EventBoostEnd

	// EventCameraToggle requests a camera mode switch
	// Trigger: InputSystem on camera action
	// Consumer: frontends | Payload: nil
	EventCameraToggle

	// EventMuteToggle requests an audio mute flip
	// Trigger: InputSystem on mute action
	// Consumer: frontends | Payload: nil
	EventMuteToggle

	// === Gameplay Event ===

	// EventCollect signals a collectible pickup
	// Trigger: CollisionSystem on player/collectible overlap
	// Consumer: frontends | Payload: *CollectPayload
	EventCollect

	// EventPowerUp signals a power-up pickup
	// Trigger: CollisionSystem on player/power-up overlap
	// Consumer: frontends | Payload: *PowerUpPayload
	EventPowerUp

	// EventDamage signals contact damage applied to the player
	// Trigger: CollisionSystem on unshielded enemy contact
	// Consumer: frontends | Payload: *DamagePayload
	EventDamage

	// EventScrape signals a hard wall impact
	// Trigger: CollisionSystem when impact speed exceeds threshold
	// Consumer: frontends | Payload: *ScrapePayload
	EventScrape

	// EventScreenShake requests a camera shake
	// Trigger: CollisionSystem on damage or hard impact
	// Consumer: frontends | Payload: *ScreenShakePayload
	EventScreenShake

	// EventEnemyAlert signals an enemy entering chase
	// Trigger: AI controller on patrol-to-chase transition
	// Consumer: frontends | Payload: *EnemyAlertPayload
	EventEnemyAlert

	// === Level Event ===

	// EventLevelUp signals the player reaching the goal
	// Trigger: CollisionSystem on goal arrival
	// Consumer: frontends | Payload: *LevelUpPayload
	EventLevelUp

	// EventLevelReady signals a rebuilt level ready for play
	// Trigger: level manager after spawn completes
	// Consumer: frontends | Payload: *LevelReadyPayload
	EventLevelReady
)

// String returns event name for logging
func (t EventType) String() string {
	switch t {
	case EventMoveTick:
		return "MoveTick"
	case EventJump:
		return "Jump"
	case EventBoostStart:
		return "BoostStart"
	case EventBoostEnd:
		return "BoostEnd"
	case EventCameraToggle:
		return "CameraToggle"
	case EventMuteToggle:
		return "MuteToggle"
	case EventCollect:
		return "Collect"
	case EventPowerUp:
		return "PowerUp"
	case EventDamage:
		return "Damage"
	case EventScrape:
		return "Scrape"
	case EventScreenShake:
		return "ScreenShake"
	case EventEnemyAlert:
		return "EnemyAlert"
	case EventLevelUp:
		return "LevelUp"
	case EventLevelReady:
		return "LevelReady"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event. Frame records the simulation frame
// that produced it.
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
