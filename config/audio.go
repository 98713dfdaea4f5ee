package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundDash
	SoundDashReject
	SoundWallSlide
	SoundWallJump
	SoundLongJump
	SoundCannonball
	SoundCannonballLand
	// Hero life
	SoundDie
	SoundRevive
	// Items
	SoundBroom
	SoundVacuum
	SoundUmbrella
	SoundBoots
	SoundGrapple
	SoundBell
	SoundStopwatch
	SoundCamera
	SoundItemSelect
	// World
	SoundSwitch
	SoundBreak
	SoundGate
)

// SoundNames maps sound IDs to the names the audio layer knows them by.
// IDs missing here are logged and ignored.
var SoundNames = map[SoundID]string{
	SoundJump:           "jump",
	SoundLand:           "land",
	SoundDash:           "dash",
	SoundDashReject:     "dashReject",
	SoundWallSlide:      "wallSlide",
	SoundWallJump:       "wallJump",
	SoundLongJump:       "longJump",
	SoundCannonball:     "cannonball",
	SoundCannonballLand: "cannonballLand",
	SoundDie:            "die",
	SoundRevive:         "revive",
	SoundBroom:          "broom",
	SoundVacuum:         "vacuum",
	SoundUmbrella:       "umbrella",
	SoundBoots:          "boots",
	SoundGrapple:        "grapple",
	SoundBell:           "bell",
	SoundStopwatch:      "stopwatch",
	SoundCamera:         "camera",
	SoundItemSelect:     "itemSelect",
	SoundSwitch:         "switch",
	SoundBreak:          "break",
	SoundGate:           "gate",
}
