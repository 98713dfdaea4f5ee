package tags

// Physics roles
const (
	RoleNone    = ""
	RoleSolid   = "solid"
	RoleOneway  = "oneway"
	RoleHazard  = "hazard"
	RoleFragile = "fragile"
)

// Sprite kinds, used for lookups through the scene
const (
	KindStatic    = "static"
	KindHero      = "hero"
	KindPlatform  = "platform"
	KindCrusher   = "crusher"
	KindSwitch    = "switch"
	KindGate      = "gate"
	KindBreakable = "breakable"
	KindFragment  = "fragment"
	KindRaft      = "raft"
	KindGrapple   = "grapple"
)

// Resolv tags for the terrain probe space
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
