package config

import "time"

// PhysicsConfig contains the rectangle engine's global tunables
type PhysicsConfig struct {
	// Gravity (px/s and px/s²)
	GravityAcceleration float64
	GravityMin          float64
	GravityMax          float64

	// Distance used when probing for ground after resolution
	GroundProbe float64

	// Collision
	OnewayTolerance float64 // Pixels a body may sink below a one-way top and still be caught
	EdgeExtension   float64 // Offscreen extension of static rectangles touching the grid boundary
}

// GridConfig contains tile geometry
type GridConfig struct {
	TileSize float64
}

// CameraConfig contains viewport and smoothing configuration
type CameraConfig struct {
	Width         float64
	Height        float64
	FocusOffsetY  float64 // Focus this far above the hero's anchor
	JumpThreshold float64 // Manhattan target jump that starts lagging
	LagSpeed      float64 // px per frame while lagging
}

// FrameConfig contains the frame driver's elapsed-time policy
type FrameConfig struct {
	Nominal    time.Duration
	MinElapsed time.Duration // Shorter frames are skipped
	MaxElapsed time.Duration // Longer frames are clamped (slow motion)
}

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	// Hit-box relative to the anchor (anchor = bottom center)
	Width      float64
	Height     float64
	DuckHeight float64
	InvMass    float64

	// Walking (px/s, px/s²)
	WalkSpeed         float64
	WalkAcceleration  float64
	WalkResidualDecay float64

	// Jumping
	CoyoteTime         float64   // Seconds after leaving ground a jump is still honored
	TripleJumpFootTime float64   // Seconds after landing a jump continues the sequence
	JumpLimitTime      []float64 // Max air time per sequence tier
	JumpSpeedMax       []float64 // Peak speed per sequence tier

	// Dash
	DashDistance      float64
	DashStrokeTime    float64 // Both strokes must be shorter than this
	DashRejectOverlap float64 // testSpritePosition result that reverts a dash

	// Wall slide
	WallSlideCoverage float64
	WallSlideGravity  float64

	// Wall jump (initial speeds px/s, decays px/s²)
	WallJumpSpeedX float64
	WallJumpSpeedY float64
	WallJumpDecayX float64
	WallJumpDecayY float64

	// Long jump
	LongJumpSpeedX float64
	LongJumpSpeedY float64
	LongJumpDecayX float64
	LongJumpDecayY float64

	// Cannonball
	CannonballMinRoom float64 // Downward freedom required to start
	CannonballSpeed   float64 // Fast-fall gravity rate and cap
	CannonballMinFall float64 // Fall distance that triggers OnCannonball

	// Drop-through
	OnewayBypassTime float64

	// Death
	ImmortalTime float64
	CrushOverlap float64
}

// ItemRules lists what an item in progress still allows
type ItemRules struct {
	Walk bool
	Jump bool
	Duck bool
}

// ItemsConfig contains item behavior configuration
type ItemsConfig struct {
	Rules map[string]ItemRules

	// Broom
	BroomTime      float64
	BroomSpeed     float64
	BroomClimbRate float64

	// Vacuum
	VacuumRange float64
	VacuumForce float64 // Must exceed Physics.GravityMax to override a fall

	// Umbrella
	UmbrellaGravity float64

	// Boots
	BootsInvMass   float64
	BootsStompFall float64 // Fall distance reported to OnCannonball on a boots landing

	// Bell / stopwatch
	BellTime      float64
	StopwatchTime float64
}

// PlatformConfig contains moving platform configuration
type PlatformConfig struct {
	InvMass        float64
	Speed          float64
	StuckWindow    float64 // Seconds between displacement samples
	StuckThreshold float64 // Net displacement below this within a window reverses direction
	RiderTolerance float64 // Rider bottom may be this far below the platform top
}

// CrusherConfig contains crusher configuration
type CrusherConfig struct {
	DropSpeed float64
	RiseSpeed float64
	WaitTime  float64
}

// BreakableConfig contains breakable block configuration
type BreakableConfig struct {
	MinFall          float64
	FragmentCount    int
	FragmentSpeed    float64
	FragmentLifetime float64
	FragmentGravity  float64
}

// RaftConfig contains raft configuration
type RaftConfig struct {
	GrowSpeed float64
	Thickness float64
}

// GrappleConfig contains grapple hook configuration
type GrappleConfig struct {
	HookSpeed  float64
	MaxLength  float64
	Spring     float64 // Attraction per px of distance, per second
	MaxPull    float64 // px/s
	ArriveDist float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes bool
	Level    string
}

// Global configuration instances
var Physics PhysicsConfig
var Grid GridConfig
var Camera CameraConfig
var Frame FrameConfig
var Hero HeroConfig
var Items ItemsConfig
var Platform PlatformConfig
var Crusher CrusherConfig
var Breakable BreakableConfig
var Raft RaftConfig
var Grapple GrappleConfig
var Debug DebugConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Item names
const (
	ItemBroom     = "broom"
	ItemVacuum    = "vacuum"
	ItemUmbrella  = "umbrella"
	ItemBoots     = "boots"
	ItemGrapple   = "grapple"
	ItemBell      = "bell"
	ItemStopwatch = "stopwatch"
	ItemCamera    = "camera"
)

// ItemOrder is the cycling order for item selection
var ItemOrder = []string{
	ItemBroom, ItemVacuum, ItemUmbrella, ItemBoots,
	ItemGrapple, ItemBell, ItemStopwatch, ItemCamera,
}

func init() {
	Physics = PhysicsConfig{
		GravityAcceleration: 400,
		GravityMin:          50,
		GravityMax:          300,
		GroundProbe:         999,
		OnewayTolerance:     4,
		EdgeExtension:       1000,
	}

	Grid = GridConfig{
		TileSize: 16,
	}

	Camera = CameraConfig{
		Width:         320,
		Height:        160,
		FocusOffsetY:  16,
		JumpThreshold: 15,
		LagSpeed:      8,
	}

	Frame = FrameConfig{
		Nominal:    16600 * time.Microsecond,
		MinElapsed: 12 * time.Millisecond,
		MaxElapsed: 25 * time.Millisecond,
	}

	Hero = HeroConfig{
		Width:      12,
		Height:     22,
		DuckHeight: 14,
		InvMass:    0.5,

		WalkSpeed:         110,
		WalkAcceleration:  600,
		WalkResidualDecay: 300,

		CoyoteTime:         0.05,
		TripleJumpFootTime: 0.1,
		JumpLimitTime:      []float64{0.3, 0.39, 0.45},
		JumpSpeedMax:       []float64{380, 410, 450},

		DashDistance:      32,
		DashStrokeTime:    0.12,
		DashRejectOverlap: 0.25,

		WallSlideCoverage: 0.6,
		WallSlideGravity:  50,

		WallJumpSpeedX: 180,
		WallJumpSpeedY: 320,
		WallJumpDecayX: 360,
		WallJumpDecayY: 900,

		LongJumpSpeedX: 240,
		LongJumpSpeedY: 220,
		LongJumpDecayX: 120,
		LongJumpDecayY: 700,

		CannonballMinRoom: 8,
		CannonballSpeed:   450,
		CannonballMinFall: 33,

		OnewayBypassTime: 0.2,

		ImmortalTime: 1.0,
		CrushOverlap: 0.5,
	}

	// Items suppress normal locomotion per these rules
	Items = ItemsConfig{
		Rules: map[string]ItemRules{
			ItemBroom:     {Walk: true, Jump: false, Duck: false},
			ItemVacuum:    {Walk: false, Jump: false, Duck: false},
			ItemUmbrella:  {Walk: true, Jump: false, Duck: false},
			ItemBoots:     {Walk: false, Jump: false, Duck: true},
			ItemGrapple:   {Walk: false, Jump: true, Duck: false},
			ItemBell:      {Walk: true, Jump: false, Duck: false},
			ItemStopwatch: {Walk: true, Jump: true, Duck: true},
			ItemCamera:    {Walk: true, Jump: true, Duck: true},
		},

		BroomTime:      1.5,
		BroomSpeed:     140,
		BroomClimbRate: 90,

		VacuumRange: 120,
		VacuumForce: 420,

		UmbrellaGravity: 60,

		BootsInvMass:   0.05,
		BootsStompFall: 48,

		BellTime:      0.5,
		StopwatchTime: 3.0,
	}

	Platform = PlatformConfig{
		InvMass:        0.01,
		Speed:          40,
		StuckWindow:    0.25,
		StuckThreshold: 1,
		RiderTolerance: 4,
	}

	Crusher = CrusherConfig{
		DropSpeed: 240,
		RiseSpeed: 40,
		WaitTime:  0.8,
	}

	Breakable = BreakableConfig{
		MinFall:          33,
		FragmentCount:    6,
		FragmentSpeed:    120,
		FragmentLifetime: 0.6,
		FragmentGravity:  400,
	}

	Raft = RaftConfig{
		GrowSpeed: 60,
		Thickness: 4,
	}

	Grapple = GrappleConfig{
		HookSpeed:  360,
		MaxLength:  144,
		Spring:     6,
		MaxPull:    260,
		ArriveDist: 10,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Hitboxes: false,
		Level:    "intro",
	}
}
