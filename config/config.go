package config

import "image/color"

// WindowConfig holds the fixed drawing surface and frame pacing values.
type WindowConfig struct {
	Width        int
	Height       int
	TPS          int
	GroundHeight int
	Caption      string

	// MaxFrameDelta caps the measured per-frame dt so a stalled frame
	// cannot step the simulation far enough to tunnel through a pipe.
	MaxFrameDelta float64
}

// BirdConfig contains all bird-related configuration values
type BirdConfig struct {
	// Physics
	Gravity      float64
	FlapImpulse  float64
	MaxDropSpeed float64

	// Horizontal anchor (the bird never moves on x)
	X float64

	// Sprite and collision dimensions
	SpriteWidth  float64
	SpriteHeight float64
	BoxWidth     float64 // full collision bounding box
	BoxHeight    float64
	HitboxInsetX float64 // main hitbox inset from the bounding box
	HitboxInsetY float64
	HeadSize     float64 // square head hitbox near the top-front
	HeadTopInset float64

	// Rotation
	RotationFactor   float64 // degrees per px/s of upward velocity
	MinRotation      float64 // degrees
	MaxRotation      float64 // degrees
	RotationEaseRate float64 // ease factor is min(1, dt*rate)

	// Animation
	AnimRatePlaying float64
	AnimRateIdle    float64
	WingSwing       float64

	// Idle bob
	IdleAmplitude float64
	IdleSpeed     float64

	// World bounds
	CeilingY        float64 // soft ceiling: clamp y and zero velocity
	GroundClearance float64 // ground threshold sits this far above the ground band
}

// PipeConfig contains obstacle configuration values
type PipeConfig struct {
	Width         float64
	Speed         float64
	GapBase       float64
	GapMin        float64
	SpawnInterval float64
	SpawnOffset   float64 // spawn this far beyond the right edge

	// Score at which the gap reaches GapMin and stays there
	DifficultyScoreCap int

	// Vertical placement margin for the gap center
	PlacementMargin float64

	// A pipe is retired once its right edge is left of this x
	RetireThreshold float64

	// Rendering
	CapHeight   float64
	StripeX     float64
	StripeWidth float64
	BodyColor   color.RGBA
	ShadeColor  color.RGBA
}

// SceneryConfig contains parallax backdrop configuration values
type SceneryConfig struct {
	// Sky color cycle
	SkyCycle float64 // seconds for a full dawn-noon-dawn-dusk loop

	// Celestial body
	SunCycle      float64 // seconds for a full arc
	SunRadius     int     // glow sprite radius in px
	SunPathRadius float64 // fraction of screen height
	SunCenterX    float64 // fraction of screen width
	SunCenterY    float64 // fraction of screen height
	SunBaseAngle  float64 // multiple of pi
	SunAngleSpan  float64 // multiple of pi

	// Layer scroll speeds (px/s) and vertical placement (fraction of height)
	CloudSpeed    float64
	MountainSpeed float64
	HillSpeed     float64
	CloudY        float64
	MountainY     float64
	HillY         float64
}

// FlashConfig contains the round-ending screen flash configuration
type FlashConfig struct {
	Duration float32 // seconds
	MaxAlpha float32 // starting overlay alpha, fades linearly to zero
}

// HUDConfig contains HUD layout and copy
type HUDConfig struct {
	ScoreY    float64 // fraction of screen height
	HeadlineY float64
	SubtextY  float64

	Title          string
	ReadyPrompt    string
	GameOverTitle  string
	GameOverPrompt string

	ReadyDimAlpha uint8 // backdrop dim behind the start prompt
}

// Global configuration instances
var (
	Window  WindowConfig
	Bird    BirdConfig
	Pipe    PipeConfig
	Scenery SceneryConfig
	Flash   FlashConfig
	HUD     HUDConfig
)

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	OffWhite   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	PipeLight  = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	PipeDark   = color.RGBA{R: 60, G: 150, B: 60, A: 255}
	BodyYellow = color.RGBA{R: 240, G: 212, B: 80, A: 255}
	BellyCream = color.RGBA{R: 255, G: 240, B: 150, A: 255}
	WingOrange = color.RGBA{R: 250, G: 160, B: 60, A: 255}
	BeakOrange = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	Outline    = color.RGBA{R: 90, G: 60, B: 20, A: 255}
	EyeWhite   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	EyeDark    = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// SkyPhase is one (top, bottom) gradient pair in the time-of-day cycle.
type SkyPhase struct {
	Top    color.NRGBA
	Bottom color.NRGBA
}

// SkyPhases is the ordered time-of-day cycle: dawn, noon, dawn, dusk.
var SkyPhases = []SkyPhase{
	{Top: color.NRGBA{80, 110, 200, 255}, Bottom: color.NRGBA{200, 170, 220, 255}},
	{Top: color.NRGBA{70, 180, 255, 255}, Bottom: color.NRGBA{180, 230, 255, 255}},
	{Top: color.NRGBA{80, 110, 200, 255}, Bottom: color.NRGBA{200, 170, 220, 255}},
	{Top: color.NRGBA{25, 20, 60, 255}, Bottom: color.NRGBA{90, 45, 80, 255}},
}

func init() {
	Window = WindowConfig{
		Width:         540,
		Height:        900,
		TPS:           60,
		GroundHeight:  140,
		Caption:       "Skydrift",
		MaxFrameDelta: 4.0 / 60.0,
	}

	Bird = BirdConfig{
		Gravity:      2300.0,
		FlapImpulse:  750.0,
		MaxDropSpeed: 1200.0,

		X: float64(Window.Width) * 0.35,

		SpriteWidth:  96,
		SpriteHeight: 80,
		BoxWidth:     72,
		BoxHeight:    56,
		HitboxInsetX: 12,
		HitboxInsetY: 6,
		HeadSize:     24,
		HeadTopInset: 4,

		RotationFactor:   0.05,
		MinRotation:      -28,
		MaxRotation:      75,
		RotationEaseRate: 10,

		AnimRatePlaying: 6,
		AnimRateIdle:    3,
		WingSwing:       16,

		IdleAmplitude: 20,
		IdleSpeed:     2.2,

		CeilingY:        -80,
		GroundClearance: 10,
	}

	Pipe = PipeConfig{
		Width:         96,
		Speed:         220.0,
		GapBase:       240,
		GapMin:        150,
		SpawnInterval: 1.9,
		SpawnOffset:   40,

		DifficultyScoreCap: 12,
		PlacementMargin:    120,
		RetireThreshold:    -10,

		CapHeight:   18,
		StripeX:     10,
		StripeWidth: 16,
		BodyColor:   PipeLight,
		ShadeColor:  PipeDark,
	}

	Scenery = SceneryConfig{
		SkyCycle: 42.0,

		SunCycle:      24.0,
		SunRadius:     240,
		SunPathRadius: 0.4,
		SunCenterX:    0.8,
		SunCenterY:    0.3,
		SunBaseAngle:  1.2,
		SunAngleSpan:  1.6,

		CloudSpeed:    65,
		MountainSpeed: 18,
		HillSpeed:     42,
		CloudY:        0.18,
		MountainY:     0.55,
		HillY:         0.65,
	}

	Flash = FlashConfig{
		Duration: 0.3,
		MaxAlpha: 180,
	}

	HUD = HUDConfig{
		ScoreY:    0.12,
		HeadlineY: 0.38,
		SubtextY:  0.45,

		Title:          "Skydrift",
		ReadyPrompt:    "Click or press SPACE to start",
		GameOverTitle:  "Game Over",
		GameOverPrompt: "Click or press SPACE to try again",

		ReadyDimAlpha: 80,
	}
}
