// Package config provides the immutable game configuration, loaded from
// YAML once at startup and passed by value to the game.
package config

import (
	"fmt"
	"image/color"
)

// Config holds every tunable of the game.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	Contact ContactConfig `yaml:"contact"`
	Assets  AssetsConfig  `yaml:"assets"`
	HUD     HUDConfig     `yaml:"hud"`
}

// WindowConfig defines the display surface and frame pacing.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background Color  `yaml:"background"`
	TPS        int    `yaml:"tps"` // Updates per second
}

// PlayerConfig defines the player's spawn point and movement.
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x"` // Spawn center
	StartY       float64 `yaml:"start_y"`
	Speed        float64 `yaml:"speed"` // Pixels per frame along one axis
	JumpSpeed    float64 `yaml:"jump_speed"`
	MinJumpSpeed float64 `yaml:"min_jump_speed"`
	Gravity      float64 `yaml:"gravity"`
	AnimateWalk  bool    `yaml:"animate_walk"`
}

// CameraStrategy names one of the offset computations the camera runs.
type CameraStrategy string

const (
	CameraCenter   CameraStrategy = "center"   // Lock the player to screen center
	CameraBox      CameraStrategy = "box"      // Follow only when the player leaves the box
	CameraKeyboard CameraStrategy = "keyboard" // Pan the box with W/A/S/D
)

// CameraConfig defines the camera strategies and the camera box.
type CameraConfig struct {
	// Strategies run in order each frame; each one overwrites the offset.
	Strategies []CameraStrategy `yaml:"strategies"`
	Margins    Margins          `yaml:"margins"`
	PanSpeed   float64          `yaml:"pan_speed"`
}

// Margins is the distance from each screen edge to the camera box.
type Margins struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// ContactConfig controls how barrier effects fire.
type ContactConfig struct {
	// OncePerFrame limits each obstacle to one effect per player update.
	OncePerFrame bool `yaml:"once_per_frame"`
}

// AssetsConfig names every image file the game loads.
type AssetsConfig struct {
	Dir              string `yaml:"dir"`
	PlayerStand      string `yaml:"player_stand"`
	PlayerJump       string `yaml:"player_jump"`
	PlayerSad        string `yaml:"player_sad"`
	PlayerWalk       string `yaml:"player_walk"` // fmt pattern taking the 1-based frame number
	WalkFrames       int    `yaml:"walk_frames"`
	WallH            string `yaml:"wall_h"`
	WallV            string `yaml:"wall_v"`
	WallHJunction    string `yaml:"wall_h_junction"`
	WallVEndJunction string `yaml:"wall_v_end_junction"`
	Barrier          string `yaml:"barrier"`
	SadBarrier       string `yaml:"sad_barrier"`
	HappyBarrier     string `yaml:"happy_barrier"`
}

// WalkFrame returns the file name of the i-th (0-based) walk frame.
func (a AssetsConfig) WalkFrame(i int) string {
	return fmt.Sprintf(a.PlayerWalk, i+1)
}

// HUDConfig defines the on-screen welcome banner.
type HUDConfig struct {
	WelcomeText string  `yaml:"welcome_text"` // Empty disables the banner
	Font        string  `yaml:"font"`         // TTF path, empty for the built-in font
	FontSize    float64 `yaml:"font_size"`
	Foreground  Color   `yaml:"foreground"`
	Background  Color   `yaml:"background"`
}

// Color is an opaque-by-default RGB(A) color.
type Color struct {
	R uint8  `yaml:"r"`
	G uint8  `yaml:"g"`
	B uint8  `yaml:"b"`
	A *uint8 `yaml:"a,omitempty"` // Defaults to 255
}

// RGBA converts c to a color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := uint8(255)
	if c.A != nil {
		a = *c.A
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player speed must not be negative: %v", c.Player.Speed)
	}
	if c.Camera.PanSpeed < 0 {
		return fmt.Errorf("camera pan_speed must not be negative: %v", c.Camera.PanSpeed)
	}
	for _, s := range c.Camera.Strategies {
		switch s {
		case CameraCenter, CameraBox, CameraKeyboard:
		default:
			return fmt.Errorf("unknown camera strategy: %s", s)
		}
	}
	m := c.Camera.Margins
	if m.Left+m.Right >= float64(c.Window.Width) || m.Top+m.Bottom >= float64(c.Window.Height) {
		return fmt.Errorf("camera margins leave no room for the camera box")
	}
	if c.Assets.WalkFrames <= 0 {
		return fmt.Errorf("walk_frames must be positive: %d", c.Assets.WalkFrames)
	}
	if c.HUD.WelcomeText != "" && c.HUD.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive: %v", c.HUD.FontSize)
	}
	return nil
}
