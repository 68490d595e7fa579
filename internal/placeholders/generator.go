// Package placeholders draws simple stand-in art for every image the game
// loads, so the game runs before any real sprites are drawn.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"chosenoffset.com/abacwrsed/internal/config"
)

// Sprite sizes, in pixels.
const (
	TileSize     = 70
	PlayerWidth  = 66
	PlayerHeight = 92
)

// ColorPalette defines colors for the placeholder art
var ColorPalette = struct {
	// Walls
	Wall     color.RGBA
	Junction color.RGBA
	Mortar   color.RGBA

	// Barriers
	Barrier       color.RGBA
	BarrierStripe color.RGBA
	Sad           color.RGBA
	Happy         color.RGBA
	Face          color.RGBA

	// Player
	Player     color.RGBA
	PlayerSkin color.RGBA
	PlayerHurt color.RGBA
	Outline    color.RGBA
}{
	Wall:     color.RGBA{150, 140, 125, 255}, // Sandstone
	Junction: color.RGBA{120, 110, 100, 255}, // Darker sandstone
	Mortar:   color.RGBA{90, 85, 75, 255},

	Barrier:       color.RGBA{230, 190, 40, 255}, // Hazard yellow
	BarrierStripe: color.RGBA{40, 40, 40, 255},
	Sad:           color.RGBA{70, 110, 200, 255}, // Blue
	Happy:         color.RGBA{90, 200, 90, 255},  // Green
	Face:          color.RGBA{20, 20, 20, 255},

	Player:     color.RGBA{220, 80, 60, 255}, // Red shirt
	PlayerSkin: color.RGBA{240, 200, 160, 255},
	PlayerHurt: color.RGBA{160, 60, 50, 255},
	Outline:    color.RGBA{30, 25, 20, 255},
}

// CreateSolidTile creates a w x h image filled with col
func CreateSolidTile(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(w, h int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(w, h, borderColor)
	inner := image.Rect(borderWidth, borderWidth, w-borderWidth, h-borderWidth)
	draw.Draw(img, inner, &image.Uniform{fillColor}, image.Point{}, draw.Src)
	return img
}

// fillRect paints r onto img, clipped to its bounds
func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

// CreateBrickTile creates a wall tile with mortar lines. Horizontal tiles
// lay the bricks in rows, vertical ones in columns.
func CreateBrickTile(fillColor color.RGBA, vertical bool) *image.RGBA {
	img := CreateBorderedTile(TileSize, TileSize, fillColor, ColorPalette.Mortar, 2)

	const courses = 3
	step := TileSize / courses
	for i := 1; i < courses; i++ {
		line := image.Rect(0, i*step, TileSize, i*step+2)
		if vertical {
			line = image.Rect(i*step, 0, i*step+2, TileSize)
		}
		fillRect(img, line, ColorPalette.Mortar)
	}

	// Offset joints between courses
	for i := 0; i < courses; i++ {
		off := step / 2 * (i % 2)
		joint := image.Rect(TileSize/2+off, i*step, TileSize/2+off+2, (i+1)*step)
		if vertical {
			joint = image.Rect(i*step, TileSize/2+off, (i+1)*step, TileSize/2+off+2)
		}
		fillRect(img, joint, ColorPalette.Mortar)
	}
	return img
}

// CreateJunctionTile creates a wall tile with a stub leading off one edge.
// down selects a stub on the bottom edge, otherwise it is on the top.
func CreateJunctionTile(vertical, down bool) *image.RGBA {
	img := CreateBrickTile(ColorPalette.Junction, vertical)

	third := TileSize / 3
	stub := image.Rect(third, 0, 2*third, third)
	if down {
		stub = image.Rect(third, 2*third, 2*third, TileSize)
	}
	fillRect(img, stub, Darken(ColorPalette.Junction, 0.7))
	return img
}

// CreateBarrierTile creates a barrier with diagonal hazard stripes
func CreateBarrierTile(fillColor color.RGBA) *image.RGBA {
	img := CreateBorderedTile(TileSize, TileSize, fillColor, ColorPalette.Outline, 2)

	for y := 2; y < TileSize-2; y++ {
		for x := 2; x < TileSize-2; x++ {
			if (x+y)/10%2 == 0 {
				img.Set(x, y, ColorPalette.BarrierStripe)
			}
		}
	}
	return img
}

// CreateFaceTile creates a barrier showing a face. smile turns the mouth
// up, otherwise it turns down.
func CreateFaceTile(fillColor color.RGBA, smile bool) *image.RGBA {
	img := CreateBorderedTile(TileSize, TileSize, fillColor, Darken(fillColor, 0.5), 3)

	// Eyes
	fillRect(img, image.Rect(20, 20, 28, 30), ColorPalette.Face)
	fillRect(img, image.Rect(42, 20, 50, 30), ColorPalette.Face)

	// Mouth: a shallow parabola between x=18 and x=52
	for x := 18; x <= 52; x++ {
		d := x - 35
		curve := d * d / 50
		y := 50 - curve
		if !smile {
			y = 42 + curve
		}
		fillRect(img, image.Rect(x, y, x+1, y+3), ColorPalette.Face)
	}
	return img
}

// CreatePlayer creates a standing figure. legShift moves the legs apart
// for walk frames; raised lifts the arms.
func CreatePlayer(shirt color.RGBA, legShift int, raised bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, PlayerWidth, PlayerHeight))

	// Head
	fillRect(img, image.Rect(19, 2, 47, 30), ColorPalette.Outline)
	fillRect(img, image.Rect(21, 4, 45, 28), ColorPalette.PlayerSkin)

	// Body
	fillRect(img, image.Rect(15, 30, 51, 64), ColorPalette.Outline)
	fillRect(img, image.Rect(17, 32, 49, 62), shirt)

	// Arms
	armTop, armBottom := 32, 56
	if raised {
		armTop, armBottom = 14, 38
	}
	fillRect(img, image.Rect(5, armTop, 15, armBottom), Darken(shirt, 0.8))
	fillRect(img, image.Rect(51, armTop, 61, armBottom), Darken(shirt, 0.8))

	// Legs
	fillRect(img, image.Rect(19-legShift, 64, 31-legShift, PlayerHeight), ColorPalette.Outline)
	fillRect(img, image.Rect(35+legShift, 64, 47+legShift, PlayerHeight), ColorPalette.Outline)
	return img
}

// walkShift is the leg spread of walk frame i, swinging out and back.
func walkShift(i, frames int) int {
	half := frames / 2
	if half == 0 {
		return 0
	}
	phase := i % (2 * half)
	if phase > half {
		phase = 2*half - phase
	}
	return phase * 8 / half
}

// Generate draws every image named in names, keyed by file name.
func Generate(names config.AssetsConfig) map[string]*image.RGBA {
	images := map[string]*image.RGBA{
		names.PlayerStand:      CreatePlayer(ColorPalette.Player, 0, false),
		names.PlayerJump:       CreatePlayer(ColorPalette.Player, 4, true),
		names.PlayerSad:        CreatePlayer(ColorPalette.PlayerHurt, 0, false),
		names.WallH:            CreateBrickTile(ColorPalette.Wall, false),
		names.WallV:            CreateBrickTile(ColorPalette.Wall, true),
		names.WallHJunction:    CreateJunctionTile(false, true),
		names.WallVEndJunction: CreateJunctionTile(true, false),
		names.Barrier:          CreateBarrierTile(ColorPalette.Barrier),
		names.SadBarrier:       CreateFaceTile(ColorPalette.Sad, false),
		names.HappyBarrier:     CreateFaceTile(ColorPalette.Happy, true),
	}
	for i := 0; i < names.WalkFrames; i++ {
		images[names.WalkFrame(i)] = CreatePlayer(ColorPalette.Player, walkShift(i, names.WalkFrames), false)
	}
	return images
}

// GenerateAndSave writes every placeholder image into dir
func GenerateAndSave(dir string, names config.AssetsConfig) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	images := Generate(names)
	for name, img := range images {
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return err
		}
		log.Debug("wrote placeholder", "path", path)
	}

	log.Info("generated placeholders", "dir", dir, "images", len(images))
	return nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
