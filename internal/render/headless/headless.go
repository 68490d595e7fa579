// Package headless is an in-memory render backend. Images only carry a size
// and a log of what was drawn onto them, which lets the game loop run
// without a display: in tests and in the simulate command.
package headless

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"chosenoffset.com/abacwrsed/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// DrawCall records one DrawImage onto an Image.
type DrawCall struct {
	Src   *Image
	X, Y  float64 // Translation applied by the GeoM
	FlipX bool    // Negative horizontal scale
}

// TextCall records one DrawText onto an Image.
type TextCall struct {
	Text string
	X, Y float64
}

// Image implements render.Image without pixel storage.
type Image struct {
	Name  string // Path the image was loaded from, if any
	W, H  int
	Fills []color.Color
	Draws []DrawCall
	Texts []TextCall
	Rects int
}

// NewImage creates an empty w x h image.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.W, i.H
}

// Fill records a fill of the entire image with the given color.
func (i *Image) Fill(clr color.Color) {
	i.Fills = append(i.Fills, clr)
}

// Clear forgets everything drawn so far.
func (i *Image) Clear() {
	i.Fills = nil
	i.Draws = nil
	i.Texts = nil
	i.Rects = 0
}

// DrawImage records the draw and its translation.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := DrawCall{Src: src.(*Image)}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			call.X, call.Y = g.TX, g.TY
			call.FlipX = g.SX < 0
		}
	}
	i.Draws = append(i.Draws, call)
}

// GeoM tracks a scale followed by a translation, which is all the game uses.
type GeoM struct {
	SX, SY float64
	TX, TY float64
	scaled bool
}

// Translate shifts the image by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Scale scales the image by (sx, sy), including the translation so far.
func (g *GeoM) Scale(sx, sy float64) {
	if !g.scaled {
		g.SX, g.SY, g.scaled = 1, 1, true
	}
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Renderer implements render.Renderer using a fixed-width font estimate.
type Renderer struct {
	CharWidth, CharHeight float64
}

// NewRenderer creates a headless renderer.
func NewRenderer() *Renderer {
	return &Renderer{CharWidth: 6, CharHeight: 13}
}

// FillRect records a filled rectangle on the destination image.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	dst.(*Image).Rects++
}

// DrawText records text drawn with its top-left corner at (x, y).
func (r *Renderer) DrawText(dst render.Image, str string, x, y float64, clr color.Color) {
	img := dst.(*Image)
	img.Texts = append(img.Texts, TextCall{Text: str, X: x, Y: y})
}

// MeasureText estimates the size of a single line of text from the
// character cell size.
func (r *Renderer) MeasureText(str string) (width, height float64) {
	return float64(len(str)) * r.CharWidth, r.CharHeight
}

// Input implements render.InputManager with keys set by the caller.
type Input struct {
	State render.KeyState
}

// Press holds the given keys in addition to the current ones.
func (in *Input) Press(keys ...render.Key) {
	for _, k := range keys {
		in.State[k] = true
	}
}

// ReleaseAll releases every key.
func (in *Input) ReleaseAll() {
	in.State = render.KeyState{}
}

// IsKeyPressed checks if a key is currently held.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.State.Pressed(key)
}

// FileLoader loads images from disk, reading only the header to learn the
// size. Missing or undecodable files are an error.
type FileLoader struct{}

// LoadImage reads the size of the PNG at path.
func (FileLoader) LoadImage(path string) (render.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &Image{Name: path, W: cfg.Width, H: cfg.Height}, nil
}

// StubLoader returns images of a fixed size without touching the disk.
// Sizes overrides the size for specific paths; Missing paths fail.
type StubLoader struct {
	W, H    int
	Sizes   map[string]image.Point
	Missing map[string]bool
	Loaded  []string // Every path requested, in order
}

// LoadImage records the request and returns an image of the stub size.
func (l *StubLoader) LoadImage(path string) (render.Image, error) {
	l.Loaded = append(l.Loaded, path)
	if l.Missing[path] {
		return nil, fmt.Errorf("open %s: no such file or directory", path)
	}
	if p, ok := l.Sizes[path]; ok {
		return &Image{Name: path, W: p.X, H: p.Y}, nil
	}
	return &Image{Name: path, W: l.W, H: l.H}, nil
}
