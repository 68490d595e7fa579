package game

import (
	"chosenoffset.com/abacwrsed/internal/render"
)

// Backend bundles the render services the game runs on.
type Backend struct {
	Renderer render.Renderer
	Input    render.InputManager
	Loader   render.ResourceLoader
}
