package game

import (
	"chosenoffset.com/abacwrsed/internal/core/geom"
	"chosenoffset.com/abacwrsed/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.Config.Window.Background.RGBA())

	for _, o := range g.Obstacles {
		g.drawSprite(screen, o.Image, o.Rect, false)
	}
	g.drawSprite(screen, g.Player.Image, g.Player.Rect, g.Player.Flipped())

	g.drawBanner(screen)
}

// drawSprite draws img at r shifted by the camera offset.
func (g *Game) drawSprite(screen, img render.Image, r geom.Rect, flipX bool) {
	pos := g.Camera.ToScreen(r)

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	if flipX {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(r.W, 0)
	}
	opts.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, opts)
}

// drawBanner draws the welcome text centered at a quarter of the screen
// height, on its own background. It is not affected by the camera.
func (g *Game) drawBanner(screen render.Image) {
	hud := g.Config.HUD
	if hud.WelcomeText == "" || g.Renderer == nil {
		return
	}

	w, h := g.Renderer.MeasureText(hud.WelcomeText)
	x := float64(g.Config.Window.Width)/2 - w/2
	y := float64(g.Config.Window.Height)/4 - h/2

	g.Renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(h), hud.Background.RGBA())
	g.Renderer.DrawText(screen, hud.WelcomeText, x, y, hud.Foreground.RGBA())
}
