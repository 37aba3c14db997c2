package live

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a resizable, transparent desktop window showing the globe.
// It blocks until the window closes.
func RunWindow(g *Globe, title string, w, h int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TPS)
	return ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: true})
}
