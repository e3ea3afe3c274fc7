package folio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS and TPS in the top-left corner. The
// text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	ready      bool
}

func newFPSWidget() *fpsWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsWidget{img: ebiten.NewImage(100, 32)}
}

func (w *fpsWidget) update(dt float64) {
	w.lastUpdate += dt
	if w.ready && w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0
	w.ready = true

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	w.update(1.0 / max(ebiten.ActualFPS(), 1))
	screen.DrawImage(w.img, nil)
}
