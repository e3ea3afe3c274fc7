package folio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig controls the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the FPS/TPS overlay.
	ShowFPS bool
	// Resizable lets the user resize the window; the page re-lays out on
	// every size change.
	Resizable bool
	// Debug logs per-frame stats.
	Debug bool
	// HideSystemCursor hides the OS cursor so only the custom one shows.
	HideSystemCursor bool
}

// Run opens a window and drives the page until the window closes. Ebitengine
// calls Layout, Update and Draw once per frame; no other scheduling exists.
func Run(page *Page, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 800
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.HideSystemCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	page.SetShowFPS(cfg.ShowFPS)
	page.SetDebugMode(cfg.Debug)

	if err := ebiten.RunGame(page); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
