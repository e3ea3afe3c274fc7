// Package folio is the interactivity layer of a portfolio page, rendered
// with [Ebitengine].
//
// A [Page] owns a virtual scrollable [Document] made of sections and draws,
// every frame, a drifting constellation backdrop ([ParticleField]), the
// page content, a draggable [Scrollbar] and a lagging custom [Cursor].
// Wheel input glides through a [SmoothScroller] (via [gween]) and sections
// reveal, pin or parallax through [ScrollTrigger]s.
//
// # Quick start
//
//	page, err := folio.NewPage(folio.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := folio.Run(page, folio.RunConfig{
//		Title: "Portfolio", Width: 1280, Height: 800, Resizable: true,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// Page implements [ebiten.Game], so it can also be embedded in a custom
// game loop by calling Layout, Update and Draw directly.
//
// # Frame model
//
// Ebitengine calls Layout before every Update and Draw. A size change
// re-initializes the particle field, the scrollbar thumb and every trigger
// right there, so the next frame never renders against stale bounds.
// Update handles input, smooth scrolling, triggers and the cursor; Draw
// advances the particle simulation one step and renders.
//
// # Scrollbar
//
// The thumb offset is a linear function of the scroll offset and a thumb
// drag is its exact inverse. Dragging only writes the scroll offset; the
// document's scroll listeners then move the thumb. Degenerate layouts
// (nothing to scroll, thumb as tall as the track) rest the thumb at 0.
//
// # Diagnostics
//
// [Page.SetDebugMode] logs per-frame timing to stderr, [Page.Screenshot]
// writes PNGs and [LoadTestScript] drives a page from a JSON script of
// clicks, drags, wheel steps, resizes and screenshots.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package folio
