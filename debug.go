package folio

import (
	"fmt"
	"io"
	"os"
	"time"
)

var logOutput io.Writer = os.Stderr

// SetLogOutput redirects diagnostics. A nil writer restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[folio] "+format+"\n", args...)
}

// reportedPanics records handler names whose panic was already logged, so a
// handler that fails every frame logs once.
var reportedPanics = map[string]bool{}

// guard runs fn and recovers a panic so the remaining handlers in the same
// dispatch keep running.
func guard(name string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if !reportedPanics[name] {
				reportedPanics[name] = true
				logf("handler %q panicked: %v", name, r)
			}
		}
	}()
	fn()
	return true
}

// debugStats holds per-frame timing and draw metrics.
// Only populated when Page.debug is true.
type debugStats struct {
	updateTime  time.Duration
	advanceTime time.Duration
	renderTime  time.Duration
	particles   int
	links       int
	scroll      float64
	maxScroll   float64
}

// debugLog prints timing and draw stats.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	total := stats.updateTime + stats.advanceTime + stats.renderTime
	logf("update: %v | advance: %v | render: %v | total: %v",
		stats.updateTime, stats.advanceTime, stats.renderTime, total)
	logf("particles: %d | links: %d | scroll: %.1f/%.1f",
		stats.particles, stats.links, stats.scroll, stats.maxScroll)
}
