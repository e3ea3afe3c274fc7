package folio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The PNG is written to ScreenshotDir with a
// timestamped filename.
func (p *Page) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label.
// Called at the end of Page.Draw.
func (p *Page) flushScreenshots(screen *ebiten.Image) {
	if len(p.screenshotQueue) == 0 {
		return
	}
	defer func() { p.screenshotQueue = p.screenshotQueue[:0] }()

	if err := os.MkdirAll(p.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: mkdir %s: %v", p.ScreenshotDir, err)
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range p.screenshotQueue {
		path := filepath.Join(p.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("screenshot: %v", err)
		}
	}
}

// readNRGBA copies screen into a straight-alpha image.
func readNRGBA(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
