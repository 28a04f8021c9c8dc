package dock

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Screenshot queues a labeled screenshot of the surface, captured at the end
// of the next Tick. The PNG is written to ScreenshotDir with a timestamped
// file name.
func (d *Dock) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// flushScreenshots writes the rendered surface once for every queued label.
// Files are named <time>-<seq>-<label>.png; seq counts shots over the life
// of the dock so labels repeated within a second never collide.
func (d *Dock) flushScreenshots() {
	if len(d.screenshotQueue) == 0 {
		return
	}
	labels := d.screenshotQueue
	d.screenshotQueue = d.screenshotQueue[:0]

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		Logger().Error("screenshot dir", "dir", d.ScreenshotDir, "err", err)
		return
	}
	stamp := time.Now().Format("20060102-150405")
	for _, label := range labels {
		d.shotSeq++
		name := fmt.Sprintf("%s-%03d-%s.png", stamp, d.shotSeq, fileLabel(label))
		path := filepath.Join(d.ScreenshotDir, name)
		if err := WritePNG(path, d.surface); err != nil {
			Logger().Error("screenshot failed", "label", label, "err", err)
			continue
		}
		Logger().Debug("screenshot", "path", path)
	}
}

// WritePNG encodes the surface as a straight-alpha PNG file at path.
func WritePNG(path string, s *Surface) error {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, s.NRGBA()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// fileLabel maps a screenshot label onto the ASCII letters, digits, '-' and
// '.'; anything else becomes '_'. Blank labels become "shot".
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "shot"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (r == '-' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
}
