// Package capture writes rendered dashboard frames as PNG files.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
)

// FramePattern matches every file written by FrameName.
const FramePattern = "scadaplayer_*.png"

func FrameName(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("scadaplayer_%09d.png", frame))
}

// WritePNG encodes img in memory and writes it to filename in one go.
func WritePNG(filename string, img image.Image) error {
	buff := bytes.NewBuffer(nil)
	if err := png.Encode(buff, img); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, buff.Bytes(), 0o644); err != nil {
		return err
	}
	return nil
}

// Screenshot saves the current content of c to dir and returns the file name.
func Screenshot(c fyne.Canvas, dir string) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("capture-%s.png", time.Now().Format("2006-01-02-15-04-05")))
	if err := WritePNG(filename, c.Capture()); err != nil {
		return "", err
	}
	return filename, nil
}
