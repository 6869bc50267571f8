// Package export writes terminal canvases to image formats.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/warp/internal/viz"
)

// CanvasToSVG draws each lit braille dot as a circle, scale pixels apart.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}
	w, h := canvas.Dots()
	width, height := float64(w)*scale, float64(h)*scale
	radius := scale * 0.4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#000000"/>
<g fill="#ffffff">
`, width, height, width, height)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, radius)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func WriteSVG(w io.Writer, canvas *viz.Canvas, scale float64) error {
	_, err := io.WriteString(w, CanvasToSVG(canvas, scale))
	return err
}

func SaveSVG(path string, canvas *viz.Canvas, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, canvas, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
