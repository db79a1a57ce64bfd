// SPDX-License-Identifier: MIT

// Package canvas presents a depth field to people: as ASCII art for a
// terminal or as a grey-scale PNG.
//
// Both renderers share one mapping. A hit at distance d within the draw
// distance D has brightness 1 − d/D (near is bright); a miss, or a hit
// beyond D, is background.
package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/raydepth/depth"
)

// Ramp lists ASCII glyphs from nearest to farthest.
const Ramp = "@%#*+=-:."

// Background is the glyph for pixels with no visible hit.
const Background = ' '

// ErrEmptyField is returned when there is nothing to encode.
var ErrEmptyField = errors.New("canvas: depth field is empty")

// Brightness maps a sample to [0, 1]: 1 − d/drawDistance for visible hits,
// 0 for background. A non-positive drawDistance makes everything background.
func Brightness(s depth.Sample, drawDistance float64) float64 {
	if !s.Hit || !(drawDistance > 0) || s.Distance > drawDistance {
		return 0
	}

	return 1 - s.Distance/drawDistance
}

// Glyph returns the ASCII character for one sample.
func Glyph(s depth.Sample, drawDistance float64) byte {
	if !s.Hit || !(drawDistance > 0) || s.Distance > drawDistance {
		return Background
	}
	k := int(s.Distance / drawDistance * float64(len(Ramp)))
	if k >= len(Ramp) {
		k = len(Ramp) - 1
	}

	return Ramp[k]
}

// Shade renders the field as one string per row.
func Shade(f *depth.Field, drawDistance float64) []string {
	rows, cols := f.Shape()
	lines := make([]string, rows)
	buf := make([]byte, cols)
	for j := 0; j < rows; j++ {
		row, _ := f.Row(j) // j in range
		for i, s := range row {
			buf[i] = Glyph(s, drawDistance)
		}
		lines[j] = string(buf)
	}

	return lines
}

// Render writes Shade(f, drawDistance) to w, one line per row.
func Render(w io.Writer, f *depth.Field, drawDistance float64) error {
	lines := Shade(f, drawDistance)
	if len(lines) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return fmt.Errorf("canvas: render: %w", err)
	}

	return nil
}

// rasterize paints the field into a gg context, one pixel per sample.
// The caller owns the context and must Close it.
func rasterize(f *depth.Field, drawDistance float64) (*gg.Context, error) {
	rows, cols := f.Shape()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyField
	}
	dc := gg.NewContext(cols, rows)
	f.Each(func(j, i int, s depth.Sample) {
		v := Brightness(s, drawDistance)
		dc.SetPixel(i, j, gg.RGB(v, v, v))
	})

	return dc, nil
}

// WritePNG encodes the field as a grey-scale PNG: width = columns,
// height = rows, near hits bright, background black.
func WritePNG(w io.Writer, f *depth.Field, drawDistance float64) error {
	dc, err := rasterize(f, drawDistance)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err = dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}

	return nil
}

// SavePNG writes the PNG produced by WritePNG to path.
func SavePNG(path string, f *depth.Field, drawDistance float64) error {
	dc, err := rasterize(f, drawDistance)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err = dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}

	return nil
}
