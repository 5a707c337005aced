package render

import (
	"fmt"
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Cell
// values past the end of the palette are an invariant violation.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		if int(c) >= len(palette) {
			panic(fmt.Sprintf("render: cell %d value %d has no palette entry (palette size %d)", i, c, len(palette)))
		}
		base := i * 4
		col := palette[c]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Projector maps a cell buffer onto a row-major RGBA pixel buffer of the
// same dimensions. It never writes to the cells it reads.
type Projector struct {
	w, h int
	buf  []byte
}

// NewProjector allocates a pixel buffer for a w×h grid.
func NewProjector(w, h int) *Projector {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: invalid projector size %dx%d", w, h))
	}
	return &Projector{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Project overwrites the pixel buffer from cells. A cell buffer whose length
// differs from the projector's grid is a programming error and panics.
func (p *Projector) Project(cells []uint8, palette []color.RGBA) {
	if len(cells) != p.w*p.h {
		panic(fmt.Sprintf("render: cell buffer has %d cells, projector expects %dx%d", len(cells), p.w, p.h))
	}
	fillPaletteRGBA(p.buf, cells, palette)
}

// Pixels returns the last projection. The slice is owned by the projector
// and must be treated as read-only; it changes on the next Project call.
func (p *Projector) Pixels() []byte { return p.buf }

// Image views the pixel buffer as an image without copying.
func (p *Projector) Image() *image.RGBA {
	return &image.RGBA{Pix: p.buf, Stride: 4 * p.w, Rect: image.Rect(0, 0, p.w, p.h)}
}

// Size returns the grid dimensions the projector was built for.
func (p *Projector) Size() (int, int) { return p.w, p.h }
