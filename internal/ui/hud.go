//go:build ebiten

package ui

import (
	"image/color"

	"fireca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter and status panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width}
}

// Width returns the panel width, zero when disabled.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached rows from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.lines = buildLines(h.sim, paused)
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	cols := (h.width - 2*panelPadding) / glyphWidth
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		if y > h.lastHeight {
			return
		}
		switch line.kind {
		case lineTitle:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		case lineHeading:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 228, G: 111, B: 40, A: 255})
		case lineEntry:
			label := fitLabel(line.label, line.value, cols)
			text.Draw(h.panel, label+" "+line.value, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
		y += lineHeight
	}
}

const (
	panelPadding = 12
	lineHeight   = 16
	glyphWidth   = 7
)
