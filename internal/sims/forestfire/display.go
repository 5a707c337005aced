package forestfire

import "image/color"

var forestPalette = []color.RGBA{
	Empty:   {R: 121, G: 104, B: 60, A: 255},
	Tree:    {R: 34, G: 102, B: 52, A: 255},
	Burning: {R: 228, G: 111, B: 40, A: 255},
	Burned:  {R: 46, G: 43, B: 42, A: 255},
}

// Palette returns the opaque color of each state, indexed by State.
func Palette() []color.RGBA {
	return append([]color.RGBA(nil), forestPalette...)
}

// Palette exposes the color table used for rendering the forest.
func (f *Forest) Palette() []color.RGBA { return forestPalette }

// ColorOf returns the color of a single state.
func ColorOf(s State) color.RGBA {
	if !s.Valid() {
		return color.RGBA{}
	}
	return forestPalette[s]
}
