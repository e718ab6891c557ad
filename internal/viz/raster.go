package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/hopsim/internal/hopfield"
)

var shades = []rune{' ', '░', '▒', '▓', '█'}

// StateRaster renders a state as one row of cells. Units at or below zero
// render empty, positive units render filled. Continuous values map onto a
// shade ramp by magnitude.
func StateRaster(state hopfield.State) string {
	var b strings.Builder
	for _, v := range state {
		b.WriteRune(shadeFor(v))
	}
	return b.String()
}

// BatchRaster stacks one raster row per state, prefixed with its index.
func BatchRaster(states []hopfield.State) string {
	var b strings.Builder
	for i, state := range states {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%4d", i)) + " " + StateRaster(state) + "\n")
	}
	return b.String()
}

func shadeFor(v float64) rune {
	if v <= 0 {
		if v <= -1 {
			return shades[0]
		}
		return shades[1]
	}
	mag := math.Min(v, 1)
	idx := 2 + int(mag*float64(len(shades)-3))
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	return shades[idx]
}
