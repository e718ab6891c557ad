package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// EnergyPlot renders a per-sweep energy trace as an ascii chart.
func EnergyPlot(history []float64, width, height int) string {
	if len(history) < 2 {
		return labelStyle.Render("(not enough samples to plot)")
	}
	chart := asciigraph.Plot(history,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("Energy"))
	return graphStyle.Render(chart)
}

// EnergyHistogram renders the distribution of final energies across a
// batch as horizontal bars, one per bucket.
func EnergyHistogram(energies []float64, buckets int) string {
	if len(energies) == 0 || buckets < 1 {
		return labelStyle.Render("(no energies)")
	}

	min, max := energies[0], energies[0]
	for _, e := range energies {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	width := max - min
	if width == 0 {
		return labelStyle.Render(fmt.Sprintf("all %d states at energy %.4f", len(energies), min))
	}

	counts := make([]int, buckets)
	for _, e := range energies {
		b := int((e - min) / width * float64(buckets))
		if b == buckets {
			b = buckets - 1
		}
		counts[b]++
	}

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Final energy distribution") + "\n")
	for i, c := range counts {
		lo := min + width*float64(i)/float64(buckets)
		bar := strings.Repeat("█", c*40/peak)
		b.WriteString(fmt.Sprintf("%10.3f │%s %d\n", lo, bar, c))
	}
	return b.String()
}
