package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/hopsim/internal/hopfield"
)

func TestEnergyPlotHandlesShortHistory(t *testing.T) {
	if out := EnergyPlot(nil, 30, 4); !strings.Contains(out, "not enough samples") {
		t.Errorf("expected placeholder for empty history, got %q", out)
	}
	if out := EnergyPlot([]float64{1}, 30, 4); !strings.Contains(out, "not enough samples") {
		t.Errorf("expected placeholder for single sample, got %q", out)
	}

	out := EnergyPlot([]float64{4, 2, -1, -3, -3}, 30, 4)
	if !strings.Contains(out, "Energy") {
		t.Errorf("expected captioned chart, got %q", out)
	}
}

func TestEnergyHistogramBuckets(t *testing.T) {
	out := EnergyHistogram([]float64{-4, -4, -2, 0}, 2)
	if !strings.Contains(out, "distribution") {
		t.Errorf("expected histogram header, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("expected at least one bar, got %q", out)
	}

	flat := EnergyHistogram([]float64{-1.5, -1.5}, 4)
	if !strings.Contains(flat, "all 2 states") {
		t.Errorf("expected degenerate summary, got %q", flat)
	}

	if out := EnergyHistogram(nil, 4); !strings.Contains(out, "no energies") {
		t.Errorf("expected placeholder, got %q", out)
	}
}

func TestStateRasterShades(t *testing.T) {
	raster := StateRaster(hopfield.State{1, -1, 1, -1})
	if raster != "█ █ " {
		t.Errorf("unexpected bipolar raster %q", raster)
	}

	continuous := StateRaster(hopfield.State{0.1, 0.9})
	for _, r := range continuous {
		if r == ' ' {
			t.Errorf("positive values should render filled, got %q", continuous)
		}
	}
}

func TestBatchRasterOneRowPerState(t *testing.T) {
	out := BatchRaster([]hopfield.State{{1, 1}, {-1, -1}, {1, -1}})
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected 3 rows, got %d in %q", got, out)
	}
}
