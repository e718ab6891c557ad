package config

import "sort"

// Presets are named run configurations covering the usual exploration
// shapes: small quick runs, larger batches, and loose-tolerance runs for
// landscapes that never fully settle.
var Presets = map[string]*Config{
	"small": {
		Dimension: 16, Domain: "bipolar", States: 5, Workers: 2,
		RandomWeights: true, ForceSymmetric: true, ForceZeroDiagonal: true,
		MaxIterations: 50, LowerBound: -1, UpperBound: 1,
	},
	"large": {
		Dimension: 256, Domain: "bipolar", States: 100, Workers: 8,
		RandomWeights: true, ForceSymmetric: true, ForceZeroDiagonal: true,
		MaxIterations: 100, LowerBound: -1, UpperBound: 1,
	},
	"binary": {
		Dimension: 64, Domain: "binary", States: 20, Workers: 4,
		RandomWeights: true, ForceSymmetric: true, ForceZeroDiagonal: true,
		MaxIterations: 100, LowerBound: 0, UpperBound: 1,
	},
	"loose": {
		Dimension: 128, Domain: "bipolar", States: 50, Workers: 4,
		RandomWeights: true, ForceSymmetric: true, ForceZeroDiagonal: true,
		MaxIterations: 100, MaxUnstableUnits: 4, LowerBound: -1, UpperBound: 1,
	},
	"raw": {
		// Uncleaned asymmetric couplings; relaxation may cycle, so the
		// iteration cap does the bounding.
		Dimension: 64, Domain: "bipolar", States: 20, Workers: 4,
		RandomWeights: true, ForceSymmetric: false, ForceZeroDiagonal: false,
		MaxIterations: 100, LowerBound: -1, UpperBound: 1,
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns the available preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
