package config

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/hopsim/internal/hopfield"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Dimension = 32
	cfg.Domain = "continuous"
	cfg.States = 3
	cfg.Workers = 2
	cfg.Seed = 41
	cfg.GeneratorSeed = 43
	cfg.MaxUnstableUnits = 2
	cfg.LowerBound = -0.5
	cfg.UpperBound = 0.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative states", func(c *Config) { c.States = -1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown domain", func(c *Config) { c.Domain = "ternary" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestNetworkConfigTranslation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dimension = 24
	cfg.Domain = "binary"
	cfg.Seed = 5
	cfg.MaxIterations = 7
	cfg.MaxUnstableUnits = 1
	cfg.ForceSymmetric = false

	netCfg, err := cfg.NetworkConfig()
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}

	if netCfg.Dimension != 24 || netCfg.Domain != hopfield.DomainBinary {
		t.Errorf("dimension/domain mismatch: %+v", netCfg)
	}
	if netCfg.Seed != 5 || netCfg.MaxIterations != 7 || netCfg.MaxUnstableUnits != 1 {
		t.Errorf("run parameter mismatch: %+v", netCfg)
	}
	if netCfg.ForceSymmetric || !netCfg.ForceZeroDiagonal {
		t.Errorf("clean flags mismatch: %+v", netCfg)
	}
}

func TestGeneratorConfigTranslation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dimension = 12
	cfg.Domain = "continuous"
	cfg.LowerBound = -2
	cfg.UpperBound = 2
	cfg.GeneratorSeed = 17

	genCfg, err := cfg.GeneratorConfig()
	if err != nil {
		t.Fatalf("translation failed: %v", err)
	}

	want := hopfield.GeneratorConfig{Dimension: 12, Domain: hopfield.DomainContinuous, LowerBound: -2, UpperBound: 2, Seed: 17}
	if genCfg != want {
		t.Errorf("got %+v, want %+v", genCfg, want)
	}
}

func TestPresetsValidateAndCopy(t *testing.T) {
	for name := range Presets {
		t.Run(name, func(t *testing.T) {
			preset := GetPreset(name)
			if preset == nil {
				t.Fatal("preset lookup failed")
			}
			if err := preset.Validate(); err != nil {
				t.Errorf("preset does not validate: %v", err)
			}

			// GetPreset hands out a copy, not the shared entry.
			preset.Dimension = -99
			if Presets[name].Dimension == -99 {
				t.Error("mutating a preset copy changed the shared table")
			}
		})
	}

	if GetPreset("no-such-preset") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresetsSortedAndComplete(t *testing.T) {
	names := ListPresets()

	if len(names) != len(Presets) {
		t.Fatalf("expected %d names, got %d", len(Presets), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := Presets[name]; !ok {
			t.Errorf("listed name %q is not a preset", name)
		}
	}
}
