package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avasko/s2orbit/internal/orbit"
	"github.com/avasko/s2orbit/internal/sim"
)

const (
	DefaultSemiMajorAU  = 120.0
	DefaultEccentricity = 0.884
	DefaultPeriodYears  = 16.0
	DefaultMassSolar    = 4.154e6
	DefaultTimeScale    = sim.DefaultTimeScale
	DefaultZoom         = 0.5

	yearSeconds = 365.25 * 86400
)

type Config struct {
	Star      StarConfig `yaml:"star"`
	BlackHole HoleConfig `yaml:"black_hole"`
	Sim       SimConfig  `yaml:"sim"`
	View      ViewConfig `yaml:"view"`
}

type StarConfig struct {
	Name         string  `yaml:"name"`
	SemiMajorAU  float64 `yaml:"semi_major_au"`
	Eccentricity float64 `yaml:"eccentricity"`
	PeriodYears  float64 `yaml:"period_years"`
}

type HoleConfig struct {
	Name      string  `yaml:"name"`
	MassSolar float64 `yaml:"mass_solar"`
}

type SimConfig struct {
	TimeScale float64 `yaml:"time_scale"`
	Theme     string  `yaml:"theme"`
}

type ViewConfig struct {
	Zoom float64 `yaml:"zoom"`
}

func DefaultConfig() *Config {
	return &Config{
		Star: StarConfig{
			Name:         "S2",
			SemiMajorAU:  DefaultSemiMajorAU,
			Eccentricity: DefaultEccentricity,
			PeriodYears:  DefaultPeriodYears,
		},
		BlackHole: HoleConfig{
			Name:      "Sgr A*",
			MassSolar: DefaultMassSolar,
		},
		Sim: SimConfig{
			TimeScale: DefaultTimeScale,
			Theme:     "deepspace",
		},
		View: ViewConfig{
			Zoom: DefaultZoom,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Elements converts the star section to orbital elements in SI units.
func (c *Config) Elements(consts orbit.Constants) (orbit.Elements, error) {
	return orbit.NewElements(
		c.Star.SemiMajorAU*consts.AU,
		c.Star.Eccentricity,
		c.Star.PeriodYears*yearSeconds,
	)
}

// CentralBody converts the black hole section to a central body.
func (c *Config) CentralBody(consts orbit.Constants) orbit.CentralBody {
	return orbit.NewCentralBody(c.BlackHole.MassSolar*orbit.SolarMass, consts)
}
