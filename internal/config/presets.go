package config

var Presets = map[string]*Config{
	"s2": {
		Star:      StarConfig{Name: "S2", SemiMajorAU: 120, Eccentricity: 0.884, PeriodYears: 16},
		BlackHole: HoleConfig{Name: "Sgr A*", MassSolar: 4.154e6},
		Sim:       SimConfig{TimeScale: DefaultTimeScale, Theme: "deepspace"},
		View:      ViewConfig{Zoom: DefaultZoom},
	},
	"circular": {
		Star:      StarConfig{Name: "circular", SemiMajorAU: 120, Eccentricity: 0.0, PeriodYears: 16},
		BlackHole: HoleConfig{Name: "Sgr A*", MassSolar: 4.154e6},
		Sim:       SimConfig{TimeScale: DefaultTimeScale, Theme: "deepspace"},
		View:      ViewConfig{Zoom: DefaultZoom},
	},
	"tight": {
		Star:      StarConfig{Name: "tight", SemiMajorAU: 20, Eccentricity: 0.6, PeriodYears: 1},
		BlackHole: HoleConfig{Name: "Sgr A*", MassSolar: 4.154e6},
		Sim:       SimConfig{TimeScale: 86400, Theme: "deepspace"},
		View:      ViewConfig{Zoom: 3.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
