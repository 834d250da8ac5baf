package config

// Presets are ready-made survey scenarios. Masses are order-of-magnitude
// figures for the named target; depths are meters below the observation
// plane (negative z is down).
var Presets = map[string]*Config{
	// dense ore body ~50 m down, local ground survey
	"ore-body": {
		Source: SourceConfig{Mass: 5e9, Location: []float64{0, 0, -50}},
		Grid: GridConfig{
			XMin: -250, XMax: 250, YMin: -250, YMax: 250,
			Z: 0, NX: 51, NY: 51,
		},
		Profile: ProfileConfig{
			Start: []float64{-250, 0, 0}, End: []float64{250, 0, 0}, N: 101,
		},
		Quantity: "gz",
	},
	// large deep intrusion, regional scale
	"intrusion": {
		Source: SourceConfig{Mass: 2e13, Location: []float64{0, 0, -2000}},
		Grid: GridConfig{
			XMin: -10000, XMax: 10000, YMin: -10000, YMax: 10000,
			Z: 0, NX: 41, NY: 41,
		},
		Profile: ProfileConfig{
			Start: []float64{-10000, 0, 0}, End: []float64{10000, 0, 0}, N: 201,
		},
		Quantity: "gz",
	},
	// air-filled cavity: negative mass contrast
	"cavity": {
		Source: SourceConfig{Mass: -2.7e7, Location: []float64{0, 0, -15}},
		Grid: GridConfig{
			XMin: -60, XMax: 60, YMin: -60, YMax: 60,
			Z: 0, NX: 61, NY: 61,
		},
		Profile: ProfileConfig{
			Start: []float64{-60, 0, 0}, End: []float64{60, 0, 0}, N: 121,
		},
		Quantity: "gz",
	},
	// gradiometer pass over a shallow target
	"gradiometry": {
		Source: SourceConfig{Mass: 1e9, Location: []float64{0, 0, -30}},
		Grid: GridConfig{
			XMin: -100, XMax: 100, YMin: -100, YMax: 100,
			Z: 80, NX: 41, NY: 41,
		},
		Profile: ProfileConfig{
			Start: []float64{-100, 0, 80}, End: []float64{100, 0, 80}, N: 101,
		},
		Quantity: "tzz",
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
