package drawing

// Layout holds the page geometry of a drawing sheet. Distances are pixels,
// scales are pixels per inch.
type Layout struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Margin float64 `toml:"margin"`
	// RuleEnd is the x where the title rule stops.
	RuleEnd  float64 `toml:"rule_end"`
	Subtitle string  `toml:"subtitle"`

	OrthoScale    float64 `toml:"ortho_scale"`
	OrthoX        float64 `toml:"ortho_x"`
	OrthoSpacing  float64 `toml:"ortho_spacing"`
	OrthoBaseline float64 `toml:"ortho_baseline"`

	IsoScale   float64 `toml:"iso_scale"`
	IsoCenterX float64 `toml:"iso_center_x"`

	ExplodeScale float64 `toml:"explode_scale"`
	// ExplodeDistance overrides each concept's drawing explode step when
	// positive.
	ExplodeDistance float64 `toml:"explode_distance"`

	FlatScale       float64 `toml:"flat_scale"`
	FlatX           float64 `toml:"flat_x"`
	FlatGap         float64 `toml:"flat_gap"`
	FlatColumnLimit float64 `toml:"flat_column_limit"`
	FlatColumnStep  float64 `toml:"flat_column_step"`

	HoleRadius   float64 `toml:"hole_radius"`
	HoleDiameter float64 `toml:"hole_diameter"` // inches, for the flat-pattern note
}

// DefaultLayout returns the standard 1200x1600 drawing sheet.
func DefaultLayout() Layout {
	return Layout{
		Width:    1200,
		Height:   1600,
		Margin:   50,
		RuleEnd:  1150,
		Subtitle: "Sheet Metal Bench - SendCutSend Fabrication",

		OrthoScale:    2.0,
		OrthoX:        100,
		OrthoSpacing:  350,
		OrthoBaseline: 250,

		IsoScale:   2.5,
		IsoCenterX: 400,

		ExplodeScale: 2.5,

		FlatScale:       1.5,
		FlatX:           100,
		FlatGap:         80,
		FlatColumnLimit: 1400,
		FlatColumnStep:  400,

		HoleRadius:   2,
		HoleDiameter: 0.25,
	}
}
