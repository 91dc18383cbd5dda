package labware

import "sort"

// Preset describes a common labware geometry and its working volume
// range in microliters.
type Preset struct {
	Rows      int
	Columns   int
	MinVolume float64
	MaxVolume float64
}

var presets = map[string]Preset{
	"96-well":  {Rows: 8, Columns: 12, MinVolume: 0, MaxVolume: 200},
	"384-well": {Rows: 16, Columns: 24, MinVolume: 0, MaxVolume: 80},
	"48-well":  {Rows: 6, Columns: 8, MinVolume: 0, MaxVolume: 1000},
	"24-well":  {Rows: 4, Columns: 6, MinVolume: 0, MaxVolume: 2000},
	"12-well":  {Rows: 3, Columns: 4, MinVolume: 0, MaxVolume: 4000},
	"trough":   {Rows: 1, Columns: 1, MinVolume: 1000, MaxVolume: 25000},
}

// PresetNamed looks up a built-in labware geometry.
func PresetNamed(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a labware with the preset's geometry and bounds.
func (p Preset) New(name string, opts ...Option) (*Labware, error) {
	return New(name, p.Rows, p.Columns, p.MinVolume, p.MaxVolume, opts...)
}
