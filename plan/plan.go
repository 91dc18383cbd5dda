// Package plan loads and executes pipetting-plan documents against an
// in-memory labware, so a sequence of steps can be checked for overflow
// and underflow before it runs on real hardware.
package plan

import (
	"fmt"
	"os"

	"github.com/iancoleman/strcase"
	"sigs.k8s.io/yaml"

	"labsim/labware"
)

// Step actions.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionLog    = "log"
)

// LabwareSpec declares the container a plan runs against, either by
// preset name or by explicit geometry.
type LabwareSpec struct {
	Name      string   `json:"name"`
	Preset    string   `json:"preset,omitempty"`
	Rows      int      `json:"rows,omitempty"`
	Columns   int      `json:"columns,omitempty"`
	MinVolume float64  `json:"minVolume,omitempty"`
	MaxVolume float64  `json:"maxVolume,omitempty"`
	Initial   *float64 `json:"initial,omitempty"`
}

// Step is one pipetting operation. Add and remove steps address wells
// with either a single broadcast volume or one volume per well; log
// steps only checkpoint the current state.
type Step struct {
	Name    string    `json:"name,omitempty"`
	Action  string    `json:"action"`
	Wells   []string  `json:"wells,omitempty"`
	Volume  *float64  `json:"volume,omitempty"`
	Volumes []float64 `json:"volumes,omitempty"`
}

// Document is a complete pipetting plan.
type Document struct {
	Labware LabwareSpec `json:"labware"`
	Steps   []Step      `json:"steps"`
}

// Load reads and validates a plan file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML plan document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	if d.Labware.Name == "" {
		return fmt.Errorf("plan labware needs a name")
	}
	if d.Labware.Preset == "" && (d.Labware.Rows == 0 || d.Labware.Columns == 0) {
		return fmt.Errorf("plan labware %q needs a preset or explicit rows and columns", d.Labware.Name)
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("plan has no steps")
	}
	for i, s := range d.Steps {
		switch s.Action {
		case ActionAdd, ActionRemove:
			if len(s.Wells) == 0 {
				return fmt.Errorf("step %d: %s needs at least one well", i+1, s.Action)
			}
			if (s.Volume == nil) == (len(s.Volumes) == 0) {
				return fmt.Errorf("step %d: %s needs exactly one of volume or volumes", i+1, s.Action)
			}
			if len(s.Volumes) > 0 && len(s.Volumes) != len(s.Wells) {
				return fmt.Errorf("step %d: got %d volumes for %d wells", i+1, len(s.Volumes), len(s.Wells))
			}
		case ActionLog:
			if len(s.Wells) > 0 || s.Volume != nil || len(s.Volumes) > 0 {
				return fmt.Errorf("step %d: log takes no wells or volumes", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, s.Action)
		}
	}
	return nil
}

// Label derives the history label for the step: the step name
// normalized to snake_case, or empty when the step is unnamed.
func (s Step) Label() string {
	if s.Name == "" {
		return ""
	}
	return strcase.ToSnake(s.Name)
}

func (s Step) volumes() labware.Volumes {
	if s.Volume != nil {
		return labware.Scalar(*s.Volume)
	}
	return labware.Sequence(s.Volumes...)
}

// Build constructs the labware a plan declares. Preset names are
// resolved against extra first, then the built-in catalog.
func (ls LabwareSpec) Build(extra map[string]labware.Preset) (*labware.Labware, error) {
	var opts []labware.Option
	if ls.Initial != nil {
		opts = append(opts, labware.WithUniformVolume(*ls.Initial))
	}
	if ls.Preset != "" {
		p, ok := extra[ls.Preset]
		if !ok {
			p, ok = labware.PresetNamed(ls.Preset)
		}
		if !ok {
			return nil, fmt.Errorf("unknown labware preset %q", ls.Preset)
		}
		return p.New(ls.Name, opts...)
	}
	return labware.New(ls.Name, ls.Rows, ls.Columns, ls.MinVolume, ls.MaxVolume, opts...)
}
