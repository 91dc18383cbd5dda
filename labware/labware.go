// Package labware models the liquid content of a gridded labware
// container (well plate, tube rack, trough) as pipetting operations are
// applied to it. Every mutation is bounds-checked against the working
// volume range and recorded in an append-only history, so a plan can be
// validated in full before it is ever sent to hardware.
package labware

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const rowLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Index addresses a single well by zero-based grid coordinates.
type Index struct {
	Row    int
	Column int
}

// Entry is one history record: the operation label and a snapshot of
// every well volume after the operation committed.
type Entry struct {
	Label   string
	Volumes [][]decimal.Decimal
}

// Labware is a single container with an addressable grid of wells.
// It is not safe for concurrent mutation; callers must serialize
// Add/Remove/Log on a given instance.
type Labware struct {
	name      string
	rows      int
	columns   int
	minVolume decimal.Decimal
	maxVolume decimal.Decimal

	wells     []string
	indices   map[string]Index
	positions map[string]int

	volumes [][]decimal.Decimal
	history []Entry
}

type settings struct {
	uniform *decimal.Decimal
	grid    [][]float64
}

// Option adjusts the initial state of a new Labware.
type Option func(*settings)

// WithUniformVolume fills every well with the same starting volume.
func WithUniformVolume(v float64) Option {
	return func(s *settings) {
		d := decimal.NewFromFloat(v)
		s.uniform = &d
	}
}

// WithVolumeGrid sets per-well starting volumes. The grid shape must
// match the declared rows and columns exactly.
func WithVolumeGrid(grid [][]float64) Option {
	return func(s *settings) {
		s.grid = grid
	}
}

// New builds a labware of rows x columns wells with the given working
// volume range. Wells start at zero unless an option says otherwise,
// and the starting state is recorded as history entry "initial".
func New(name string, rows, columns int, minVolume, maxVolume float64, opts ...Option) (*Labware, error) {
	if rows < 1 || rows > len(rowLetters) {
		return nil, fmt.Errorf("labware %q: rows must be between 1 and %d, got %d", name, len(rowLetters), rows)
	}
	if columns < 1 {
		return nil, fmt.Errorf("labware %q: columns must be at least 1, got %d", name, columns)
	}
	lo := decimal.NewFromFloat(minVolume)
	hi := decimal.NewFromFloat(maxVolume)
	if lo.GreaterThan(hi) {
		return nil, fmt.Errorf("labware %q: min volume %s exceeds max volume %s", name, lo, hi)
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.uniform != nil && s.grid != nil {
		return nil, fmt.Errorf("labware %q: uniform volume and volume grid are mutually exclusive", name)
	}

	volumes := make([][]decimal.Decimal, rows)
	for r := range volumes {
		volumes[r] = make([]decimal.Decimal, columns)
	}
	switch {
	case s.grid != nil:
		if len(s.grid) != rows {
			return nil, fmt.Errorf("labware %q: volume grid has %d rows, want %d", name, len(s.grid), rows)
		}
		for r, row := range s.grid {
			if len(row) != columns {
				return nil, fmt.Errorf("labware %q: volume grid row %d has %d columns, want %d", name, r, len(row), columns)
			}
			for c, v := range row {
				volumes[r][c] = decimal.NewFromFloat(v)
			}
		}
	case s.uniform != nil:
		for r := range volumes {
			for c := range volumes[r] {
				volumes[r][c] = *s.uniform
			}
		}
	}

	l := &Labware{
		name:      name,
		rows:      rows,
		columns:   columns,
		minVolume: lo,
		maxVolume: hi,
		wells:     make([]string, 0, rows*columns),
		indices:   make(map[string]Index, rows*columns),
		positions: make(map[string]int, rows*columns),
		volumes:   volumes,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			id := fmt.Sprintf("%c%02d", rowLetters[r], c+1)
			l.wells = append(l.wells, id)
			l.indices[id] = Index{Row: r, Column: c}
			// column-major ordinal used by position-addressed instruments
			l.positions[id] = 1 + c*rows + r
		}
	}
	l.history = []Entry{{Label: "initial", Volumes: copyGrid(volumes)}}
	return l, nil
}

// Name returns the labware identifier.
func (l *Labware) Name() string { return l.name }

// Rows returns the number of grid rows.
func (l *Labware) Rows() int { return l.rows }

// Columns returns the number of grid columns.
func (l *Labware) Columns() int { return l.columns }

// MinVolume returns the lower working volume bound.
func (l *Labware) MinVolume() decimal.Decimal { return l.minVolume }

// MaxVolume returns the upper working volume bound.
func (l *Labware) MaxVolume() decimal.Decimal { return l.maxVolume }

// Wells returns the well ids in row-major order.
func (l *Labware) Wells() []string {
	out := make([]string, len(l.wells))
	copy(out, l.wells)
	return out
}

// Indices returns the mapping of well ids to grid coordinates.
func (l *Labware) Indices() map[string]Index {
	out := make(map[string]Index, len(l.indices))
	for id, idx := range l.indices {
		out[id] = idx
	}
	return out
}

// Positions returns the mapping of well ids to 1-based column-major
// position numbers.
func (l *Labware) Positions() map[string]int {
	out := make(map[string]int, len(l.positions))
	for id, p := range l.positions {
		out[id] = p
	}
	return out
}

// Volumes returns a copy of the current volume ledger.
func (l *Labware) Volumes() [][]decimal.Decimal {
	return copyGrid(l.volumes)
}

// VolumeOf returns the current volume of a single well.
func (l *Labware) VolumeOf(well string) (decimal.Decimal, error) {
	idx, ok := l.indices[well]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("unknown well %q", well)
	}
	return l.volumes[idx.Row][idx.Column], nil
}

// History returns the labeled volume snapshots in order, starting with
// the "initial" entry. The snapshots are independent copies.
func (l *Labware) History() []Entry {
	out := make([]Entry, len(l.history))
	for i, e := range l.history {
		out[i] = Entry{Label: e.Label, Volumes: copyGrid(e.Volumes)}
	}
	return out
}

// Add adds volumes to wells, applying each (well, volume) pair in the
// given order. The first well pushed above the maximum aborts the batch
// with an OverflowError; earlier pairs in the batch stay applied and no
// history entry is recorded. On success the new state is logged under
// label.
func (l *Labware) Add(wells []string, volumes Volumes, label string) error {
	vols, err := volumes.expand(len(wells))
	if err != nil {
		return err
	}
	for i, well := range wells {
		idx, ok := l.indices[well]
		if !ok {
			return fmt.Errorf("step %q: unknown well %q", label, well)
		}
		next := l.volumes[idx.Row][idx.Column].Add(vols[i])
		l.volumes[idx.Row][idx.Column] = next
		if next.GreaterThan(l.maxVolume) {
			return &OverflowError{Well: well, Label: label}
		}
	}
	l.Log(label)
	return nil
}

// Remove subtracts volumes from wells. Same contract as Add, except the
// bound checked is the minimum volume and the failure is an
// UnderflowError.
func (l *Labware) Remove(wells []string, volumes Volumes, label string) error {
	vols, err := volumes.expand(len(wells))
	if err != nil {
		return err
	}
	for i, well := range wells {
		idx, ok := l.indices[well]
		if !ok {
			return fmt.Errorf("step %q: unknown well %q", label, well)
		}
		next := l.volumes[idx.Row][idx.Column].Sub(vols[i])
		l.volumes[idx.Row][idx.Column] = next
		if next.LessThan(l.minVolume) {
			return &UnderflowError{Well: well, Label: label}
		}
	}
	l.Log(label)
	return nil
}

// Log appends a snapshot of the current volumes to the history under
// the given label. Useful for checkpointing without a volume change.
func (l *Labware) Log(label string) {
	l.history = append(l.history, Entry{Label: label, Volumes: copyGrid(l.volumes)})
}

func copyGrid(grid [][]decimal.Decimal) [][]decimal.Decimal {
	out := make([][]decimal.Decimal, len(grid))
	for r, row := range grid {
		out[r] = make([]decimal.Decimal, len(row))
		copy(out[r], row)
	}
	return out
}
