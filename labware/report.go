package labware

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Report renders the full labware history: the name, then one section
// per history entry with its label (if any) and the volume grid rounded
// to one decimal place.
func (l *Labware) Report() string {
	var b strings.Builder
	b.WriteString(l.name)
	for _, e := range l.history {
		if e.Label != "" {
			b.WriteByte('\n')
			b.WriteString(e.Label)
		}
		b.WriteByte('\n')
		b.WriteString(formatGrid(e.Volumes))
		b.WriteByte('\n')
	}
	return b.String()
}

// String shows the name and the current volume grid.
func (l *Labware) String() string {
	return l.name + "\n" + formatGrid(l.volumes)
}

func formatGrid(grid [][]decimal.Decimal) string {
	rows := make([]string, len(grid))
	for r, row := range grid {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = v.Round(1).StringFixed(1)
		}
		rows[r] = "[" + strings.Join(cells, " ") + "]"
	}
	return strings.Join(rows, "\n")
}
