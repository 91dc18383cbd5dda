package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labsim/labware"
)

const validPlan = `
labware:
  name: assay
  preset: 96-well
  initial: 10
steps:
  - name: Fill Wells
    action: add
    wells: [A01, A02]
    volume: 50
  - action: remove
    wells: [A01]
    volumes: [20]
  - name: After Transfer
    action: log
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(validPlan))
	require.NoError(t, err)

	assert.Equal(t, "assay", doc.Labware.Name)
	assert.Equal(t, "96-well", doc.Labware.Preset)
	require.NotNil(t, doc.Labware.Initial)
	assert.Equal(t, 10.0, *doc.Labware.Initial)

	require.Len(t, doc.Steps, 3)
	assert.Equal(t, ActionAdd, doc.Steps[0].Action)
	assert.Equal(t, []string{"A01", "A02"}, doc.Steps[0].Wells)
	require.NotNil(t, doc.Steps[0].Volume)
	assert.Equal(t, 50.0, *doc.Steps[0].Volume)
	assert.Equal(t, []float64{20}, doc.Steps[1].Volumes)
	assert.Equal(t, ActionLog, doc.Steps[2].Action)
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "fill_wells", Step{Name: "Fill Wells"}.Label())
	assert.Equal(t, "after_transfer", Step{Name: "After Transfer"}.Label())
	assert.Equal(t, "", Step{}.Label())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "labware without a name",
			doc: `
labware:
  preset: 96-well
steps:
  - {action: log}
`,
		},
		{
			name: "labware without geometry",
			doc: `
labware:
  name: assay
steps:
  - {action: log}
`,
		},
		{
			name: "no steps",
			doc: `
labware:
  name: assay
  preset: 96-well
`,
		},
		{
			name: "unknown action",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: shake, wells: [A01], volume: 5}
`,
		},
		{
			name: "add without wells",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: add, volume: 5}
`,
		},
		{
			name: "add without volumes",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: add, wells: [A01]}
`,
		},
		{
			name: "add with both volume forms",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: add, wells: [A01], volume: 5, volumes: [5]}
`,
		},
		{
			name: "volume count mismatch",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: add, wells: [A01, A02], volumes: [5]}
`,
		},
		{
			name: "log with wells",
			doc: `
labware: {name: assay, preset: 96-well}
steps:
  - {action: log, wells: [A01]}
`,
		},
		{
			name: "unknown field",
			doc: `
labware: {name: assay, preset: 96-well, shape: round}
steps:
  - {action: log}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLabwareSpecBuild(t *testing.T) {
	t.Run("built-in preset", func(t *testing.T) {
		lw, err := LabwareSpec{Name: "assay", Preset: "96-well"}.Build(nil)
		require.NoError(t, err)
		assert.Equal(t, 8, lw.Rows())
		assert.Equal(t, 12, lw.Columns())
	})

	t.Run("extra presets shadow built-ins", func(t *testing.T) {
		extra := map[string]labware.Preset{
			"96-well": {Rows: 2, Columns: 2, MaxVolume: 50},
		}
		lw, err := LabwareSpec{Name: "assay", Preset: "96-well"}.Build(extra)
		require.NoError(t, err)
		assert.Equal(t, 2, lw.Rows())
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := LabwareSpec{Name: "assay", Preset: "moon-plate"}.Build(nil)
		assert.Error(t, err)
	})

	t.Run("explicit geometry with initial volume", func(t *testing.T) {
		initial := 20.0
		spec := LabwareSpec{Name: "rack", Rows: 2, Columns: 3, MaxVolume: 100, Initial: &initial}
		lw, err := spec.Build(nil)
		require.NoError(t, err)

		v, err := lw.VolumeOf("B03")
		require.NoError(t, err)
		f, _ := v.Float64()
		assert.Equal(t, 20.0, f)
	})
}
