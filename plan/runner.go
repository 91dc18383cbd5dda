package plan

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"labsim/labware"
)

// Runner executes plan documents as in-memory simulations.
type Runner struct {
	log     zerolog.Logger
	presets map[string]labware.Preset
}

// NewRunner builds a runner. presets are user-defined geometries
// resolved ahead of the built-in catalog; nil is fine.
func NewRunner(log zerolog.Logger, presets map[string]labware.Preset) *Runner {
	return &Runner{log: log, presets: presets}
}

// Result is the outcome of a run. On failure Labware holds the state at
// the moment the failing step aborted, and Committed counts the steps
// that fully applied before it.
type Result struct {
	RunID     uuid.UUID
	Labware   *labware.Labware
	Committed int
}

// Run executes every step of the document in order and stops at the
// first failure. The returned Result is non-nil whenever the labware
// could be constructed, so callers can inspect the last good state.
func (r *Runner) Run(doc *Document) (*Result, error) {
	id := uuid.New()
	lw, err := doc.Labware.Build(r.presets)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", id, err)
	}
	log := r.log.With().
		Stringer("run_id", id).
		Str("labware", lw.Name()).
		Logger()
	log.Info().Int("steps", len(doc.Steps)).Msg("simulating plan")

	res := &Result{RunID: id, Labware: lw}
	for i, step := range doc.Steps {
		label := step.Label()
		var err error
		switch step.Action {
		case ActionAdd:
			err = lw.Add(step.Wells, step.volumes(), label)
		case ActionRemove:
			err = lw.Remove(step.Wells, step.volumes(), label)
		case ActionLog:
			lw.Log(label)
		}
		if err != nil {
			log.Error().
				Int("step", i+1).
				Str("action", step.Action).
				Str("label", label).
				Err(err).
				Msg("plan step failed")
			return res, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		res.Committed++
		log.Debug().
			Int("step", i+1).
			Str("action", step.Action).
			Str("label", label).
			Msg("step applied")
	}
	log.Info().Int("steps", res.Committed).Msg("plan is feasible")
	return res, nil
}
