package labware

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Volumes is the volume argument of Add and Remove: either a single
// value broadcast to every addressed well, or one value per well.
type Volumes struct {
	scalar decimal.Decimal
	seq    []decimal.Decimal
	each   bool
}

// Scalar broadcasts one volume to every addressed well.
func Scalar(v float64) Volumes {
	return Volumes{scalar: decimal.NewFromFloat(v)}
}

// Sequence supplies one volume per addressed well, in well order.
func Sequence(vs ...float64) Volumes {
	seq := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		seq[i] = decimal.NewFromFloat(v)
	}
	return Volumes{seq: seq, each: true}
}

// expand normalizes to one volume per well, validating before any
// ledger mutation happens.
func (v Volumes) expand(wells int) ([]decimal.Decimal, error) {
	if wells == 0 {
		return nil, errors.New("at least one well is required")
	}
	if v.each {
		if len(v.seq) != wells {
			return nil, fmt.Errorf("got %d volumes for %d wells", len(v.seq), wells)
		}
		for i, d := range v.seq {
			if d.IsNegative() {
				return nil, fmt.Errorf("volume %d is negative: %s", i, d)
			}
		}
		out := make([]decimal.Decimal, wells)
		copy(out, v.seq)
		return out, nil
	}
	if v.scalar.IsNegative() {
		return nil, fmt.Errorf("volume is negative: %s", v.scalar)
	}
	out := make([]decimal.Decimal, wells)
	for i := range out {
		out[i] = v.scalar
	}
	return out, nil
}
