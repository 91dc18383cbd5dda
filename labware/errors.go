package labware

import "fmt"

// OverflowError reports a well whose volume exceeded the labware
// maximum during Add.
type OverflowError struct {
	Well  string
	Label string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("step %q: %s has exceeded the maximum volume", e.Label, e.Well)
}

// UnderflowError reports a well whose volume fell below the labware
// minimum during Remove.
type UnderflowError struct {
	Well  string
	Label string
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("step %q: %s has undershot the minimum volume", e.Label, e.Well)
}
