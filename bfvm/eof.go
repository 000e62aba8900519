package bfvm

import "fmt"

// EOFPolicy decides what ',' stores when input is exhausted.
type EOFPolicy string

const (
	// EOFKeep leaves the cell unchanged
	EOFKeep EOFPolicy = "keep"
	// EOFZero stores 0
	EOFZero EOFPolicy = "zero"
	// EOFMinusOne stores 0xff, -1 as a signed cell
	EOFMinusOne EOFPolicy = "minus-one"
)

func (e EOFPolicy) Validate() error {
	switch e {
	case EOFKeep, EOFZero, EOFMinusOne:
		return nil
	}
	return fmt.Errorf("bad EOF policy: %q", string(e))
}

func (e *EOFPolicy) UnmarshalText(text []byte) error {
	policy := EOFPolicy(text)
	if err := policy.Validate(); err != nil {
		return err
	}
	*e = policy
	return nil
}

func (e EOFPolicy) apply(cell *byte) {
	switch e {
	case EOFZero:
		*cell = 0
	case EOFMinusOne:
		*cell = 0xff
	}
}
