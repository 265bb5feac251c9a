package fixedwidth

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is wrapped by all layout validation failures. Use
// errors.Is to distinguish malformed input arguments from I/O failures.
var ErrInvalidLayout = errors.New("fixedwidth: invalid layout")

// ValidateLayout checks a layout before any file is touched. It rejects,
// in order: a nil or empty layout, an entry without a name, and an entry
// whose position is neither a single column nor a span. It has no side
// effects and returns nil on success.
//
// Duplicate field names are not rejected; see Record for how they behave.
func ValidateLayout(layout Layout) error {
	if len(layout) == 0 {
		return fmt.Errorf("%w: layout must contain at least one field", ErrInvalidLayout)
	}

	for i, spec := range layout {
		if spec.Name == "" {
			return fmt.Errorf("%w: field %d: name is required", ErrInvalidLayout, i)
		}
		if spec.Position.IsZero() {
			return fmt.Errorf("%w: field %d (%s): position must be a column or a span",
				ErrInvalidLayout, i, spec.Name)
		}
	}

	return nil
}
