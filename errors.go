package spiral

import (
	"fmt"
)

// InvalidParameterError reports a parameter that is outside of its valid
// domain. It is returned by [NewParams] and [Fit] before any computation
// takes place.
type InvalidParameterError struct {
	// Field names the offending parameter.
	Field string
	// Value is the rejected value.
	Value any
	// Reason describes the constraint that was violated.
	Reason string
}

func (err *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s = %v: %s", err.Field, err.Value, err.Reason)
}

// DegenerateGeometryError reports that sampled geometry has zero width or zero
// height, so no finite scale can fit it into a drawing region.
type DegenerateGeometryError struct {
	Box Rect
}

func (err *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry: bounding box %s has zero extent (%s)", err.Box, err.Box.Size())
}
