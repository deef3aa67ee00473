package gradedit

import (
	"encoding/json"
	"errors"
)

// Stop type tags used in the serialized form.
const (
	stopTypeSingle = "single"
	stopTypeDual   = "dual"
)

// ColorSpec is the color payload of a stop: either a single color, or a
// dual pair forming a hard edge. For a dual spec the first color faces the
// low side of the stop's position and the second color faces the high side.
//
// ColorSpec is a tagged value. Construct it with Single or Dual; the zero
// value is a single transparent color.
type ColorSpec struct {
	dual   bool
	first  Color
	second Color
}

// Single creates a spec holding one color.
func Single(c Color) ColorSpec {
	return ColorSpec{first: c}
}

// Dual creates a spec holding a hard transition: low is the color
// approaching the stop's position from below, high the color leaving it
// going up.
func Dual(low, high Color) ColorSpec {
	return ColorSpec{dual: true, first: low, second: high}
}

// IsDual reports whether the spec is a hard transition.
func (s ColorSpec) IsDual() bool { return s.dual }

// First returns the color facing the low side of the stop.
func (s ColorSpec) First() Color { return s.first }

// Second returns the color facing the high side of the stop.
// For a single spec this is the same as First.
func (s ColorSpec) Second() Color {
	if s.dual {
		return s.second
	}
	return s.first
}

// Equal reports whether two specs have the same shape and colors.
func (s ColorSpec) Equal(other ColorSpec) bool {
	if s.dual != other.dual {
		return false
	}
	if s.first != other.first {
		return false
	}
	return !s.dual || s.second == other.second
}

// finite reports whether every color component in the spec is finite.
func (s ColorSpec) finite() bool {
	if !s.first.finite() {
		return false
	}
	return !s.dual || s.second.finite()
}

// ColorStop is one breakpoint in a gradient. Position is nominally in
// [0, 1] but the type does not enforce it; callers clamp before
// construction. The ID is stable across position and color edits, which is
// what lets an editor keep a stop selected while it is dragged.
type ColorStop struct {
	ID       string
	Position float64
	Spec     ColorSpec
}

// NewColorStop constructs a stop with a fresh unique id.
func NewColorStop(position float64, spec ColorSpec) ColorStop {
	return ColorStop{ID: NewID(), Position: position, Spec: spec}
}

// NewColorStopWithID constructs a stop with an explicit id, for callers
// reconstructing stops from persisted data.
func NewColorStopWithID(id string, position float64, spec ColorSpec) ColorStop {
	return ColorStop{ID: id, Position: position, Spec: spec}
}

// Less orders stops by position alone. Stops sharing a position compare
// equal here; SortedStops keeps their insertion order.
func (s ColorStop) Less(other ColorStop) bool {
	return s.Position < other.Position
}

// Equal reports identity: two stops are equal iff they share an id.
// Two stops can share a position without being equal. Use EquivalentTo
// for content comparison.
func (s ColorStop) Equal(other ColorStop) bool {
	return s.ID == other.ID
}

// EquivalentTo reports whether two stops have identical content,
// including ids.
func (s ColorStop) EquivalentTo(other ColorStop) bool {
	return s.ID == other.ID && s.Position == other.Position && s.Spec.Equal(other.Spec)
}

// stopJSON is the wire form of a ColorStop.
type stopJSON struct {
	ID          string  `json:"id"`
	Position    float64 `json:"position"`
	Type        string  `json:"type"`
	FirstColor  Color   `json:"firstColor"`
	SecondColor *Color  `json:"secondColor,omitempty"`
}

// MarshalJSON implements json.Marshaler. secondColor is emitted iff the
// spec is dual.
func (s ColorStop) MarshalJSON() ([]byte, error) {
	if !s.Spec.finite() {
		return nil, &EncodeError{Reason: "stop " + s.ID + " has non-finite color components"}
	}
	out := stopJSON{
		ID:         s.ID,
		Position:   s.Position,
		Type:       stopTypeSingle,
		FirstColor: s.Spec.First(),
	}
	if s.Spec.IsDual() {
		out.Type = stopTypeDual
		second := s.Spec.Second()
		out.SecondColor = &second
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. It rejects payloads with
// missing required fields, an unknown type tag, or a dual stop without a
// second color. No value is partially constructed on error.
func (s *ColorStop) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          *string  `json:"id"`
		Position    *float64 `json:"position"`
		Type        *string  `json:"type"`
		FirstColor  *Color   `json:"firstColor"`
		SecondColor *Color   `json:"secondColor"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			// Keep the specific reason from a nested color decode.
			return decErr
		}
		return &DecodeError{Reason: "malformed stop", Err: err}
	}
	switch {
	case raw.ID == nil:
		return decodeErrorf("stop missing %q", "id")
	case raw.Position == nil:
		return decodeErrorf("stop missing %q", "position")
	case raw.Type == nil:
		return decodeErrorf("stop missing %q", "type")
	case raw.FirstColor == nil:
		return decodeErrorf("stop missing %q", "firstColor")
	}

	var spec ColorSpec
	switch *raw.Type {
	case stopTypeSingle:
		spec = Single(*raw.FirstColor)
	case stopTypeDual:
		if raw.SecondColor == nil {
			return decodeErrorf("dual stop %s missing %q", *raw.ID, "secondColor")
		}
		spec = Dual(*raw.FirstColor, *raw.SecondColor)
	default:
		return decodeErrorf("stop %s has unknown type %q", *raw.ID, *raw.Type)
	}

	*s = ColorStop{ID: *raw.ID, Position: *raw.Position, Spec: spec}
	return nil
}
