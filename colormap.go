package gradedit

import (
	"encoding/json"
	"errors"
	"sort"
)

// ColorMap is an identified, ordered collection of color stops.
//
// Stops preserves insertion order: the type never sorts by position, so an
// edit list can show a duplicated stop next to its original. Consumers that
// need position order (rendering, interpolation) call SortedStops.
//
// ColorMap is a value type. Mutation means building a new ColorMap and
// replacing the old one; see Editor.
type ColorMap struct {
	ID    string
	Stops []ColorStop
}

// NewColorMap constructs a map with a fresh unique id. The stop slice is
// copied.
func NewColorMap(stops []ColorStop) ColorMap {
	return NewColorMapWithID(NewID(), stops)
}

// NewColorMapWithID constructs a map with an explicit id. The stop slice
// is copied.
func NewColorMapWithID(id string, stops []ColorStop) ColorMap {
	copied := make([]ColorStop, len(stops))
	copy(copied, stops)
	return ColorMap{ID: id, Stops: copied}
}

// Equal reports identity: two maps are equal iff they share an id, no
// matter their content.
func (m ColorMap) Equal(other ColorMap) bool {
	return m.ID == other.ID
}

// EquivalentTo reports whether two maps have identical content: same id
// and equivalent stops in the same insertion order.
func (m ColorMap) EquivalentTo(other ColorMap) bool {
	if m.ID != other.ID || len(m.Stops) != len(other.Stops) {
		return false
	}
	for i := range m.Stops {
		if !m.Stops[i].EquivalentTo(other.Stops[i]) {
			return false
		}
	}
	return true
}

// SortedStops returns the stops ordered by position ascending. The sort is
// stable, so stops sharing a position keep their insertion order. The
// receiver is never modified.
func (m ColorMap) SortedStops() []ColorStop {
	sorted := make([]ColorStop, len(m.Stops))
	copy(sorted, m.Stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return sorted
}

// StopByID returns the stop with the given id and its insertion-order
// index, or ok=false when absent.
func (m ColorMap) StopByID(id string) (stop ColorStop, index int, ok bool) {
	for i, s := range m.Stops {
		if s.ID == id {
			return s, i, true
		}
	}
	return ColorStop{}, -1, false
}

// mapJSON is the wire form of a ColorMap.
type mapJSON struct {
	ID    string      `json:"id"`
	Stops []ColorStop `json:"stops"`
}

// MarshalJSON implements json.Marshaler.
func (m ColorMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapJSON{ID: m.ID, Stops: m.Stops})
}

// UnmarshalJSON implements json.Unmarshaler. Both fields are required.
func (m *ColorMap) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    *string           `json:"id"`
		Stops []json.RawMessage `json:"stops"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Reason: "malformed color map", Err: err}
	}
	if raw.ID == nil {
		return decodeErrorf("color map missing %q", "id")
	}
	if raw.Stops == nil {
		return decodeErrorf("color map missing %q", "stops")
	}
	stops := make([]ColorStop, len(raw.Stops))
	for i, msg := range raw.Stops {
		if err := json.Unmarshal(msg, &stops[i]); err != nil {
			return err
		}
	}
	*m = ColorMap{ID: *raw.ID, Stops: stops}
	return nil
}

// EncodeColorMap serializes a color map to JSON. Positions and color
// components round-trip exactly. Non-finite color components are rejected
// with an *EncodeError.
func EncodeColorMap(m ColorMap) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		var encErr *EncodeError
		if errors.As(err, &encErr) {
			return nil, encErr
		}
		return nil, &EncodeError{Reason: "color map " + m.ID, Err: err}
	}
	return data, nil
}

// DecodeColorMap parses a serialized color map. Malformed input yields a
// *DecodeError and never a partially constructed value.
func DecodeColorMap(data []byte) (ColorMap, error) {
	var m ColorMap
	if err := json.Unmarshal(data, &m); err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			return ColorMap{}, decErr
		}
		return ColorMap{}, &DecodeError{Reason: "malformed color map", Err: err}
	}
	return m, nil
}
