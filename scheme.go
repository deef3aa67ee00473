package gradedit

import "strings"

// Scheme wraps a color map with a display name and description, the unit a
// picker or "new document" flow hands to the editor.
type Scheme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Map         ColorMap `json:"colorMap"`
}

// NewScheme creates a scheme with a fresh unique id.
func NewScheme(name, description string, m ColorMap) Scheme {
	return Scheme{ID: NewID(), Name: name, Description: description, Map: m}
}

// Equal reports identity: two schemes are equal iff they share an id.
func (s Scheme) Equal(other Scheme) bool {
	return s.ID == other.ID
}

// schemeOf builds a preset from evenly describable stops.
func schemeOf(name, description string, stops ...ColorStop) Scheme {
	return NewScheme(name, description, NewColorMap(stops))
}

// BuiltinSchemes returns the preset schemes shipped with the package.
// Each call builds fresh maps with fresh ids, so presets can be edited
// independently.
func BuiltinSchemes() []Scheme {
	return []Scheme{
		schemeOf("Grayscale", "Black to white",
			NewColorStop(0, Single(Black)),
			NewColorStop(1, Single(White)),
		),
		schemeOf("Sunset", "Deep violet through orange to pale yellow",
			NewColorStop(0, Single(Hex("2d1b4e"))),
			NewColorStop(0.45, Single(Hex("c0392b"))),
			NewColorStop(0.75, Single(Hex("e67e22"))),
			NewColorStop(1, Single(Hex("f9e79f"))),
		),
		schemeOf("Ocean", "Midnight blue to seafoam",
			NewColorStop(0, Single(Hex("0b1c2c"))),
			NewColorStop(0.5, Single(Hex("1b6ca8"))),
			NewColorStop(1, Single(Hex("a8e6cf"))),
		),
		schemeOf("Heat", "Classic black-body ramp",
			NewColorStop(0, Single(Black)),
			NewColorStop(0.4, Single(Red)),
			NewColorStop(0.8, Single(Yellow)),
			NewColorStop(1, Single(White)),
		),
	}
}

// SchemeByName looks up a built-in scheme case-insensitively.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range BuiltinSchemes() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}
