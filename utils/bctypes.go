package utils

import "strings"

// BoundaryTag identifies the kind of face at the ends of a column mesh.
// Tags are assigned at mesh construction and are immutable.
type BoundaryTag uint8

const (
	// TagInterior marks a face shared by two elements.
	TagInterior BoundaryTag = iota

	// TagBottom marks the bottom-most face of the column.
	TagBottom

	// TagTop marks the top-most face of the column.
	TagTop
)

func (bt BoundaryTag) String() string {
	switch bt {
	case TagInterior:
		return "Interior"
	case TagBottom:
		return "Bottom"
	case TagTop:
		return "Top"
	}
	return "Unknown"
}

// ParseBoundaryName converts a boundary name to a BoundaryTag,
// case-insensitively. Unknown names map to TagInterior.
func ParseBoundaryName(name string) BoundaryTag {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bottom":
		return TagBottom
	case "top":
		return TagTop
	}
	return TagInterior
}
