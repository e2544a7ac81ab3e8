package models

import "strings"

// LineSeparator splits a station id into its display name and line codes,
// e.g. "Rajiv Chowk~BY".
const LineSeparator = "~"

type Line rune

const (
	Blue   Line = 'B'
	Yellow Line = 'Y'
	Orange Line = 'O'
	Pink   Line = 'P'
	Red    Line = 'R'
)

func (l Line) String() string {
	switch l {
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Orange:
		return "Orange"
	case Pink:
		return "Pink"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// StationName is the decoded form of a station id.
type StationName struct {
	ID      string
	Display string
	Lines   []Line
}

// ParseStationName splits id on its last separator. Ids without line codes
// keep the whole id as display name and have no lines.
func ParseStationName(id string) StationName {
	name := StationName{ID: id, Display: id}

	idx := strings.LastIndex(id, LineSeparator)
	if idx < 0 {
		return name
	}

	name.Display = strings.TrimSpace(id[:idx])
	for _, r := range id[idx+len(LineSeparator):] {
		name.Lines = append(name.Lines, Line(r))
	}
	return name
}

// LineNames returns the colour names of the station's lines joined by "/".
func (n StationName) LineNames() string {
	names := make([]string, 0, len(n.Lines))
	for _, l := range n.Lines {
		names = append(names, l.String())
	}
	return strings.Join(names, "/")
}

// IsInterchange reports whether the station serves more than one line.
func (n StationName) IsInterchange() bool {
	return len(n.Lines) > 1
}
