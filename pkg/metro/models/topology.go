package models

import "time"

// Connection is an undirected link between two stations. DistanceKM is the
// physical track distance and doubles as the graph edge weight.
type Connection struct {
	From       string
	To         string
	DistanceKM int
}

// Topology is the ordered station and connection stream a loader hands to
// the graph builder.
type Topology struct {
	Name        string
	Stations    []string
	Connections []Connection
}

// IsEmpty reports whether the topology declares no stations at all.
func (t *Topology) IsEmpty() bool {
	return t == nil || len(t.Stations) == 0
}

// AddStation appends name unless it was already declared.
func (t *Topology) AddStation(name string) {
	for _, s := range t.Stations {
		if s == name {
			return
		}
	}
	t.Stations = append(t.Stations, name)
}

// NetworkVersion describes one stored revision of a network topology.
type NetworkVersion struct {
	NetworkID int
	Name      string
	UpdatedAt time.Time
	IsActive  bool
}
