package world

// Area represents a named place in the world map with exits and gatherable resources.
type Area struct {
	Name        string         `json:"name"`                  // Also the key in the world map.
	Description string         `json:"description,omitempty"` // Scene description
	Neighbors   []string       `json:"neighbors,omitempty"`   // Reachable area names, in authored order
	Resources   map[string]int `json:"resources,omitempty"`   // Resource kind → quantity available for gathering
}

// HasNeighbor reports whether name is directly reachable from this area.
// Adjacency is directional; the reverse edge is not implied.
func (a *Area) HasNeighbor(name string) bool {
	for _, n := range a.Neighbors {
		if n == name {
			return true
		}
	}
	return false
}
