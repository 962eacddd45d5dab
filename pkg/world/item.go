package world

// ItemDefinition describes an item kind that can appear in inventories.
type ItemDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stackable   bool   `json:"stackable"`
}

// Faction is a named group with a reputation table keyed by entity ID.
type Faction struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Reputation  map[string]int `json:"reputation,omitempty"`
}
