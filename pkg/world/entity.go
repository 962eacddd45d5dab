package world

const (
	MaxHP   = 100
	MaxMana = 50
)

// Entity represents a player, NPC, or creature in the world.
type Entity struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Area      string                    `json:"area"`                // Current area name
	HP        int                       `json:"hp"`                  // 0..MaxHP
	Mana      int                       `json:"mana"`                // 0..MaxMana
	Inventory map[string]int            `json:"inventory,omitempty"` // Item kind → quantity
	Tags      []string                  `json:"tags,omitempty"`      // e.g. "mob", "player"
	QuestLog  map[string]*QuestProgress `json:"quest_log,omitempty"` // Quest ID → progress
}

// IsAlive reports whether the entity can still act or be targeted.
func (e *Entity) IsAlive() bool {
	return e.HP > 0
}

// HasTag reports whether the entity carries the given categorical tag.
func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ItemCount returns the quantity of an item kind held, zero when absent.
func (e *Entity) ItemCount(item string) int {
	return e.Inventory[item]
}

// AddItem adds quantity of an item kind to the inventory.
func (e *Entity) AddItem(item string, quantity int) {
	if e.Inventory == nil {
		e.Inventory = make(map[string]int)
	}
	e.Inventory[item] += quantity
}
