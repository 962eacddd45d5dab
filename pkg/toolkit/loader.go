package toolkit

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// WorldFile is the on-disk shape of a world-definition file. Content files
// describe static authoring data only; runtime state (event log, clock,
// quest progress) never round-trips through them.
type WorldFile struct {
	Areas     []*world.Area           `json:"areas,omitempty"`
	Entities  []*world.Entity         `json:"entities,omitempty"`
	Quests    []*world.Quest          `json:"quests,omitempty"`
	Items     []*world.ItemDefinition `json:"items,omitempty"`
	Resources []ResourceSeed          `json:"resources,omitempty"`
}

// ResourceSeed adds a resource quantity to an already-declared area.
type ResourceSeed struct {
	Area     string `json:"area"`
	Resource string `json:"resource"`
	Amount   int    `json:"amount"`
}

// LoadWorldFile reads a JSON world definition and registers its content.
// Entities authored without hp or mana spawn at full values.
func (t *GameDevToolkit) LoadWorldFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read world file: %w", err)
	}

	var wf WorldFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return fmt.Errorf("failed to unmarshal world file %s: %w", path, err)
	}

	for _, a := range wf.Areas {
		if a.Name == "" {
			return fmt.Errorf("world file %s: area name is required", path)
		}
		t.World.AddArea(a)
	}
	for _, e := range wf.Entities {
		if e.ID == "" {
			return fmt.Errorf("world file %s: entity id is required", path)
		}
		if e.HP == 0 {
			e.HP = world.MaxHP
		}
		if e.Mana == 0 {
			e.Mana = world.MaxMana
		}
		t.World.AddEntity(e)
	}
	for _, q := range wf.Quests {
		if q.ID == "" {
			return fmt.Errorf("world file %s: quest id is required", path)
		}
		t.World.AddQuest(q)
	}
	for _, item := range wf.Items {
		t.World.AddItem(item)
	}
	for _, seed := range wf.Resources {
		t.World.AdjustAreaResource(seed.Area, seed.Resource, seed.Amount)
	}
	return nil
}
