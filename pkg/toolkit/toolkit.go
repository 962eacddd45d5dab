// Package toolkit is the content-authoring surface: it constructs and
// registers areas, entities, quests, items, factions, skills, and methods
// into a live world. It adds no simulation semantics of its own.
package toolkit

import (
	"github.com/google/uuid"

	"github.com/jwebster45206/worldsim/pkg/methods"
	"github.com/jwebster45206/worldsim/pkg/world"
)

// GameDevToolkit authors content into a world and a method library while
// the game is running.
type GameDevToolkit struct {
	World   *world.State
	Methods *methods.Library
}

// New creates a toolkit over the given world and method library.
func New(w *world.State, m *methods.Library) *GameDevToolkit {
	return &GameDevToolkit{World: w, Methods: m}
}

// CreateArea registers an area with its neighbors and initial resources.
func (t *GameDevToolkit) CreateArea(name, description string, neighbors []string, resources map[string]int) *world.Area {
	a := &world.Area{
		Name:        name,
		Description: description,
		Neighbors:   neighbors,
		Resources:   resources,
	}
	t.World.AddArea(a)
	return a
}

// SpawnEntity places a new entity in an area at full hp and mana.
// An empty id gets a generated one.
func (t *GameDevToolkit) SpawnEntity(id, name, area string, tags []string) *world.Entity {
	if id == "" {
		id = uuid.NewString()
	}
	e := &world.Entity{
		ID:   id,
		Name: name,
		Area: area,
		HP:   world.MaxHP,
		Mana: world.MaxMana,
		Tags: tags,
	}
	t.World.AddEntity(e)
	return e
}

// AddQuest registers a quest definition.
func (t *GameDevToolkit) AddQuest(id, title, description string, objectives map[string]int) *world.Quest {
	q := &world.Quest{
		ID:          id,
		Title:       title,
		Description: description,
		Objectives:  objectives,
	}
	t.World.AddQuest(q)
	return q
}

// AssignQuest gives an entity a quest. It reports false when the entity or
// quest is unknown or the quest was already assigned.
func (t *GameDevToolkit) AssignQuest(entityID, questID string) bool {
	return t.World.AssignQuest(entityID, questID)
}

// AddItem registers an item definition.
func (t *GameDevToolkit) AddItem(id, name, description string, stackable bool) *world.ItemDefinition {
	item := &world.ItemDefinition{
		ID:          id,
		Name:        name,
		Description: description,
		Stackable:   stackable,
	}
	t.World.AddItem(item)
	return item
}

// AddResourceNode seeds an area with a gatherable resource quantity.
func (t *GameDevToolkit) AddResourceNode(area, resource string, amount int) {
	t.World.AdjustAreaResource(area, resource, amount)
}

// AddFaction registers a faction with an empty reputation table.
func (t *GameDevToolkit) AddFaction(id, name, description string) *world.Faction {
	f := &world.Faction{
		ID:          id,
		Name:        name,
		Description: description,
		Reputation:  make(map[string]int),
	}
	t.World.AddFaction(f)
	return f
}

// AddSkill registers a skill with a mana cost and an effect callback.
func (t *GameDevToolkit) AddSkill(id, name string, manaCost int, effect world.Effect) *world.Skill {
	sk := &world.Skill{
		ID:       id,
		Name:     name,
		ManaCost: manaCost,
		Effect:   effect,
	}
	t.World.AddSkill(sk)
	return sk
}

// RegisterMethod adds a named callable to the method library.
func (t *GameDevToolkit) RegisterMethod(name, description string, tags []string, handler methods.Handler) {
	t.Methods.Register(name, description, tags, handler)
}
