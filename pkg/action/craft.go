package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Craft consumes required materials from the actor's inventory and produces
// one unit of the output item. The materials check is all-or-nothing before
// any mutation.
type Craft struct {
	ActorID      string
	Requirements map[string]int
	Output       string
}

func (c Craft) Kind() string  { return "craft" }
func (c Craft) Actor() string { return c.ActorID }
func (Craft) sealed()         {}

func canCraft(w *world.State, c Craft) bool {
	actor := w.Entity(c.ActorID)
	if actor == nil {
		return false
	}
	return hasMaterials(actor, c.Requirements)
}

func executeCraft(w *world.State, c Craft) Result {
	actor := w.Entity(c.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	if !hasMaterials(actor, c.Requirements) {
		return Error(ReasonMissingMaterials)
	}

	for item, qty := range c.Requirements {
		actor.AddItem(item, -qty)
	}
	actor.AddItem(c.Output, 1)
	w.LogEvent(c.Kind(), fmt.Sprintf("%s crafted %s", actor.Name, c.Output), c.ActorID)
	w.UpdateQuestProgress(c.ActorID, world.CraftObjective(c.Output), 1)
	return OK("crafted:" + c.Output)
}

func hasMaterials(actor *world.Entity, requirements map[string]int) bool {
	for item, qty := range requirements {
		if actor.ItemCount(item) < qty {
			return false
		}
	}
	return true
}
