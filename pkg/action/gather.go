package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Gather collects a resource from the actor's current area. The yield is
// pre-clamped to what the area actually holds, so inventory gain never
// exceeds the pre-gather quantity.
type Gather struct {
	ActorID  string
	Resource string
	Amount   int
}

func (g Gather) Kind() string  { return "gather" }
func (g Gather) Actor() string { return g.ActorID }
func (Gather) sealed()         {}

func canGather(w *world.State, g Gather) bool {
	actor := w.Entity(g.ActorID)
	if actor == nil {
		return false
	}
	area := w.Area(actor.Area)
	return area != nil && area.Resources[g.Resource] > 0
}

func executeGather(w *world.State, g Gather) Result {
	actor := w.Entity(g.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	area := w.Area(actor.Area)
	if area == nil {
		return Error(ReasonAreaNotFound)
	}
	available := area.Resources[g.Resource]
	if available <= 0 {
		return Error(ReasonResourceDepleted)
	}

	gathered := g.Amount
	if gathered > available {
		gathered = available
	}
	w.AdjustAreaResource(actor.Area, g.Resource, -gathered)
	actor.AddItem(g.Resource, gathered)
	w.LogEvent(g.Kind(), fmt.Sprintf("%s gathered %d %s", actor.Name, gathered, g.Resource), g.ActorID)
	w.UpdateQuestProgress(g.ActorID, world.GatherObjective(g.Resource), gathered)
	return OK(fmt.Sprintf("gathered:%s:%d", g.Resource, gathered))
}
