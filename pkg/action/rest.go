package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Rest restores hp and mana, clamped to their maximums.
type Rest struct {
	ActorID     string
	HPRestore   int
	ManaRestore int
}

func (r Rest) Kind() string  { return "rest" }
func (r Rest) Actor() string { return r.ActorID }
func (Rest) sealed()         {}

func canRest(w *world.State, r Rest) bool {
	return w.Entity(r.ActorID) != nil
}

func executeRest(w *world.State, r Rest) Result {
	actor := w.Entity(r.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	actor.HP += r.HPRestore
	if actor.HP > world.MaxHP {
		actor.HP = world.MaxHP
	}
	actor.Mana += r.ManaRestore
	if actor.Mana > world.MaxMana {
		actor.Mana = world.MaxMana
	}
	w.LogEvent(r.Kind(), fmt.Sprintf("%s rests", actor.Name), r.ActorID)
	return OK(fmt.Sprintf("rested:hp+%d:mana+%d", r.HPRestore, r.ManaRestore))
}
