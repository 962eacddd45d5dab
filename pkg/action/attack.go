package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Attack deals direct damage to a living target in the actor's area.
// Damage is caller-supplied; the engine does no tuning of its own.
type Attack struct {
	ActorID  string
	TargetID string
	Damage   int
}

func (a Attack) Kind() string  { return "attack" }
func (a Attack) Actor() string { return a.ActorID }
func (Attack) sealed()         {}

func canAttack(w *world.State, a Attack) bool {
	actor := w.Entity(a.ActorID)
	target := w.Entity(a.TargetID)
	return actor != nil && target != nil && actor.Area == target.Area && target.IsAlive()
}

func executeAttack(w *world.State, a Attack) Result {
	target := w.Entity(a.TargetID)
	if target == nil {
		return Error(ReasonTargetNotFound)
	}
	actor := w.Entity(a.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}

	wasAlive := target.IsAlive()
	target.HP -= a.Damage
	if target.HP < 0 {
		target.HP = 0
	}
	w.LogEvent(a.Kind(), fmt.Sprintf("%s hit %s for %d damage", actor.Name, target.Name, a.Damage), a.ActorID)

	// A killing blow advances defeat objectives for the attacker, once per
	// objective key. Tag objectives fan out across the target's tags.
	if wasAlive && !target.IsAlive() {
		w.UpdateQuestProgress(a.ActorID, world.DefeatObjective(target.ID), 1)
		for _, tag := range target.Tags {
			w.UpdateQuestProgress(a.ActorID, world.DefeatTagObjective(tag), 1)
		}
	}
	return OK(fmt.Sprintf("hit:%s:%d", target.ID, a.Damage))
}
