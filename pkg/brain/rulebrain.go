package brain

import (
	"github.com/jwebster45206/worldsim/pkg/action"
	"github.com/jwebster45206/worldsim/pkg/world"
)

// RuleBrain is a rule-based policy evaluated in strict priority order, first
// match wins, at most one action per tick:
//
//  1. actor missing            → nothing
//  2. hp at or below threshold → Rest
//  3. affordable skill and a live co-located target → UseSkill
//  4. live co-located target   → Attack
//  5. area holds the configured resource → Gather
//  6. area has a neighbor      → Move to the first one
//  7. otherwise                → Observe
//
// Tie-breaks (which target, which skill, which neighbor) follow world
// insertion order, so a given world state always yields the same decision.
type RuleBrain struct {
	RestThreshold  int    // Rest when HP is at or below this
	GatherResource string // Resource kind sought when idle
	AttackDamage   int    // Damage proposed per attack
	HPRestore      int
	ManaRestore    int
}

// NewRuleBrain returns a RuleBrain with the default tuning used by the
// demo drivers. All values are plain parameters; adjust per actor.
func NewRuleBrain() *RuleBrain {
	return &RuleBrain{
		RestThreshold:  30,
		GatherResource: "wood",
		AttackDamage:   8,
		HPRestore:      20,
		ManaRestore:    10,
	}
}

func (b *RuleBrain) Decide(w *world.State, actorID string) []action.Action {
	actor := w.Entity(actorID)
	if actor == nil {
		return nil
	}

	if actor.HP <= b.RestThreshold {
		return []action.Action{action.Rest{
			ActorID:     actorID,
			HPRestore:   b.HPRestore,
			ManaRestore: b.ManaRestore,
		}}
	}

	target := firstLiveTarget(w, actor)
	if target != nil {
		if skill := firstAffordableSkill(w, actor); skill != nil {
			return []action.Action{action.UseSkill{
				ActorID:  actorID,
				TargetID: target.ID,
				SkillID:  skill.ID,
			}}
		}
		return []action.Action{action.Attack{
			ActorID:  actorID,
			TargetID: target.ID,
			Damage:   b.AttackDamage,
		}}
	}

	area := w.Area(actor.Area)
	if area != nil && area.Resources[b.GatherResource] > 0 {
		return []action.Action{action.Gather{
			ActorID:  actorID,
			Resource: b.GatherResource,
			Amount:   1,
		}}
	}
	if area != nil && len(area.Neighbors) > 0 {
		return []action.Action{action.Move{
			ActorID:     actorID,
			Destination: area.Neighbors[0],
		}}
	}

	return []action.Action{action.Observe{ActorID: actorID}}
}

// firstLiveTarget returns the first living entity sharing the actor's area,
// excluding the actor itself, in insertion order.
func firstLiveTarget(w *world.State, actor *world.Entity) *world.Entity {
	for _, e := range w.Entities() {
		if e.ID != actor.ID && e.Area == actor.Area && e.IsAlive() {
			return e
		}
	}
	return nil
}

// firstAffordableSkill returns the first registered skill the actor can pay
// for, in insertion order.
func firstAffordableSkill(w *world.State, actor *world.Entity) *world.Skill {
	for _, sk := range w.Skills() {
		if sk.ManaCost <= actor.Mana {
			return sk
		}
	}
	return nil
}
