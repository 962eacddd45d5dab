package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// UseSkill spends mana to invoke a registered skill's effect.
// TargetID may be empty for self-cast or untargeted skills.
type UseSkill struct {
	ActorID  string
	TargetID string
	SkillID  string
}

func (u UseSkill) Kind() string  { return "use_skill" }
func (u UseSkill) Actor() string { return u.ActorID }
func (UseSkill) sealed()         {}

func canUseSkill(w *world.State, u UseSkill) bool {
	actor := w.Entity(u.ActorID)
	if actor == nil {
		return false
	}
	skill := w.Skill(u.SkillID)
	return skill != nil && actor.Mana >= skill.ManaCost
}

func executeUseSkill(w *world.State, u UseSkill) Result {
	actor := w.Entity(u.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	skill := w.Skill(u.SkillID)
	if skill == nil {
		return Error(ReasonSkillMissing)
	}
	if actor.Mana < skill.ManaCost {
		return Error(ReasonInsufficientMana)
	}

	var target *world.Entity
	if u.TargetID != "" {
		target = w.Entity(u.TargetID)
	}
	actor.Mana -= skill.ManaCost
	var tag string
	if skill.Effect != nil {
		tag = skill.Effect.Apply(w, actor, target)
	}
	w.LogEvent(u.Kind(), fmt.Sprintf("%s used %s: %s", actor.Name, skill.Name, tag), u.ActorID)
	return OK(fmt.Sprintf("skill:%s:%s", skill.ID, tag))
}
