package world

// Effect is the capability invoked when a skill is used. It may mutate the
// world and returns a short result tag describing what happened.
// Target is nil for self-cast or untargeted skills.
type Effect interface {
	Apply(w *State, caster *Entity, target *Entity) string
}

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func(w *State, caster *Entity, target *Entity) string

func (f EffectFunc) Apply(w *State, caster *Entity, target *Entity) string {
	return f(w, caster, target)
}

// Skill is a registered ability with a mana cost and a pluggable effect.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ManaCost int    `json:"mana_cost"`
	Effect   Effect `json:"-"`
}
