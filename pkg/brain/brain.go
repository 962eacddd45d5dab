// Package brain holds decision policies: pure functions mapping a world
// snapshot and an actor to the actions that actor proposes this tick.
package brain

import (
	"github.com/jwebster45206/worldsim/pkg/action"
	"github.com/jwebster45206/worldsim/pkg/world"
)

// Brain decides what an actor does on the current tick. Implementations
// must not mutate the world and must not retain the reference beyond the
// call; given the same world state they must propose the same actions.
type Brain interface {
	Decide(w *world.State, actorID string) []action.Action
}
