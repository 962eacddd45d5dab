// Package engine drives discrete simulation steps over a shared world.
package engine

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/action"
	"github.com/jwebster45206/worldsim/pkg/brain"
	"github.com/jwebster45206/worldsim/pkg/world"
)

// registration pairs an actor with its decision policy. Registrations keep
// their order so actor processing within a step is stable.
type registration struct {
	actorID string
	brain   brain.Brain
}

// Engine advances the world one tick at a time. It holds no in-flight state
// between steps; after every Step it is immediately ready for the next.
type Engine struct {
	world  *world.State
	brains []registration
	index  map[string]int // actorID → position in brains
}

// New creates an engine over the given world.
func New(w *world.State) *Engine {
	return &Engine{
		world: w,
		index: make(map[string]int),
	}
}

// World returns the engine's world state.
func (e *Engine) World() *world.State {
	return e.world
}

// RegisterBrain attaches a decision policy to an actor. Registration order
// is the processing order within a step; re-registering an actor replaces
// its brain in place without changing its position.
func (e *Engine) RegisterBrain(actorID string, b brain.Brain) {
	if pos, ok := e.index[actorID]; ok {
		e.brains[pos].brain = b
		return
	}
	e.index[actorID] = len(e.brains)
	e.brains = append(e.brains, registration{actorID: actorID, brain: b})
}

// Apply validates and executes a single action. A failed precondition is
// recorded as an action_invalid audit event and returned as an error result
// without executing; the rejected intent stays distinguishable from
// executed effects in the log.
func (e *Engine) Apply(a action.Action) action.Result {
	if !action.CanExecute(e.world, a) {
		e.world.LogEvent("action_invalid",
			fmt.Sprintf("%s:%s", a.Kind(), a.Actor()), a.Actor())
		return action.Error(action.ReasonInvalidAction)
	}
	return action.Execute(e.world, a)
}

// Step runs one tick: each registered actor, in registration order, is
// asked for its actions, and each action is applied in the order proposed.
// Later actors observe mutations made by earlier ones; there is no snapshot
// isolation within a tick. The clock advances exactly once per step,
// regardless of how many actions ran or failed. The ordered results of
// every attempt are returned.
func (e *Engine) Step() []action.Result {
	var results []action.Result
	for _, reg := range e.brains {
		for _, a := range reg.brain.Decide(e.world, reg.actorID) {
			results = append(results, e.Apply(a))
		}
	}
	e.world.Tick()
	return results
}
