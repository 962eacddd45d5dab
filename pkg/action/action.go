// Package action defines the closed set of commands that can be proposed
// against the world. Each variant has a side-effect-free precondition and an
// execution effect; dispatch is by exhaustive type switch so that adding a
// variant is a compile-visible change rather than a virtual override.
package action

import "github.com/jwebster45206/worldsim/pkg/world"

// Action is one command proposed by a brain or driver. The implementation
// set is sealed to this package.
type Action interface {
	// Kind is the stable name used as the event kind for successful
	// executions and in action_invalid audit records.
	Kind() string
	// Actor returns the ID of the entity attempting the action.
	Actor() string

	sealed()
}

// CanExecute runs the variant's precondition against the world. It never
// mutates state and is the sole gate the engine applies before Execute.
func CanExecute(w *world.State, a Action) bool {
	switch a := a.(type) {
	case Move:
		return canMove(w, a)
	case Attack:
		return canAttack(w, a)
	case Gather:
		return canGather(w, a)
	case Craft:
		return canCraft(w, a)
	case Chat:
		return canChat(w, a)
	case Rest:
		return canRest(w, a)
	case Trade:
		return canTrade(w, a)
	case UseSkill:
		return canUseSkill(w, a)
	case Observe:
		return canObserve(w, a)
	case AcceptQuest:
		return canAcceptQuest(w, a)
	}
	return false
}

// Execute applies the variant's effect. Each variant re-checks its own
// invalid conditions and returns an error Result without mutating state
// when they fail. Successful mutating variants append exactly one event.
func Execute(w *world.State, a Action) Result {
	switch a := a.(type) {
	case Move:
		return executeMove(w, a)
	case Attack:
		return executeAttack(w, a)
	case Gather:
		return executeGather(w, a)
	case Craft:
		return executeCraft(w, a)
	case Chat:
		return executeChat(w, a)
	case Rest:
		return executeRest(w, a)
	case Trade:
		return executeTrade(w, a)
	case UseSkill:
		return executeUseSkill(w, a)
	case Observe:
		return executeObserve(w, a)
	case AcceptQuest:
		return executeAcceptQuest(w, a)
	}
	return Error(ReasonInvalidAction)
}
