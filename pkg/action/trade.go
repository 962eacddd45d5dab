package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Trade hands items from the actor to a co-located target.
type Trade struct {
	ActorID  string
	TargetID string
	Item     string
	Amount   int
}

func (t Trade) Kind() string  { return "trade" }
func (t Trade) Actor() string { return t.ActorID }
func (Trade) sealed()         {}

func canTrade(w *world.State, t Trade) bool {
	actor := w.Entity(t.ActorID)
	target := w.Entity(t.TargetID)
	return actor != nil && target != nil && actor.Area == target.Area
}

func executeTrade(w *world.State, t Trade) Result {
	actor := w.Entity(t.ActorID)
	target := w.Entity(t.TargetID)
	if actor == nil || target == nil {
		return Error(ReasonEntityNotFound)
	}
	if actor.ItemCount(t.Item) < t.Amount {
		return Error(ReasonInsufficientItems)
	}

	actor.AddItem(t.Item, -t.Amount)
	target.AddItem(t.Item, t.Amount)
	w.LogEvent(t.Kind(), fmt.Sprintf("%s traded %d %s to %s", actor.Name, t.Amount, t.Item, target.Name), t.ActorID)
	return OK(fmt.Sprintf("traded:%s:%d", t.Item, t.Amount))
}
