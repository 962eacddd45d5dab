package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Chat records a spoken message in the event log.
type Chat struct {
	ActorID string
	Message string
}

func (c Chat) Kind() string  { return "chat" }
func (c Chat) Actor() string { return c.ActorID }
func (Chat) sealed()         {}

func canChat(w *world.State, c Chat) bool {
	return w.Entity(c.ActorID) != nil
}

func executeChat(w *world.State, c Chat) Result {
	actor := w.Entity(c.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	w.LogEvent(c.Kind(), fmt.Sprintf("%s says: %s", actor.Name, c.Message), c.ActorID)
	return OK(fmt.Sprintf("chat:%s:%s", actor.Name, c.Message))
}
