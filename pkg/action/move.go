package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Move relocates the actor to an adjacent area.
type Move struct {
	ActorID     string
	Destination string
}

func (m Move) Kind() string  { return "move" }
func (m Move) Actor() string { return m.ActorID }
func (Move) sealed()         {}

func canMove(w *world.State, m Move) bool {
	actor := w.Entity(m.ActorID)
	if actor == nil {
		return false
	}
	if w.Area(m.Destination) == nil {
		return false
	}
	current := w.Area(actor.Area)
	return current != nil && current.HasNeighbor(m.Destination)
}

func executeMove(w *world.State, m Move) Result {
	actor := w.Entity(m.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	actor.Area = m.Destination
	w.LogEvent(m.Kind(), fmt.Sprintf("%s moved to %s", actor.Name, m.Destination), m.ActorID)
	w.UpdateQuestProgress(m.ActorID, world.TravelObjective(m.Destination), 1)
	return OK("moved_to:" + m.Destination)
}
