package action

import (
	"fmt"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// AcceptQuest assigns a quest to the actor. Assignment is idempotent at the
// world layer; a duplicate accept fails with quest_unavailable.
type AcceptQuest struct {
	ActorID string
	QuestID string
}

func (a AcceptQuest) Kind() string  { return "quest_accept" }
func (a AcceptQuest) Actor() string { return a.ActorID }
func (AcceptQuest) sealed()         {}

func canAcceptQuest(w *world.State, a AcceptQuest) bool {
	return w.Entity(a.ActorID) != nil && w.Quest(a.QuestID) != nil
}

func executeAcceptQuest(w *world.State, a AcceptQuest) Result {
	if !w.AssignQuest(a.ActorID, a.QuestID) {
		return Error(ReasonQuestUnavailable)
	}
	actor := w.Entity(a.ActorID)
	quest := w.Quest(a.QuestID)
	w.LogEvent(a.Kind(), fmt.Sprintf("%s accepted quest %s", actor.Name, quest.Title), a.ActorID)
	return OK("quest_accepted:" + a.QuestID)
}
