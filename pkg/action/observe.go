package action

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jwebster45206/worldsim/pkg/world"
)

// Observe describes the actor's surroundings: the area, co-located entities
// (excluding the observer), and resource levels sorted by kind. The log
// append is its only mutation.
type Observe struct {
	ActorID string
}

func (o Observe) Kind() string  { return "observe" }
func (o Observe) Actor() string { return o.ActorID }
func (Observe) sealed()         {}

func canObserve(w *world.State, o Observe) bool {
	actor := w.Entity(o.ActorID)
	return actor != nil && w.Area(actor.Area) != nil
}

func executeObserve(w *world.State, o Observe) Result {
	actor := w.Entity(o.ActorID)
	if actor == nil {
		return Error(ReasonActorNotFound)
	}
	area := w.Area(actor.Area)
	if area == nil {
		return Error(ReasonAreaNotFound)
	}

	var others []string
	for _, e := range w.EntitiesInArea(area.Name) {
		if e.ID != actor.ID {
			others = append(others, e.Name)
		}
	}
	kinds := make([]string, 0, len(area.Resources))
	for kind := range area.Resources {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	levels := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		levels = append(levels, fmt.Sprintf("%s=%d", kind, area.Resources[kind]))
	}

	detail := fmt.Sprintf("%s | entities: %s | resources: %s",
		area.Name, listOrNone(others), listOrNone(levels))
	w.LogEvent(o.Kind(), detail, o.ActorID)
	return OK(detail)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
