package world

// State is the single source of truth for all mutable simulation data.
// It is exclusively owned by the engine for the duration of a step and is
// never retained by brains or actions beyond the call. All operations are
// synchronous; there is no locking in the single-writer model.
//
// Insertion order is preserved for areas, entities, and skills so that
// iteration (and therefore brain tie-breaking) is deterministic.
type State struct {
	areas    map[string]*Area
	entities map[string]*Entity
	quests   map[string]*Quest
	items    map[string]*ItemDefinition
	factions map[string]*Faction
	skills   map[string]*Skill

	areaOrder   []string
	entityOrder []string
	skillOrder  []string

	events []Event
	clock  int
}

// NewState creates an empty world.
func NewState() *State {
	return &State{
		areas:    make(map[string]*Area),
		entities: make(map[string]*Entity),
		quests:   make(map[string]*Quest),
		items:    make(map[string]*ItemDefinition),
		factions: make(map[string]*Faction),
		skills:   make(map[string]*Skill),
	}
}

// AddArea inserts or overwrites an area by name. References to neighbors are
// not validated here; dangling references surface at action time.
func (s *State) AddArea(a *Area) {
	if _, exists := s.areas[a.Name]; !exists {
		s.areaOrder = append(s.areaOrder, a.Name)
	}
	s.areas[a.Name] = a
}

// AddEntity inserts or overwrites an entity by ID.
func (s *State) AddEntity(e *Entity) {
	if _, exists := s.entities[e.ID]; !exists {
		s.entityOrder = append(s.entityOrder, e.ID)
	}
	s.entities[e.ID] = e
}

// AddQuest inserts or overwrites a quest definition by ID.
func (s *State) AddQuest(q *Quest) {
	s.quests[q.ID] = q
}

// AddItem inserts or overwrites an item definition by ID.
func (s *State) AddItem(item *ItemDefinition) {
	s.items[item.ID] = item
}

// AddFaction inserts or overwrites a faction by ID.
func (s *State) AddFaction(f *Faction) {
	s.factions[f.ID] = f
}

// AddSkill inserts or overwrites a skill by ID.
func (s *State) AddSkill(sk *Skill) {
	if _, exists := s.skills[sk.ID]; !exists {
		s.skillOrder = append(s.skillOrder, sk.ID)
	}
	s.skills[sk.ID] = sk
}

// Area returns the named area, or nil when absent.
func (s *State) Area(name string) *Area {
	return s.areas[name]
}

// Entity returns the entity by ID, or nil when absent.
func (s *State) Entity(id string) *Entity {
	return s.entities[id]
}

// Quest returns the quest definition by ID, or nil when absent.
func (s *State) Quest(id string) *Quest {
	return s.quests[id]
}

// Item returns the item definition by ID, or nil when absent.
func (s *State) Item(id string) *ItemDefinition {
	return s.items[id]
}

// Faction returns the faction by ID, or nil when absent.
func (s *State) Faction(id string) *Faction {
	return s.factions[id]
}

// Skill returns the skill by ID, or nil when absent.
func (s *State) Skill(id string) *Skill {
	return s.skills[id]
}

// Areas returns all areas in insertion order.
func (s *State) Areas() []*Area {
	out := make([]*Area, 0, len(s.areaOrder))
	for _, name := range s.areaOrder {
		out = append(out, s.areas[name])
	}
	return out
}

// Entities returns all entities in insertion order.
func (s *State) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.entityOrder))
	for _, id := range s.entityOrder {
		out = append(out, s.entities[id])
	}
	return out
}

// Skills returns all skills in insertion order.
func (s *State) Skills() []*Skill {
	out := make([]*Skill, 0, len(s.skillOrder))
	for _, id := range s.skillOrder {
		out = append(out, s.skills[id])
	}
	return out
}

// EntitiesInArea returns the entities currently located in the named area,
// in insertion order.
func (s *State) EntitiesInArea(areaName string) []*Entity {
	var out []*Entity
	for _, id := range s.entityOrder {
		if e := s.entities[id]; e.Area == areaName {
			out = append(out, e)
		}
	}
	return out
}

// AssignQuest creates a fresh progress record for the entity against the
// quest. It returns false if the entity or quest is unknown, or if the
// entity already has a record for that quest ID; re-assignment is a no-op,
// never an overwrite.
func (s *State) AssignQuest(entityID, questID string) bool {
	e := s.entities[entityID]
	if e == nil {
		return false
	}
	if _, ok := s.quests[questID]; !ok {
		return false
	}
	if _, ok := e.QuestLog[questID]; ok {
		return false
	}
	if e.QuestLog == nil {
		e.QuestLog = make(map[string]*QuestProgress)
	}
	e.QuestLog[questID] = newQuestProgress(questID)
	return true
}

// AdjustAreaResource applies delta to an area's resource quantity and
// returns the new quantity, clamped at zero. A missing area returns 0 with
// no effect. The clamped value is authoritative; callers that must not
// over-consume (e.g. gathering) pre-clamp their request.
func (s *State) AdjustAreaResource(areaName, resource string, delta int) int {
	a := s.areas[areaName]
	if a == nil {
		return 0
	}
	next := a.Resources[resource] + delta
	if next < 0 {
		next = 0
	}
	if a.Resources == nil {
		a.Resources = make(map[string]int)
	}
	a.Resources[resource] = next
	return next
}

// UpdateQuestProgress advances the named objective by amount on every
// not-yet-completed quest in the entity's log whose definition contains the
// objective key. A single call can fan out across multiple active quests.
// Completion is re-evaluated after each increment and is monotonic.
func (s *State) UpdateQuestProgress(entityID, objective string, amount int) {
	e := s.entities[entityID]
	if e == nil {
		return
	}
	for _, qp := range e.QuestLog {
		if qp.Completed {
			continue
		}
		q := s.quests[qp.QuestID]
		if q == nil {
			continue
		}
		if _, ok := q.Objectives[objective]; !ok {
			continue
		}
		qp.Progress[objective] += amount
		if qp.satisfies(q) {
			qp.Completed = true
		}
	}
}

// LogEvent appends an event stamped with the current tick. Actor may be
// empty for events without an acting entity.
func (s *State) LogEvent(kind, detail, actor string) {
	s.events = append(s.events, Event{
		Tick:   s.clock,
		Kind:   kind,
		Detail: detail,
		Actor:  actor,
	})
}

// RecentEvents returns the last limit events in chronological order.
// A non-positive limit returns nothing.
func (s *State) RecentEvents(limit int) []Event {
	if limit <= 0 {
		return nil
	}
	start := len(s.events) - limit
	if start < 0 {
		start = 0
	}
	out := make([]Event, len(s.events)-start)
	copy(out, s.events[start:])
	return out
}

// EventsSince returns the events appended at or after the given offset, in
// chronological order. Offsets come from EventCount, letting callers drain
// the log incrementally.
func (s *State) EventsSince(offset int) []Event {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.events) {
		return nil
	}
	out := make([]Event, len(s.events)-offset)
	copy(out, s.events[offset:])
	return out
}

// EventCount returns the total number of events logged so far.
func (s *State) EventCount() int {
	return len(s.events)
}

// Tick advances the world clock by exactly one. It has no other side effect.
func (s *State) Tick() {
	s.clock++
}

// Clock returns the current tick number.
func (s *State) Clock() int {
	return s.clock
}
