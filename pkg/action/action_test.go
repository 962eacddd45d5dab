package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/worldsim/pkg/world"
)

func newTestWorld() *world.State {
	w := world.NewState()
	w.AddArea(&world.Area{Name: "Village", Neighbors: []string{"Forest"}})
	w.AddArea(&world.Area{
		Name:      "Forest",
		Neighbors: []string{"Village", "Cave"},
		Resources: map[string]int{"wood": 5},
	})
	w.AddArea(&world.Area{Name: "Cave", Neighbors: []string{"Forest"}})
	w.AddEntity(&world.Entity{ID: "p1", Name: "Hero", Area: "Village", HP: 100, Mana: 50})
	w.AddEntity(&world.Entity{ID: "wolf-1", Name: "Wolf", Area: "Forest", HP: 10, Tags: []string{"mob"}})
	return w
}

func TestMove(t *testing.T) {
	w := newTestWorld()

	assert.True(t, CanExecute(w, Move{ActorID: "p1", Destination: "Forest"}))
	// Cave is not adjacent to Village.
	assert.False(t, CanExecute(w, Move{ActorID: "p1", Destination: "Cave"}))
	assert.False(t, CanExecute(w, Move{ActorID: "p1", Destination: "Nowhere"}))
	assert.False(t, CanExecute(w, Move{ActorID: "ghost", Destination: "Forest"}))

	res := Execute(w, Move{ActorID: "p1", Destination: "Forest"})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "moved_to:Forest", res.Detail)
	assert.Equal(t, "Forest", w.Entity("p1").Area)

	events := w.RecentEvents(1)
	require.Len(t, events, 1)
	assert.Equal(t, "move", events[0].Kind)
	assert.Equal(t, "p1", events[0].Actor)
}

func TestMove_AdvancesTravelObjective(t *testing.T) {
	w := newTestWorld()
	w.AddQuest(&world.Quest{ID: "scout", Title: "Scout", Objectives: map[string]int{
		world.TravelObjective("Forest"): 1,
	}})
	require.True(t, w.AssignQuest("p1", "scout"))

	Execute(w, Move{ActorID: "p1", Destination: "Forest"})
	assert.True(t, w.Entity("p1").QuestLog["scout"].Completed)
}

func TestAttack(t *testing.T) {
	w := newTestWorld()

	// Different areas block the attack at precondition time.
	assert.False(t, CanExecute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 5}))

	w.Entity("p1").Area = "Forest"
	require.True(t, CanExecute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 5}))

	res := Execute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 5})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "hit:wolf-1:5", res.Detail)
	assert.Equal(t, 5, w.Entity("wolf-1").HP)

	// Dead targets cannot be attacked again.
	Execute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 50})
	assert.Equal(t, 0, w.Entity("wolf-1").HP)
	assert.False(t, CanExecute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 5}))
}

func TestAttack_KillAdvancesDefeatObjectives(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"
	w.AddQuest(&world.Quest{ID: "hunt", Title: "Hunt", Objectives: map[string]int{
		world.DefeatObjective("wolf-1"): 1,
	}})
	w.AddQuest(&world.Quest{ID: "cull", Title: "Cull", Objectives: map[string]int{
		world.DefeatTagObjective("mob"): 2,
	}})
	require.True(t, w.AssignQuest("p1", "hunt"))
	require.True(t, w.AssignQuest("p1", "cull"))

	// A non-lethal hit advances nothing.
	Execute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 9})
	hero := w.Entity("p1")
	assert.False(t, hero.QuestLog["hunt"].Completed)

	// The killing blow advances both the per-target and per-tag objectives.
	Execute(w, Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 9})
	assert.True(t, hero.QuestLog["hunt"].Completed)
	assert.Equal(t, 1, hero.QuestLog["cull"].Progress[world.DefeatTagObjective("mob")])
	assert.False(t, hero.QuestLog["cull"].Completed)
}

func TestGather(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"

	res := Execute(w, Gather{ActorID: "p1", Resource: "wood", Amount: 2})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "gathered:wood:2", res.Detail)
	assert.Equal(t, 3, w.Area("Forest").Resources["wood"])
	assert.Equal(t, 2, w.Entity("p1").ItemCount("wood"))
}

func TestGather_ClampsToAvailable(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"

	res := Execute(w, Gather{ActorID: "p1", Resource: "wood", Amount: 99})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "gathered:wood:5", res.Detail)
	assert.Equal(t, 0, w.Area("Forest").Resources["wood"])
	assert.Equal(t, 5, w.Entity("p1").ItemCount("wood"))
}

func TestGather_Depleted(t *testing.T) {
	w := newTestWorld()
	// Village has no wood at all.
	assert.False(t, CanExecute(w, Gather{ActorID: "p1", Resource: "wood", Amount: 1}))

	res := Execute(w, Gather{ActorID: "p1", Resource: "wood", Amount: 1})
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonResourceDepleted, res.Detail)
	assert.Equal(t, 0, w.Entity("p1").ItemCount("wood"))
	assert.Equal(t, 0, w.EventCount())
}

func TestGather_AdvancesObjectiveByAmount(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"
	w.AddQuest(&world.Quest{ID: "lumber", Title: "Lumber", Objectives: map[string]int{
		world.GatherObjective("wood"): 3,
	}})
	require.True(t, w.AssignQuest("p1", "lumber"))

	Execute(w, Gather{ActorID: "p1", Resource: "wood", Amount: 3})
	assert.True(t, w.Entity("p1").QuestLog["lumber"].Completed)
}

func TestCraft(t *testing.T) {
	w := newTestWorld()
	hero := w.Entity("p1")
	hero.AddItem("wood", 2)

	recipe := Craft{ActorID: "p1", Requirements: map[string]int{"wood": 2}, Output: "plank"}
	require.True(t, CanExecute(w, recipe))

	res := Execute(w, recipe)
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "crafted:plank", res.Detail)
	assert.Equal(t, 0, hero.ItemCount("wood"))
	assert.Equal(t, 1, hero.ItemCount("plank"))
}

func TestCraft_MissingMaterials(t *testing.T) {
	w := newTestWorld()
	hero := w.Entity("p1")
	hero.AddItem("wood", 1)

	recipe := Craft{ActorID: "p1", Requirements: map[string]int{"wood": 2}, Output: "plank"}
	assert.False(t, CanExecute(w, recipe))

	// All-or-nothing: the partial stock is untouched.
	res := Execute(w, recipe)
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonMissingMaterials, res.Detail)
	assert.Equal(t, 1, hero.ItemCount("wood"))
	assert.Equal(t, 0, hero.ItemCount("plank"))
	assert.Equal(t, 0, w.EventCount())
}

func TestChat(t *testing.T) {
	w := newTestWorld()

	res := Execute(w, Chat{ActorID: "p1", Message: "hello"})
	require.Equal(t, StatusOK, res.Status)

	events := w.RecentEvents(1)
	require.Len(t, events, 1)
	assert.Equal(t, "chat", events[0].Kind)
	assert.Equal(t, "Hero says: hello", events[0].Detail)
}

func TestRest_ClampsAtMax(t *testing.T) {
	w := newTestWorld()
	hero := w.Entity("p1")
	hero.HP = 95
	hero.Mana = 10

	res := Execute(w, Rest{ActorID: "p1", HPRestore: 20, ManaRestore: 20})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, world.MaxHP, hero.HP)
	assert.Equal(t, 30, hero.Mana)
}

func TestTrade(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&world.Entity{ID: "npc-1", Name: "Merchant", Area: "Village", HP: 100})
	hero := w.Entity("p1")
	hero.AddItem("wood", 3)

	// Target in another area fails the precondition.
	assert.False(t, CanExecute(w, Trade{ActorID: "p1", TargetID: "wolf-1", Item: "wood", Amount: 1}))

	res := Execute(w, Trade{ActorID: "p1", TargetID: "npc-1", Item: "wood", Amount: 2})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, 1, hero.ItemCount("wood"))
	assert.Equal(t, 2, w.Entity("npc-1").ItemCount("wood"))
}

func TestTrade_InsufficientItems(t *testing.T) {
	w := newTestWorld()
	w.AddEntity(&world.Entity{ID: "npc-1", Name: "Merchant", Area: "Village", HP: 100})

	res := Execute(w, Trade{ActorID: "p1", TargetID: "npc-1", Item: "wood", Amount: 1})
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonInsufficientItems, res.Detail)
	assert.Equal(t, 0, w.Entity("npc-1").ItemCount("wood"))
}

func TestUseSkill(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"
	w.AddSkill(&world.Skill{
		ID:       "firebolt",
		Name:     "Firebolt",
		ManaCost: 10,
		Effect: world.EffectFunc(func(w *world.State, caster, target *world.Entity) string {
			target.HP -= 6
			return "scorched:" + target.ID
		}),
	})

	res := Execute(w, UseSkill{ActorID: "p1", TargetID: "wolf-1", SkillID: "firebolt"})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "skill:firebolt:scorched:wolf-1", res.Detail)
	assert.Equal(t, 40, w.Entity("p1").Mana)
	assert.Equal(t, 4, w.Entity("wolf-1").HP)
}

func TestUseSkill_Failures(t *testing.T) {
	w := newTestWorld()
	w.AddSkill(&world.Skill{ID: "firebolt", Name: "Firebolt", ManaCost: 10})

	res := Execute(w, UseSkill{ActorID: "p1", SkillID: "unknown"})
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonSkillMissing, res.Detail)

	w.Entity("p1").Mana = 5
	assert.False(t, CanExecute(w, UseSkill{ActorID: "p1", SkillID: "firebolt"}))
	res = Execute(w, UseSkill{ActorID: "p1", SkillID: "firebolt"})
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonInsufficientMana, res.Detail)
	assert.Equal(t, 5, w.Entity("p1").Mana)
}

func TestObserve(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"

	res := Execute(w, Observe{ActorID: "p1"})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Forest | entities: Wolf | resources: wood=5", res.Detail)

	// Observation leaves everything but the event log untouched.
	assert.Equal(t, 5, w.Area("Forest").Resources["wood"])
	assert.Equal(t, 1, w.EventCount())
}

func TestObserve_EmptyArea(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Cave"

	res := Execute(w, Observe{ActorID: "p1"})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "Cave | entities: none | resources: none", res.Detail)
}

func TestAcceptQuest(t *testing.T) {
	w := newTestWorld()
	w.AddQuest(&world.Quest{ID: "first-steps", Title: "First Steps", Objectives: map[string]int{
		world.GatherObjective("wood"): 2,
	}})

	res := Execute(w, AcceptQuest{ActorID: "p1", QuestID: "first-steps"})
	require.Equal(t, StatusOK, res.Status)
	assert.Equal(t, "quest_accepted:first-steps", res.Detail)
	require.NotNil(t, w.Entity("p1").QuestLog["first-steps"])

	// A duplicate accept fails and logs nothing further.
	before := w.EventCount()
	res = Execute(w, AcceptQuest{ActorID: "p1", QuestID: "first-steps"})
	require.Equal(t, StatusError, res.Status)
	assert.Equal(t, ReasonQuestUnavailable, res.Detail)
	assert.Equal(t, before, w.EventCount())
}

func TestExecute_OneEventPerSuccess(t *testing.T) {
	w := newTestWorld()
	w.Entity("p1").Area = "Forest"
	w.Entity("p1").AddItem("wood", 2)

	actions := []Action{
		Move{ActorID: "p1", Destination: "Village"},
		Move{ActorID: "p1", Destination: "Forest"},
		Gather{ActorID: "p1", Resource: "wood", Amount: 1},
		Craft{ActorID: "p1", Requirements: map[string]int{"wood": 2}, Output: "plank"},
		Attack{ActorID: "p1", TargetID: "wolf-1", Damage: 3},
		Chat{ActorID: "p1", Message: "done"},
		Rest{ActorID: "p1", HPRestore: 5, ManaRestore: 5},
	}
	for i, a := range actions {
		res := Execute(w, a)
		require.Equal(t, StatusOK, res.Status, "action %d (%s)", i, a.Kind())
		require.Equal(t, i+1, w.EventCount(), "action %d (%s)", i, a.Kind())
	}
}
