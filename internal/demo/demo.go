// Package demo authors the small two-zone world shared by the example
// drivers: a village bordering a forest that holds wood and a wolf.
package demo

import (
	"github.com/jwebster45206/worldsim/pkg/toolkit"
	"github.com/jwebster45206/worldsim/pkg/world"
)

const (
	HeroID = "p1"
	WolfID = "wolf-1"
)

// BuildWorld registers the demo areas, entities, quest, and skill.
func BuildWorld(tk *toolkit.GameDevToolkit) {
	tk.CreateArea("Village", "A quiet starting zone", []string{"Forest"},
		map[string]int{"water": 3})
	tk.CreateArea("Forest", "Wild woodland", []string{"Village"},
		map[string]int{"wood": 5})

	tk.SpawnEntity(HeroID, "Adventurer", "Village", []string{"player"})
	tk.SpawnEntity(WolfID, "Wolf", "Forest", []string{"mob"})

	tk.AddItem("plank", "Plank", "A rough wooden plank", true)
	tk.AddQuest("first-steps", "First Steps",
		"Visit the forest, fell a wolf, and bring back wood.",
		map[string]int{
			world.GatherObjective("wood"):   2,
			world.TravelObjective("Forest"): 1,
			world.DefeatTagObjective("mob"): 1,
		})
	tk.AssignQuest(HeroID, "first-steps")

	tk.AddSkill("firebolt", "Firebolt", 10,
		world.EffectFunc(func(w *world.State, caster, target *world.Entity) string {
			if target == nil {
				return "fizzled"
			}
			target.HP -= 12
			if target.HP < 0 {
				target.HP = 0
			}
			return "scorched:" + target.ID
		}))
}
