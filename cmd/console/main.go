package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/worldsim/internal/demo"
	"github.com/jwebster45206/worldsim/pkg/brain"
	"github.com/jwebster45206/worldsim/pkg/engine"
	"github.com/jwebster45206/worldsim/pkg/methods"
	"github.com/jwebster45206/worldsim/pkg/toolkit"
	"github.com/jwebster45206/worldsim/pkg/world"
)

func main() {
	w := world.NewState()
	tk := toolkit.New(w, methods.NewLibrary())
	demo.BuildWorld(tk)

	eng := engine.New(w)
	eng.RegisterBrain(demo.HeroID, brain.NewRuleBrain())
	eng.RegisterBrain(demo.WolfID, &brain.RuleBrain{
		RestThreshold: 10,
		AttackDamage:  6,
		HPRestore:     10,
		ManaRestore:   5,
	})

	p := tea.NewProgram(NewConsoleUI(eng), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
