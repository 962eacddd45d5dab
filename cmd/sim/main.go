package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jwebster45206/worldsim/internal/config"
	"github.com/jwebster45206/worldsim/internal/demo"
	"github.com/jwebster45206/worldsim/internal/journal"
	"github.com/jwebster45206/worldsim/internal/logger"
	"github.com/jwebster45206/worldsim/pkg/brain"
	"github.com/jwebster45206/worldsim/pkg/engine"
	"github.com/jwebster45206/worldsim/pkg/methods"
	"github.com/jwebster45206/worldsim/pkg/toolkit"
	"github.com/jwebster45206/worldsim/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg := logger.Setup(cfg)
	logg.Info("Starting world simulation",
		"environment", cfg.Environment,
		"ticks", cfg.Ticks)

	w := world.NewState()
	lib := methods.NewLibrary()
	tk := toolkit.New(w, lib)
	demo.BuildWorld(tk)

	// Optional extra content layered over the built-in demo world.
	worldFile := filepath.Join(cfg.DataDir, "world.json")
	if _, err := os.Stat(worldFile); err == nil {
		if err := tk.LoadWorldFile(worldFile); err != nil {
			logg.Error("Failed to load world file", "path", worldFile, "error", err)
			os.Exit(1)
		}
		logg.Info("Loaded world content", "path", worldFile)
	}

	// The heal mechanic lives in the method library so content and tests
	// can invoke it by name.
	tk.RegisterMethod("heal", "Restores hit points to an entity", []string{"combat"},
		func(args ...any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("heal expects one entity argument")
			}
			e, ok := args[0].(*world.Entity)
			if !ok {
				return nil, fmt.Errorf("heal expects an entity, got %T", args[0])
			}
			e.HP += 15
			if e.HP > world.MaxHP {
				e.HP = world.MaxHP
			}
			return e.HP, nil
		})

	// An unknown method name is a wiring bug, so a failed Run is fatal.
	if _, err := lib.Run("heal", w.Entity(demo.HeroID)); err != nil {
		logg.Error("Method invocation failed", "error", err)
		os.Exit(1)
	}

	eng := engine.New(w)
	eng.RegisterBrain(demo.HeroID, brain.NewRuleBrain())
	eng.RegisterBrain(demo.WolfID, &brain.RuleBrain{
		RestThreshold: 10,
		AttackDamage:  6,
		HPRestore:     10,
		ManaRestore:   5,
	})

	var jr *journal.Journal
	runID := uuid.New()
	if cfg.RedisURL != "" {
		client, err := journal.NewClient(cfg.RedisURL, logg)
		if err != nil {
			logg.Error("Failed to connect journal", "error", err)
			os.Exit(1)
		}
		defer func() {
			_ = client.Close()
		}()
		jr = journal.NewJournal(client, logg)
		logg.Info("Event journal enabled", "run_id", runID)
	}

	ctx := context.Background()
	for i := 0; i < cfg.Ticks; i++ {
		cursor := w.EventCount()
		results := eng.Step()
		for _, res := range results {
			logg.Info("Action result",
				"tick", w.Clock(),
				"status", res.Status,
				"detail", res.Detail)
		}
		if jr != nil {
			if err := jr.Append(ctx, runID, w.EventsSince(cursor)); err != nil {
				logg.Error("Failed to journal events", "error", err)
				os.Exit(1)
			}
		}
	}

	hero := w.Entity(demo.HeroID)
	logg.Info("Simulation finished",
		"clock", w.Clock(),
		"hero_hp", hero.HP,
		"hero_inventory", hero.Inventory)
	for questID, qp := range hero.QuestLog {
		logg.Info("Quest progress",
			"quest", questID,
			"progress", qp.Progress,
			"completed", qp.Completed)
	}
	for _, ev := range w.RecentEvents(10) {
		logg.Info("Event", "tick", ev.Tick, "kind", ev.Kind, "detail", ev.Detail)
	}
}
