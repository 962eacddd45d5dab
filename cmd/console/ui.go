package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jwebster45206/worldsim/pkg/action"
	"github.com/jwebster45206/worldsim/pkg/engine"
	"github.com/jwebster45206/worldsim/pkg/world"
)

// ConsoleUI is the BubbleTea model that steps the simulation interactively.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	eng            *engine.Engine
	eventViewport  viewport.Model
	statusViewport viewport.Model
	lastResults    []action.Result
	ready          bool
	width          int
	height         int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	invalidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	eventPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(1)

	statusPanelStyle = lipgloss.NewStyle().
				PaddingTop(1).
				PaddingLeft(1).
				PaddingRight(2)
)

var titleCaser = cases.Title(language.English)

func NewConsoleUI(eng *engine.Engine) ConsoleUI {
	eventVp := viewport.New(60, 20)
	eventVp.MouseWheelEnabled = true
	statusVp := viewport.New(30, 20)

	return ConsoleUI{
		eng:            eng,
		eventViewport:  eventVp,
		statusViewport: statusVp,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		evCmd tea.Cmd
		stCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		eventWidth := int(float64(m.width)*0.65) - 2
		statusWidth := m.width - eventWidth - 4
		m.eventViewport.Width = eventWidth
		m.eventViewport.Height = m.height - 4
		m.statusViewport.Width = statusWidth
		m.statusViewport.Height = m.height - 4

		m.ready = true
		m.writeEventContent()
		m.statusViewport.SetContent(m.writeStatus())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			m.lastResults = m.eng.Step()
			m.writeEventContent()
			m.statusViewport.SetContent(m.writeStatus())
			return m, nil
		}
	}

	m.eventViewport, evCmd = m.eventViewport.Update(msg)
	m.statusViewport, stCmd = m.statusViewport.Update(msg)
	return m, tea.Batch(evCmd, stCmd)
}

func (m ConsoleUI) View() string {
	if !m.ready {
		return "Initializing..."
	}

	events := eventPanelStyle.Render(m.eventViewport.View())
	status := statusPanelStyle.Render(m.statusViewport.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, events, status)
	help := helpStyle.Render("  enter/space: step • q: quit")

	return panels + "\n" + help
}

// writeEventContent rebuilds the event log panel for the current width.
func (m *ConsoleUI) writeEventContent() {
	wrapWidth := m.eventViewport.Width - 4

	var content strings.Builder
	content.WriteString(titleStyle.Render("WORLD EVENTS") + "\n\n")

	w := m.eng.World()
	events := w.RecentEvents(100)
	if len(events) == 0 {
		content.WriteString("No events yet. Press enter to run the first tick.\n")
	}
	for _, ev := range events {
		line := fmt.Sprintf("[%3d] %s: %s", ev.Tick, ev.Kind, ev.Detail)
		style := eventStyle
		if ev.Kind == "action_invalid" {
			style = invalidStyle
		}
		content.WriteString(style.Render(wordwrap.String(line, wrapWidth)) + "\n")
	}

	if len(m.lastResults) > 0 {
		content.WriteString("\n" + labelStyle.Render("Last step results:") + "\n")
		for _, res := range m.lastResults {
			content.WriteString(fmt.Sprintf("• %s: %s\n", res.Status, res.Detail))
		}
	}

	m.eventViewport.SetContent(content.String())
	m.eventViewport.GotoBottom()
}

// writeStatus builds the entity status panel.
func (m *ConsoleUI) writeStatus() string {
	w := m.eng.World()

	var content strings.Builder
	content.WriteString(titleStyle.Render("WORLD STATE") + "\n\n")
	content.WriteString(fmt.Sprintf("Clock: %d\n\n", w.Clock()))

	for _, e := range w.Entities() {
		content.WriteString(labelStyle.Render(titleCaser.String(e.Name)) + "\n")
		content.WriteString(fmt.Sprintf("  hp %d/%d  mana %d/%d\n",
			e.HP, world.MaxHP, e.Mana, world.MaxMana))
		content.WriteString("  in " + e.Area + "\n")
		if len(e.Inventory) > 0 {
			items := make([]string, 0, len(e.Inventory))
			for item, qty := range e.Inventory {
				items = append(items, fmt.Sprintf("%s×%d", item, qty))
			}
			sort.Strings(items)
			content.WriteString("  bag: " + strings.Join(items, ", ") + "\n")
		}
		for questID, qp := range e.QuestLog {
			mark := " "
			if qp.Completed {
				mark = "✓"
			}
			content.WriteString(fmt.Sprintf("  quest %s [%s]\n", questID, mark))
		}
		content.WriteString("\n")
	}

	for _, a := range w.Areas() {
		content.WriteString(labelStyle.Render(a.Name) + "\n")
		kinds := make([]string, 0, len(a.Resources))
		for kind := range a.Resources {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			content.WriteString(fmt.Sprintf("  %s: %d\n", kind, a.Resources[kind]))
		}
	}

	return content.String()
}
