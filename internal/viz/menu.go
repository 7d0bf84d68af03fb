package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/stepviz/internal/catalog"
	"go.uber.org/zap"
)

const (
	stateMenu = iota
	statePlay
)

// Menu lets the user pick an algorithm and then plays its sample input.
type Menu struct {
	reg    *catalog.Registry
	names  []string
	speed  time.Duration
	log    *zap.Logger
	state  int
	cursor int
	err    error
	player Player
	width  int
}

func NewMenu(reg *catalog.Registry, speed time.Duration, log *zap.Logger) Menu {
	return Menu{reg: reg, names: reg.List(), speed: speed, log: log, width: defaultWidth}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
	}
	if m.state == statePlay {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
			m.player.ctrl.Close()
			m.state = stateMenu
			return m, nil
		}
		next, cmd := m.player.Update(msg)
		m.player = next.(Player)
		return m, cmd
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		return m.menuKey(k)
	}
	return m, nil
}

func (m Menu) menuKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "t":
		nextTheme()
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m Menu) start() (Menu, tea.Cmd) {
	name := m.names[m.cursor]
	entry, err := m.reg.Get(name)
	if err != nil {
		m.err = err
		return m, nil
	}
	seq, err := m.reg.Run(name, entry.Sample)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.player = NewPlayer(entry, seq, m.speed, m.log)
	m.player.width = m.width
	m.state = statePlay
	return m, m.player.Init()
}

func (m Menu) View() string {
	if m.state == statePlay {
		return m.player.View()
	}
	p := styles()
	var b strings.Builder
	b.WriteString("\n    " + p.title.Render("STEPVIZ") + "\n    " + p.subtle.Render("algorithms, one step at a time") + "\n    " + p.subtle.Render("─────────────────────────────") + "\n\n")
	for i, name := range m.names {
		entry, _ := m.reg.Get(name)
		desc := entry.Summary
		if len(desc) > 48 {
			desc = desc[:45] + "..."
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n", p.mark.Render("▸"), p.text.Bold(true).Render(fmt.Sprintf("%-14s", name)), p.subtle.Render(fmt.Sprintf("%-7s", entry.Family)), p.codeHi.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s  %s\n", p.subtle.Render(fmt.Sprintf("%-14s", name)), p.subtle.Render(fmt.Sprintf("%-7s", entry.Family)), p.code.Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + p.warning.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + keyHelp("j/k", "navigate", "enter", "play", "esc", "back", "t", "theme", "q", "quit") + "\n")
	return b.String()
}

// RunMenu starts the picker full-screen.
func RunMenu(reg *catalog.Registry, speed time.Duration, log *zap.Logger) error {
	_, err := tea.NewProgram(NewMenu(reg, speed, log), tea.WithAltScreen()).Run()
	return err
}
