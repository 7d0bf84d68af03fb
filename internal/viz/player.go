package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/san-kum/stepviz/internal/metrics"
	"github.com/san-kum/stepviz/internal/playback"
	"github.com/san-kum/stepviz/internal/step"
	"go.uber.org/zap"
)

const (
	defaultWidth = 100
	seekJump     = 10
	minSpeed     = 10 * time.Millisecond
	maxSpeed     = 5 * time.Second
)

// Player is the bubbletea model that drives a playback.Controller.
type Player struct {
	ctrl     *playback.Controller
	sched    *TeaScheduler
	entry    catalog.Entry
	stats    map[string]float64
	autoplay bool
	width    int
	showHelp bool
}

type PlayerOption func(*Player)

func WithAutoplay() PlayerOption {
	return func(p *Player) { p.autoplay = true }
}

// NewPlayer loads seq into a fresh controller running on tea ticks.
func NewPlayer(entry catalog.Entry, seq step.Sequence, speed time.Duration, log *zap.Logger, opts ...PlayerOption) Player {
	if log == nil {
		log = zap.NewNop()
	}
	sched := &TeaScheduler{}
	ctrl := playback.New(
		playback.WithScheduler(sched),
		playback.WithLogger(log),
		playback.WithSpeed(speed),
	)
	ctrl.Load(seq)
	p := Player{
		ctrl:  ctrl,
		sched: sched,
		entry: entry,
		stats: metrics.Summarize(seq),
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Controller exposes the underlying controller.
func (m Player) Controller() *playback.Controller { return m.ctrl }

func (m Player) Init() tea.Cmd {
	if m.autoplay {
		m.ctrl.Play()
	}
	return m.sched.Cmd()
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		return m, tea.Batch(m.sched.Fire(msg), m.sched.Cmd())
	case tea.KeyMsg:
		if quit := m.handleKey(msg.String()); quit {
			m.ctrl.Close()
			return m, tea.Quit
		}
		return m, m.sched.Cmd()
	}
	return m, nil
}

// handleKey applies one key press and reports whether to quit.
func (m *Player) handleKey(key string) bool {
	c := m.ctrl
	switch key {
	case "q", "ctrl+c", "esc":
		return true
	case " ":
		c.Toggle()
	case "right", "l":
		c.StepForward()
	case "left", "h":
		c.StepBack()
	case "]":
		c.Seek(c.Cursor() + seekJump)
	case "[":
		c.Seek(c.Cursor() - seekJump)
	case "g", "home":
		c.Seek(0)
	case "G", "end":
		c.Seek(c.Len() - 1)
	case "+", "=":
		c.SetSpeed(max(c.Speed()/2, minSpeed))
	case "-", "_":
		c.SetSpeed(min(c.Speed()*2, maxSpeed))
	case "r":
		c.Reset()
	case "t":
		nextTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return false
}

func (m Player) View() string {
	p := styles()
	snap := m.ctrl.Snapshot()

	var status string
	switch snap.State {
	case playback.Playing:
		status = p.done.Render("▶ PLAYING")
	case playback.Paused:
		status = p.compare.Render("❚❚ PAUSED")
	default:
		status = p.subtle.Render("IDLE")
	}

	var head strings.Builder
	head.WriteString(p.title.Render(strings.ToUpper(m.entry.Name)) + "  " + p.subtle.Render(m.entry.Family.String()) + "\n")
	head.WriteString(fmt.Sprintf("%s  %s  %s\n",
		status,
		p.text.Render(fmt.Sprintf("step %d/%d", snap.Cursor+1, snap.Len)),
		p.subtle.Render(fmt.Sprintf("speed %s", snap.Speed))))
	head.WriteString(ProgressBar(snap.Cursor, snap.Len, min(m.width-4, 60)) + "\n")

	left := Render(snap.Step, m.width/2)
	if snap.Step != nil {
		left += p.message.Render(snap.Step.Info().Message)
	}
	body := left
	if len(m.entry.Code) > 0 {
		line := 0
		if snap.Step != nil {
			line = snap.Step.Info().Line
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", p.panel.Render(renderCode(m.entry.Code, line)))
	}

	var foot strings.Builder
	foot.WriteString(Separator(min(m.width-4, 60)) + "\n")
	var parts []string
	for _, name := range []string{"comparisons", "swaps", "probes", "backtracks"} {
		if v := m.stats[name]; v > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", name, int(v)))
		}
	}
	if len(parts) > 0 {
		foot.WriteString(p.subtle.Render(strings.Join(parts, " · ")) + "\n")
	}
	if m.showHelp {
		foot.WriteString(keyHelp("space", "play/pause", "←/→", "step", "[ ]", "±10", "g/G", "first/last") + "\n")
		foot.WriteString(keyHelp("+/-", "speed", "r", "reset", "t", "theme", "q", "quit") + "\n")
	} else {
		foot.WriteString(keyHelp("space", "play/pause", "←/→", "step", "?", "help", "q", "quit") + "\n")
	}

	return head.String() + "\n" + body + "\n\n" + foot.String()
}

// Play runs the player full-screen until the user quits.
func Play(entry catalog.Entry, seq step.Sequence, speed time.Duration, log *zap.Logger, opts ...PlayerOption) error {
	_, err := tea.NewProgram(NewPlayer(entry, seq, speed, log, opts...), tea.WithAltScreen()).Run()
	return err
}
