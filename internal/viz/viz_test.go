package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/san-kum/stepviz/internal/playback"
	"github.com/san-kum/stepviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPlayer(t *testing.T, name string) Player {
	t.Helper()
	reg := catalog.NewRegistry()
	entry, err := reg.Get(name)
	require.NoError(t, err)
	seq, err := reg.Run(name, entry.Sample)
	require.NoError(t, err)
	return NewPlayer(entry, seq, 5*time.Millisecond, nil)
}

func press(m Player, msg tea.Msg) (Player, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Player), cmd
}

func TestTeaScheduler_DropsStaleTicks(t *testing.T) {
	s := &TeaScheduler{}
	fired := 0

	first := s.Every(time.Millisecond, func() { fired++ })
	require.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "a timer is only handed out once")

	second := s.Every(time.Millisecond, func() { fired += 10 })
	assert.Nil(t, s.Fire(tickMsg{gen: 1}), "replaced timer")
	assert.Equal(t, 0, fired)

	assert.NotNil(t, s.Fire(tickMsg{gen: 2}))
	assert.Equal(t, 10, fired)

	second.Stop()
	assert.Nil(t, s.Fire(tickMsg{gen: 2}))
	assert.Nil(t, s.Cmd())
	assert.Equal(t, 10, fired)

	first.Stop()
}

func TestTeaScheduler_StopInsideCallback(t *testing.T) {
	s := &TeaScheduler{}
	var timer playback.Timer
	timer = s.Every(time.Millisecond, func() { timer.Stop() })
	s.Cmd()

	assert.Nil(t, s.Fire(tickMsg{gen: 1}))
}

func TestPlayer_PlaysOnTicks(t *testing.T) {
	m := newTestPlayer(t, "bubble")
	ctrl := m.Controller()
	require.Equal(t, playback.Paused, ctrl.State())

	m, cmd := press(m, key(" "))
	require.Equal(t, playback.Playing, ctrl.State())
	require.NotNil(t, cmd)

	msg := cmd()
	tick, ok := msg.(tickMsg)
	require.True(t, ok)

	m, _ = press(m, tick)
	assert.Equal(t, 1, ctrl.Cursor())

	m, _ = press(m, key(" "))
	assert.Equal(t, playback.Paused, ctrl.State())

	// The earlier tick belongs to a stopped timer.
	press(m, tick)
	assert.Equal(t, 1, ctrl.Cursor())
}

func TestPlayer_TransportKeys(t *testing.T) {
	m := newTestPlayer(t, "merge")
	ctrl := m.Controller()
	last := ctrl.Len() - 1
	require.Greater(t, last, seekJump)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, ctrl.Cursor())
	m, _ = press(m, key("]"))
	assert.Equal(t, 11, ctrl.Cursor())
	m, _ = press(m, key("["))
	assert.Equal(t, 1, ctrl.Cursor())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, ctrl.Cursor())
	m, _ = press(m, key("G"))
	assert.Equal(t, last, ctrl.Cursor())
	m, _ = press(m, key("g"))
	assert.Equal(t, 0, ctrl.Cursor())

	m, _ = press(m, key("+"))
	assert.Equal(t, minSpeed, ctrl.Speed())
	m, _ = press(m, key("-"))
	assert.Equal(t, 2*minSpeed, ctrl.Speed())

	m, _ = press(m, key("G"))
	press(m, key("r"))
	assert.Equal(t, 0, ctrl.Cursor())
	assert.Equal(t, playback.Paused, ctrl.State())
}

func TestPlayer_Quit(t *testing.T) {
	m := newTestPlayer(t, "bfs")
	_, cmd := press(m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, playback.Idle, m.Controller().State())
}

func TestPlayer_View(t *testing.T) {
	m := newTestPlayer(t, "bubble")
	view := m.View()

	assert.Contains(t, view, "BUBBLE")
	assert.Contains(t, view, "step 1/")
	assert.Contains(t, view, "Starting bubble sort.")
	assert.Contains(t, view, "swapped := false")
}

func TestRender_EveryFamily(t *testing.T) {
	reg := catalog.NewRegistry()
	for _, name := range reg.List() {
		t.Run(name, func(t *testing.T) {
			e, err := reg.Get(name)
			require.NoError(t, err)
			seq, err := reg.Run(name, e.Sample)
			require.NoError(t, err)
			for _, s := range seq.All() {
				assert.NotEmpty(t, strings.TrimSpace(Render(s, defaultWidth)))
			}
		})
	}
}

func TestRender_Nil(t *testing.T) {
	assert.Contains(t, Render(nil, 80), "nothing loaded")
}

func TestRender_Array(t *testing.T) {
	out := Render(&step.ArrayStep{Array: []int{3, 10, 7}, Pivot: 2, Found: -1, Aux: []int{1, 0}, AuxLabel: "count"}, 80)
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "p")
	assert.Contains(t, out, "count")
}

func TestRender_ListCycle(t *testing.T) {
	out := Render(&step.ListStep{Values: []int{1, 2, 3}, Next: []int{1, 2, 1}, Head: 0, Prev: -1, Curr: 0, Ahead: -1}, 80)
	assert.Contains(t, out, "↺ [2]")
	assert.Contains(t, out, "curr")
}

func TestRender_Bits(t *testing.T) {
	out := Render(&step.BitStep{Value: 0b101, Width: 4, Bit: 0, Result: 2}, 80)
	assert.Contains(t, out, "= 5")
	assert.Contains(t, out, "2")
}

func TestRender_Hash(t *testing.T) {
	out := Render(&step.HashStep{
		Slots: []step.Slot{{}, {State: step.SlotOccupied, Key: 8}, {State: step.SlotTombstone, Key: 3}},
		Key:   8, Probe: 1, Probes: 1, Found: true,
	}, 80)
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "✝")
	assert.Contains(t, out, "found")
}

func TestRenderCode(t *testing.T) {
	out := renderCode([]string{"a", "b", "c"}, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "▸")
	assert.NotContains(t, lines[0], "▸")
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawLine(0, 0, 7, 7)
	c.Label(0, 1, "AB", 2)

	rows := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	require.Len(t, rows, 2)
	assert.NotEqual(t, strings.Repeat(string(rune(brailleBlank)), 4), rows[0])
	assert.True(t, strings.HasPrefix(rows[1], "AB"))
	assert.Equal(t, 4, len([]rune(rows[1])))
}

func TestThemes(t *testing.T) {
	defer SetTheme(CurrentTheme.Name)
	SetTheme("classic")
	nextTheme()
	assert.Equal(t, "retro", CurrentTheme.Name)
	assert.Equal(t, ThemeClassic, GetTheme("nope"))
}

func TestMenu_StartsAndReturns(t *testing.T) {
	m := NewMenu(catalog.NewRegistry(), 5*time.Millisecond, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Menu)
	require.Equal(t, statePlay, m.state)
	assert.Equal(t, m.names[0], strings.ToLower(m.player.entry.Name))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Menu)
	assert.Equal(t, stateMenu, m.state)
	assert.Contains(t, m.View(), "STEPVIZ")
}
