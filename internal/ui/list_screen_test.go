package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loog-project/followlist/internal/person"
	"github.com/loog-project/followlist/internal/store"
	"github.com/loog-project/followlist/internal/store/memory"
)

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) SetFollowed(uuid.UUID, bool) error {
	return errStoreDown
}

func (failingStore) Followed(uuid.UUID) (bool, error) {
	return false, store.ErrNotFound
}

func newReadyScreen(t *testing.T, followStore store.FollowStore, width, height int) *ListScreen {
	t.Helper()
	ls := NewListScreen(followStore, NewUILogger())
	ls.SetTheme(DarkTheme)
	ls.SetSize(width, height)
	ls.Populate(person.Generate())
	require.Equal(t, StateReady, ls.State())
	return ls
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestListScreenStartsUninitialized(t *testing.T) {
	ls := NewListScreen(nil, nil)

	assert.Equal(t, StateUninitialized, ls.State())
	assert.Zero(t, ls.RowCount())
	assert.Contains(t, ls.View(), "Loading")
}

func TestListScreenInitPopulatesOnce(t *testing.T) {
	ls := NewListScreen(store.Discard, NewUILogger())
	ls.SetTheme(DarkTheme)

	msgs := collect(ls.Init())
	require.Len(t, msgs, 1)
	ls.Update(msgs[0])

	assert.Equal(t, StateReady, ls.State())
	assert.Equal(t, person.DatasetSize, ls.RowCount())

	ls.Populate([]person.Person{person.New("someone else", person.Male, 1)})
	assert.Equal(t, person.DatasetSize, ls.RowCount())
	assert.Equal(t, "user 1", ls.RowAt(0).Name())
}

func TestListScreenRowAtBeforeToggle(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)

	for i := 0; i < ls.RowCount(); i++ {
		row := ls.RowAt(i)
		assert.Equal(t, fmt.Sprintf("user %d", i+1), row.Name())
		assert.Equal(t, "Follow", row.Title())
	}
}

func TestListScreenRowAtOutOfRangePanics(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)
	assert.Panics(t, func() { ls.RowAt(person.DatasetSize) })
	assert.Panics(t, func() { ls.RowAt(-1) })
}

func TestListScreenToggleIsNotWrittenBackByDefault(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)

	ls.Update(key("down"))
	ls.Update(key("down"))
	ls.Update(key("space"))

	row, ok := ls.VisibleRow(2)
	require.True(t, ok)
	assert.Equal(t, "user 3", row.Name())
	assert.Equal(t, "Unfollow", row.Title())

	ls.ReloadRows()

	row, ok = ls.VisibleRow(2)
	require.True(t, ok)
	assert.Equal(t, "Follow", row.Title())
}

func TestListScreenToggleWithMemoryStoreSurvivesReload(t *testing.T) {
	followStore := memory.New()
	ls := newReadyScreen(t, followStore, 80, 30)

	row, ok := ls.VisibleRow(2)
	require.True(t, ok)
	row.Toggle()

	followed, err := followStore.Followed(person.IDFor("user 3"))
	require.NoError(t, err)
	assert.True(t, followed)

	ls.ReloadRows()
	row, _ = ls.VisibleRow(2)
	assert.Equal(t, "Unfollow", row.Title())

	// the record itself is untouched
	ls.Update(key("r"))
	assert.False(t, ls.records[2].IsFollowed)
}

func TestListScreenRecyclesRowsWhileScrolling(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 5) // 4 rows + status line

	row, ok := ls.VisibleRow(0)
	require.True(t, ok)
	row.Toggle()
	require.Equal(t, "Unfollow", row.Title())

	for i := 0; i < 10; i++ {
		ls.Update(key("down"))
	}
	_, ok = ls.VisibleRow(0)
	assert.False(t, ok, "row 0 should have been recycled")
	assert.Len(t, ls.visible, 4)

	for i := 0; i < 10; i++ {
		ls.Update(key("up"))
	}
	row, ok = ls.VisibleRow(0)
	require.True(t, ok)
	assert.Equal(t, "Follow", row.Title())

	assert.Equal(t, 4, ls.pool.Created())
}

func TestListScreenSelectionIsCleared(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)

	ls.Update(key("down"))
	_, cmd := ls.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, ls.Selected())

	ls.Update(deselectMsg{index: 1})
	assert.Equal(t, noSelection, ls.Selected())

	ls.selected = 5
	ls.OnRowSelected(5)
	assert.Equal(t, noSelection, ls.Selected())
}

func TestListScreenStaleDeselectKeepsNewerSelection(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)

	ls.Update(key("down"))
	ls.Update(key("enter"))
	ls.Update(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, 2, ls.Selected())

	ls.Update(deselectMsg{index: 1})
	assert.Equal(t, 2, ls.Selected())

	ls.Update(deselectMsg{index: 2})
	assert.Equal(t, noSelection, ls.Selected())
}

func TestListScreenCursorKeys(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantCursor int
		wantOffset int
	}{
		{name: "end", keys: []string{"end"}, wantCursor: 19, wantOffset: 16},
		{name: "G", keys: []string{"G"}, wantCursor: 19, wantOffset: 16},
		{name: "home after end", keys: []string{"end", "home"}, wantCursor: 0, wantOffset: 0},
		{name: "g after end", keys: []string{"end", "g"}, wantCursor: 0, wantOffset: 0},
		{name: "pgdown", keys: []string{"pgdown"}, wantCursor: 5, wantOffset: 2},
		{name: "pgdown clamps at the end", keys: []string{"pgdown", "pgdown", "pgdown", "pgdown", "pgdown"}, wantCursor: 19, wantOffset: 16},
		{name: "pgup clamps at the start", keys: []string{"pgup"}, wantCursor: 0, wantOffset: 0},
		{name: "pgup after end", keys: []string{"end", "pgup"}, wantCursor: 14, wantOffset: 14},
		{name: "up at the start", keys: []string{"up", "k"}, wantCursor: 0, wantOffset: 0},
		{name: "down at the end", keys: []string{"end", "down", "j"}, wantCursor: 19, wantOffset: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := newReadyScreen(t, store.Discard, 80, 5) // 4 rows + status line
			for _, k := range tt.keys {
				ls.Update(key(k))
			}
			assert.Equal(t, tt.wantCursor, ls.Cursor())
			assert.Equal(t, tt.wantOffset, ls.offset)
			assert.Len(t, ls.visible, 4)
			_, ok := ls.VisibleRow(tt.wantCursor)
			assert.True(t, ok, "cursor row should be bound")
		})
	}
}

func TestListScreenMouseWheel(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 5)
	wheel := func(button tea.MouseButton) {
		ls.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: button})
	}

	wheel(tea.MouseButtonWheelUp)
	assert.Equal(t, 0, ls.Cursor())

	for i := 0; i < 6; i++ {
		wheel(tea.MouseButtonWheelDown)
	}
	assert.Equal(t, 6, ls.Cursor())
	assert.Equal(t, 3, ls.offset)

	wheel(tea.MouseButtonWheelUp)
	assert.Equal(t, 5, ls.Cursor())
	assert.Equal(t, 3, ls.offset)
}

func TestListScreenMouseDisabled(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30).WithMouse(false)

	ls.Update(tea.MouseMsg{X: 70, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	row, _ := ls.VisibleRow(2)
	assert.Equal(t, "Follow", row.Title())
	assert.Equal(t, 0, ls.Cursor())
	assert.NotContains(t, ls.KeyMap(), "click")

	ls.WithMouse(true)
	assert.Contains(t, ls.KeyMap(), "click")
}

func TestListScreenThemeSwitchRebindsRows(t *testing.T) {
	ls := newReadyScreen(t, memory.New(), 80, 30)
	require.Nil(t, ls.ToggleRow(3))
	before, _ := ls.VisibleRow(3)

	ls.SetTheme(LightTheme)

	require.Len(t, ls.visible, person.DatasetSize)
	assert.Equal(t, person.DatasetSize, ls.pool.Created())
	row, ok := ls.VisibleRow(3)
	require.True(t, ok)
	assert.NotSame(t, before, row)
	assert.Equal(t, LightTheme.Row, row.style)
	assert.Equal(t, "Unfollow", row.Title())

	other, _ := ls.VisibleRow(4)
	assert.Equal(t, "Follow", other.Title())
	assert.Equal(t, Frame{X: 67, Width: 12}, row.ButtonFrame())
}

func TestListScreenDropsInvalidRecords(t *testing.T) {
	logger := NewUILogger()
	ls := NewListScreen(store.Discard, logger).
		WithGenerator(func() []person.Person {
			return []person.Person{
				person.New("", person.Male, 1),
				person.New("alice", person.Female, 1),
			}
		})

	for _, msg := range collect(ls.Init()) {
		ls.Update(msg)
	}

	require.Equal(t, StateReady, ls.State())
	require.Equal(t, 1, ls.RowCount())
	assert.Equal(t, "alice", ls.RowAt(0).Name())

	_, warnings, _ := logger.peekUnread(false)
	assert.Equal(t, 1, warnings)
}

func TestListScreenNarrowWidth(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 10, 30)

	row, ok := ls.VisibleRow(0)
	require.True(t, ok)
	line := row.Render(false, false)
	assert.LessOrEqual(t, lipgloss.Width(line), 10)
	assert.Contains(t, line, "use")

	for _, l := range strings.Split(ls.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(l), 10)
	}
}

func TestListScreenMouse(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)

	// click on the button of the third row
	ls.Update(tea.MouseMsg{X: 70, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	row, _ := ls.VisibleRow(2)
	assert.Equal(t, "Unfollow", row.Title())
	assert.Equal(t, 2, ls.Cursor())

	// click on the name of the second row selects it
	_, cmd := ls.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, ls.Cursor())
	assert.Equal(t, 1, ls.Selected())
	row, _ = ls.VisibleRow(1)
	assert.Equal(t, "Follow", row.Title())
}

func TestListScreenStoreErrorRaisesAlert(t *testing.T) {
	ls := newReadyScreen(t, failingStore{}, 80, 30)

	_, cmd := ls.Update(key("space"))
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	_, _, errs := ls.logger.(*UILogger).peekUnread(false)
	assert.Equal(t, 1, errs)

	alert, ok := msgs[0].(alertMsg)
	require.True(t, ok)
	assert.ErrorIs(t, alert.Err, errStoreDown)

	// the row still shows the change
	row, _ := ls.VisibleRow(0)
	assert.Equal(t, "Unfollow", row.Title())
}

func TestListScreenDirectToggleDoesNotLeakAlert(t *testing.T) {
	ls := newReadyScreen(t, failingStore{}, 80, 30)

	row, _ := ls.VisibleRow(0)
	row.Toggle()
	assert.Equal(t, "Unfollow", row.Title())

	_, cmd := ls.Update(key("down"))
	assert.Empty(t, collect(cmd))

	msgs := collect(ls.ToggleRow(1))
	require.Len(t, msgs, 1)
	assert.IsType(t, alertMsg{}, msgs[0])
}

func TestListScreenCopyName(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)
	var copied string
	ls.clipboardWrite = func(s string) error {
		copied = s
		return nil
	}

	ls.Update(key("j"))
	_, cmd := ls.Update(key("y"))

	assert.Nil(t, cmd)
	assert.Equal(t, "user 2", copied)
}

func TestListScreenView(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)
	ls.Update(key("space"))

	view := ls.View()
	assert.Contains(t, view, "user 1")
	assert.Contains(t, view, "user 20")
	assert.Contains(t, view, "Unfollow")
	assert.Contains(t, view, "20 users · 1 shown as followed")
}

func TestListScreenQuit(t *testing.T) {
	ls := newReadyScreen(t, store.Discard, 80, 30)
	_, cmd := ls.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, shutdownMsg{}, cmd())
}

func TestListScreenWithGenerator(t *testing.T) {
	ls := NewListScreen(store.Discard, nil).
		WithGenerator(func() []person.Person {
			return person.GenerateWith(person.NewLegacy)
		})

	for _, msg := range collect(ls.Init()) {
		ls.Update(msg)
	}
	require.Equal(t, person.DatasetSize, ls.RowCount())
	assert.Equal(t, person.Male, ls.records[0].Gender)
}
