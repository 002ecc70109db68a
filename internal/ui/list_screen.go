package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/loog-project/followlist/internal/person"
	"github.com/loog-project/followlist/internal/store"
)

const (
	userRowIdentifier = "UserRow"
	logSourceList     = "list"

	noSelection      = -1
	fallbackPageSize = person.DatasetSize
	pageScrollSkip   = 5
	deselectDelay    = 150 * time.Millisecond
)

type ScreenState uint8

const (
	StateUninitialized ScreenState = iota
	StateReady
)

func (s ScreenState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

type recordsLoadedMsg struct {
	records []person.Person
}

type deselectMsg struct {
	index int
}

// ListScreen owns the people and renders them as a recycled list of RowViews.
// Rows report toggles back through onToggle, which forwards them to the FollowStore.
// The records themselves are never modified.
type ListScreen struct {
	Base

	followStore    store.FollowStore
	logger         Logger
	generate       func() []person.Person
	clipboardWrite func(string) error

	state   ScreenState
	records []person.Person

	pool    *RowPool
	visible map[int]*RowView
	surface viewport.Model

	cursor   int
	offset   int
	selected int
	mouse    bool

	// set by onToggle, consumed by ToggleRow
	pending tea.Cmd
}

var _ View = (*ListScreen)(nil)

func NewListScreen(followStore store.FollowStore, logger Logger) *ListScreen {
	if followStore == nil {
		followStore = store.Discard
	}
	if logger == nil {
		logger = nopLogger{}
	}
	ls := &ListScreen{
		followStore:    followStore,
		logger:         logger,
		generate:       person.Generate,
		clipboardWrite: clipboard.WriteAll,

		pool:     NewRowPool(),
		visible:  make(map[int]*RowView),
		surface:  viewport.New(5, 5), // will be overwritten by SetSize
		selected: noSelection,
		mouse:    true,
	}
	ls.pool.Register(userRowIdentifier, func() *RowView {
		return NewRowView(ls.Theme.Row)
	})
	return ls
}

// WithGenerator replaces the source of the records loaded by Init.
func (ls *ListScreen) WithGenerator(generate func() []person.Person) *ListScreen {
	ls.generate = generate
	return ls
}

// WithMouse tells the screen whether mouse events are delivered to it.
func (ls *ListScreen) WithMouse(enabled bool) *ListScreen {
	ls.mouse = enabled
	return ls
}

func (ls *ListScreen) Init() tea.Cmd {
	generate := ls.generate
	return func() tea.Msg {
		return recordsLoadedMsg{records: generate()}
	}
}

func (ls *ListScreen) Breadcrumb() string {
	return "users"
}

func (ls *ListScreen) State() ScreenState {
	return ls.state
}

// Populate fills the screen with records. It only has an effect the first time.
// Records that fail person.Validate are dropped.
func (ls *ListScreen) Populate(records []person.Person) {
	if ls.state == StateReady {
		ls.logger.Warningf(logSourceList, "records already loaded, ignoring %d new records", len(records))
		return
	}
	ls.records = make([]person.Person, 0, len(records))
	for i, p := range records {
		if err := person.Validate(p); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("Dropping invalid record")
			ls.logger.Warningf(logSourceList, "dropping record %d: %v", i, err)
			continue
		}
		ls.records = append(ls.records, p)
	}
	ls.state = StateReady

	log.Debug().Int("records", len(ls.records)).Msg("List screen populated")
	ls.logger.Infof(logSourceList, "loaded %d users", len(ls.records))
	ls.refresh()
}

func (ls *ListScreen) RowCount() int {
	return len(ls.records)
}

// RowAt takes a row from the pool and binds it to the record at index.
func (ls *ListScreen) RowAt(index int) *RowView {
	if index < 0 || index >= len(ls.records) {
		panic(fmt.Sprintf("ui: row index %d out of range [0,%d)", index, len(ls.records)))
	}

	row := ls.pool.Dequeue(userRowIdentifier)
	row.Layout(ls.Width)
	row.Configure(ls.viewModelFor(ls.records[index]))
	row.SetOnToggle(ls.onToggle)
	return row
}

// VisibleRow returns the row currently bound to index, if it is on screen.
func (ls *ListScreen) VisibleRow(index int) (*RowView, bool) {
	row, ok := ls.visible[index]
	return row, ok
}

// OnRowSelected clears the selection highlight. Selecting a row does nothing else.
func (ls *ListScreen) OnRowSelected(int) {
	ls.selected = noSelection
}

func (ls *ListScreen) Selected() int {
	return ls.selected
}

func (ls *ListScreen) Cursor() int {
	return ls.cursor
}

// ToggleRow activates the button of the visible row at index. The returned command
// raises an alert when the store rejected the change.
func (ls *ListScreen) ToggleRow(index int) tea.Cmd {
	row, ok := ls.visible[index]
	if !ok {
		return nil
	}
	ls.pending = nil
	row.Toggle()
	cmd := ls.pending
	ls.pending = nil
	return cmd
}

// ReloadRows recycles all visible rows and binds them again from the records.
func (ls *ListScreen) ReloadRows() {
	for i, row := range ls.visible {
		ls.pool.Enqueue(userRowIdentifier, row)
		delete(ls.visible, i)
	}
	ls.refresh()
}

func (ls *ListScreen) SetTheme(theme Theme) {
	ls.Base.SetTheme(theme)
	// rows hold their style from construction, rebuild them with the new one
	ls.pool = NewRowPool()
	ls.pool.Register(userRowIdentifier, func() *RowView {
		return NewRowView(ls.Theme.Row)
	})
	clear(ls.visible)
	ls.refresh()
}

func (ls *ListScreen) SetSize(width, height int) {
	ls.Base.SetSize(width, height)
	ls.surface.Width = width
	ls.surface.Height = ls.pageSize()

	for _, row := range ls.visible {
		row.Layout(width)
	}
	ls.keepVisible()
	ls.refresh()
}

func (ls *ListScreen) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd

	switch v := msg.(type) {
	case recordsLoadedMsg:
		ls.Populate(v.records)

	case deselectMsg:
		// a newer selection owns its own tick
		if ls.selected == v.index {
			ls.OnRowSelected(v.index)
		}

	case tea.KeyMsg:
		cmd = ls.handleKey(v)

	case tea.MouseMsg:
		cmd = ls.handleMouse(v)
	}
	return ls, cmd
}

func (ls *ListScreen) View() string {
	if ls.state != StateReady {
		return ls.Theme.MutedTextStyle.Render("Loading users...")
	}

	first, last := ls.visibleRange()
	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		row, ok := ls.visible[i]
		if !ok {
			continue
		}
		lines = append(lines, row.Render(i == ls.cursor, i == ls.selected))
	}
	ls.surface.SetContent(strings.Join(lines, "\n"))
	ls.surface.YOffset = 0 // only the visible rows are in the content

	return ls.surface.View() + "\n" + ls.renderStatus()
}

func (ls *ListScreen) KeyMap() string {
	return NewShortcuts().
		Add("↑/↓", "move").
		Add("space", "follow/unfollow").
		Add("⏎", "select").
		AddIf(ls.mouse, "click", "follow/select").
		Add("r", "reload").
		Add("y", "copy name").
		Add("L", "log").
		Add("q", "quit").
		Render(ls.Theme)
}

/* ---------- listScreen helpers ---------- */

func (ls *ListScreen) viewModelFor(p person.Person) person.ViewModel {
	vm := person.NewViewModel(p)

	followed, err := ls.followStore.Followed(p.ID)
	switch {
	case err == nil:
		vm.IsFollowed = followed
	case !errors.Is(err, store.ErrNotFound):
		log.Warn().Err(err).Str("id", p.ID.String()).Msg("Cannot read follow state")
		ls.logger.Warningf(logSourceList, "cannot read follow state of %s: %v", p.Name, err)
	}
	return vm
}

func (ls *ListScreen) onToggle(_ *RowView, updated person.ViewModel) {
	log.Debug().
		Str("id", updated.ID.String()).
		Str("name", updated.Name).
		Bool("followed", updated.IsFollowed).
		Msg("Follow state toggled")
	ls.logger.Infof(logSourceList, "%s: %s", updated.Name, ternary(updated.IsFollowed, "followed", "unfollowed"))

	if err := ls.followStore.SetFollowed(updated.ID, updated.IsFollowed); err != nil {
		log.Error().Err(err).Str("id", updated.ID.String()).Msg("Cannot store follow state")
		ls.logger.Errorf(logSourceList, "cannot store follow state of %s: %v", updated.Name, err)
		ls.pending = PushAlert("when storing follow state of "+updated.Name, err)
	}
}

func (ls *ListScreen) handleKey(k tea.KeyMsg) tea.Cmd {
	if k.String() == "q" {
		return Shutdown
	}
	if ls.state != StateReady || len(ls.records) == 0 {
		return nil
	}

	switch k.String() {
	case "up", "k":
		ls.moveCursor(ls.cursor - 1)
	case "down", "j":
		ls.moveCursor(ls.cursor + 1)
	case "pgup":
		ls.moveCursor(ls.cursor - pageScrollSkip)
	case "pgdown":
		ls.moveCursor(ls.cursor + pageScrollSkip)
	case "home", "g":
		ls.moveCursor(0)
	case "end", "G":
		ls.moveCursor(len(ls.records) - 1)
	case " ", "f":
		return ls.ToggleRow(ls.cursor)
	case "enter":
		return ls.selectRow(ls.cursor)
	case "r":
		ls.ReloadRows()
		ls.logger.Infof(logSourceList, "reloaded rows")
	case "y":
		return ls.copyName(ls.cursor)
	}
	return nil
}

func (ls *ListScreen) handleMouse(m tea.MouseMsg) tea.Cmd {
	if ls.state != StateReady || !ls.mouse {
		return nil
	}

	switch m.Button {
	case tea.MouseButtonWheelUp:
		ls.moveCursor(ls.cursor - 1)
		return nil
	case tea.MouseButtonWheelDown:
		ls.moveCursor(ls.cursor + 1)
		return nil
	}

	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.Y < 0 || m.Y >= ls.pageSize() {
		return nil
	}
	index := ls.offset + m.Y
	row, ok := ls.visible[index]
	if !ok {
		return nil
	}

	ls.cursor = index
	if row.HitButton(m.X) {
		return ls.ToggleRow(index)
	}
	return ls.selectRow(index)
}

// selectRow highlights index and clears the highlight again shortly after.
func (ls *ListScreen) selectRow(index int) tea.Cmd {
	ls.selected = index
	return tea.Tick(deselectDelay, func(time.Time) tea.Msg {
		return deselectMsg{index: index}
	})
}

func (ls *ListScreen) copyName(index int) tea.Cmd {
	if index < 0 || index >= len(ls.records) {
		return nil
	}
	name := ls.records[index].Name
	if err := ls.clipboardWrite(name); err != nil {
		return PushAlert("when copying to clipboard", err)
	}
	ls.logger.Infof(logSourceList, "copied %q to clipboard", name)
	return nil
}

func (ls *ListScreen) moveCursor(to int) {
	ls.cursor = max(0, min(len(ls.records)-1, to))
	ls.keepVisible()
	ls.refresh()
}

func (ls *ListScreen) pageSize() int {
	if ls.Height <= 0 {
		return fallbackPageSize
	}
	return max(1, ls.Height-1) // -1 for the status line
}

func (ls *ListScreen) keepVisible() {
	page := ls.pageSize()
	if ls.cursor < ls.offset {
		ls.offset = ls.cursor
	}
	if ls.cursor >= ls.offset+page {
		ls.offset = ls.cursor - page + 1
	}
	ls.offset = max(0, min(ls.offset, len(ls.records)-page))
}

func (ls *ListScreen) visibleRange() (first, last int) {
	first = ls.offset
	last = min(len(ls.records), ls.offset+ls.pageSize())
	return first, last
}

// refresh recycles rows that left the visible window and binds rows that entered it.
func (ls *ListScreen) refresh() {
	if ls.state != StateReady {
		return
	}
	first, last := ls.visibleRange()
	for i, row := range ls.visible {
		if i < first || i >= last {
			ls.pool.Enqueue(userRowIdentifier, row)
			delete(ls.visible, i)
		}
	}
	for i := first; i < last; i++ {
		if _, ok := ls.visible[i]; !ok {
			ls.visible[i] = ls.RowAt(i)
		}
	}
}

func (ls *ListScreen) renderStatus() string {
	shownFollowed := 0
	for _, row := range ls.visible {
		if model, ok := row.Model(); ok && model.IsFollowed {
			shownFollowed++
		}
	}
	status := fmt.Sprintf("%d users · %d shown as followed · %d/%d",
		len(ls.records), shownFollowed, ls.cursor+1, len(ls.records))
	if ls.Width > 0 {
		status = truncate(status, ls.Width)
	}
	return ls.Theme.PrimaryTextStyle.Render(status)
}
