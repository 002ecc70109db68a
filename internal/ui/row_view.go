package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loog-project/followlist/internal/person"
)

const (
	titleFollow   = "Follow"
	titleUnfollow = "Unfollow"

	arrowCursor = "▸"

	nameX           = 2  // arrow + space
	nameMaxWidth    = 30 // cells
	nameMinWidth    = 4  // kept before the button shrinks
	buttonMargin    = 1
	defaultRowWidth = 48
)

// ToggleFunc is called by a RowView when its button is activated, before the row
// re-renders itself with updated.
type ToggleFunc func(row *RowView, updated person.ViewModel)

// Frame is the horizontal extent of an element inside a row.
type Frame struct {
	X     int
	Width int
}

func (f Frame) Contains(x int) bool {
	return x >= f.X && x < f.X+f.Width
}

// RowState is a snapshot of everything a RowView currently displays.
type RowState struct {
	Name     string
	Title    string
	Outlined bool
	Styled   bool
	Bound    bool
}

// RowView renders a single person.ViewModel as a name label and a Follow/Unfollow button.
// Rows are recycled by a RowPool, so Reset must run before a row is configured again.
type RowView struct {
	style       RowStyle
	constructed bool

	model    person.ViewModel
	bound    bool
	onToggle ToggleFunc

	// displayed state
	name        string
	title       string
	buttonStyle lipgloss.Style
	styled      bool
	outlined    bool

	width       int
	nameFrame   Frame
	buttonFrame Frame
}

func NewRowView(style RowStyle) *RowView {
	if style.ButtonWidth <= 0 {
		style.ButtonWidth = defaultButtonWidth
	}
	rv := &RowView{
		style:       style,
		constructed: true,
		buttonStyle: lipgloss.NewStyle(),
	}
	rv.Layout(defaultRowWidth)
	return rv
}

func (rv *RowView) mustBeConstructed() {
	if !rv.constructed {
		panic("ui: RowView must be created with NewRowView")
	}
}

// Configure binds model to the row.
func (rv *RowView) Configure(model person.ViewModel) {
	rv.mustBeConstructed()

	rv.model = model
	rv.bound = true

	rv.name = model.Name
	rv.styled = true
	if model.IsFollowed {
		rv.title = titleUnfollow
		rv.buttonStyle = rv.style.UnfollowButtonStyle
		rv.outlined = true
	} else {
		rv.title = titleFollow
		rv.buttonStyle = rv.style.FollowButtonStyle
		rv.outlined = false
	}
}

// Reset clears the displayed state and the bound model. The toggle callback is kept.
func (rv *RowView) Reset() {
	rv.mustBeConstructed()

	rv.model = person.ViewModel{}
	rv.bound = false

	rv.name = ""
	rv.title = ""
	rv.buttonStyle = lipgloss.NewStyle()
	rv.styled = false
	rv.outlined = false
}

func (rv *RowView) SetOnToggle(fn ToggleFunc) {
	rv.mustBeConstructed()
	rv.onToggle = fn
}

// Toggle activates the button: the observer is told about the inverted model and
// the row then shows it, whatever the observer did with it.
func (rv *RowView) Toggle() {
	rv.mustBeConstructed()
	if !rv.bound {
		return
	}

	updated := rv.model.Toggled()
	if rv.onToggle != nil {
		rv.onToggle(rv, updated)
	}

	rv.Reset()
	rv.Configure(updated)
}

// Model returns the bound model, if any.
func (rv *RowView) Model() (person.ViewModel, bool) {
	return rv.model, rv.bound
}

func (rv *RowView) Name() string {
	return rv.name
}

func (rv *RowView) Title() string {
	return rv.title
}

func (rv *RowView) State() RowState {
	return RowState{
		Name:     rv.name,
		Title:    rv.title,
		Outlined: rv.outlined,
		Styled:   rv.styled,
		Bound:    rv.bound,
	}
}

// Layout positions the name label and the button for a row of the given width.
func (rv *RowView) Layout(width int) {
	rv.mustBeConstructed()
	if width <= 0 {
		width = defaultRowWidth
	}
	rv.width = width

	buttonWidth := min(rv.style.ButtonWidth, max(1, width-nameX-1-nameMinWidth-buttonMargin))
	buttonX := max(nameX+1, width-buttonWidth-buttonMargin)
	buttonX = min(buttonX, max(0, width-buttonWidth))
	rv.buttonFrame = Frame{X: buttonX, Width: buttonWidth}
	rv.nameFrame = Frame{X: nameX, Width: max(0, min(nameMaxWidth, buttonX-nameX-1))}
}

func (rv *RowView) NameFrame() Frame {
	return rv.nameFrame
}

func (rv *RowView) ButtonFrame() Frame {
	return rv.buttonFrame
}

// HitButton reports whether column x falls on the button.
func (rv *RowView) HitButton(x int) bool {
	return rv.buttonFrame.Contains(x)
}

// Render draws the row on a single line.
func (rv *RowView) Render(cursor, selected bool) string {
	rv.mustBeConstructed()

	name := truncate(rv.name, rv.nameFrame.Width)
	gap := max(1, rv.buttonFrame.X-rv.nameFrame.X-lipgloss.Width(name))

	var b strings.Builder
	b.WriteString(ternary(cursor, rv.style.CursorArrowStyle.Render(arrowCursor), " "))
	b.WriteString(" ")
	b.WriteString(rv.style.NameTextStyle.Render(name))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(rv.renderButton())

	line := b.String()
	if selected {
		return rv.style.SelectedRowStyle.Width(rv.width).Render(line)
	}
	return line
}

func (rv *RowView) renderButton() string {
	width := rv.buttonFrame.Width
	if rv.title == "" {
		return strings.Repeat(" ", width)
	}
	if rv.outlined && width > 2 {
		inner := lipgloss.PlaceHorizontal(width-2, lipgloss.Center, truncate(rv.title, width-2))
		return rv.buttonStyle.Render("[" + inner + "]")
	}
	return rv.buttonStyle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, truncate(rv.title, width)))
}
