package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Baser interface {
	SetSize(width, height int)
	SetTheme(theme Theme)
}

// View is the interface that all views must implement.
type View interface {
	Baser

	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
	KeyMap() string
	Breadcrumb() string
}

/// Root Model

type Root struct {
	Width, Height int
	Theme         Theme

	ViewStack    []View
	ShuttingDown bool

	Logger *UILogger
}

func NewRoot(theme Theme, logger *UILogger, first View) *Root {
	r := &Root{
		Theme:  theme,
		Logger: logger,
	}
	r.applyTo(first)
	r.ViewStack = []View{first}
	return r
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (r *Root) Init() tea.Cmd {
	return tea.Batch(r.top().Init(), tick())
}

func (r *Root) applyTo(v View) View {
	v.SetSize(r.Width, r.Height)
	v.SetTheme(r.Theme)
	return v
}

func (r *Root) top() View {
	return r.ViewStack[len(r.ViewStack)-1]
}

// isViewOpen checks if the view of type T is on top of the stack.
func isViewOpen[T View](r *Root) bool {
	if len(r.ViewStack) == 0 {
		return false
	}
	_, isOpen := r.top().(T)
	return isOpen
}

func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch v := msg.(type) {
	case pushViewMsg:
		switch v.pushType {
		case Push:
			r.ViewStack = append(r.ViewStack, r.applyTo(v.view))
			return r, v.view.Init()
		case Replace:
			r.ViewStack[len(r.ViewStack)-1] = r.applyTo(v.view)
			return r, v.view.Init()
		case Pop:
			if len(r.ViewStack) <= 1 {
				// can't pop the root view
				return r, nil
			}
			r.ViewStack = r.ViewStack[:len(r.ViewStack)-1]
		}
		return r, nil

	case alertMsg:
		pt := Push
		if isViewOpen[*AlertView](r) {
			pt = Replace
		}
		if r.Logger != nil {
			r.Logger.Errorf("ui", "%s: %v", v.Title, v.Err)
		}
		return r, PushChangeView(pt, &AlertView{Title: v.Title, Err: v.Err})

	case shutdownMsg:
		r.ShuttingDown = true
		return r, tea.Quit

	case tickMsg:
		cmds = append(cmds, tick())

	case tea.WindowSizeMsg:
		r.Width = v.Width
		r.Height = v.Height - 1 // -1 for the status bar

		for i := range r.ViewStack {
			r.ViewStack[i].SetSize(r.Width, r.Height)
		}
		return r, nil

	case tea.KeyMsg:
		switch v.String() {
		case "ctrl+c":
			r.ShuttingDown = true
			return r, tea.Quit
		case "L":
			if r.Logger == nil {
				break
			}
			if isViewOpen[*LogView](r) {
				return r, PushChangeView(Pop, nil)
			}
			return r, PushChangeView(Push, NewLogView(r.Logger))
		}
	}

	var cmd tea.Cmd
	i := len(r.ViewStack) - 1
	r.ViewStack[i], cmd = r.ViewStack[i].Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return r, tea.Batch(cmds...)
}

func (r *Root) renderBar(breadcrumbs string, help string) string {
	breadcrumbsRender := r.Theme.BreadcrumbBarStyle.Render(breadcrumbs)

	var logRender string
	if r.Logger != nil {
		if info, warn, err := r.Logger.peekUnread(false); info+warn+err > 0 {
			logRender = r.Theme.LoggerBarStyle.Render(fmt.Sprintf("log %di|%dw|%de", info, warn, err))
		}
	}

	helpRender := r.Theme.HelpBarStyle.
		Width(max(0, r.Width-lipgloss.Width(breadcrumbsRender)-lipgloss.Width(logRender))).
		Render(help)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		helpRender,
		breadcrumbsRender,
		logRender,
	)
}

func (r *Root) View() string {
	if r.Height == 0 && r.Width == 0 {
		return "" // no size yet
	}
	if r.ShuttingDown {
		// keeps the last frame from lingering in the terminal after quitting
		return r.Theme.MutedTextStyle.Render("Bye!")
	}

	breadcrumbStack := make([]string, 0, len(r.ViewStack))
	for _, view := range r.ViewStack {
		breadcrumbStack = append(breadcrumbStack, view.Breadcrumb())
	}

	return r.top().View() + "\n" + r.renderBar(strings.Join(breadcrumbStack, " ⟩ "), r.top().KeyMap())
}
