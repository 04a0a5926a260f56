// Package router keeps the stack of screens behind the app frame. Screens
// navigate by returning one of the *Msg types below from a command.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mindcheck/internal/screen"
)

type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the current screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the current screen for Screen, so closing the
	// replacement returns to whatever was below the old one.
	ReplaceScreenMsg struct{ Screen screen.Screen }

	// PopToRootMsg closes everything above the first screen.
	PopToRootMsg struct{}
)

// Resumer is implemented by screens that want to refresh when they become
// active again after the screens above them were closed.
type Resumer interface {
	Resume() tea.Cmd
}

// Router is a stack of screens. The bottom screen is never removed.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

func (r *Router) Pop() tea.Cmd {
	return r.truncate(len(r.stack) - 1)
}

func (r *Router) PopToRoot() tea.Cmd {
	return r.truncate(1)
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// truncate shrinks the stack to n screens (at least one) and resumes the
// new top screen if anything was removed.
func (r *Router) truncate(n int) tea.Cmd {
	n = max(n, 1)
	if n >= len(r.stack) {
		return nil
	}
	clear(r.stack[n:])
	r.stack = r.stack[:n]
	if res, ok := r.Active().(Resumer); ok {
		return res.Resume()
	}
	return nil
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
