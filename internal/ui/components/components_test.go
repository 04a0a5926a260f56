package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "Start"},
		{Label: "Last result", Disabled: true},
		{Label: "Quit"},
	})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d after moving past the end, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on Enter")
	}
}

func TestOptionList_RestoresChosen(t *testing.T) {
	l := NewOptionList([]string{"a", "b", "c"}, 2)
	if l.Cursor != 2 || l.Chosen != 2 {
		t.Errorf("Cursor, Chosen = %d, %d; want 2, 2", l.Cursor, l.Chosen)
	}

	l = NewOptionList([]string{"a", "b"}, -1)
	if l.Chosen != -1 || l.Cursor != 0 {
		t.Errorf("Cursor, Chosen = %d, %d; want 0, -1", l.Cursor, l.Chosen)
	}
}

func TestOptionList_CursorBounds(t *testing.T) {
	l := NewOptionList([]string{"a", "b"}, -1)
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if l.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", l.Cursor)
	}
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	l, _ = l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if l.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", l.Cursor)
	}
	if l.Chosen != -1 {
		t.Error("moving the cursor must not choose an option")
	}
}

func TestOptionList_View(t *testing.T) {
	l := NewOptionList([]string{"Never", "Always"}, -1).Choose(1)
	view := l.View()
	if !strings.Contains(view, "(•) Always") {
		t.Errorf("expected chosen marker in view:\n%s", view)
	}
}

func TestProgressBar_ClampsFill(t *testing.T) {
	if NewProgressBar("", 1.5, true, 20).View() == "" {
		t.Error("expected non-empty progress bar")
	}
}
