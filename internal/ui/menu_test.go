package ui

import (
	"strings"
	"testing"
)

func TestComputeDefaultMenuItemCount(t *testing.T) {
	cases := map[uint32]uint32{
		80:  7,
		56:  10,
		140: 4,
		560: 1,
		0:   1,
	}
	for size, want := range cases {
		if got := ComputeDefaultMenuItemCount(size); got != want {
			t.Errorf("ComputeDefaultMenuItemCount(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenu([]MenuItem{{Title: "a"}, {Title: "b"}, {Title: "c"}}, 80)

	m.MoveUp()
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first item: %d", m.Cursor)
	}

	for i := 0; i < 10; i++ {
		m.MoveDown()
	}
	if m.Cursor != 2 {
		t.Errorf("cursor moved past the last item: %d", m.Cursor)
	}

	sel, ok := m.Selected()
	if !ok || sel.Title != "c" {
		t.Errorf("Selected() = %+v ok=%v, want item c", sel, ok)
	}
}

func TestMenuEmpty(t *testing.T) {
	m := NewMenu(nil, 80)
	if _, ok := m.Selected(); ok {
		t.Error("empty menu should have no selection")
	}
	if m.View() == "" {
		t.Error("empty menu should still render a placeholder")
	}
}

func TestMenuScrollsToKeepCursorVisible(t *testing.T) {
	items := make([]MenuItem, 20)
	for i := range items {
		items[i] = MenuItem{Title: string(rune('a' + i))}
	}
	// 560/560 = 1 visible row, so every move scrolls
	m := NewMenu(items, 560)

	for i := 0; i < 5; i++ {
		m.MoveDown()
	}
	view := m.View()
	if !strings.Contains(view, "f") {
		t.Errorf("view should show the row under the cursor, got %q", view)
	}
	if strings.Count(view, "\n") != 0 {
		t.Errorf("one visible row should render a single line, got %q", view)
	}
}

func TestMenuSetItemsClampsCursor(t *testing.T) {
	m := NewMenu([]MenuItem{{Title: "a"}, {Title: "b"}, {Title: "c"}}, 80)
	m.MoveDown()
	m.MoveDown()

	m.SetItems([]MenuItem{{Title: "only"}})
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after shrinking to one item", m.Cursor)
	}
}
