package tui

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

// TestBoardKeyMapDefaults verifies the board bindings.
func TestBoardKeyMapDefaults(t *testing.T) {
	k := newBoardKeyMap()
	assertKeys := func(name string, binding key.Binding, expected ...string) {
		t.Helper()
		got := binding.Keys()
		if len(got) != len(expected) {
			t.Fatalf("%s key count mismatch got=%#v expected=%#v", name, got, expected)
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Fatalf("%s key mismatch got=%#v expected=%#v", name, got, expected)
			}
		}
	}

	assertKeys("move up", k.moveUp, "k", "up")
	assertKeys("move down", k.moveDown, "j", "down")
	assertKeys("open dir", k.openDir, "c", "C", "shift+c")
	assertKeys("open editor", k.openEditor, "n", "N", "shift+n")
	assertKeys("open tmux", k.openTmux, "x", "X", "shift+x")
	assertKeys("open both", k.openBoth, "b", "B", "shift+b")
	assertKeys("priority up", k.priorityUp, "+", "=")
	assertKeys("priority down", k.priorityDn, "-")
}

// TestTodoKeyMapSeparatesItemsFromCards verifies arrow keys select items while hjkl move cards.
func TestTodoKeyMapSeparatesItemsFromCards(t *testing.T) {
	k := newTodoKeyMap()
	if key.Matches(keyRune('k'), k.itemUp) {
		t.Fatal("expected k to move cards, not items")
	}
	if !key.Matches(keyRune('k'), k.cardUp) {
		t.Fatal("expected k to move the card selection")
	}
	for _, binding := range []key.Binding{k.cardUp, k.cardDown, k.cardLeft, k.cardRight} {
		for _, bound := range binding.Keys() {
			if bound == "up" || bound == "down" {
				t.Fatalf("expected arrow keys to stay on the item list, found %q", bound)
			}
		}
	}
}

// TestHelpMarkdownListsEveryBinding verifies the help page covers both key tables.
func TestHelpMarkdownListsEveryBinding(t *testing.T) {
	boardKeys, todoKeys := newBoardKeyMap(), newTodoKeyMap()
	page := helpMarkdown(boardKeys.FullHelp(), todoKeys.FullHelp())
	for _, section := range []string{"## Board", "## Todo list"} {
		if !strings.Contains(page, section) {
			t.Fatalf("expected help page section %q", section)
		}
	}
	for _, groups := range [][][]key.Binding{boardKeys.FullHelp(), todoKeys.FullHelp()} {
		for _, group := range groups {
			for _, binding := range group {
				row := "| `" + binding.Help().Key + "` | " + binding.Help().Desc + " |"
				if !strings.Contains(page, row) {
					t.Fatalf("expected help row %q", row)
				}
			}
		}
	}
}

// TestShortHelpIsSubsetOfFullHelp verifies the help line only shows documented bindings.
func TestShortHelpIsSubsetOfFullHelp(t *testing.T) {
	boardKeys := newBoardKeyMap()
	full := map[string]bool{}
	for _, group := range boardKeys.FullHelp() {
		for _, binding := range group {
			full[binding.Help().Desc] = true
		}
	}
	for _, binding := range boardKeys.ShortHelp() {
		if !full[binding.Help().Desc] {
			t.Fatalf("short help binding %q missing from full help", binding.Help().Desc)
		}
	}
}
