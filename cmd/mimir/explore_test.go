package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgomes/mimir/mimir"
)

func submit(t *testing.T, m exploreModel, input string) (exploreModel, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	em, ok := model.(exploreModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return em, cmd
}

func TestExploreScansInputLine(t *testing.T) {
	m, cmd := submit(t, newExploreModel(), "1 + 2")
	if cmd != nil {
		t.Fatalf("expected no command after scanning")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(m.history))
	}

	want := []mimir.Token{
		{Type: mimir.TokenInteger, Lexeme: "1"},
		{Type: mimir.TokenPlus, Lexeme: "+"},
		{Type: mimir.TokenInteger, Lexeme: "2"},
		{Type: mimir.TokenEOF, Lexeme: ""},
	}
	got := m.history[0].tokens
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if m.textInput.Value() != "" {
		t.Fatalf("input not cleared after scan")
	}
}

func TestExploreQuitCommandReturnsQuit(t *testing.T) {
	m, cmd := submit(t, newExploreModel(), ":quit")
	if !m.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestExploreClearAndUnknownCommands(t *testing.T) {
	m, _ := submit(t, newExploreModel(), "3")
	m, _ = submit(t, m, ":nope")
	if len(m.history) != 2 || !m.history[1].isErr {
		t.Fatalf("expected unknown command error entry, got %+v", m.history)
	}

	m, cmd := submit(t, m, ":clear")
	if cmd != nil {
		t.Fatalf("expected no command for :clear")
	}
	if len(m.history) != 0 {
		t.Fatalf("history not cleared: %+v", m.history)
	}
}

func TestExploreHistoryNavigation(t *testing.T) {
	m, _ := submit(t, newExploreModel(), "1")
	m, _ = submit(t, m, "2 + 3")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(exploreModel)
	if got := m.textInput.Value(); got != "2 + 3" {
		t.Fatalf("expected latest input, got %q", got)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(exploreModel)
	if got := m.textInput.Value(); got != "1" {
		t.Fatalf("expected first input, got %q", got)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(exploreModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(exploreModel)
	if got := m.textInput.Value(); got != "" {
		t.Fatalf("expected empty input past newest entry, got %q", got)
	}
}

func TestExploreViewListsTokens(t *testing.T) {
	model, _ := newExploreModel().Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m := model.(exploreModel)
	m, _ = submit(t, m, "4+x")

	view := m.View()
	for _, want := range []string{"Mimir token explorer", "Integer", "Plus", "Error", "EndOfFile"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
