package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestOptionCard_HidesLabelsBeforeReveal(t *testing.T) {
	v := OptionCard{Letter: "A", Content: "a sonnet", IsAI: true, Focused: true}.View(40)
	if strings.Contains(v, "AI") || strings.Contains(v, "HUMAN") {
		t.Errorf("labels should be hidden before reveal: %q", v)
	}
	if !strings.Contains(v, "a sonnet") {
		t.Errorf("expected content in card: %q", v)
	}
}

func TestOptionCard_LabelsAfterReveal(t *testing.T) {
	ai := OptionCard{Letter: "A", Content: "x", Revealed: true, IsAI: true}.View(40)
	if !strings.Contains(ai, "AI") {
		t.Errorf("expected AI label: %q", ai)
	}
	human := OptionCard{Letter: "B", Content: "y", Revealed: true, Picked: true}.View(40)
	if !strings.Contains(human, "HUMAN") {
		t.Errorf("expected HUMAN label: %q", human)
	}
	if !strings.Contains(human, "your pick") {
		t.Errorf("expected pick marker: %q", human)
	}
}

func TestRoundDots(t *testing.T) {
	v := RoundDots([]bool{true, false}, 4)
	if strings.Count(v, "●") != 1 || strings.Count(v, "○") != 1 || strings.Count(v, "·") != 2 {
		t.Errorf("unexpected dots: %q", v)
	}
}

func TestRoundProgress(t *testing.T) {
	p := RoundProgress(5, 10, 20)
	if p.Percent != 0.5 {
		t.Errorf("Percent = %v, want 0.5", p.Percent)
	}
	if RoundProgress(1, 0, 20).Percent != 0 {
		t.Error("expected zero progress for empty total")
	}
	if w := lipgloss.Width(p.View()); w != 20 {
		t.Errorf("bar width = %d, want 20", w)
	}
	if w := lipgloss.Width(RoundProgress(1, 10, 2).View()); w != 4 {
		t.Errorf("narrow bar width = %d, want 4", w)
	}
}

func TestKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()
	if !key.Matches(tea.KeyPressMsg{Code: 'a', Text: "a"}, km.PickA) {
		t.Error("'a' should pick A")
	}
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyRight}, km.Right) {
		t.Error("right arrow should focus B")
	}
	if !key.Matches(tea.KeyPressMsg{Code: tea.KeyEnter}, km.Proceed) {
		t.Error("enter should proceed")
	}
}

func TestHints_SkipsDisabled(t *testing.T) {
	km := DefaultKeyMap()
	km.Restart.SetEnabled(false)
	hints := Hints(km.PickA, km.Restart)
	if len(hints) != 1 || hints[0].Key != "A" {
		t.Errorf("unexpected hints: %+v", hints)
	}
}
