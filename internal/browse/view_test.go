package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/applykit/internal/stub"
	"github.com/amishk599/applykit/internal/stubs"
)

func TestRenderRegions_ExpandsBulletedTags(t *testing.T) {
	regions := []stub.Region{
		{Tag: "job-title", Content: "Engineer", Offset: 0},
		{Tag: "job-points", Content: `\resumeItem{Built X}` + "\n" + `\resumeItem{Shipped Y}`, Offset: 40},
	}

	out := renderRegions(regions, map[string]bool{"job-points": true}, 80)

	for _, want := range []string{"job-title", "@0", "Engineer", "job-points", "@40", "• Built X", "• Shipped Y"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderRegions output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `\resumeItem`) {
		t.Errorf("bulleted region rendered raw:\n%s", out)
	}
}

func TestRenderRegions_Empty(t *testing.T) {
	if got := renderRegions(nil, nil, 80); !strings.Contains(got, "no regions") {
		t.Errorf("renderRegions(nil) = %q", got)
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wordWrap = %q, want %q", got, want)
	}
}

func TestPicker_EnterChoosesCursor(t *testing.T) {
	m := pickerModel{
		stubs:  []stubs.Stub{{Name: "a.tex"}, {Name: "b.tex"}},
		chosen: noChoice,
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := next.(pickerModel).chosen; got != 1 {
		t.Errorf("chosen = %d, want 1", got)
	}
}

func TestPicker_EnterOnEmptyListDoesNothing(t *testing.T) {
	m := pickerModel{chosen: noChoice}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := next.(pickerModel).chosen; got != noChoice {
		t.Errorf("chosen = %d, want %d", got, noChoice)
	}
	if cmd != nil {
		t.Error("expected no command on empty list")
	}
}

func TestStubView_EscReturnsToPicker(t *testing.T) {
	m := stubModel{name: "a.tex"}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(stubModel).wantQuit {
		t.Error("esc should not request quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(stubModel).wantQuit {
		t.Error("q should request quit")
	}
}
