package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRegionHeights_SixtyTwentyTwenty(t *testing.T) {
	tests := []struct {
		total    int
		choices  int
		selected int
		message  int
	}{
		{30, 18, 6, 6},
		{20, 12, 4, 4},
		{25, 15, 5, 5},
		{40, 24, 8, 8},
	}
	for _, tt := range tests {
		a, b, c := regionHeights(tt.total)
		if a != tt.choices || b != tt.selected || c != tt.message {
			t.Errorf("regionHeights(%d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.total, a, b, c, tt.choices, tt.selected, tt.message)
		}
		if a+b+c != tt.total {
			t.Errorf("regionHeights(%d) does not sum to total: %d", tt.total, a+b+c)
		}
	}
}

func TestRegionHeights_RemainderGoesToChoices(t *testing.T) {
	// 23 rows: lower regions floor to 4 each, choices absorbs the rest.
	a, b, c := regionHeights(23)
	if b != 4 || c != 4 {
		t.Errorf("lower regions = (%d, %d), want (4, 4)", b, c)
	}
	if a != 15 {
		t.Errorf("choices region = %d, want 15", a)
	}
}

func TestRegionHeights_NeverExceedTotal(t *testing.T) {
	for total := 0; total <= 40; total++ {
		a, b, c := regionHeights(total)
		if a+b+c > total {
			t.Errorf("regionHeights(%d) = (%d, %d, %d) sums to %d, exceeding the terminal", total, a, b, c, a+b+c)
		}
		if a < 0 || b < 0 || c < 0 {
			t.Errorf("regionHeights(%d) = (%d, %d, %d); negative region height", total, a, b, c)
		}
	}
}

func TestRegionHeights_AllThreeRenderableFromNineRows(t *testing.T) {
	for total := 9; total <= 40; total++ {
		a, b, c := regionHeights(total)
		if a < 3 || b < 3 || c < 3 {
			t.Errorf("regionHeights(%d) = (%d, %d, %d); all regions need >= 3 rows", total, a, b, c)
		}
	}
}

func TestRegionHeights_ShortTerminalDropsLowerFrames(t *testing.T) {
	// 8 rows fit the choices frame plus one lower frame; message goes first.
	a, b, c := regionHeights(8)
	if c != 0 {
		t.Errorf("message region = %d, want 0 (dropped)", c)
	}
	if a < 3 || b < 3 {
		t.Errorf("remaining regions = (%d, %d), both should still render", a, b)
	}

	// 5 rows fit only the choices frame.
	a, b, c = regionHeights(5)
	if b != 0 || c != 0 {
		t.Errorf("lower regions = (%d, %d), want (0, 0)", b, c)
	}
	if a != 5 {
		t.Errorf("choices region = %d, want 5", a)
	}
}

func TestTitledBox_TitleAndContent(t *testing.T) {
	st := DefaultStyles()

	box := st.titledBox("Message", "hello", 30, 5)
	if !strings.Contains(box, "Message") {
		t.Errorf("box should contain title, got:\n%s", box)
	}
	if !strings.Contains(box, "hello") {
		t.Errorf("box should contain content, got:\n%s", box)
	}
}

func TestTitledBox_Dimensions(t *testing.T) {
	st := DefaultStyles()

	box := st.titledBox("Choices", "one\ntwo\nthree", 24, 6)
	lines := strings.Split(box, "\n")
	if len(lines) != 6 {
		t.Fatalf("box should have 6 lines, got %d:\n%s", len(lines), box)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 24 {
			t.Errorf("line %d has width %d, want 24: %q", i, w, line)
		}
	}
}

func TestTitledBox_DropsOverflowingLines(t *testing.T) {
	st := DefaultStyles()

	// Height 4 leaves 2 inner rows; the third content line must not leak.
	box := st.titledBox("Choices", "one\ntwo\nthree", 20, 4)
	if strings.Contains(box, "three") {
		t.Errorf("overflowing content should be dropped, got:\n%s", box)
	}
	if !strings.Contains(box, "one") || !strings.Contains(box, "two") {
		t.Errorf("box should keep the first two lines, got:\n%s", box)
	}
}

func TestTitledBox_TooSmall(t *testing.T) {
	st := DefaultStyles()

	if got := st.titledBox("T", "x", 2, 5); got != "" {
		t.Errorf("degenerate width should render nothing, got %q", got)
	}
	if got := st.titledBox("T", "x", 10, 2); got != "" {
		t.Errorf("degenerate height should render nothing, got %q", got)
	}
}

func TestTitledBox_LongTitleTruncated(t *testing.T) {
	st := DefaultStyles()

	box := st.titledBox("A Very Long Title That Cannot Fit", "x", 12, 4)
	lines := strings.Split(box, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d has width %d, want 12: %q", i, w, line)
		}
	}
}

func TestPadStyled(t *testing.T) {
	if got := padStyled("ab", 5); got != "ab   " {
		t.Errorf("padStyled plain = %q", got)
	}
	if got := padStyled("abcdef", 3); got != "abcdef" {
		t.Errorf("padStyled should leave long lines alone, got %q", got)
	}

	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	padded := padStyled(styled, 5)
	if lipgloss.Width(padded) != 5 {
		t.Errorf("padStyled styled width = %d, want 5", lipgloss.Width(padded))
	}
}
