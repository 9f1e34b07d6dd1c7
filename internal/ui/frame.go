package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quickpick/internal/ui/textutil"
)

// regionHeights splits the available rows into the three stacked regions:
// choices (60%), selected item (20%), message (20%). The two lower regions
// take their percentage share and the choices region absorbs the rounding
// remainder. A region needs at least 3 rows (border plus one content line)
// to render; when the terminal is too short for all three, the lower
// frames are dropped (message first) rather than letting the heights sum
// past total. A zero height means the region is not rendered.
func regionHeights(total int) (choices, selected, message int) {
	selected = total * 20 / 100
	message = total * 20 / 100
	if selected < 3 {
		selected = 3
	}
	if message < 3 {
		message = 3
	}
	choices = total - selected - message
	if choices >= 3 {
		return choices, selected, message
	}

	message = 0
	choices = total - selected
	if choices >= 3 {
		return choices, selected, message
	}

	selected = 0
	choices = total
	if choices < 0 {
		choices = 0
	}
	return choices, selected, message
}

// titledBox renders a rounded-border frame of the given outer dimensions
// with the title embedded in the top border. Content lines beyond the inner
// height are dropped; each line is padded to the inner width so the right
// border stays aligned. Content lines may carry ANSI styling; callers must
// truncate raw text to fit before styling.
func (s Styles) titledBox(title, content string, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	border := lipgloss.RoundedBorder()

	label := " " + title + " "
	if textutil.VisualWidth(label) > innerW {
		label = textutil.Truncate(label, innerW)
	}
	fill := innerW - textutil.VisualWidth(label)

	var b strings.Builder
	b.WriteString(s.Border.Render(border.TopLeft))
	b.WriteString(s.FrameTitle.Render(label))
	b.WriteString(s.Border.Render(strings.Repeat(border.Top, fill) + border.TopRight))
	b.WriteString("\n")

	side := s.Border.Render(border.Left)
	lines := strings.Split(content, "\n")
	for i := 0; i < innerH; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(side)
		b.WriteString(padStyled(line, innerW))
		b.WriteString(side)
		b.WriteString("\n")
	}

	b.WriteString(s.Border.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerW) + border.BottomRight))
	return b.String()
}

// padStyled pads a possibly ANSI-styled line with spaces to the target
// visual width. Measurement goes through lipgloss so escape codes don't
// count as columns.
func padStyled(line string, width int) string {
	gap := width - lipgloss.Width(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}
