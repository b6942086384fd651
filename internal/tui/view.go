package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/teletext/internal/teletext"
)

func (m *model) View() string {
	if m.stage == stageBooting {
		return fmt.Sprintf("%s Loading page directory…", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(m.headerRow())
	b.WriteRune('\n')
	if m.frame == nil {
		b.WriteString(helperStyle.Render("No page loaded. Enter a three-digit page number."))
		b.WriteRune('\n')
	} else {
		for _, line := range m.frame.Lines {
			b.WriteString(renderLine(line, m.config.Width))
			b.WriteRune('\n')
		}
	}
	b.WriteString(m.statusRow())
	return b.String()
}

// headerRow is the page header with the clock spliced into its right
// edge, as the original service renders it.
func (m *model) headerRow() string {
	clock := m.now.Format(clockFormat)
	avail := m.config.Width - utf8.RuneCountInString(clock)
	if avail < 0 {
		avail = 0
	}

	header := ""
	if m.frame != nil {
		header = strings.ReplaceAll(m.frame.Header, "\n", " ")
	}
	left := padding.String(truncate.String(header, uint(avail)), uint(avail))
	return headerStyle.Render(left + clock)
}

// renderLine resolves each run's style tags to colors and pads the row
// to the frame width with a neutral tail.
func renderLine(line teletext.Line, width int) string {
	var b strings.Builder
	for _, run := range line {
		b.WriteString(teletext.StyleFor(run.Tags).Render(run.Text))
	}
	return padding.String(b.String(), uint(width))
}

func (m *model) statusRow() string {
	pos := fmt.Sprintf("%d.%d", m.state.Page, m.state.SubPage)
	if count, err := m.index.SubPageCount(m.state.Page); err == nil {
		pos = fmt.Sprintf("%s/%d", pos, count)
	}

	parts := []string{pos, pendingDisplay(m.state.Pending)}
	if m.loading {
		parts = append(parts, m.spinner.View())
	}
	row := padding.String(strings.Join(parts, "  "), uint(m.config.Width))
	return statusBarStyle.Render(row)
}

// pendingDisplay shows the page number accumulator, e.g. "1··" after
// the first digit of a three-digit entry.
func pendingDisplay(pending []int) string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		if i < len(pending) {
			fmt.Fprintf(&b, "%d", pending[i])
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}
