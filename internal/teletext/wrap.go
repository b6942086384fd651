package teletext

import "unicode/utf8"

// Line is one fixed-width output row. Runs keep their order and are
// padded to the display width at render time.
type Line []Run

// Wrap packs runs into lines of at most width cells. Runs are
// accumulated greedily and never split: a run that would overflow the
// current line closes it and starts the next one, and a run longer
// than width is emitted alone as a single over-width line rather than
// truncated. The last line is always emitted, so zero runs produce one
// empty line.
func Wrap(runs []Run, width int) []Line {
	var lines []Line
	var current Line
	used := 0
	for _, run := range runs {
		n := utf8.RuneCountInString(run.Text)
		if len(current) > 0 && used+n > width {
			lines = append(lines, current)
			current = nil
			used = 0
		}
		current = append(current, run)
		used += n
	}
	return append(lines, current)
}
