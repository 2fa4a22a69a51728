package ui

import "github.com/gdamore/tcell/v2"

// EditResult tells the caller what a key did to the line.
type EditResult int

const (
	EditPending EditResult = iota
	EditSubmit
	EditCancel
)

// LineEditor collects a line of input from key events.
type LineEditor struct {
	buf []rune
}

// HandleKey applies ev. On EditSubmit it returns the finished line and
// resets the buffer.
func (e *LineEditor) HandleKey(ev *tcell.EventKey) (string, EditResult) {
	switch ev.Key() {
	case tcell.KeyEnter:
		line := string(e.buf)
		e.buf = e.buf[:0]
		return line, EditSubmit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyCtrlU:
		e.buf = e.buf[:0]
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
		e.buf = e.buf[:0]
		return "", EditCancel
	case tcell.KeyRune:
		e.buf = append(e.buf, ev.Rune())
	}
	return "", EditPending
}

// String returns the line typed so far.
func (e *LineEditor) String() string {
	return string(e.buf)
}
