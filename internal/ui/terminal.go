package ui

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	maxLogLines = 1000
	minLogWidth = 30
	mapGap      = 2
)

// Terminal is a full-screen console: a scrolling message log, a live
// map pane beside it and an input line at the bottom.
type Terminal struct {
	screen   *Screen
	renderer *Renderer
	editor   LineEditor

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once

	log     []string
	pending []string
	prompt  []string

	dungeon *world.Dungeon
	player  *entity.Player
}

// NewTerminal creates a console drawing on screen. Room colors come from
// rooms.
func NewTerminal(screen *Screen, rooms *gamedata.RoomRegistry) *Terminal {
	t := &Terminal{
		screen:   screen,
		renderer: NewRenderer(screen, rooms),
		events:   make(chan tcell.Event, 16),
		done:     make(chan struct{}),
	}
	go t.pollEvents()
	return t
}

// pollEvents forwards screen events until the screen is closed.
func (t *Terminal) pollEvents() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Print appends text to the message log.
func (t *Terminal) Print(text string) {
	t.log = append(t.log, strings.Split(text, "\n")...)
	if len(t.log) > maxLogLines {
		t.log = t.log[len(t.log)-maxLogLines:]
	}
	t.draw()
}

// ShowMap replaces the map pane's contents.
func (t *Terminal) ShowMap(d *world.Dungeon, p *entity.Player) {
	t.dungeon = d
	t.player = p
	t.draw()
}

// ReadCommand returns the next whitespace-delimited token. A line with
// several words is queued and handed out one token per call. Escape,
// Ctrl-C and Ctrl-D end input with io.EOF.
func (t *Terminal) ReadCommand(ctx context.Context, prompt string) (string, error) {
	if len(t.pending) > 0 {
		token := t.pending[0]
		t.pending = t.pending[1:]
		return token, nil
	}

	t.prompt = strings.Split(prompt, "\n")
	defer func() { t.prompt = nil }()

	for {
		t.draw()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-t.events:
			if !ok {
				return "", io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				line, result := t.editor.HandleKey(ev)
				switch result {
				case EditCancel:
					return "", io.EOF
				case EditSubmit:
					fields := strings.Fields(line)
					if len(fields) == 0 {
						continue
					}
					t.log = append(t.log, t.prompt[len(t.prompt)-1]+line)
					t.pending = fields[1:]
					return fields[0], nil
				}
			}
		}
	}
}

// Close stops event polling and restores the terminal.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Close()
	})
}

// draw redraws the whole screen.
func (t *Terminal) draw() {
	w, h := t.screen.Size()
	t.screen.Clear()

	promptRows := max(len(t.prompt)-1, 0)
	logRows := h - 1 - promptRows

	logLeft := 0
	if t.dungeon != nil && t.player != nil {
		mw, mh := MapSize(t.dungeon)
		if w >= mw+mapGap+minLogWidth && logRows >= mh {
			t.renderer.DrawMap(0, 0, t.dungeon, t.player)
			logLeft = mw + mapGap
		}
	}

	var lines []string
	for _, line := range t.log {
		lines = append(lines, wrap(line, w-logLeft)...)
	}
	if logRows > 0 && len(lines) > logRows {
		lines = lines[len(lines)-logRows:]
	}
	for i, line := range lines {
		t.renderer.RenderMessage(line, logLeft, i, tcell.StyleDefault)
	}

	if len(t.prompt) > 0 {
		bold := tcell.StyleDefault.Bold(true)
		for i, line := range t.prompt[:promptRows] {
			t.renderer.RenderMessage(line, 0, logRows+i, bold)
		}
		x := t.renderer.RenderMessage(t.prompt[promptRows], 0, h-1, bold)
		x += t.renderer.RenderMessage(t.editor.String(), x, h-1, tcell.StyleDefault)
		t.screen.ShowCursor(x, h-1)
	}

	t.screen.Show()
}
