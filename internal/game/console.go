package game

import (
	"context"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Console is the player's side of the game: it shows text and supplies
// one command token per call. ReadCommand blocks until a token is
// available; io.EOF or a context error ends the session as a quit.
type Console interface {
	ReadCommand(ctx context.Context, prompt string) (string, error)
	Print(text string)
}

// MapViewer is implemented by consoles that keep a map on screen. It is
// refreshed after every turn.
type MapViewer interface {
	ShowMap(d *world.Dungeon, p *entity.Player)
}
