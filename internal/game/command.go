package game

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Command is a word from the player's vocabulary.
type Command int

const (
	CmdExit Command = iota
	CmdHelp
	CmdMap
	CmdHealth
	CmdInventory
	CmdFood
	CmdForward
	CmdBack
	CmdLeft
	CmdRight
	CmdJump
	CmdSwing
	CmdReturn
	CmdFight
	CmdFlee
)

var commandNames = [...]string{
	CmdExit:      "exit",
	CmdHelp:      "help",
	CmdMap:       "map",
	CmdHealth:    "health",
	CmdInventory: "inventory",
	CmdFood:      "food",
	CmdForward:   "forward",
	CmdBack:      "back",
	CmdLeft:      "left",
	CmdRight:     "right",
	CmdJump:      "jump",
	CmdSwing:     "swing",
	CmdReturn:    "return",
	CmdFight:     "fight",
	CmdFlee:      "flee",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, name := range commandNames {
		m[name] = Command(c)
	}
	return m
}()

// String returns the word the player types for c.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand matches a token against the vocabulary, ignoring case.
func ParseCommand(token string) (Command, bool) {
	c, ok := commandsByName[cases.Fold().String(strings.TrimSpace(token))]
	return c, ok
}

// IsCommon reports whether c is available in every room.
func (c Command) IsCommon() bool {
	return c >= CmdExit && c <= CmdFood
}

// IsMovement reports whether c is a relative move.
func (c Command) IsMovement() bool {
	return c >= CmdForward && c <= CmdRight
}

// Direction returns the relative direction of a movement command.
func (c Command) Direction() world.Vec2 {
	switch c {
	case CmdForward:
		return entity.Forward
	case CmdBack:
		return entity.Back
	case CmdLeft:
		return entity.Left
	case CmdRight:
		return entity.Right
	default:
		return world.Vec2{}
	}
}
