package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Roll ranges, half-open.
const (
	jumpChanceBase     = 85
	jumpPenaltyPerItem = 3
	foodHealMin        = 1
	foodHealMax        = 6
	trapDecayMin       = 1
	trapDecayMax       = 3
)

// encounter configures the command loop for one room visit.
type encounter struct {
	// help lists the action groups shown by 'help'.
	help []string
	// movement allows forward/back/left/right to leave the room.
	movement bool
	// status, if set, is printed before every prompt.
	status func() string
	// actions handles room-specific commands. It reports false for
	// commands it does not own.
	actions func(cmd Command) (Outcome, bool)
}

// enterRoom runs the handler for the room's content.
func (g *Game) enterRoom(ctx context.Context, room *world.Room) (outcome Outcome, err error) {
	ctx, span := g.tracer.Start(ctx, "encounter."+room.Type().String())
	defer func() {
		span.SetAttributes(attribute.String("encounter.outcome", outcome.String()))
		span.End()
	}()

	switch c := room.Content.(type) {
	case nil, world.Empty, world.Spawn:
		g.console.Print(g.rooms.Arrival(room.Type()))
		return g.commandLoop(ctx, g.explore())

	case world.Cache:
		g.console.Print(g.rooms.Arrival(world.RoomItem))
		g.pickUp(room, c)
		return g.commandLoop(ctx, g.explore())

	case world.Pit:
		g.console.Print(g.rooms.Arrival(world.RoomPit) + "\n" + g.help.Section("pit"))
		return g.commandLoop(ctx, g.pitEncounter(room))

	case *world.Trap:
		g.console.Print(g.rooms.Arrival(world.RoomTrap))
		g.trigger(room, c)
		return g.commandLoop(ctx, g.explore())

	case *world.Enemy:
		g.console.Print(g.rooms.Arrival(world.RoomEnemy) + "\n" + g.help.Section("enemy"))
		return g.commandLoop(ctx, g.enemyEncounter(room, c))

	case world.Treasure:
		panic("game: treasure room has no encounter")

	default:
		panic(fmt.Sprintf("game: unknown room content %T", c))
	}
}

// explore is the plain loop of empty, spawn, item and trap rooms.
func (g *Game) explore() encounter {
	return encounter{
		help:     []string{"common", "movement"},
		movement: true,
	}
}

// commandLoop reads commands until one ends the turn or the player dies.
func (g *Game) commandLoop(ctx context.Context, e encounter) (Outcome, error) {
	for g.player.IsAlive() {
		if e.status != nil {
			g.console.Print(e.status())
		}

		token, err := g.console.ReadCommand(ctx, commandPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				g.log.WithError(err).Info("Input closed, leaving the dungeon")
				return g.quit(), nil
			}
			return GameOver, fmt.Errorf("read command: %w", err)
		}

		if outcome := g.handle(e, token); outcome != Continue {
			return outcome, nil
		}
	}
	return GameOver, nil
}

// handle dispatches one token. Room actions are tried before movement
// and common commands.
func (g *Game) handle(e encounter, token string) Outcome {
	cmd, ok := ParseCommand(token)
	if !ok {
		g.console.Print(fmt.Sprintf("Unrecognised command '%s'.", token))
		return Continue
	}

	if e.actions != nil {
		if outcome, handled := e.actions(cmd); handled {
			return outcome
		}
	}

	switch {
	case cmd.IsMovement() && e.movement:
		return g.move(cmd)
	case cmd.IsCommon():
		return g.common(cmd, e.help)
	}

	g.console.Print(fmt.Sprintf("You can't %s here.", cmd))
	return Continue
}

// common handles the commands available in every room.
func (g *Game) common(cmd Command, help []string) Outcome {
	p := g.player

	switch cmd {
	case CmdExit:
		g.log.Info("Player quit")
		return g.quit()

	case CmdHelp:
		g.console.Print(g.help.Section(help...))

	case CmdMap:
		lines := ui.RenderMap(g.dungeon, p)
		g.console.Print(strings.Join(lines, "\n") + "\n" +
			fmt.Sprintf("You are at %s facing %s.", p.Position.Current, p.Orientation()))

	case CmdHealth:
		g.console.Print(fmt.Sprintf("Current HEALTH: %d/%d", p.Health.Current, p.Health.Max))

	case CmdInventory:
		var b strings.Builder
		b.WriteString("INVENTORY: {")
		for _, item := range world.ItemTypes {
			fmt.Fprintf(&b, "\n  %s: %d,", item, p.Inventory.Count(item))
		}
		b.WriteString("\n}")
		g.console.Print(b.String())

	case CmdFood:
		g.eat()

	default:
		panic(fmt.Sprintf("game: %s is not a common command", cmd))
	}
	return Continue
}

// eat consumes one FOOD to restore some health.
func (g *Game) eat() {
	p := g.player
	switch {
	case !p.Inventory.Has(world.ItemFood):
		g.console.Print("You have no FOOD.")
	case p.Health.Current >= p.Health.Max:
		g.console.Print(fmt.Sprintf("You already have max HEALTH (%d/%d).", p.Health.Current, p.Health.Max))
	default:
		p.Inventory.Take(world.ItemFood)
		healed := p.AdjustHealth(g.rng.Int(foodHealMin, foodHealMax))
		g.console.Print(fmt.Sprintf("You consume 1 FOOD and regain %d HEALTH (%d/%d).",
			healed, p.Health.Current, p.Health.Max))
	}
}

// MoveResult reports whether a move went through.
type MoveResult int

const (
	MoveOK MoveResult = iota
	MoveBlocked
)

var moveMessages = map[Command]string{
	CmdForward: "You move forward into the next room.",
	CmdBack:    "You edge back into the room from whence you came.",
	CmdLeft:    "You turn left into the next room.",
	CmdRight:   "You turn right into the next room.",
}

// tryMove steps the player relative to their facing. A step off the grid
// is undone, leaving position and facing as they were.
func (g *Game) tryMove(rel world.Vec2) MoveResult {
	saved := g.player.Position
	g.player.Move(rel)
	if !g.dungeon.Contains(g.player.Position.Current) {
		g.player.Restore(saved)
		return MoveBlocked
	}
	return MoveOK
}

// move handles a movement command.
func (g *Game) move(cmd Command) Outcome {
	if g.tryMove(cmd.Direction()) == MoveBlocked {
		g.console.Print("You come upon a solid wall - please choose a new direction.")
		return Continue
	}
	g.console.Print(moveMessages[cmd])
	return Consumed
}

// retreat sends the player back the way they came and ends the turn.
func (g *Game) retreat() Outcome {
	if g.tryMove(entity.Back) == MoveBlocked {
		g.log.WithField("position", g.player.Position.Current.String()).Warn("Retreat blocked by wall")
	}
	return Consumed
}

// pickUp moves an ITEM room's item into the inventory.
func (g *Game) pickUp(room *world.Room, c world.Cache) {
	g.player.Inventory.Add(c.Item, 1)
	g.console.Print(fmt.Sprintf("You found a %s! You now have %d.", c.Item, g.player.Inventory.Count(c.Item)))
	g.log.WithField("item", c.Item.String()).Info("Item picked up")
	room.Clear()
}

// trigger springs a trap. Each trigger weakens it until it breaks.
func (g *Game) trigger(room *world.Room, t *world.Trap) {
	p := g.player
	damage := g.rng.Int(1, t.MaxDamage+1)
	p.AdjustHealth(-damage)
	g.console.Print(fmt.Sprintf("You step on a trap and lose %d HEALTH (%d/%d remaining).",
		damage, p.Health.Current, p.Health.Max))

	t.MaxDamage -= g.rng.Int(trapDecayMin, trapDecayMax)
	g.log.WithFields(logrus.Fields{
		"damage":     damage,
		"max_damage": t.MaxDamage,
	}).Debug("Trap triggered")

	if t.MaxDamage <= 0 {
		g.console.Print("The trap is destroyed and will cause you no more harm.")
		room.Clear()
	}
}

// jumpChance is the percent chance of clearing a pit carrying n items.
func jumpChance(n int) int {
	return jumpChanceBase - jumpPenaltyPerItem*n
}

// pitEncounter offers jump, swing and return.
func (g *Game) pitEncounter(room *world.Room) encounter {
	return encounter{
		help: []string{"common", "pit"},
		actions: func(cmd Command) (Outcome, bool) {
			p := g.player
			switch cmd {
			case CmdJump:
				chance := jumpChance(p.Inventory.Total())
				if g.rng.Int(0, 100) < chance {
					g.console.Print("You successfully jump the pit!")
					return g.retreat(), true
				}
				g.console.Print("You fall to your doom in your attempt to clear the pit.")
				g.log.WithField("chance", chance).Info("Player fell into a pit")
				p.Kill()
				return GameOver, true

			case CmdSwing:
				if !p.Inventory.Has(world.ItemRope) || !p.Inventory.Has(world.ItemHook) {
					g.console.Print("You must have at least 1 ROPE and 1 HOOK in order to swing across.")
					return Continue, true
				}
				p.Inventory.Take(world.ItemRope)
				p.Inventory.Take(world.ItemHook)
				g.console.Print("Using your HOOK and ROPE, you swing to safety on the other side of the pit.")
				room.Clear()
				return Consumed, true

			case CmdReturn:
				g.console.Print("You edge back into the room from whence you came.")
				return g.retreat(), true
			}
			return Continue, false
		},
	}
}

// enemyEncounter offers fight and flee.
func (g *Game) enemyEncounter(room *world.Room, e *world.Enemy) encounter {
	return encounter{
		help: []string{"common", "enemy"},
		status: func() string {
			return fmt.Sprintf("You (%d/%d) | VS | Beast (%d/???)",
				g.player.Health.Current, g.player.Health.Max, e.Health)
		},
		actions: func(cmd Command) (Outcome, bool) {
			switch cmd {
			case CmdFight:
				return g.fight(room, e), true
			case CmdFlee:
				return g.flee(e), true
			}
			return Continue, false
		},
	}
}

// fight resolves one round and reports it.
func (g *Game) fight(room *world.Room, e *world.Enemy) Outcome {
	result := g.resolver.Fight(g.player, e)

	if result.Armed {
		g.console.Print(fmt.Sprintf("You hit the beast with your SWORD and deal %d damage.", result.Dealt))
	} else {
		g.console.Print(fmt.Sprintf("You hit the beast with your fists and deal %d damage.", result.Dealt))
	}

	if result.Defeated {
		g.console.Print("The beast is defeated!")
		g.log.Info("Beast defeated")
		room.Clear()
		return Consumed
	}

	if result.Shielded {
		g.console.Print(fmt.Sprintf("The beast hits your SHIELD and you take %d damage.", result.Taken))
		if result.ShieldBroke {
			g.console.Print("Your SHIELD breaks!")
		}
	} else {
		g.console.Print(fmt.Sprintf("The beast hits you and deals %d damage.", result.Taken))
	}

	if !g.player.IsAlive() {
		return GameOver
	}
	return Continue
}

// flee tries to escape to the previous room.
func (g *Game) flee(e *world.Enemy) Outcome {
	p := g.player
	result := g.resolver.Flee(p, e)

	switch {
	case !result.Escaped:
		g.console.Print(fmt.Sprintf("You fail to evade the creature and lose %d HEALTH in the process.", result.Taken))
		if !p.IsAlive() {
			return GameOver
		}
		return Continue
	case result.Taken == 0:
		g.console.Print("You successfully evade the creature without harm.")
	default:
		g.console.Print(fmt.Sprintf(
			"You successfully evade the creature, but lose %d HEALTH in the process (%d/%d remaining).",
			result.Taken, p.Health.Current, p.Health.Max))
	}
	return g.retreat()
}
