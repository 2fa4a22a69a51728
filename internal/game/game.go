package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/combat"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const (
	separator     = "--------------------------"
	commandPrompt = "What do you do (type 'help' for a list of actions)?\n> "
)

// Game holds the entire game state.
type Game struct {
	console  Console
	dungeon  *world.Dungeon
	player   *entity.Player
	rng      *rng.Rand
	resolver *combat.Resolver
	help     *gamedata.HelpRegistry
	rooms    *gamedata.RoomRegistry
	tracer   trace.Tracer
	log      *logrus.Entry

	sessionID string
	seed      int64
	state     State
	turns     int
}

// New creates a new game instance reading commands from console.
func New(cfg Config, console Console) (*Game, error) {
	help, err := gamedata.LoadHelpRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load help text: %w", err)
	}
	rooms, err := gamedata.LoadRoomRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load room data: %w", err)
	}

	seed := rng.Seed(cfg.Seed)
	r := rng.NewSeeded(seed)

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry {
		tracer = telemetry.Tracer("game")
	}

	sessionID := uuid.NewString()

	return &Game{
		console:   console,
		rng:       r,
		resolver:  combat.NewResolver(r),
		help:      help,
		rooms:     rooms,
		tracer:    tracer,
		sessionID: sessionID,
		seed:      seed,
		state:     StatePlaying,
		log: logger.Log.WithFields(logrus.Fields{
			"session": sessionID,
			"seed":    seed,
		}),
	}, nil
}

// Seed returns the effective random seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// SessionID identifies this game in logs and traces.
func (g *Game) SessionID() string {
	return g.sessionID
}

// State returns the current session state.
func (g *Game) State() State {
	return g.state
}

// Player returns the player, or nil before Run has generated the dungeon.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Run plays a session until victory, death or exit. It returns an error
// only when the console fails for a reason other than end of input.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.session")
	defer span.End()

	if g.dungeon == nil {
		g.dungeon = world.Generate(ctx, world.DefaultWidth, world.DefaultHeight, g.rng)
		g.player = entity.NewPlayer(g.dungeon.Spawn)
	}

	span.SetAttributes(telemetry.SessionAttributes(g.sessionID, g.seed, g.dungeon.Width, g.dungeon.Height)...)
	g.log.WithFields(logrus.Fields{
		"spawn":    g.dungeon.Spawn.String(),
		"treasure": g.dungeon.Treasure.String(),
	}).Info("Dungeon generated")

	g.console.Print(separator + "\n" + g.help.Intro() + "\n\n" + g.help.Section("common", "movement"))
	g.refreshMap()

	for g.state == StatePlaying {
		if err := g.playTurn(ctx); err != nil {
			span.RecordError(err)
			return err
		}
	}

	switch g.state {
	case StateDefeat:
		g.console.Print("YOU DIED!")
	case StateQuit:
		g.console.Print("You abandon your search for the treasure.")
	}

	span.SetAttributes(
		attribute.String("game.outcome", g.state.String()),
		attribute.Int("game.turns", g.turns),
	)
	g.log.WithFields(logrus.Fields{
		"outcome": g.state.String(),
		"turns":   g.turns,
	}).Info("Game over")
	return nil
}

// playTurn resolves the room the player is standing in.
func (g *Game) playTurn(ctx context.Context) error {
	room := g.dungeon.Room(g.player.Position.Current)

	g.console.Print(separator)

	if room.Type() == world.RoomTreasure {
		g.console.Print(g.rooms.Arrival(world.RoomTreasure))
		g.state = StateVictory
		return nil
	}

	g.turns++
	ctx, span := g.tracer.Start(ctx, "game.turn", trace.WithAttributes(
		attribute.Int("turn", g.turns),
		attribute.String("room.type", room.Type().String()),
		attribute.Int("position.x", g.player.Position.Current.X),
		attribute.Int("position.y", g.player.Position.Current.Y),
	))
	defer span.End()

	g.log.WithFields(logrus.Fields{
		"turn":     g.turns,
		"room":     room.Type().String(),
		"position": g.player.Position.Current.String(),
	}).Debug("Turn started")

	outcome, err := g.enterRoom(ctx, room)
	room.Visited = true
	span.SetAttributes(attribute.String("turn.outcome", outcome.String()))
	if err != nil {
		return err
	}

	if g.state == StatePlaying && !g.player.IsAlive() {
		g.state = StateDefeat
	}
	g.log.WithFields(logrus.Fields{
		"turn":    g.turns,
		"outcome": outcome.String(),
		"health":  g.player.Health.Current,
	}).Debug("Turn ended")
	g.refreshMap()
	return nil
}

// refreshMap updates the console's map view, if it has one.
func (g *Game) refreshMap() {
	if viewer, ok := g.console.(MapViewer); ok {
		viewer.ShowMap(g.dungeon, g.player)
	}
}

// quit ends the session at the player's request.
func (g *Game) quit() Outcome {
	g.player.Kill()
	g.state = StateQuit
	return GameOver
}
