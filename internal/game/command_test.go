package game

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		token  string
		want   Command
		wantOK bool
	}{
		{"exit", CmdExit, true},
		{"MAP", CmdMap, true},
		{"Forward", CmdForward, true},
		{"fLeE", CmdFlee, true},
		{"return", CmdReturn, true},
		{"dance", 0, false},
		{"", 0, false},
		{"forwards", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCommand(tt.token)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ParseCommand(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCommandVocabulary(t *testing.T) {
	for c := CmdExit; c <= CmdFlee; c++ {
		got, ok := ParseCommand(c.String())
		if !ok || got != c {
			t.Errorf("ParseCommand(%q) = (%v, %v), want (%v, true)", c.String(), got, ok, c)
		}
		if c.IsCommon() && c.IsMovement() {
			t.Errorf("%s is both common and movement", c)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	tests := []struct {
		cmd  Command
		want world.Vec2
	}{
		{CmdForward, entity.Forward},
		{CmdBack, entity.Back},
		{CmdLeft, entity.Left},
		{CmdRight, entity.Right},
	}
	for _, tt := range tests {
		if got := tt.cmd.Direction(); got != tt.want {
			t.Errorf("%s.Direction() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StatePlaying, "playing"},
		{StateVictory, "victory"},
		{StateDefeat, "defeat"},
		{StateQuit, "quit"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
