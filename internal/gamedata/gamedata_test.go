package gamedata

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestLoadHelpRegistry(t *testing.T) {
	registry, err := LoadHelpRegistry()
	if err != nil {
		t.Fatalf("Failed to load help: %v", err)
	}

	want := map[string][]string{
		"common":   {"exit", "help", "map", "health", "inventory", "food"},
		"movement": {"forward", "back", "left", "right"},
		"pit":      {"jump", "swing", "return"},
		"enemy":    {"fight", "flee"},
	}

	for id, commands := range want {
		got := registry.Commands(id)
		if strings.Join(got, ",") != strings.Join(commands, ",") {
			t.Errorf("Commands(%q) = %v, want %v", id, got, commands)
		}
	}

	if !strings.HasPrefix(registry.Intro(), "Welcome to this dungeon.") {
		t.Errorf("Intro() = %q", registry.Intro())
	}
}

func TestHelpSection(t *testing.T) {
	registry := NewHelpRegistry(ActionsFile{
		Groups: []ActionGroup{
			{ID: "a", Title: "First", Actions: []ActionDef{{Command: "go", Help: "line one\nline two"}}},
			{ID: "b", Title: "Second", Actions: []ActionDef{{Command: "x", Help: "quit"}}},
		},
	})

	got := registry.Section("a", "missing", "b")
	want := "First:\n" +
		"  'go' - line one\n" +
		"         line two\n" +
		"Second:\n" +
		"  'x' - quit"

	if got != want {
		t.Errorf("Section() =\n%s\nwant\n%s", got, want)
	}
	if ids := registry.Groups(); len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Groups() = %v, want [a b]", ids)
	}
}

func TestLoadRoomRegistry(t *testing.T) {
	registry, err := LoadRoomRegistry()
	if err != nil {
		t.Fatalf("Failed to load rooms: %v", err)
	}

	for rt := world.RoomType(0); int(rt) < world.RoomTypeCount; rt++ {
		if registry.Arrival(rt) == "" {
			t.Errorf("Arrival(%v) is empty", rt)
		}
	}

	if got := registry.Arrival(world.RoomEnemy); got != "A vicious cave beast blocks your path." {
		t.Errorf("Arrival(enemy) = %q", got)
	}
	if got := registry.Color(world.RoomTreasure); got != tcell.NewHexColor(0xFFD700) {
		t.Errorf("Color(treasure) = %v, want #FFD700", got)
	}
}

func TestNewRoomRegistryRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		def  RoomDef
	}{
		{"unknown type", RoomDef{Type: "lava", Color: "#FF0000"}},
		{"bad color", RoomDef{Type: "pit", Color: "purple"}},
	}

	for _, tt := range tests {
		if _, err := NewRoomRegistry([]RoomDef{tt.def}); err == nil {
			t.Errorf("%s: NewRoomRegistry() should fail", tt.name)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewHexColor(0xFF0000), true},
		{"FF0000", tcell.NewHexColor(0xFF0000), true},
		{"#00FF00", tcell.NewHexColor(0x00FF00), true},
		{"#0F0", tcell.NewHexColor(0x00FF00), true},
		{"#000000", tcell.NewHexColor(0), true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFFF", tcell.ColorDefault, false},
		{"#GG0000", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
		if tt.valid && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoad(missing) should panic")
		}
	}()
	MustLoad[RoomsFile]("missing.yaml")
}
