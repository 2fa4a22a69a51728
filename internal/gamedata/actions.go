package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

// ActionDef describes one command in the help text.
type ActionDef struct {
	Command string `yaml:"command"`
	Help    string `yaml:"help"`
}

// ActionGroup is a titled list of commands, e.g. "Pit Actions".
type ActionGroup struct {
	ID      string      `yaml:"id"`
	Title   string      `yaml:"title"`
	Actions []ActionDef `yaml:"actions"`
}

// ActionsFile represents the structure of actions.yaml.
type ActionsFile struct {
	Intro  string        `yaml:"intro"`
	Groups []ActionGroup `yaml:"groups"`
}

// HelpRegistry renders help sections by group ID.
type HelpRegistry struct {
	intro  string
	groups map[string]*ActionGroup
	order  []string
}

// NewHelpRegistry creates a registry from a loaded actions file.
func NewHelpRegistry(file ActionsFile) *HelpRegistry {
	registry := &HelpRegistry{
		intro:  strings.TrimRight(file.Intro, "\n"),
		groups: make(map[string]*ActionGroup),
	}
	for i := range file.Groups {
		g := &file.Groups[i]
		registry.groups[g.ID] = g
		registry.order = append(registry.order, g.ID)
	}
	return registry
}

// LoadHelpRegistry loads and creates a registry from the embedded actions.yaml.
func LoadHelpRegistry() (*HelpRegistry, error) {
	file, err := Load[ActionsFile]("actions.yaml")
	if err != nil {
		return nil, err
	}
	if len(file.Groups) == 0 {
		return nil, errors.New("no action groups loaded from actions.yaml")
	}
	return NewHelpRegistry(file), nil
}

// MustLoadHelpRegistry loads a registry, panicking on error.
func MustLoadHelpRegistry() *HelpRegistry {
	registry, err := LoadHelpRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Intro returns the welcome text shown at the start of a game.
func (r *HelpRegistry) Intro() string {
	return r.intro
}

// Commands returns every command listed in group id, in order.
func (r *HelpRegistry) Commands(id string) []string {
	g := r.groups[id]
	if g == nil {
		return nil
	}
	commands := make([]string, len(g.Actions))
	for i, a := range g.Actions {
		commands[i] = a.Command
	}
	return commands
}

// Section renders the given groups one after another. Unknown IDs are
// skipped.
//
//	Common Actions:
//	  'exit' - quit
func (r *HelpRegistry) Section(ids ...string) string {
	var b strings.Builder
	for _, id := range ids {
		g := r.groups[id]
		if g == nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:", g.Title)
		for _, a := range g.Actions {
			prefix := fmt.Sprintf("  '%s' - ", a.Command)
			indent := strings.Repeat(" ", len(prefix))
			for i, line := range strings.Split(a.Help, "\n") {
				if i == 0 {
					fmt.Fprintf(&b, "\n%s%s", prefix, line)
				} else {
					fmt.Fprintf(&b, "\n%s%s", indent, line)
				}
			}
		}
	}
	return b.String()
}

// Groups returns the IDs of all groups in file order.
func (r *HelpRegistry) Groups() []string {
	return r.order
}
