package combat

import (
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func newTestPlayer(items ...world.ItemType) *entity.Player {
	p := entity.NewPlayer(world.Vec2{X: 1, Y: 1})
	p.Inventory = entity.Inventory{}
	for _, item := range items {
		p.Inventory.Add(item, 1)
	}
	return p
}

func TestFightDefeatSuppressesCounterattack(t *testing.T) {
	// Sword roll of 5 against a beast with 4 health; no further draws.
	resolver := NewResolver(rng.New(rng.Sequence(rng.Draw(5, 3, 6))))
	p := newTestPlayer(world.ItemSword)
	e := &world.Enemy{Health: 4, MaxDamage: 5}

	result := resolver.Fight(p, e)

	if !result.Defeated || !result.Armed || result.Dealt != 5 {
		t.Errorf("Fight() = %+v, want armed defeat dealing 5", result)
	}
	if result.Taken != 0 || p.Health.Current != p.Health.Max {
		t.Errorf("Fight() defeat should not counterattack: taken %d, health %d", result.Taken, p.Health.Current)
	}
	if e.Health > 0 {
		t.Errorf("beast health = %d, want <= 0", e.Health)
	}
}

func TestFightUnarmedCounterattack(t *testing.T) {
	resolver := NewResolver(rng.New(rng.Sequence(
		rng.Draw(2, 0, 4), // fists
		rng.Draw(3, 1, 5), // beast hit, MaxDamage 5
	)))
	p := newTestPlayer()
	e := &world.Enemy{Health: 7, MaxDamage: 5}

	result := resolver.Fight(p, e)

	want := FightResult{Dealt: 2, Taken: 3}
	if result != want {
		t.Errorf("Fight() = %+v, want %+v", result, want)
	}
	if e.Health != 5 {
		t.Errorf("beast health = %d, want 5", e.Health)
	}
	if p.Health.Current != 17 {
		t.Errorf("player health = %d, want 17", p.Health.Current)
	}
}

func TestFightShield(t *testing.T) {
	tests := []struct {
		name       string
		breakRoll  float64
		wantBroken bool
	}{
		{"holds", 0.5, false},
		{"breaks", 0.51, true},
	}

	for _, tt := range tests {
		resolver := NewResolver(rng.New(rng.Sequence(
			rng.Draw(4, 3, 6), // sword
			rng.Draw(2, 0, 3), // shielded hit
			tt.breakRoll,
		)))
		p := newTestPlayer(world.ItemSword, world.ItemShield)
		e := &world.Enemy{Health: 7, MaxDamage: 5}

		result := resolver.Fight(p, e)

		if !result.Shielded || result.Taken != 2 {
			t.Errorf("%s: Fight() = %+v, want shielded hit of 2", tt.name, result)
		}
		if result.ShieldBroke != tt.wantBroken {
			t.Errorf("%s: ShieldBroke = %v, want %v", tt.name, result.ShieldBroke, tt.wantBroken)
		}
		wantShields := 1
		if tt.wantBroken {
			wantShields = 0
		}
		if got := p.Inventory.Count(world.ItemShield); got != wantShields {
			t.Errorf("%s: shields = %d, want %d", tt.name, got, wantShields)
		}
	}
}

func TestBeastDamageNeverReachesMax(t *testing.T) {
	resolver := NewResolver(rng.NewSeeded(99))
	e := &world.Enemy{Health: 100, MaxDamage: 3}

	for i := 0; i < 500; i++ {
		if got := resolver.beastDamage(e); got < 1 || got >= e.MaxDamage {
			t.Fatalf("beastDamage() = %d, want [1,%d)", got, e.MaxDamage)
		}
	}
}

func TestFlee(t *testing.T) {
	tests := []struct {
		name        string
		draws       []float64
		wantEscaped bool
		wantTaken   int
	}{
		{"clean escape", []float64{0.81}, true, 0},
		{"hurt escape", []float64{0.8, rng.Draw(2, 1, 4)}, true, 2},
		{"hurt escape low", []float64{0.51, rng.Draw(1, 1, 4)}, true, 1},
		{"failed", []float64{0.5, rng.Draw(3, 1, 4)}, false, 3},
	}

	for _, tt := range tests {
		resolver := NewResolver(rng.New(rng.Sequence(tt.draws...)))
		p := newTestPlayer()
		e := &world.Enemy{Health: 5, MaxDamage: 4}

		result := resolver.Flee(p, e)

		if result.Escaped != tt.wantEscaped || result.Taken != tt.wantTaken {
			t.Errorf("%s: Flee() = %+v, want escaped=%v taken=%d", tt.name, result, tt.wantEscaped, tt.wantTaken)
		}
		if got := p.Health.Max - p.Health.Current; got != tt.wantTaken {
			t.Errorf("%s: health lost = %d, want %d", tt.name, got, tt.wantTaken)
		}
	}
}
