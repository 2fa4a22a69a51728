// Package combat resolves exchanges between the player and a room's beast.
package combat

import (
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/rng"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Damage ranges, half-open.
const (
	swordDamageMin  = 3
	swordDamageMax  = 6
	fistDamageMin   = 0
	fistDamageMax   = 4
	shieldDamageMin = 0
	shieldDamageMax = 3

	shieldBreakChance = 0.5
	fleeCleanChance   = 0.8
	fleeChance        = 0.5
)

// FightResult is the outcome of one round of fighting.
type FightResult struct {
	Armed       bool // player struck with a SWORD
	Dealt       int  // damage dealt to the beast
	Defeated    bool // the beast died; no counterattack happened
	Shielded    bool // the counterattack hit a SHIELD
	Taken       int  // damage rolled against the player
	ShieldBroke bool
}

// FleeResult is the outcome of an attempt to flee.
type FleeResult struct {
	Escaped bool
	Taken   int
}

// Resolver rolls fights and escapes.
type Resolver struct {
	rng *rng.Rand
}

// NewResolver creates a resolver drawing from r.
func NewResolver(r *rng.Rand) *Resolver {
	return &Resolver{rng: r}
}

// Fight resolves one exchange: the player strikes, and if the beast
// survives it counterattacks. The beast's health is reduced in place.
func (r *Resolver) Fight(p *entity.Player, e *world.Enemy) FightResult {
	var result FightResult

	if p.Inventory.Has(world.ItemSword) {
		result.Armed = true
		result.Dealt = r.rng.Int(swordDamageMin, swordDamageMax)
	} else {
		result.Dealt = r.rng.Int(fistDamageMin, fistDamageMax)
	}
	e.Health -= result.Dealt

	if e.Health <= 0 {
		result.Defeated = true
		return result
	}

	if p.Inventory.Has(world.ItemShield) {
		result.Shielded = true
		result.Taken = r.rng.Int(shieldDamageMin, shieldDamageMax)
		p.AdjustHealth(-result.Taken)

		if r.rng.Float() > shieldBreakChance {
			result.ShieldBroke = true
			p.Inventory.Take(world.ItemShield)
		}
	} else {
		result.Taken = r.beastDamage(e)
		p.AdjustHealth(-result.Taken)
	}

	return result
}

// Flee attempts to escape the beast. Above 0.8 the escape is clean,
// above 0.5 it costs some health, otherwise it fails and still hurts.
func (r *Resolver) Flee(p *entity.Player, e *world.Enemy) FleeResult {
	roll := r.rng.Float()

	var result FleeResult
	if roll > fleeChance {
		result.Escaped = true
		if roll > fleeCleanChance {
			return result
		}
	}

	result.Taken = r.beastDamage(e)
	p.AdjustHealth(-result.Taken)
	return result
}

// beastDamage rolls an unshielded hit. The upper bound is exclusive of
// MaxDamage itself, unlike trap damage which can reach its maximum.
// TODO: decide whether beasts should be able to hit for MaxDamage.
func (r *Resolver) beastDamage(e *world.Enemy) int {
	return r.rng.Int(1, e.MaxDamage)
}
