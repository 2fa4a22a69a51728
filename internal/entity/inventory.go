package entity

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Inventory counts the items the player carries, indexed by item type.
type Inventory [world.ItemTypeCount]int

// Count returns how many of item the player holds.
func (inv *Inventory) Count(item world.ItemType) int {
	return inv[item]
}

// Has reports whether at least one of item is held.
func (inv *Inventory) Has(item world.ItemType) bool {
	return inv[item] > 0
}

// Add increases the count of item by n.
func (inv *Inventory) Add(item world.ItemType, n int) {
	inv[item] += n
}

// Take removes one of item and reports whether there was one to take.
func (inv *Inventory) Take(item world.ItemType) bool {
	if inv[item] <= 0 {
		return false
	}
	inv[item]--
	return true
}

// Total returns the number of items held across all kinds.
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv {
		total += n
	}
	return total
}
