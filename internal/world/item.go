package world

// ItemType is a kind of item the player can carry.
type ItemType int

const (
	ItemFood ItemType = iota
	ItemSword
	ItemShield
	ItemRope
	ItemHook
	ItemRock

	// ItemTypeCount is the number of item kinds.
	ItemTypeCount = int(ItemRock) + 1
)

// ItemTypes lists every item kind in declaration order.
var ItemTypes = [ItemTypeCount]ItemType{ItemFood, ItemSword, ItemShield, ItemRope, ItemHook, ItemRock}

// String returns the item name as shown to the player.
func (t ItemType) String() string {
	switch t {
	case ItemFood:
		return "FOOD"
	case ItemSword:
		return "SWORD"
	case ItemShield:
		return "SHIELD"
	case ItemRope:
		return "ROPE"
	case ItemHook:
		return "HOOK"
	case ItemRock:
		return "ROCK"
	default:
		return "UNKNOWN"
	}
}
